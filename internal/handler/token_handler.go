package handler

import (
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/service"
)

// TokenHandler exposes the BOC token ledger. The token lives outside the
// selector router, so these endpoints talk to it directly under the call
// lock.
type TokenHandler struct {
	bocService *service.BOCService
}

func NewTokenHandler(bocService *service.BOCService) *TokenHandler {
	return &TokenHandler{bocService: bocService}
}

// Info godoc
// @Summary Get token metadata and total supply
// @Tags Token
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /token [get]
func (h *TokenHandler) Info(c *gin.Context) {
	chain := h.bocService.Chain()
	tok := chain.Token

	var supply *big.Int
	chain.Diamond.Locked(func() {
		supply = tok.TotalSupply()
	})

	c.JSON(http.StatusOK, gin.H{
		"address":      tok.Address(),
		"name":         tok.Name(),
		"symbol":       tok.Symbol(),
		"decimals":     tok.Decimals(),
		"total_supply": supply.String(),
	})
}

// Balance godoc
// @Summary Get the caller's token balance
// @Tags Token
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /token/balance [get]
func (h *TokenHandler) Balance(c *gin.Context) {
	chain := h.bocService.Chain()
	caller := callerAddress(c)

	var balance *big.Int
	chain.Diamond.Locked(func() {
		balance = chain.Token.BalanceOf(caller)
	})

	c.JSON(http.StatusOK, gin.H{"balance": balance.String()})
}

// Allowance godoc
// @Summary Get the caller's token allowance toward the platform
// @Tags Token
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /token/allowance [get]
func (h *TokenHandler) Allowance(c *gin.Context) {
	chain := h.bocService.Chain()
	caller := callerAddress(c)

	var allowance *big.Int
	chain.Diamond.Locked(func() {
		allowance = chain.Token.Allowance(caller, chain.Diamond.Address())
	})

	c.JSON(http.StatusOK, gin.H{"allowance": allowance.String()})
}

// Approve godoc
// @Summary Approve the platform to pull tokens from the caller
// @Description Required before token gifts and token subscriptions, which are pull payments.
// @Tags Token
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.ApproveRequest true "Approve request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} model.ErrorResponse
// @Router /token/approve [post]
func (h *TokenHandler) Approve(c *gin.Context) {
	var req model.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid amount", Message: err.Error()})
		return
	}

	chain := h.bocService.Chain()
	caller := callerAddress(c)

	var approveErr error
	chain.Diamond.Locked(func() {
		approveErr = chain.Token.Approve(caller, chain.Diamond.Address(), amount)
	})
	if approveErr != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: approveErr.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"allowance": amount.String()})
}
