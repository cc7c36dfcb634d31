package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/service"
)

// AdminHandler exposes owner-gated platform operations. The router enforces
// the ownership checks itself; these endpoints just forward the caller.
type AdminHandler struct {
	bocService *service.BOCService
}

func NewAdminHandler(bocService *service.BOCService) *AdminHandler {
	return &AdminHandler{bocService: bocService}
}

// Routes godoc
// @Summary Inspect the selector routing table
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} diamond.FacetRoute
// @Router /admin/routes [get]
func (h *AdminHandler) Routes(c *gin.Context) {
	c.JSON(http.StatusOK, h.bocService.Chain().Diamond.Routes())
}

// Owner godoc
// @Summary Get the platform owner address
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /admin/owner [get]
func (h *AdminHandler) Owner(c *gin.Context) {
	owner, err := service.Call[chain.Address](h.bocService, callerAddress(c), nil, facet.SelOwner, nil)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"owner": owner})
}

// Balances godoc
// @Summary Get the platform's pooled ether and token balances
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PlatformBalances
// @Failure 403 {object} model.ErrorResponse
// @Router /admin/balances [get]
func (h *AdminHandler) Balances(c *gin.Context) {
	caller := callerAddress(c)

	ether, err := h.bocService.Submit(caller, nil, facet.SelCheckBalance, nil)
	if err != nil {
		respondCallError(c, err)
		return
	}
	token, err := h.bocService.Submit(caller, nil, facet.SelCheckTokenBalance, nil)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ether": ether.Ret, "token": token.Ret})
}

// Withdraw godoc
// @Summary Drain the platform's pooled ether to the owner
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} model.ErrorResponse
// @Router /admin/withdraw [post]
func (h *AdminHandler) Withdraw(c *gin.Context) {
	receipt, err := h.bocService.Submit(callerAddress(c), nil, facet.SelBocWithdrawEther, nil)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"withdrawn": receipt.Ret, "tx_id": receipt.TxID})
}

// TransferOwnership godoc
// @Summary Hand the platform over to a new owner
// @Description Moves both storage ownership and the authority to change routing.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.TransferOwnershipRequest true "Transfer ownership request"
// @Success 200 {object} map[string]string
// @Failure 403 {object} model.ErrorResponse
// @Router /admin/ownership [post]
func (h *AdminHandler) TransferOwnership(c *gin.Context) {
	var req model.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	newOwner, err := chain.ParseAddress(req.NewOwner)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid address", Message: err.Error()})
		return
	}

	receipt, err := h.bocService.Submit(callerAddress(c), nil, facet.SelTransferOwnership, model.TransferOwnershipArgs{
		NewOwner: newOwner,
	})
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"owner": newOwner, "tx_id": receipt.TxID})
}
