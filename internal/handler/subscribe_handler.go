package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/service"
)

// SubscribeHandler handles the featured subscription endpoints
type SubscribeHandler struct {
	bocService *service.BOCService
}

func NewSubscribeHandler(bocService *service.BOCService) *SubscribeHandler {
	return &SubscribeHandler{bocService: bocService}
}

// SubscribeEther godoc
// @Summary Subscribe the caller as a featured user, paying with ether
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.SubscribeRequest true "Subscribe request"
// @Success 201 {object} model.Subscription
// @Failure 400 {object} model.ErrorResponse
// @Router /subscriptions/ether [post]
func (h *SubscribeHandler) SubscribeEther(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid amount", Message: err.Error()})
		return
	}

	caller := callerAddress(c)
	if _, err := h.bocService.Submit(caller, amount, facet.SelSubscribeWithEther, nil); err != nil {
		respondCallError(c, err)
		return
	}

	subscription, err := service.Call[model.Subscription](h.bocService, caller, nil, facet.SelGetUserSubscription, caller)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// SubscribeToken godoc
// @Summary Subscribe the caller as a featured user, paying with BOC tokens
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.SubscribeRequest true "Subscribe request"
// @Success 201 {object} model.Subscription
// @Failure 400 {object} model.ErrorResponse
// @Router /subscriptions/token [post]
func (h *SubscribeHandler) SubscribeToken(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid amount", Message: err.Error()})
		return
	}

	caller := callerAddress(c)
	if _, err := h.bocService.Submit(caller, nil, facet.SelSubscribeWithToken, model.SubscribeTokenArgs{
		Amount: amount,
	}); err != nil {
		respondCallError(c, err)
		return
	}

	subscription, err := service.Call[model.Subscription](h.bocService, caller, nil, facet.SelGetUserSubscription, caller)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// GetSubscribed godoc
// @Summary List featured users in subscription order
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /subscriptions [get]
func (h *SubscribeHandler) GetSubscribed(c *gin.Context) {
	users, err := service.Call[[]model.User](h.bocService, callerAddress(c), nil, facet.SelGetSubscribedUsers, nil)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
