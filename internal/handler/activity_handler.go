package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/service"
)

// ActivityHandler handles messages and gifts between users
type ActivityHandler struct {
	bocService *service.BOCService
}

func NewActivityHandler(bocService *service.BOCService) *ActivityHandler {
	return &ActivityHandler{bocService: bocService}
}

// SendMessage godoc
// @Summary Send a birthday message to another user
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.SendMessageRequest true "Send message request"
// @Success 201 {object} chain.Receipt
// @Failure 400 {object} model.ErrorResponse
// @Router /activities/messages [post]
func (h *ActivityHandler) SendMessage(c *gin.Context) {
	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	recipient, err := chain.ParseAddress(req.Recipient)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid recipient", Message: err.Error()})
		return
	}

	receipt, err := h.bocService.Submit(callerAddress(c), nil, facet.SelSendMessage, model.SendMessageArgs{
		Recipient: recipient,
		Message:   req.Message,
	})
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// SendEtherGift godoc
// @Summary Gift ether to another user
// @Description The amount is attached to the call and credited to the recipient's withdrawable balance.
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.SendGiftRequest true "Send gift request"
// @Success 201 {object} chain.Receipt
// @Failure 400 {object} model.ErrorResponse
// @Router /activities/gifts/ether [post]
func (h *ActivityHandler) SendEtherGift(c *gin.Context) {
	var req model.SendGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	recipient, err := chain.ParseAddress(req.Recipient)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid recipient", Message: err.Error()})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid amount", Message: err.Error()})
		return
	}

	receipt, err := h.bocService.Submit(callerAddress(c), amount, facet.SelSendEtherAsGift, model.SendEtherGiftArgs{
		Recipient: recipient,
	})
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// SendTokenGift godoc
// @Summary Gift BOC tokens to another user
// @Description Pulls the amount from the caller's token allowance toward the platform.
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.SendGiftRequest true "Send gift request"
// @Success 201 {object} chain.Receipt
// @Failure 400 {object} model.ErrorResponse
// @Router /activities/gifts/token [post]
func (h *ActivityHandler) SendTokenGift(c *gin.Context) {
	var req model.SendGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	recipient, err := chain.ParseAddress(req.Recipient)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid recipient", Message: err.Error()})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid amount", Message: err.Error()})
		return
	}

	receipt, err := h.bocService.Submit(callerAddress(c), nil, facet.SelSendTokenAsGift, model.SendTokenGiftArgs{
		Recipient: recipient,
		Amount:    amount,
	})
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}
