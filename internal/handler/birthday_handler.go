package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/service"
)

// BirthdayHandler handles birthday, timeline and funding goal endpoints
type BirthdayHandler struct {
	bocService *service.BOCService
}

func NewBirthdayHandler(bocService *service.BOCService) *BirthdayHandler {
	return &BirthdayHandler{bocService: bocService}
}

// Create godoc
// @Summary Record the caller's birthday, optionally with a funding goal
// @Tags Birthdays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateBirthdayRequest true "Create birthday request"
// @Success 201 {object} model.Birthday
// @Failure 400 {object} model.ErrorResponse
// @Router /birthdays [post]
func (h *BirthdayHandler) Create(c *gin.Context) {
	var req model.CreateBirthdayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	caller := callerAddress(c)

	if req.TargetAmount == "" {
		if _, err := h.bocService.Submit(caller, nil, facet.SelCreateBirthday, model.CreateBirthdayArgs{
			When: req.When,
		}); err != nil {
			respondCallError(c, err)
			return
		}
	} else {
		target, err := parseAmount(req.TargetAmount)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid target amount", Message: err.Error()})
			return
		}

		if _, err := h.bocService.Submit(caller, nil, facet.SelCreateBirthdayAndGoal, model.CreateBirthdayAndGoalArgs{
			When:         req.When,
			Description:  req.Description,
			TargetAmount: target,
		}); err != nil {
			respondCallError(c, err)
			return
		}
	}

	birthday, err := service.Call[model.Birthday](h.bocService, caller, nil, facet.SelGetUserBirthdays, caller)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusCreated, birthday)
}

// CreateTimeline godoc
// @Summary Append a timeline entry to one of the caller's birthdays
// @Tags Birthdays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateTimelineArgs true "Create timeline request"
// @Success 201 {object} model.Birthday
// @Failure 400 {object} model.ErrorResponse
// @Router /birthdays/timeline [post]
func (h *BirthdayHandler) CreateTimeline(c *gin.Context) {
	var req model.CreateTimelineArgs
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	caller := callerAddress(c)
	if _, err := h.bocService.Submit(caller, nil, facet.SelCreateTimeline, req); err != nil {
		respondCallError(c, err)
		return
	}

	birthday, err := service.Call[model.Birthday](h.bocService, caller, nil, facet.SelGetUserBirthdays, caller)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusCreated, birthday)
}

// CreateGoal godoc
// @Summary Attach a funding goal to one of the caller's birthdays
// @Tags Birthdays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Birthday ID"
// @Param body body model.GoalRequest true "Goal request"
// @Success 201 {object} model.Goal
// @Failure 400 {object} model.ErrorResponse
// @Router /birthdays/{id}/goal [post]
func (h *BirthdayHandler) CreateGoal(c *gin.Context) {
	h.submitGoal(c, facet.SelCreateGoal, http.StatusCreated)
}

// UpdateGoal godoc
// @Summary Replace a finished funding goal with a new one
// @Description Rejected while the current goal is still raising funds.
// @Tags Birthdays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Birthday ID"
// @Param body body model.GoalRequest true "Goal request"
// @Success 200 {object} model.Goal
// @Failure 400 {object} model.ErrorResponse
// @Router /birthdays/{id}/goal [put]
func (h *BirthdayHandler) UpdateGoal(c *gin.Context) {
	h.submitGoal(c, facet.SelUpdateGoal, http.StatusOK)
}

func (h *BirthdayHandler) submitGoal(c *gin.Context, sel chain.Selector, status int) {
	birthdayID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid birthday ID", Message: err.Error()})
		return
	}

	var req model.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	target, err := parseAmount(req.TargetAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid target amount", Message: err.Error()})
		return
	}

	caller := callerAddress(c)
	if _, err := h.bocService.Submit(caller, nil, sel, model.GoalArgs{
		BirthdayID:   birthdayID,
		Description:  req.Description,
		TargetAmount: target,
	}); err != nil {
		respondCallError(c, err)
		return
	}

	goal, err := service.Call[model.Goal](h.bocService, caller, nil, facet.SelGetUserGoal, caller)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(status, goal)
}

// WithdrawEther godoc
// @Summary Withdraw the caller's accumulated ether gifts
// @Description Only allowed once the caller's funding goal has been reached.
// @Tags Birthdays
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} model.ErrorResponse
// @Router /withdraw/ether [post]
func (h *BirthdayHandler) WithdrawEther(c *gin.Context) {
	receipt, err := h.bocService.Submit(callerAddress(c), nil, facet.SelUserWithdrawEther, nil)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"withdrawn": receipt.Ret, "tx_id": receipt.TxID})
}

// WithdrawToken godoc
// @Summary Withdraw the caller's accumulated token gifts
// @Description Only allowed once the caller's funding goal has been reached.
// @Tags Birthdays
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} model.ErrorResponse
// @Router /withdraw/token [post]
func (h *BirthdayHandler) WithdrawToken(c *gin.Context) {
	receipt, err := h.bocService.Submit(callerAddress(c), nil, facet.SelUserWithdrawToken, nil)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"withdrawn": receipt.Ret, "tx_id": receipt.TxID})
}
