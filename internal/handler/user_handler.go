package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/service"
)

// UserHandler handles account profile endpoints
type UserHandler struct {
	bocService *service.BOCService
}

func NewUserHandler(bocService *service.BOCService) *UserHandler {
	return &UserHandler{bocService: bocService}
}

// Create godoc
// @Summary Register the caller's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateUserRequest true "Create user request"
// @Success 201 {object} model.User
// @Failure 400 {object} model.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	caller := callerAddress(c)
	if _, err := h.bocService.Submit(caller, nil, facet.SelCreateUser, model.CreateUserArgs{
		Fullname: req.Fullname,
		Nickname: req.Nickname,
		Gender:   req.Gender,
		Currency: req.Currency,
		Photo:    req.Photo,
	}); err != nil {
		respondCallError(c, err)
		return
	}

	user, err := service.Call[model.User](h.bocService, caller, nil, facet.SelGetUser, caller)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary Update the caller's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.UpdateUserRequest true "Update user request"
// @Success 200 {object} model.User
// @Failure 404 {object} model.ErrorResponse
// @Router /users [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	caller := callerAddress(c)
	if _, err := h.bocService.Submit(caller, nil, facet.SelUpdateUser, model.UpdateUserArgs{
		Fullname: req.Fullname,
		Nickname: req.Nickname,
		Currency: req.Currency,
		Photo:    req.Photo,
	}); err != nil {
		respondCallError(c, err)
		return
	}

	user, err := service.Call[model.User](h.bocService, caller, nil, facet.SelGetUser, caller)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Get godoc
// @Summary Get a user profile by address
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {object} model.User
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address} [get]
func (h *UserHandler) Get(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	user, err := service.Call[model.User](h.bocService, callerAddress(c), nil, facet.SelGetUser, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetAll godoc
// @Summary List every active user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := service.Call[[]model.User](h.bocService, callerAddress(c), nil, facet.SelGetAllUsers, nil)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Messages godoc
// @Summary List messages received by a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {array} model.Message
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address}/messages [get]
func (h *UserHandler) Messages(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	messages, err := service.Call[[]model.Message](h.bocService, callerAddress(c), nil, facet.SelGetUserMessages, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Notifications godoc
// @Summary List notifications received by a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {array} model.Notification
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address}/notifications [get]
func (h *UserHandler) Notifications(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	notifications, err := service.Call[[]model.Notification](h.bocService, callerAddress(c), nil, facet.SelGetUserNotifications, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// Gifts godoc
// @Summary List gifts received by a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {array} model.Gift
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address}/gifts [get]
func (h *UserHandler) Gifts(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	gifts, err := service.Call[[]model.Gift](h.bocService, callerAddress(c), nil, facet.SelGetUserGifts, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gifts)
}

// Birthdays godoc
// @Summary Get a user's birthday record
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {object} model.Birthday
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address}/birthdays [get]
func (h *UserHandler) Birthdays(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	birthday, err := service.Call[model.Birthday](h.bocService, callerAddress(c), nil, facet.SelGetUserBirthdays, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, birthday)
}

// Goal godoc
// @Summary Get a user's funding goal
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {object} model.Goal
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address}/goal [get]
func (h *UserHandler) Goal(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	goal, err := service.Call[model.Goal](h.bocService, callerAddress(c), nil, facet.SelGetUserGoal, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Subscription godoc
// @Summary Get a user's subscription record
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {object} model.Subscription
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address}/subscription [get]
func (h *UserHandler) Subscription(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	subscription, err := service.Call[model.Subscription](h.bocService, callerAddress(c), nil, facet.SelGetUserSubscription, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// Balance godoc
// @Summary Get a user's withdrawable ether balance
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {object} map[string]string
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address}/balance [get]
func (h *UserHandler) Balance(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	balance, err := h.bocService.Submit(callerAddress(c), nil, facet.SelGetUserBalance, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance.Ret})
}

// TokenBalance godoc
// @Summary Get a user's withdrawable token balance
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {object} map[string]string
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address}/token-balance [get]
func (h *UserHandler) TokenBalance(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	balance, err := h.bocService.Submit(callerAddress(c), nil, facet.SelGetUserTokenBalance, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance.Ret})
}

// Complete godoc
// @Summary Get the aggregated view of a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Success 200 {object} model.CompleteUser
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{address}/complete [get]
func (h *UserHandler) Complete(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	complete, err := service.Call[model.CompleteUser](h.bocService, callerAddress(c), nil, facet.SelGetCompleteUser, addr)
	if err != nil {
		respondCallError(c, err)
		return
	}

	c.JSON(http.StatusOK, complete)
}
