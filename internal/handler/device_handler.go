package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/repository"
)

// DeviceHandler registers push notification targets
type DeviceHandler struct {
	deviceRepo *repository.DeviceRepository
}

func NewDeviceHandler(deviceRepo *repository.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{deviceRepo: deviceRepo}
}

// Register godoc
// @Summary Register a device token for push notifications
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.RegisterDeviceRequest true "Register device request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} model.ErrorResponse
// @Router /devices [post]
func (h *DeviceHandler) Register(c *gin.Context) {
	var req model.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	caller := callerAddress(c)
	if err := h.deviceRepo.Register(string(caller), req.FCMToken, req.DeviceType); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to register device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device registered"})
}

// Remove godoc
// @Summary Remove a device token
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param token path string true "FCM token"
// @Success 200 {object} map[string]string
// @Router /devices/{token} [delete]
func (h *DeviceHandler) Remove(c *gin.Context) {
	if err := h.deviceRepo.Remove(c.Param("token")); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to remove device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device removed"})
}
