package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/repository"
)

const defaultEventLimit = 50

// EventHandler serves the persisted event log
type EventHandler struct {
	eventRepo *repository.EventRepository
}

func NewEventHandler(eventRepo *repository.EventRepository) *EventHandler {
	return &EventHandler{eventRepo: eventRepo}
}

func eventLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultEventLimit)))
	if err != nil || limit <= 0 || limit > 500 {
		return defaultEventLimit
	}
	return limit
}

// Recent godoc
// @Summary List the most recent platform events
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max events to return" default(50)
// @Success 200 {array} model.EventRecord
// @Router /events [get]
func (h *EventHandler) Recent(c *gin.Context) {
	events, err := h.eventRepo.Recent(eventLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// BySubject godoc
// @Summary List events concerning a specific address
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param address path string true "Account address"
// @Param limit query int false "Max events to return" default(50)
// @Success 200 {array} model.EventRecord
// @Router /events/subject/{address} [get]
func (h *EventHandler) BySubject(c *gin.Context) {
	addr, ok := pathAddress(c)
	if !ok {
		return
	}

	events, err := h.eventRepo.FindBySubject(string(addr), eventLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ByName godoc
// @Summary List events of one kind
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Param limit query int false "Max events to return" default(50)
// @Success 200 {array} model.EventRecord
// @Router /events/name/{name} [get]
func (h *EventHandler) ByName(c *gin.Context) {
	events, err := h.eventRepo.FindByName(c.Param("name"), eventLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ByTx godoc
// @Summary List the events of a single committed call
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {array} model.EventRecord
// @Failure 400 {object} model.ErrorResponse
// @Router /events/tx/{id} [get]
func (h *EventHandler) ByTx(c *gin.Context) {
	txID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid transaction ID", Message: err.Error()})
		return
	}

	events, err := h.eventRepo.FindByTx(txID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load events"})
		return
	}

	c.JSON(http.StatusOK, events)
}
