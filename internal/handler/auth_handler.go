package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/pkg/auth"
)

// AuthHandler issues and revokes session tokens for account addresses
type AuthHandler struct {
	jwtManager *auth.JWTManager
	rdb        *redis.Client
	expiry     time.Duration
}

func NewAuthHandler(jwtManager *auth.JWTManager, rdb *redis.Client, expiry time.Duration) *AuthHandler {
	return &AuthHandler{
		jwtManager: jwtManager,
		rdb:        rdb,
		expiry:     expiry,
	}
}

// Session godoc
// @Summary Open a session for an account address
// @Description There is no password flow, the address is the identity. The platform keeps no secrets per account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body model.SessionRequest true "Session request"
// @Success 200 {object} model.SessionResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /auth/session [post]
func (h *AuthHandler) Session(c *gin.Context) {
	var req model.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	addr, err := chain.ParseAddress(req.Address)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid address", Message: err.Error()})
		return
	}

	token, err := h.jwtManager.GenerateToken(addr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, model.SessionResponse{Address: string(addr), Token: token})
}

// Logout godoc
// @Summary Revoke the current session token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} model.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Missing token"})
		return
	}

	if h.rdb != nil {
		// blacklist until the token would have expired anyway
		if err := h.rdb.Set(c.Request.Context(), "blacklist:"+token, "1", h.expiry).Err(); err != nil {
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to revoke token"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
