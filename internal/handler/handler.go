// Package handler exposes the platform over HTTP. Every state-changing
// endpoint resolves the caller from the session token and submits a call
// through the diamond router; revert reasons travel back verbatim in the
// error envelope.
package handler

import (
	"errors"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// callerAddress reads the authenticated account from the request context
func callerAddress(c *gin.Context) chain.Address {
	return c.MustGet("address").(chain.Address)
}

// parseAmount reads a decimal wei string
func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, errors.New("invalid amount, expected a decimal wei string")
	}
	return v, nil
}

// pathAddress reads and normalizes an :address path parameter
func pathAddress(c *gin.Context) (chain.Address, bool) {
	addr, err := chain.ParseAddress(c.Param("address"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid address", Message: err.Error()})
		return "", false
	}
	return addr, true
}

// respondCallError maps a revert reason to an HTTP status. Not-found style
// reverts become 404, ownership gates 403, everything else 400.
func respondCallError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, facet.ErrUserNotFound),
		errors.Is(err, facet.ErrNoBirthdayFound),
		errors.Is(err, facet.ErrNoBirthdaysFound),
		errors.Is(err, diamond.ErrFunctionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, facet.ErrOwnerOnly),
		errors.Is(err, diamond.ErrOwnerOnly):
		status = http.StatusForbidden
	}
	c.JSON(status, model.ErrorResponse{Error: err.Error()})
}
