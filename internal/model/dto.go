package model

import (
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
)

// ---------- Facet call payloads ----------
// These are the typed arguments submitted through the selector router. The
// HTTP gateway decodes request bodies into them; tests build them directly.

type CreateUserArgs struct {
	Fullname string   `json:"fullname"`
	Nickname string   `json:"nickname"`
	Gender   string   `json:"gender"`
	Currency Currency `json:"currency"`
	Photo    string   `json:"photo"`
}

type UpdateUserArgs struct {
	Fullname string   `json:"fullname"`
	Nickname string   `json:"nickname"`
	Currency Currency `json:"currency"`
	Photo    string   `json:"photo"`
}

type CreateBirthdayArgs struct {
	When int64 `json:"when"`
}

type CreateBirthdayAndGoalArgs struct {
	When         int64    `json:"when"`
	Description  string   `json:"description"`
	TargetAmount *big.Int `json:"target_amount"`
}

type CreateTimelineArgs struct {
	BirthdayID uint64 `json:"birthday_id"`
}

type GoalArgs struct {
	BirthdayID   uint64   `json:"birthday_id"`
	Description  string   `json:"description"`
	TargetAmount *big.Int `json:"target_amount"`
}

type SendMessageArgs struct {
	Recipient chain.Address `json:"recipient"`
	Message   string        `json:"message"`
}

type SendEtherGiftArgs struct {
	Recipient chain.Address `json:"recipient"`
}

type SendTokenGiftArgs struct {
	Recipient chain.Address `json:"recipient"`
	Amount    *big.Int      `json:"amount"`
}

type SubscribeTokenArgs struct {
	Amount *big.Int `json:"amount"`
}

type InitArgs struct {
	Owner      chain.Address `json:"owner"`
	FeeToken   chain.Address `json:"fee_token"`
	FeePercent uint8         `json:"fee_percent"`
}

type TransferOwnershipArgs struct {
	NewOwner chain.Address `json:"new_owner"`
}

// PlatformBalances is the return of the owner balance check operations.
type PlatformBalances struct {
	Ether *big.Int `json:"ether"`
	Token *big.Int `json:"token"`
}

// ---------- HTTP request bodies ----------
// Amounts travel as decimal wei strings so the gateway never loses precision
// to JSON number parsing.

type SessionRequest struct {
	Address string `json:"address" binding:"required"`
}

type SessionResponse struct {
	Address string `json:"address"`
	Token   string `json:"token"`
}

type CreateUserRequest struct {
	Fullname string   `json:"fullname" binding:"required"`
	Nickname string   `json:"nickname" binding:"required"`
	Gender   string   `json:"gender"`
	Currency Currency `json:"currency"`
	Photo    string   `json:"photo"`
}

type UpdateUserRequest struct {
	Fullname string   `json:"fullname" binding:"required"`
	Nickname string   `json:"nickname" binding:"required"`
	Currency Currency `json:"currency"`
	Photo    string   `json:"photo"`
}

type CreateBirthdayRequest struct {
	When         int64  `json:"when" binding:"required"`
	Description  string `json:"description"`
	TargetAmount string `json:"target_amount"`
}

type GoalRequest struct {
	Description  string `json:"description" binding:"required"`
	TargetAmount string `json:"target_amount" binding:"required"`
}

type SendMessageRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type SendGiftRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

type SubscribeRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type ApproveRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type RegisterDeviceRequest struct {
	FCMToken   string `json:"fcm_token" binding:"required"`
	DeviceType string `json:"device_type"`
}

type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner" binding:"required"`
}

// UploadResponse is returned by the photo upload endpoint.
type UploadResponse struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	MimeType string `json:"mime_type"`
}

// ErrorResponse is the generic error envelope. Error carries the revert
// reason verbatim when a call fails inside the router.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
