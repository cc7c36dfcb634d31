package chain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// Address identifies an account on the platform ledger: 20 bytes, hex encoded
// with a 0x prefix, lower case.
type Address string

// ZeroAddress is the null sentinel used by diamondCut Remove entries.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// NewAddress generates a fresh random account address. Used when "deploying"
// facets and the token contract, which need distinct addresses for routing.
func NewAddress() Address {
	var b [20]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("chain: cannot read random bytes: %v", err))
	}
	return Address("0x" + hex.EncodeToString(b[:]))
}

// ParseAddress validates and normalizes a hex account address.
func ParseAddress(s string) (Address, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "0x") || len(s) != 42 {
		return "", fmt.Errorf("chain: invalid address %q", s)
	}
	if _, err := hex.DecodeString(s[2:]); err != nil {
		return "", fmt.Errorf("chain: invalid address %q: %w", s, err)
	}
	return Address(s), nil
}

// Selector is a 4-byte operation identifier, hex encoded with a 0x prefix.
// It is derived from the canonical function signature the same way the wire
// protocol derives it: the first four bytes of the Keccak-256 digest.
type Selector string

// Sel computes the selector for a canonical signature such as
// "createUser(string,string,string,uint8,string)".
func Sel(signature string) Selector {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	return Selector("0x" + hex.EncodeToString(h.Sum(nil)[:4]))
}

// Event is an append-only log entry emitted by a committed call.
type Event struct {
	Name      string `json:"name"`
	Payload   any    `json:"payload"`
	EmittedAt int64  `json:"emitted_at"`
}

// Receipt is the result of a committed call: the handler's return value plus
// every event the call emitted, in emission order.
type Receipt struct {
	TxID   uuid.UUID `json:"tx_id"`
	Ret    any       `json:"-"`
	Events []Event   `json:"events"`
}

// Zero is the shared zero amount. Callers must not mutate it.
var Zero = big.NewInt(0)

// CopyAmount returns a defensive copy of a wei amount, mapping nil to zero.
func CopyAmount(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// IsPositive reports whether v is a non-nil amount greater than zero.
func IsPositive(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}
