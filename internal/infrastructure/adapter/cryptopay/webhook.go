package cryptopay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/usecase"
)

// SignatureHeader carries the hex HMAC of the webhook body
const SignatureHeader = "crypto-pay-api-signature"

// Update is a webhook delivery
type Update struct {
	UpdateID    int64     `json:"update_id"`
	UpdateType  string    `json:"update_type"`
	RequestDate time.Time `json:"request_date"`
	Payload     *Invoice  `json:"payload"`
}

// ParseUpdate decodes and validates a webhook body
func ParseUpdate(body []byte) (*Update, error) {
	var update Update
	if err := json.Unmarshal(body, &update); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrMalformedEvent, err.Error())
	}
	if strings.TrimSpace(update.UpdateType) == "" {
		return nil, fmt.Errorf("%w: missing update_type", errs.ErrMalformedEvent)
	}
	if update.Payload == nil {
		return nil, fmt.Errorf("%w: missing payload", errs.ErrMalformedEvent)
	}
	return &update, nil
}

// Event converts the update into the engine's webhook event
func (u *Update) Event() (usecase.WebhookEvent, error) {
	invoice, err := u.Payload.ToEntity()
	if err != nil {
		return usecase.WebhookEvent{}, err
	}
	return usecase.WebhookEvent{
		UpdateID:   u.UpdateID,
		UpdateType: u.UpdateType,
		Invoice:    invoice,
	}, nil
}

// Verifier checks webhook signatures. The HMAC key is the SHA-256 of the API token.
type Verifier struct {
	key []byte
}

// NewVerifier creates a verifier for the given API token
func NewVerifier(token string) *Verifier {
	sum := sha256.Sum256([]byte(token))
	return &Verifier{key: sum[:]}
}

// Sign returns the hex signature the processor would send for body
func (v *Verifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.key)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify validates a signature using HMAC-SHA256
func (v *Verifier) Verify(body []byte, signature string) bool {
	sigBytes, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(sigBytes) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, v.key)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), sigBytes)
}
