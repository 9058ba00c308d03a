package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"agtechsummit/internal/domain"
)

const DefaultDelay = 1500 * time.Millisecond

// Simulated stands in for a payment gateway: it waits, then approves every charge.
// References are "INV-" plus an id and a truncated HMAC so they can be checked with Verify.
type Simulated struct {
	delay  time.Duration
	secret []byte
	now    func() time.Time
}

var _ domain.PaymentProcessor = (*Simulated)(nil)

func NewSimulated(delay time.Duration, secret string) *Simulated {
	if delay < 0 {
		delay = 0
	}
	return &Simulated{delay: delay, secret: []byte(secret), now: time.Now}
}

func (p *Simulated) Charge(ctx context.Context, intent domain.PaymentIntent) (*domain.PaymentReceipt, error) {
	if intent.Amount < 0 || intent.Currency == "" {
		return nil, fmt.Errorf("%w: invalid amount or currency", domain.ErrPaymentFailed)
	}
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, ctx.Err())
		case <-timer.C:
		}
	}
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	return &domain.PaymentReceipt{
		Reference: "INV-" + id + "-" + p.sign(id, intent),
		ChargedAt: p.now().UTC(),
	}, nil
}

// Verify reports whether ref was issued by this processor for intent.
func (p *Simulated) Verify(ref string, intent domain.PaymentIntent) bool {
	parts := strings.Split(ref, "-")
	if len(parts) != 3 || parts[0] != "INV" {
		return false
	}
	return hmac.Equal([]byte(parts[2]), []byte(p.sign(parts[1], intent)))
}

func (p *Simulated) sign(id string, intent domain.PaymentIntent) string {
	mac := hmac.New(sha256.New, p.secret)
	fmt.Fprintf(mac, "%s|%s|%s|%d|%s", id, intent.PassID, intent.Email, intent.Amount, intent.Currency)
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil))[:16])
}
