package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"agtechsummit/internal/domain"
	"agtechsummit/internal/repository/memory"
	"agtechsummit/internal/store"
)

const testTimeout = 5 * time.Second

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRepos(t *testing.T, opts ...store.Option) domain.Repositories {
	t.Helper()
	opts = append([]store.Option{store.WithLogger(discardLogger())}, opts...)
	s := store.New(context.Background(), memory.New(), opts...)
	return s.Repositories()
}

type fakeEmailService struct {
	mu            sync.Mutex
	err           error
	confirmations []*domain.RegistrationConfirmationEmailData
	receipts      []*domain.SubmissionReceivedEmailData
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmations = append(f.confirmations, data)
	return f.err
}

func (f *fakeEmailService) SendSubmissionReceived(ctx context.Context, data *domain.SubmissionReceivedEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipts = append(f.receipts, data)
	return f.err
}

type fakeGeo struct {
	country string
	err     error
}

func (f fakeGeo) LookupCountry(ctx context.Context) (string, error) {
	return f.country, f.err
}

type fakePayments struct {
	err     error
	intents []domain.PaymentIntent
}

func (f *fakePayments) Charge(ctx context.Context, intent domain.PaymentIntent) (*domain.PaymentReceipt, error) {
	f.intents = append(f.intents, intent)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PaymentReceipt{Reference: "INV-TEST", ChargedAt: time.Now()}, nil
}

// tickingClock advances one minute per call.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Minute)
		return now
	}
}

var errBoom = errors.New("boom")
