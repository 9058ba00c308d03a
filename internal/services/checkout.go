package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"agtechsummit/internal/domain"
)

const (
	platformFeeRate = 0.05
	fallbackPassID  = "regular"
	fallbackQuote   = "USD"
)

// CheckoutConfig holds the checkout service settings.
type CheckoutConfig struct {
	DefaultCurrency string
	GeoTimeout      time.Duration
	Timeout         time.Duration
}

type checkoutService struct {
	passes        domain.PassTierRepository
	registrations domain.RegistrationRepository
	geo           domain.GeoLocator
	payments      domain.PaymentProcessor
	emailService  domain.EmailService
	logger        *slog.Logger
	cfg           CheckoutConfig
}

// NewCheckoutService creates the pass checkout flow. geo and emailService may be nil.
func NewCheckoutService(
	passes domain.PassTierRepository,
	registrations domain.RegistrationRepository,
	geo domain.GeoLocator,
	payments domain.PaymentProcessor,
	emailService domain.EmailService,
	logger *slog.Logger,
	cfg CheckoutConfig,
) domain.CheckoutService {
	if !domain.IsSupportedCurrency(cfg.DefaultCurrency) {
		cfg.DefaultCurrency = "INR"
	}
	if cfg.GeoTimeout <= 0 {
		cfg.GeoTimeout = 3 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &checkoutService{
		passes:        passes,
		registrations: registrations,
		geo:           geo,
		payments:      payments,
		emailService:  emailService,
		logger:        logger,
		cfg:           cfg,
	}
}

// DetectCurrency maps the caller's country to a currency, falling back to the default on any failure.
func (s *checkoutService) DetectCurrency(ctx context.Context) string {
	if s.geo == nil {
		return s.cfg.DefaultCurrency
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GeoTimeout)
	defer cancel()

	country, err := s.geo.LookupCountry(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "currency detection failed, using default", "err", err, "currency", s.cfg.DefaultCurrency)
		return s.cfg.DefaultCurrency
	}
	return domain.DetectCurrencyByCountry(country)
}

func (s *checkoutService) Quote(ctx context.Context, passID, currency string) (*domain.Quote, error) {
	tier, err := s.pickTier(ctx, passID)
	if err != nil {
		return nil, err
	}
	return quoteFor(tier, strings.ToUpper(strings.TrimSpace(currency))), nil
}

// pickTier resolves passID, then the regular pass, then the first tier.
func (s *checkoutService) pickTier(ctx context.Context, passID string) (*domain.PassTier, error) {
	if passID != "" {
		if t, err := s.passes.GetByID(ctx, passID); err == nil {
			return t, nil
		}
	}
	if t, err := s.passes.GetByID(ctx, fallbackPassID); err == nil {
		return t, nil
	}
	all := s.passes.GetAll(ctx)
	if len(all) == 0 {
		return nil, fmt.Errorf("no pass tiers configured: %w", domain.ErrNotFound)
	}
	return all[0], nil
}

func quoteFor(tier *domain.PassTier, currency string) *domain.Quote {
	price, ok := tier.Prices[currency]
	if !ok {
		currency = fallbackQuote
		price = tier.Prices[currency]
	}
	fee := int(math.Round(float64(price) * platformFeeRate))
	total := price + fee
	return &domain.Quote{
		PassID:         tier.ID,
		PassName:       tier.Name,
		Currency:       currency,
		Price:          price,
		PlatformFee:    fee,
		Total:          total,
		FormattedPrice: domain.FormatPrice(price, currency),
		FormattedTotal: domain.FormatPrice(total, currency),
	}
}

// chargeableQuote prices an exact pass. Unlike Quote it never substitutes another pass, and a
// tier without a price in the currency or in USD is an error rather than a zero charge.
func (s *checkoutService) chargeableQuote(ctx context.Context, passID, currency string) (*domain.Quote, error) {
	passID = strings.TrimSpace(passID)
	if passID == "" {
		return nil, fmt.Errorf("passId is required: %w", domain.ErrInvalidInput)
	}
	tier, err := s.passes.GetByID(ctx, passID)
	if err != nil {
		return nil, fmt.Errorf("pass %q: %w", passID, err)
	}
	_, priced := tier.Prices[currency]
	if _, usd := tier.Prices[fallbackQuote]; !priced && !usd {
		return nil, fmt.Errorf("pass %q has no price in %s or %s: %w", passID, currency, fallbackQuote, domain.ErrInvalidInput)
	}
	return quoteFor(tier, currency), nil
}

func (s *checkoutService) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("name and email are required: %w", domain.ErrInvalidInput)
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.DetectCurrency(ctx)
	}
	quote, err := s.chargeableQuote(ctx, req.PassID, currency)
	if err != nil {
		return nil, err
	}

	receipt, err := s.payments.Charge(ctx, domain.PaymentIntent{
		PassID:   quote.PassID,
		Email:    req.Email,
		Amount:   quote.Total,
		Currency: quote.Currency,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPaymentFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}

	reg, err := s.registrations.Create(ctx, domain.RegistrationInput{
		PassType:            quote.PassName,
		PassID:              quote.PassID,
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		Organization:        req.Organization,
		Country:             req.Country,
		DietaryRequirements: req.DietaryRequirements,
		CouponCode:          req.CouponCode,
		Amount:              quote.Price,
		Currency:            quote.Currency,
		PaymentReference:    receipt.Reference,
	})
	if err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if s.emailService != nil {
		err := s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationConfirmationEmailData{
			Email:          reg.Email,
			FullName:       reg.FullName,
			PassName:       quote.PassName,
			RegistrationID: reg.ID,
			FormattedTotal: quote.FormattedTotal,
			Reference:      receipt.Reference,
		})
		if err != nil {
			s.logger.WarnContext(ctx, "confirmation email failed", "registration_id", reg.ID, "err", err)
		}
	}
	return &domain.CheckoutResult{Registration: reg, Quote: quote}, nil
}
