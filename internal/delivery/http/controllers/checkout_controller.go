package controllers

import (
	"log/slog"
	"net/http"

	h "agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/domain"
)

// CurrencyResponse is the response body for GET /checkout/currency.
type CurrencyResponse struct {
	Currency   string            `json:"currency"`
	Currencies []domain.Currency `json:"currencies"`
}

// QuoteRequest is the request body for POST /checkout/quote.
type QuoteRequest struct {
	PassID   string `json:"passId"`
	Currency string `json:"currency"`
}

// CheckoutRequest is the request body for POST /registrations.
type CheckoutRequest domain.CheckoutRequest

// Validate implements Validator.
func (c CheckoutRequest) Validate() []string {
	errs := h.Required(nil, "passId", c.PassID)
	errs = h.Required(errs, "fullName", c.FullName)
	errs = validEmail(errs, "email", c.Email)
	return errs
}

type CheckoutController struct {
	Logger  *slog.Logger
	Service domain.CheckoutService
}

func NewCheckoutController(logger *slog.Logger, svc domain.CheckoutService) *CheckoutController {
	return &CheckoutController{Logger: logger, Service: svc}
}

// DetectCurrency godoc
// @Summary Detect the visitor's currency
// @Description Looks up the caller's country and maps it to a supported currency, falling back to the default.
// @Tags checkout
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains currency and the currency table"
// @Router /checkout/currency [get]
func (c *CheckoutController) DetectCurrency(w http.ResponseWriter, r *http.Request) {
	currencies := make([]domain.Currency, 0, len(domain.CurrencyCodes))
	for _, code := range domain.CurrencyCodes {
		currencies = append(currencies, domain.Currencies[code])
	}
	h.WriteJSONSuccess(w, http.StatusOK, CurrencyResponse{
		Currency:   c.Service.DetectCurrency(r.Context()),
		Currencies: currencies,
	})
}

// Quote godoc
// @Summary Price a pass
// @Description Unknown passes fall back to the regular pass; unpriced currencies fall back to USD.
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body QuoteRequest true "Pass and currency"
// @Success 200 {object} helpers.APIResponse "data contains the quote"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /checkout/quote [post]
func (c *CheckoutController) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	q, err := c.Service.Quote(r.Context(), req.PassID, req.Currency)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, q)
}

// Register godoc
// @Summary Buy a pass
// @Description Charges the pass total and stores a pending registration.
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body CheckoutRequest true "Registration form"
// @Success 201 {object} helpers.APIResponse "data contains registration and quote"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 402 {object} helpers.APIResponse "error.code: payment_failed"
// @Router /registrations [post]
func (c *CheckoutController) Register(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Checkout(r.Context(), domain.CheckoutRequest(req))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, res)
}
