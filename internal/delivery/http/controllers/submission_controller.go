package controllers

import (
	"log/slog"
	"net/http"

	h "agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/domain"
)

// PaperSubmissionRequest is the request body for POST /paper-submissions.
type PaperSubmissionRequest domain.PaperSubmissionInput

// Validate implements Validator.
func (p PaperSubmissionRequest) Validate() []string {
	errs := h.Required(nil, "authorName", p.AuthorName)
	errs = validEmail(errs, "email", p.Email)
	errs = h.Required(errs, "paperTitle", p.PaperTitle)
	return errs
}

// EnquiryRequest is the request body for POST /enquiries.
type EnquiryRequest domain.EnquiryInput

// Validate implements Validator.
func (e EnquiryRequest) Validate() []string {
	errs := h.Required(nil, "fullName", e.FullName)
	return validEmail(errs, "email", e.Email)
}

// LeadershipApplicationRequest is the request body for POST /leadership-applications.
type LeadershipApplicationRequest domain.LeadershipApplicationInput

// Validate implements Validator.
func (l LeadershipApplicationRequest) Validate() []string {
	var errs []string
	if !l.Track.Valid() {
		errs = append(errs, "track must be advisor, organizing_committee or speaker")
	}
	errs = h.Required(errs, "fullName", l.FullName)
	errs = validEmail(errs, "email", l.Email)
	if l.SpeakerType != "" && !l.SpeakerType.Valid() {
		errs = append(errs, "speakerType must be keynote, session or panelist")
	}
	return errs
}

// SpeakerApplicationRequest is the request body for POST /speaker-applications.
type SpeakerApplicationRequest domain.SpeakerApplicationInput

// Validate implements Validator.
func (s SpeakerApplicationRequest) Validate() []string {
	errs := h.Required(nil, "fullName", s.FullName)
	errs = validEmail(errs, "email", s.Email)
	if s.Type != "" && !s.Type.Valid() {
		errs = append(errs, "type must be keynote, session or panelist")
	}
	return errs
}

// ExitFeedbackRequest is the request body for POST /exit-feedback.
type ExitFeedbackRequest domain.ExitFeedbackInput

// Validate implements Validator.
func (e ExitFeedbackRequest) Validate() []string {
	errs := h.Required(nil, "reason", e.Reason)
	if e.Step < 0 {
		errs = append(errs, "step must not be negative")
	}
	return errs
}

type SubmissionController struct {
	Logger  *slog.Logger
	Service domain.SubmissionService
}

func NewSubmissionController(logger *slog.Logger, svc domain.SubmissionService) *SubmissionController {
	return &SubmissionController{Logger: logger, Service: svc}
}

// SubmitPaper godoc
// @Summary Submit a paper
// @Description Stores a paper submission with status pending and emails an acknowledgement.
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body PaperSubmissionRequest true "Paper submission"
// @Success 201 {object} helpers.APIResponse "data contains the stored submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /paper-submissions [post]
func (c *SubmissionController) SubmitPaper(w http.ResponseWriter, r *http.Request) {
	var req PaperSubmissionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.SubmitPaper(r.Context(), domain.PaperSubmissionInput(req))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, p)
}

// SubmitEnquiry godoc
// @Summary Send an enquiry
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body EnquiryRequest true "Enquiry"
// @Success 201 {object} helpers.APIResponse "data contains the stored enquiry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /enquiries [post]
func (c *SubmissionController) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	var req EnquiryRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	e, err := c.Service.SubmitEnquiry(r.Context(), domain.EnquiryInput(req))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, e)
}

// ApplyForLeadership godoc
// @Summary Apply as advisor, organizer or speaker
// @Description Social handles are derived from the profile URLs when not supplied.
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body LeadershipApplicationRequest true "Application"
// @Success 201 {object} helpers.APIResponse "data contains the stored application"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /leadership-applications [post]
func (c *SubmissionController) ApplyForLeadership(w http.ResponseWriter, r *http.Request) {
	var req LeadershipApplicationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	a, err := c.Service.ApplyForLeadership(r.Context(), domain.LeadershipApplicationInput(req))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, a)
}

// ApplyAsSpeaker godoc
// @Summary Apply as a speaker (legacy form)
// @Description Stored as a speaker-track leadership application.
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body SpeakerApplicationRequest true "Speaker application"
// @Success 201 {object} helpers.APIResponse "data contains the stored application"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /speaker-applications [post]
func (c *SubmissionController) ApplyAsSpeaker(w http.ResponseWriter, r *http.Request) {
	var req SpeakerApplicationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	a, err := c.Service.ApplyAsSpeaker(r.Context(), domain.SpeakerApplicationInput(req))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, a)
}

// SubmitExitFeedback godoc
// @Summary Record why a visitor left checkout
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body ExitFeedbackRequest true "Exit feedback"
// @Success 201 {object} helpers.APIResponse "data contains the stored feedback"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /exit-feedback [post]
func (c *SubmissionController) SubmitExitFeedback(w http.ResponseWriter, r *http.Request) {
	var req ExitFeedbackRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	f, err := c.Service.SubmitExitFeedback(r.Context(), domain.ExitFeedbackInput(req))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, f)
}
