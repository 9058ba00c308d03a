package controllers

import (
	"log/slog"
	"net/http"

	h "agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/domain"
)

// PaperStatusRequest is the request body for PATCH /admin/paper-submissions/{id}/status.
type PaperStatusRequest struct {
	Status domain.PaperSubmissionStatus `json:"status"`
}

// Validate implements Validator.
func (p PaperStatusRequest) Validate() []string {
	if !p.Status.Valid() {
		return []string{"status must be pending, under_review, accepted or rejected"}
	}
	return nil
}

// ApplicationStatusRequest is the request body for PATCH /admin/leadership-applications/{id}/status.
type ApplicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

// Validate implements Validator.
func (a ApplicationStatusRequest) Validate() []string {
	if !a.Status.Valid() {
		return []string{"status must be new, reviewing, approved or rejected"}
	}
	return nil
}

// RegistrationStatusRequest is the request body for PATCH /admin/registrations/{id}/status.
type RegistrationStatusRequest struct {
	Status domain.RegistrationStatus `json:"status"`
}

// Validate implements Validator.
func (s RegistrationStatusRequest) Validate() []string {
	if !s.Status.Valid() {
		return []string{"status must be pending or completed"}
	}
	return nil
}

// RegistrationsPage is the response body for GET /admin/registrations.
type RegistrationsPage struct {
	Items      []*domain.Registration `json:"items"`
	Pagination h.PaginationMeta       `json:"pagination"`
}

type ReviewController struct {
	Logger  *slog.Logger
	Service domain.ReviewService
}

func NewReviewController(logger *slog.Logger, svc domain.ReviewService) *ReviewController {
	return &ReviewController{Logger: logger, Service: svc}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Counts per collection plus revenue. totalRevenue adds amounts across currencies without conversion.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains DashboardStats"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/stats [get]
func (c *ReviewController) Stats(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, c.Service.Stats(r.Context()))
}

// ListPaperSubmissions godoc
// @Summary List paper submissions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains []PaperSubmission"
// @Router /admin/paper-submissions [get]
func (c *ReviewController) ListPaperSubmissions(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, c.Service.ListPaperSubmissions(r.Context()))
}

// SetPaperSubmissionStatus godoc
// @Summary Change a paper submission's status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param body body PaperStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse "data contains the updated submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/paper-submissions/{id}/status [patch]
func (c *ReviewController) SetPaperSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	var req PaperStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.SetPaperSubmissionStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, p)
}

// DeletePaperSubmission godoc
// @Summary Delete a paper submission
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/paper-submissions/{id} [delete]
func (c *ReviewController) DeletePaperSubmission(w http.ResponseWriter, r *http.Request) {
	c.noContent(w, r, c.Service.DeletePaperSubmission(r.Context(), r.PathValue("id")))
}

// ListEnquiries godoc
// @Summary List enquiries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains []Enquiry"
// @Router /admin/enquiries [get]
func (c *ReviewController) ListEnquiries(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, c.Service.ListEnquiries(r.Context()))
}

// DeleteEnquiry godoc
// @Summary Delete an enquiry
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/enquiries/{id} [delete]
func (c *ReviewController) DeleteEnquiry(w http.ResponseWriter, r *http.Request) {
	c.noContent(w, r, c.Service.DeleteEnquiry(r.Context(), r.PathValue("id")))
}

// ListLeadershipApplications godoc
// @Summary List leadership applications
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param track query string false "advisor, organizing_committee or speaker"
// @Success 200 {object} helpers.APIResponse "data contains []LeadershipApplication"
// @Router /admin/leadership-applications [get]
func (c *ReviewController) ListLeadershipApplications(w http.ResponseWriter, r *http.Request) {
	track := domain.ApplicationTrack(r.URL.Query().Get("track"))
	if track != "" && !track.Valid() {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid track")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, c.Service.ListLeadershipApplications(r.Context(), track))
}

// UpdateLeadershipApplication godoc
// @Summary Edit a leadership application
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param body body domain.LeadershipApplicationPatch true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated application"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/leadership-applications/{id} [patch]
func (c *ReviewController) UpdateLeadershipApplication(w http.ResponseWriter, r *http.Request) {
	var patch domain.LeadershipApplicationPatch
	if !h.DecodeAndValidate(w, r, &patch) {
		return
	}
	a, err := c.Service.UpdateLeadershipApplication(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, a)
}

// SetLeadershipApplicationStatus godoc
// @Summary Change a leadership application's status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param body body ApplicationStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse "data contains the updated application"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/leadership-applications/{id}/status [patch]
func (c *ReviewController) SetLeadershipApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req ApplicationStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	a, err := c.Service.SetLeadershipApplicationStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, a)
}

// PromoteLeadershipApplication godoc
// @Summary Promote an application
// @Description Speaker-track applications become speakers; advisor and organizing applications become committee members. The application is marked approved.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 201 {object} helpers.APIResponse "data contains the created speaker or committee member"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already approved)"
// @Router /admin/leadership-applications/{id}/promote [post]
func (c *ReviewController) PromoteLeadershipApplication(w http.ResponseWriter, r *http.Request) {
	p, err := c.Service.Promote(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, p)
}

// DeleteLeadershipApplication godoc
// @Summary Delete a leadership application
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/leadership-applications/{id} [delete]
func (c *ReviewController) DeleteLeadershipApplication(w http.ResponseWriter, r *http.Request) {
	c.noContent(w, r, c.Service.DeleteLeadershipApplication(r.Context(), r.PathValue("id")))
}

// ListSpeakerApplications godoc
// @Summary List speaker applications (legacy view)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains []SpeakerApplication"
// @Router /admin/speaker-applications [get]
func (c *ReviewController) ListSpeakerApplications(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, c.Service.ListSpeakerApplications(r.Context()))
}

// ListRegistrations godoc
// @Summary List registrations
// @Description Newest first, paginated.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /admin/registrations [get]
func (c *ReviewController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	items, total := c.Service.ListRegistrations(r.Context(), params)
	h.WriteJSONSuccess(w, http.StatusOK, RegistrationsPage{
		Items:      items,
		Pagination: h.NewPaginationMeta(params, total),
	})
}

// SetRegistrationStatus godoc
// @Summary Change a registration's payment status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param body body RegistrationStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse "data contains the updated registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/registrations/{id}/status [patch]
func (c *ReviewController) SetRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	var req RegistrationStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.SetRegistrationStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, reg)
}

// ListExitFeedback godoc
// @Summary List exit feedback
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains []ExitFeedback"
// @Router /admin/exit-feedback [get]
func (c *ReviewController) ListExitFeedback(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, c.Service.ListExitFeedback(r.Context()))
}

// DeleteExitFeedback godoc
// @Summary Delete an exit feedback entry
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Feedback ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/exit-feedback/{id} [delete]
func (c *ReviewController) DeleteExitFeedback(w http.ResponseWriter, r *http.Request) {
	c.noContent(w, r, c.Service.DeleteExitFeedback(r.Context(), r.PathValue("id")))
}

func (c *ReviewController) noContent(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
