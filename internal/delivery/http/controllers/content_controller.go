package controllers

import (
	"log/slog"
	"net/http"

	h "agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/domain"
)

// SpeakerRequest is the request body for POST /admin/speakers.
type SpeakerRequest domain.SpeakerInput

// Validate implements Validator.
func (s SpeakerRequest) Validate() []string {
	errs := h.Required(nil, "name", s.Name)
	if !s.Type.Valid() {
		errs = append(errs, "type must be keynote, session or panelist")
	}
	return errs
}

// CommitteeMemberRequest is the request body for POST /admin/committee-members.
type CommitteeMemberRequest domain.CommitteeMemberInput

// Validate implements Validator.
func (c CommitteeMemberRequest) Validate() []string {
	errs := h.Required(nil, "name", c.Name)
	if !c.Category.Valid() {
		errs = append(errs, "category must be advisory or organizing")
	}
	if c.Order < 0 {
		errs = append(errs, "order must not be negative")
	}
	return errs
}

// SessionRequest is the request body for POST /admin/sessions.
type SessionRequest domain.SessionInput

// Validate implements Validator.
func (s SessionRequest) Validate() []string {
	errs := h.Required(nil, "title", s.Title)
	if !s.Day.Valid() {
		errs = append(errs, "day must be day1 or day2")
	}
	if !s.Type.Valid() {
		errs = append(errs, "type is invalid")
	}
	return errs
}

// PassPricesRequest is the request body for PUT /admin/pass-tiers/{id}/prices.
type PassPricesRequest struct {
	Prices map[string]int `json:"prices"`
}

// Validate implements Validator.
func (p PassPricesRequest) Validate() []string {
	if len(p.Prices) == 0 {
		return []string{"prices are required"}
	}
	return nil
}

type ContentController struct {
	Logger  *slog.Logger
	Service domain.ContentService
}

func NewContentController(logger *slog.Logger, svc domain.ContentService) *ContentController {
	return &ContentController{Logger: logger, Service: svc}
}

// ListPassTiers godoc
// @Summary List pass tiers
// @Description Returns every purchasable pass with its price per currency.
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains []PassTier"
// @Router /pass-tiers [get]
func (c *ContentController) ListPassTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := c.Service.ListPassTiers(r.Context())
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, tiers)
}

// ListSpeakers godoc
// @Summary List speakers
// @Description Returns the speaker lineup, optionally filtered by type.
// @Tags content
// @Produce json
// @Param type query string false "keynote, session or panelist"
// @Success 200 {object} helpers.APIResponse "data contains []Speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /speakers [get]
func (c *ContentController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.ListSpeakers(r.Context(), domain.SpeakerType(r.URL.Query().Get("type")))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, speakers)
}

// GetSpeaker godoc
// @Summary Get a speaker
// @Tags content
// @Produce json
// @Param id path string true "Speaker ID"
// @Success 200 {object} helpers.APIResponse "data contains the speaker"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /speakers/{id} [get]
func (c *ContentController) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	sp, err := c.Service.GetSpeaker(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sp)
}

// ListSessions godoc
// @Summary List agenda sessions
// @Description Returns sessions, optionally filtered by day and track.
// @Tags content
// @Produce json
// @Param day query string false "day1 or day2"
// @Param track query string false "Track name"
// @Success 200 {object} helpers.APIResponse "data contains []Session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /sessions [get]
func (c *ContentController) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sessions, err := c.Service.ListSessions(r.Context(), domain.SessionFilter{
		Day:   domain.SessionDay(q.Get("day")),
		Track: q.Get("track"),
	})
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListCommitteeMembers godoc
// @Summary List committee members
// @Description Returns committee members ordered for display, optionally filtered by category.
// @Tags content
// @Produce json
// @Param category query string false "advisory or organizing"
// @Success 200 {object} helpers.APIResponse "data contains []CommitteeMember"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /committee-members [get]
func (c *ContentController) ListCommitteeMembers(w http.ResponseWriter, r *http.Request) {
	members, err := c.Service.ListCommitteeMembers(r.Context(), domain.CommitteeCategory(r.URL.Query().Get("category")))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, members)
}

// CreateSpeaker godoc
// @Summary Create a speaker
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SpeakerRequest true "Speaker"
// @Success 201 {object} helpers.APIResponse "data contains the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/speakers [post]
func (c *ContentController) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req SpeakerRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sp, err := c.Service.CreateSpeaker(r.Context(), domain.SpeakerInput(req))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, sp)
}

// UpdateSpeaker godoc
// @Summary Update a speaker
// @Description Omitted fields are unchanged.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Speaker ID"
// @Param body body domain.SpeakerPatch true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/speakers/{id} [patch]
func (c *ContentController) UpdateSpeaker(w http.ResponseWriter, r *http.Request) {
	var patch domain.SpeakerPatch
	if !h.DecodeAndValidate(w, r, &patch) {
		return
	}
	sp, err := c.Service.UpdateSpeaker(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sp)
}

// DeleteSpeaker godoc
// @Summary Delete a speaker
// @Description Sessions that referenced the speaker are unassigned.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Speaker ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/speakers/{id} [delete]
func (c *ContentController) DeleteSpeaker(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteSpeaker(r.Context(), r.PathValue("id")); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateCommitteeMember godoc
// @Summary Create a committee member
// @Description A zero order places the member last.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CommitteeMemberRequest true "Committee member"
// @Success 201 {object} helpers.APIResponse "data contains the created member"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/committee-members [post]
func (c *ContentController) CreateCommitteeMember(w http.ResponseWriter, r *http.Request) {
	var req CommitteeMemberRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	m, err := c.Service.CreateCommitteeMember(r.Context(), domain.CommitteeMemberInput(req))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, m)
}

// UpdateCommitteeMember godoc
// @Summary Update a committee member
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param body body domain.CommitteeMemberPatch true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated member"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/committee-members/{id} [patch]
func (c *ContentController) UpdateCommitteeMember(w http.ResponseWriter, r *http.Request) {
	var patch domain.CommitteeMemberPatch
	if !h.DecodeAndValidate(w, r, &patch) {
		return
	}
	m, err := c.Service.UpdateCommitteeMember(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, m)
}

// DeleteCommitteeMember godoc
// @Summary Delete a committee member
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/committee-members/{id} [delete]
func (c *ContentController) DeleteCommitteeMember(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteCommitteeMember(r.Context(), r.PathValue("id")); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateSession godoc
// @Summary Create an agenda session
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SessionRequest true "Session"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/sessions [post]
func (c *ContentController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Service.CreateSession(r.Context(), domain.SessionInput(req))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, sess)
}

// UpdateSession godoc
// @Summary Update an agenda session
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param body body domain.SessionPatch true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated session"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/sessions/{id} [patch]
func (c *ContentController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var patch domain.SessionPatch
	if !h.DecodeAndValidate(w, r, &patch) {
		return
	}
	sess, err := c.Service.UpdateSession(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sess)
}

// DeleteSession godoc
// @Summary Delete an agenda session
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/sessions/{id} [delete]
func (c *ContentController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteSession(r.Context(), r.PathValue("id")); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdatePassPrices godoc
// @Summary Replace a pass tier's prices
// @Description The submitted map replaces every price of the tier.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pass tier ID"
// @Param body body PassPricesRequest true "Prices by currency code"
// @Success 200 {object} helpers.APIResponse "data contains the updated tier"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/pass-tiers/{id}/prices [put]
func (c *ContentController) UpdatePassPrices(w http.ResponseWriter, r *http.Request) {
	var req PassPricesRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	tier, err := c.Service.UpdatePassPrices(r.Context(), r.PathValue("id"), req.Prices)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, tier)
}
