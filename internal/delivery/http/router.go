package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"agtechsummit/internal/delivery/http/controllers"
)

// Controllers groups every HTTP controller the router serves.
type Controllers struct {
	Content     *controllers.ContentController
	Submissions *controllers.SubmissionController
	Checkout    *controllers.CheckoutController
	Review      *controllers.ReviewController
	Auth        *controllers.AuthController
	Uploads     *controllers.UploadController
}

// NewRouter initializes the HTTP router with all application routes.
// requireAdmin guards the /admin routes; metrics, when non-nil, is served at /metrics.
func NewRouter(c Controllers, requireAdmin func(http.HandlerFunc) http.HandlerFunc, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Public content
	mux.HandleFunc("GET /pass-tiers", c.Content.ListPassTiers)
	mux.HandleFunc("GET /speakers", c.Content.ListSpeakers)
	mux.HandleFunc("GET /speakers/{id}", c.Content.GetSpeaker)
	mux.HandleFunc("GET /sessions", c.Content.ListSessions)
	mux.HandleFunc("GET /committee-members", c.Content.ListCommitteeMembers)

	// Public forms
	mux.HandleFunc("POST /paper-submissions", c.Submissions.SubmitPaper)
	mux.HandleFunc("POST /enquiries", c.Submissions.SubmitEnquiry)
	mux.HandleFunc("POST /leadership-applications", c.Submissions.ApplyForLeadership)
	mux.HandleFunc("POST /speaker-applications", c.Submissions.ApplyAsSpeaker)
	mux.HandleFunc("POST /exit-feedback", c.Submissions.SubmitExitFeedback)

	// Checkout
	mux.HandleFunc("GET /checkout/currency", c.Checkout.DetectCurrency)
	mux.HandleFunc("POST /checkout/quote", c.Checkout.Quote)
	mux.HandleFunc("POST /registrations", c.Checkout.Register)

	// Auth
	mux.HandleFunc("POST /admin/login", c.Auth.Login)

	// Admin
	admin := func(pattern string, fn http.HandlerFunc) { mux.HandleFunc(pattern, requireAdmin(fn)) }
	admin("GET /admin/stats", c.Review.Stats)

	admin("GET /admin/paper-submissions", c.Review.ListPaperSubmissions)
	admin("PATCH /admin/paper-submissions/{id}/status", c.Review.SetPaperSubmissionStatus)
	admin("DELETE /admin/paper-submissions/{id}", c.Review.DeletePaperSubmission)

	admin("GET /admin/enquiries", c.Review.ListEnquiries)
	admin("DELETE /admin/enquiries/{id}", c.Review.DeleteEnquiry)

	admin("GET /admin/leadership-applications", c.Review.ListLeadershipApplications)
	admin("PATCH /admin/leadership-applications/{id}", c.Review.UpdateLeadershipApplication)
	admin("PATCH /admin/leadership-applications/{id}/status", c.Review.SetLeadershipApplicationStatus)
	admin("POST /admin/leadership-applications/{id}/promote", c.Review.PromoteLeadershipApplication)
	admin("DELETE /admin/leadership-applications/{id}", c.Review.DeleteLeadershipApplication)

	admin("GET /admin/speaker-applications", c.Review.ListSpeakerApplications)

	admin("POST /admin/speakers", c.Content.CreateSpeaker)
	admin("PATCH /admin/speakers/{id}", c.Content.UpdateSpeaker)
	admin("DELETE /admin/speakers/{id}", c.Content.DeleteSpeaker)

	admin("POST /admin/committee-members", c.Content.CreateCommitteeMember)
	admin("PATCH /admin/committee-members/{id}", c.Content.UpdateCommitteeMember)
	admin("DELETE /admin/committee-members/{id}", c.Content.DeleteCommitteeMember)

	admin("POST /admin/sessions", c.Content.CreateSession)
	admin("PATCH /admin/sessions/{id}", c.Content.UpdateSession)
	admin("DELETE /admin/sessions/{id}", c.Content.DeleteSession)

	admin("GET /admin/registrations", c.Review.ListRegistrations)
	admin("PATCH /admin/registrations/{id}/status", c.Review.SetRegistrationStatus)

	admin("GET /admin/exit-feedback", c.Review.ListExitFeedback)
	admin("DELETE /admin/exit-feedback/{id}", c.Review.DeleteExitFeedback)

	admin("PUT /admin/pass-tiers/{id}/prices", c.Content.UpdatePassPrices)
	admin("POST /admin/uploads/image", c.Uploads.UploadImage)

	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
