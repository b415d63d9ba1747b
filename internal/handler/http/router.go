package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/kerjalink/jobboard-backend-go/internal/handler/http/middleware"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/jwt"
)

// NewRouter builds the full route tree. Every protected route lives inside a
// role group, so an endpoint that is not explicitly published under a role is
// unreachable rather than accidentally open.
func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	interviewHandler InterviewHandler,
	misHandler MISHandler,
	jobHandler JobHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kerjalink"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Route("/register", func(r chi.Router) {
				r.Post("/candidate", authHandler.RegisterCandidate)
				r.Post("/employer", authHandler.RegisterEmployer)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Post("/candidate", authHandler.LoginCandidate)
				r.Post("/employer", authHandler.LoginEmployer)
				r.Post("/mis", authHandler.LoginMIS)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Post("/refresh-token", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Get("/verify-email", authHandler.VerifyEmail)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/candidate", func(r chi.Router) {
				r.Use(middleware.RequireCandidate)

				r.Get("/interview-notifications", interviewHandler.ListForCandidate)
				r.Post("/interview-notification/{notificationID}/confirm", interviewHandler.Confirm)

				r.Get("/applications", jobHandler.ListMyApplications)
				r.Post("/jobs/{jobPostID}/apply", jobHandler.Apply)
			})

			r.Route("/employer", func(r chi.Router) {
				r.Use(middleware.RequireEmployer)

				r.Get("/interview-notifications", interviewHandler.ListForEmployer)
				r.Post("/candidates/send-notification", interviewHandler.Send)

				r.Post("/jobs", jobHandler.CreateJobPost)
			})

			r.Route("/mis", func(r chi.Router) {
				r.Use(middleware.RequireMIS)

				r.Route("/candidates", func(r chi.Router) {
					r.Get("/", misHandler.ListCandidates)
					r.Patch("/{candidateID}/approval", misHandler.ReviewCandidate)
				})

				r.Route("/companies", func(r chi.Router) {
					r.Get("/", misHandler.ListCompanies)
					r.Patch("/{companyID}/approval", misHandler.ReviewCompany)
				})
			})
		})
	})
	return r
}
