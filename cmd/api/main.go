package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kerjalink/jobboard-backend-go/internal/config"
	appHTTP "github.com/kerjalink/jobboard-backend-go/internal/handler/http"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/cron"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/database"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/email"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/jwt"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/oauth"
	"github.com/kerjalink/jobboard-backend-go/internal/repository/postgresql"
	authService "github.com/kerjalink/jobboard-backend-go/internal/service/auth"
	interviewService "github.com/kerjalink/jobboard-backend-go/internal/service/interview"
	jobService "github.com/kerjalink/jobboard-backend-go/internal/service/job"
	misService "github.com/kerjalink/jobboard-backend-go/internal/service/mis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employerRepo := postgresql.NewEmployerRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.IsProduction())
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, candidateRepo, companyRepo, employerRepo, jwtRepo, jwtSvc, emailSvc, cfg.App.FrontendURL)
	interviewSvc := interviewService.NewNotificationService(notificationRepo, employerRepo, candidateRepo, emailSvc, cfg.App.FrontendURL)
	misSvc := misService.NewService(candidateRepo, companyRepo)
	jobSvc := jobService.NewJobService(jobRepo, employerRepo, candidateRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	interviewHandler := appHTTP.NewInterviewHandler(interviewSvc)
	misHandler := appHTTP.NewMISHandler(misSvc)
	jobHandler := appHTTP.NewJobHandler(jobSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		interviewHandler,
		misHandler,
		jobHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	scheduler := cron.NewScheduler()
	cron.NewInterviewJobs(notificationRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
