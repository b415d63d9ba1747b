package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/auth"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/interview"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/jwt"
	"github.com/kerjalink/jobboard-backend-go/internal/repository/postgresql"
	authsvc "github.com/kerjalink/jobboard-backend-go/internal/service/auth"
	interviewsvc "github.com/kerjalink/jobboard-backend-go/internal/service/interview"
	jobsvc "github.com/kerjalink/jobboard-backend-go/internal/service/job"
	missvc "github.com/kerjalink/jobboard-backend-go/internal/service/mis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) *chi.Mux {
	testInit()

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h", false)

	userRepo := postgresql.NewUserRepository(testDB)
	candidateRepo := postgresql.NewCandidateRepository(testDB)
	companyRepo := postgresql.NewCompanyRepository(testDB)
	employerRepo := postgresql.NewEmployerRepository(testDB)
	jwtRepo := postgresql.NewJWTRepository(testDB)
	notificationRepo := postgresql.NewNotificationRepository(testDB)
	jobRepo := postgresql.NewJobRepository(testDB)

	frontendURL := "http://localhost:3000"
	authService := authsvc.NewAuthService(testDB, userRepo, candidateRepo, companyRepo, employerRepo, jwtRepo, jwtService, nil, frontendURL)
	notificationService := interviewsvc.NewNotificationService(notificationRepo, employerRepo, candidateRepo, nil, frontendURL)
	misService := missvc.NewService(candidateRepo, companyRepo)
	jobService := jobsvc.NewJobService(jobRepo, employerRepo, candidateRepo)

	return NewRouter(
		jwtService,
		NewAuthHandler(jwtService, authService, nil, frontendURL),
		NewInterviewHandler(notificationService),
		NewMISHandler(misService),
		NewJobHandler(jobService),
		frontendURL,
		"test",
	)
}

func routerDo(t *testing.T, router *chi.Mux, method, target, bearer string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerCandidateViaRouter(t *testing.T, router *chi.Mux, email string) string {
	rec := routerDo(t, router, http.MethodPost, "/api/v1/auth/register/candidate", "", auth.RegisterCandidateRequest{
		FirstName:       "Siti",
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env.Data.AccessToken
}

// TestInterviewNegotiation_ThroughRouter drives the whole slot negotiation
// over the HTTP surface: employer registers and, once the company is
// approved, proposes two slots; the target candidate confirms one, cannot
// confirm twice, and a different candidate cannot touch the notification.
func TestInterviewNegotiation_ThroughRouter(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	router := newTestRouter(t)

	suffix := time.Now().UnixNano()
	rec := routerDo(t, router, http.MethodPost, "/api/v1/auth/register/employer", "", auth.RegisterEmployerRequest{
		FirstName:       "Budi",
		Email:           uniqueEmail("employer"),
		Password:        "password123",
		ConfirmPassword: "password123",
		CompanyName:     "PT Maju Jaya",
		CompanySlug:     fmt.Sprintf("maju-jaya-%d", suffix%1000000),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var employerEnv envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&employerEnv))
	employerToken := employerEnv.Data.AccessToken

	candidateEmail := uniqueEmail("candidate-x")
	candidateToken := registerCandidateViaRouter(t, router, candidateEmail)
	otherToken := registerCandidateViaRouter(t, router, uniqueEmail("candidate-y"))

	var candidateID string
	err := testDB.QueryRow(ctx, `
		SELECT c.id FROM candidates c JOIN users u ON u.id = c.user_id WHERE u.email = $1
	`, candidateEmail).Scan(&candidateID)
	require.NoError(t, err)

	slots := []interview.TimeSlot{
		{Date: time.Now().AddDate(0, 0, 2).Format("2006-01-02"), Time: "09.00 - 09.30"},
		{Date: time.Now().AddDate(0, 0, 3).Format("2006-01-02"), Time: "14.00 - 14.30"},
	}
	sendReq := interview.CreateNotificationRequest{
		CandidateID:     candidateID,
		DesignationName: "Backend Engineer",
		TimeSlots:       slots,
	}

	// A pending company cannot reach candidates yet
	rec = routerDo(t, router, http.MethodPost, "/api/v1/employer/candidates/send-notification", employerToken, sendReq)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, err = testDB.Exec(ctx, `UPDATE companies SET approval_status = 'approved' WHERE slug = $1`,
		fmt.Sprintf("maju-jaya-%d", suffix%1000000))
	require.NoError(t, err)

	rec = routerDo(t, router, http.MethodPost, "/api/v1/employer/candidates/send-notification", employerToken, sendReq)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sendEnv struct {
		Data interview.NotificationResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sendEnv))
	assert.Equal(t, interview.StatusPending, sendEnv.Data.Status)
	notificationID := sendEnv.Data.ID

	confirmPath := "/api/v1/candidate/interview-notification/" + notificationID + "/confirm"
	confirmReq := interview.ConfirmRequest{SelectedSlot: slots[1]}

	// The wrong candidate is turned away before any state changes
	rec = routerDo(t, router, http.MethodPost, confirmPath, otherToken, confirmReq)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// An employer token cannot enter the candidate group at all
	rec = routerDo(t, router, http.MethodPost, confirmPath, employerToken, confirmReq)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No token at all
	rec = routerDo(t, router, http.MethodPost, confirmPath, "", confirmReq)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = routerDo(t, router, http.MethodPost, confirmPath, candidateToken, confirmReq)
	require.Equal(t, http.StatusOK, rec.Code)

	var confirmEnv struct {
		Data interview.NotificationResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&confirmEnv))
	assert.Equal(t, interview.StatusAccepted, confirmEnv.Data.Status)
	require.NotNil(t, confirmEnv.Data.SelectedSlot)
	assert.Equal(t, slots[1], *confirmEnv.Data.SelectedSlot)

	// Second confirmation is rejected
	rec = routerDo(t, router, http.MethodPost, confirmPath, candidateToken, confirmReq)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Both sides see the accepted notification in their listings
	rec = routerDo(t, router, http.MethodGet, "/api/v1/candidate/interview-notifications?status=accepted", candidateToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listEnv struct {
		Data []interview.NotificationResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listEnv))
	require.Len(t, listEnv.Data, 1)
	assert.Equal(t, notificationID, listEnv.Data[0].ID)

	rec = routerDo(t, router, http.MethodGet, "/api/v1/employer/interview-notifications", employerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRouteIsNotFound(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	router := newTestRouter(t)

	token := registerCandidateViaRouter(t, router, uniqueEmail("router-404"))

	// Routes outside the registered tree 404 even with a valid session
	rec := routerDo(t, router, http.MethodGet, "/api/v1/candidate/unknown", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = routerDo(t, router, http.MethodGet, "/api/v2/anything", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MISGroup(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	router := newTestRouter(t)

	candidateToken := registerCandidateViaRouter(t, router, uniqueEmail("mis-gate"))

	// Candidates cannot reach the back office
	rec := routerDo(t, router, http.MethodGet, "/api/v1/mis/candidates", candidateToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Seed an MIS account directly and log in through its entrance
	misEmail := uniqueEmail("mis-user")
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = testDB.Exec(ctx, `
		INSERT INTO users (email, password_hash, role, first_name, is_active)
		VALUES ($1, $2, 'mis', 'Ops', TRUE)
	`, misEmail, string(hash))
	require.NoError(t, err)

	rec = routerDo(t, router, http.MethodPost, "/api/v1/auth/login/mis", "", auth.LoginRequest{
		Email:    misEmail,
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var misEnv envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&misEnv))

	rec = routerDo(t, router, http.MethodGet, "/api/v1/mis/candidates?status=pending", misEnv.Data.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
