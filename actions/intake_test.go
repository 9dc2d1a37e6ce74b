package actions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gitlab.com/ainativeclub/portal_api/config"
	"gitlab.com/ainativeclub/portal_api/queries"
	"gitlab.com/ainativeclub/portal_api/service"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type stubSendgrid struct{}

func (stubSendgrid) SendEmail(to, subject, htmlBody string) error {
	return nil
}

func setupIntake(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("can't create sqlmock: %s", err)
	}
	dialector := postgres.New(postgres.Config{
		DSN:                  "postgres-mock",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("can't open gorm connection: %s", err)
	}

	cfg := config.Config{}
	cfg.Server.API.Domain = "ainativeclub.com"
	cfg.Server.Sendgrid.NotificationEmail = "ops@ainativeclub.com"

	repo := &queries.Repo{Conn: gormDB, ConnReaderAdmin: gormDB}
	srv := service.NewService(cfg, repo, stubSendgrid{}, nil)
	actions := NewActions(cfg, srv, nil, context.Background())

	router := gin.New()
	router.POST("/applications", actions.SubmitApplication)
	router.GET("/applications/status", actions.GetApplicationStatus)
	router.POST("/waitlist", actions.JoinWaitlist)

	return router, mock
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validForm() url.Values {
	return url.Values{
		"email":       {"founder@example.com"},
		"first_name":  {"Ada"},
		"last_name":   {"Lovelace"},
		"building":    {"Analytical engines as a service"},
		"website":     {"https://example.com"},
		"role":        {"founder"},
		"arr":         {"pre-revenue"},
		"pain_points": {"Distribution"},
	}
}

func TestSubmitApplicationCreated(t *testing.T) {
	router, mock := setupIntake(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := postForm(router, "/applications", validForm())
	assert.Equal(t, Created, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSubmitApplicationValidation(t *testing.T) {
	router, _ := setupIntake(t)

	tests := []struct {
		name    string
		mutate  func(url.Values)
		message string
	}{
		{
			name:    "missing email",
			mutate:  func(f url.Values) { f.Del("email") },
			message: "A valid email address is required",
		},
		{
			name:    "bad website",
			mutate:  func(f url.Values) { f.Set("website", "notaurl") },
			message: "A valid website URL is required",
		},
		{
			name:    "bad github",
			mutate:  func(f url.Values) { f.Set("github", "ada-on-github") },
			message: "GitHub URL is not valid",
		},
		{
			name:    "unknown role",
			mutate:  func(f url.Values) { f.Set("role", "wizard") },
			message: "Invalid role",
		},
		{
			name:    "unknown arr bracket",
			mutate:  func(f url.Values) { f.Set("arr", "1b+") },
			message: "Invalid ARR bracket",
		},
		{
			name:    "missing pain points",
			mutate:  func(f url.Values) { f.Del("pain_points") },
			message: "Tell us about your biggest challenge",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)
			w := postForm(router, "/applications", form)
			assert.Equal(t, ValidationFailed, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestSubmitApplicationStoreFailure(t *testing.T) {
	router, mock := setupIntake(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	w := postForm(router, "/applications", validForm())
	assert.Equal(t, ServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to save application")
}

func TestGetApplicationStatus(t *testing.T) {
	router, mock := setupIntake(t)

	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "applications"`).
		WithArgs("founder@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "status", "created_at"}).
			AddRow(3, "founder@example.com", "reviewing", created))

	req := httptest.NewRequest(http.MethodGet, "/applications/status?email=founder@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, OK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"reviewing"`)
}

func TestGetApplicationStatusNotFound(t *testing.T) {
	router, mock := setupIntake(t)

	mock.ExpectQuery(`SELECT \* FROM "applications"`).
		WithArgs("founder@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "status", "created_at"}))

	req := httptest.NewRequest(http.MethodGet, "/applications/status?email=founder@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, NotFound, w.Code)
}

func TestJoinWaitlistHandler(t *testing.T) {
	router, mock := setupIntake(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "waitlist"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := postForm(router, "/waitlist", url.Values{"email": {"a@b.com"}})
	assert.Equal(t, OK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestJoinWaitlistDuplicateHandler(t *testing.T) {
	router, mock := setupIntake(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "waitlist"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	w := postForm(router, "/waitlist", url.Values{"email": {"a@b.com"}})
	assert.Equal(t, OK, w.Code)
	assert.Contains(t, w.Body.String(), "Already on waitlist")
}

func TestJoinWaitlistInvalidEmail(t *testing.T) {
	router, _ := setupIntake(t)

	w := postForm(router, "/waitlist", url.Values{"email": {"nope"}})
	assert.Equal(t, ValidationFailed, w.Code)
}
