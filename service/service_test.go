package service

import (
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gitlab.com/ainativeclub/portal_api/config"
	"gitlab.com/ainativeclub/portal_api/model"
	"gitlab.com/ainativeclub/portal_api/queries"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeSendgrid struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeSendgrid) SendEmail(to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("email provider unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeSendgrid) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	copy(out, f.sent)
	return out
}

func setupService(t *testing.T, sg *fakeSendgrid) (*Service, sqlmock.Sqlmock) {
	t.Helper()
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
	cfg.Server.Sendgrid.NotificationEmail = "ops@ainativeclub.com"

	repo := &queries.Repo{Conn: gormDB, ConnReaderAdmin: gormDB}
	return NewService(cfg, repo, sg, nil), mock
}

func validRequest() *model.ApplicationRequest {
	return &model.ApplicationRequest{
		Email:      "founder@example.com",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Building:   "Analytical engines as a service",
		Website:    "https://example.com",
		Role:       "founder",
		ARR:        "0-100k",
		PainPoints: "Distribution",
	}
}

func TestSubmitApplicationSendsBothEmails(t *testing.T) {
	sg := &fakeSendgrid{}
	svc, mock := setupService(t, sg)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	application, err := svc.SubmitApplication(validRequest())
	assert.NoError(t, err)
	assert.NotNil(t, application)
	assert.Equal(t, model.ApplicationStatusPending, application.Status)

	recipients := sg.recipients()
	assert.Len(t, recipients, 2)
	assert.Contains(t, recipients, "ops@ainativeclub.com")
	assert.Contains(t, recipients, "founder@example.com")
}

func TestSubmitApplicationSucceedsWhenEmailFails(t *testing.T) {
	sg := &fakeSendgrid{fail: true}
	svc, mock := setupService(t, sg)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	application, err := svc.SubmitApplication(validRequest())
	assert.NoError(t, err)
	assert.NotNil(t, application)
}

func TestSubmitApplicationStoreFailureSendsNothing(t *testing.T) {
	sg := &fakeSendgrid{}
	svc, mock := setupService(t, sg)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	application, err := svc.SubmitApplication(validRequest())
	assert.Error(t, err)
	assert.Nil(t, application)
	assert.Len(t, sg.recipients(), 0)
}

func TestJoinWaitlist(t *testing.T) {
	svc, mock := setupService(t, &fakeSendgrid{})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "waitlist"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	alreadyJoined, err := svc.JoinWaitlist("a@b.com")
	assert.NoError(t, err)
	assert.False(t, alreadyJoined)
}

func TestJoinWaitlistDuplicateIsSuccess(t *testing.T) {
	svc, mock := setupService(t, &fakeSendgrid{})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "waitlist"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	alreadyJoined, err := svc.JoinWaitlist("a@b.com")
	assert.NoError(t, err)
	assert.True(t, alreadyJoined)
}

func TestJoinWaitlistStoreFailure(t *testing.T) {
	svc, mock := setupService(t, &fakeSendgrid{})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "waitlist"`).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	alreadyJoined, err := svc.JoinWaitlist("a@b.com")
	assert.Error(t, err)
	assert.False(t, alreadyJoined)
}

func TestApplicationEmailBodies(t *testing.T) {
	github := "https://github.com/ada"
	app := validRequest().ToApplication()
	app.Github = &github

	body := applicationNotificationBody(app)
	assert.Contains(t, body, "New Application Received")
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "https://github.com/ada")
	assert.NotContains(t, body, "LinkedIn")

	confirmation := applicationConfirmationBody(app)
	assert.Contains(t, confirmation, "Ada")
}
