package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entrelink/investor-match/internal/models"
)

type fakeEmailWriter struct {
	email string
	err   error
	calls int
}

func (f *fakeEmailWriter) GenerateEmail(ctx context.Context, senderName, subject string, investor models.InvestorDetails) (string, error) {
	f.calls++
	return f.email, f.err
}

type fakeEmailRequestRepo struct {
	created []*models.EmailRequest
	err     error
}

func (f *fakeEmailRequestRepo) Create(request *models.EmailRequest) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, request)
	return nil
}

func (f *fakeEmailRequestRepo) FindByID(id uuid.UUID) (*models.EmailRequest, error) {
	return nil, errors.New("not implemented")
}

func newEmailTestApp(writer *fakeEmailWriter, repo *fakeEmailRequestRepo) *fiber.App {
	app := fiber.New()
	handler := NewEmailHandler(writer, repo)
	app.Post("/api/v1/generate-email", handler.HandleGenerateEmail)
	app.Post("/api/v1/request-email", handler.HandleRequestEmail)
	app.Post("/api/v1/request-email-access", handler.HandleRequestEmailAccess)
	return app
}

func TestHandleGenerateEmailSuccess(t *testing.T) {
	writer := &fakeEmailWriter{email: "Dear Jane, ..."}
	app := newEmailTestApp(writer, &fakeEmailRequestRepo{})

	resp, body := postJSON(t, app, "/api/v1/generate-email", `{
		"subject": "Seed round intro",
		"sender_name": "Alex Founder",
		"investor_details": {"name": "Jane Smith", "company": "Acme Ventures"}
	}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, writer.calls)
	assert.JSONEq(t, `"Dear Jane, ..."`, string(body["generated_email"]))
}

func TestHandleGenerateEmailValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing subject", `{"sender_name":"Alex","investor_details":{"name":"Jane"}}`},
		{"missing sender name", `{"subject":"Intro","investor_details":{"name":"Jane"}}`},
		{"missing investor name", `{"subject":"Intro","sender_name":"Alex","investor_details":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &fakeEmailWriter{}
			app := newEmailTestApp(writer, &fakeEmailRequestRepo{})

			resp, body := postJSON(t, app, "/api/v1/generate-email", tt.body)

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, `"Missing required fields"`, string(body["error"]))
			assert.Equal(t, 0, writer.calls)
		})
	}
}

func TestHandleGenerateEmailFailureIsOpaque(t *testing.T) {
	writer := &fakeEmailWriter{err: errors.New("rate limited by upstream")}
	app := newEmailTestApp(writer, &fakeEmailRequestRepo{})

	resp, body := postJSON(t, app, "/api/v1/generate-email", `{
		"subject": "Intro",
		"sender_name": "Alex",
		"investor_details": {"name": "Jane"}
	}`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var message string
	require.NoError(t, json.Unmarshal(body["error"], &message))
	assert.Equal(t, "Failed to generate email", message)
	assert.NotContains(t, message, "rate limited")
}

func TestHandleRequestEmailSuccess(t *testing.T) {
	repo := &fakeEmailRequestRepo{}
	app := newEmailTestApp(&fakeEmailWriter{}, repo)

	resp, body := postJSON(t, app, "/api/v1/request-email", `{
		"investor_id": "inv-42",
		"investor_name": "Jane Smith",
		"subject": "Seed round intro",
		"email_body": "Hello Jane, ..."
	}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"Email request submitted successfully"`, string(body["message"]))

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, "inv-42", created.InvestorID)
	assert.Equal(t, models.EmailRequestPending, created.Status)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestHandleRequestEmailValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing investor id", `{"subject":"Intro","email_body":"Hello"}`},
		{"missing subject", `{"investor_id":"inv-42","email_body":"Hello"}`},
		{"missing body", `{"investor_id":"inv-42","subject":"Intro"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeEmailRequestRepo{}
			app := newEmailTestApp(&fakeEmailWriter{}, repo)

			resp, _ := postJSON(t, app, "/api/v1/request-email", tt.body)

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, repo.created)
		})
	}
}

func TestHandleRequestEmailStorageFailure(t *testing.T) {
	repo := &fakeEmailRequestRepo{err: errors.New("database down")}
	app := newEmailTestApp(&fakeEmailWriter{}, repo)

	resp, body := postJSON(t, app, "/api/v1/request-email", `{
		"investor_id": "inv-42",
		"subject": "Intro",
		"email_body": "Hello"
	}`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `"Failed to process email request"`, string(body["error"]))
}

func TestHandleRequestEmailAccess(t *testing.T) {
	app := newEmailTestApp(&fakeEmailWriter{}, &fakeEmailRequestRepo{})

	resp, body := postJSON(t, app, "/api/v1/request-email-access", `{
		"investor": {"name": "Jane Smith"},
		"user_email": "alex@example.com"
	}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"Email access request sent"`, string(body["message"]))
}

func TestHandleRequestEmailAccessValidation(t *testing.T) {
	app := newEmailTestApp(&fakeEmailWriter{}, &fakeEmailRequestRepo{})

	resp, _ := postJSON(t, app, "/api/v1/request-email-access", `{"investor":{},"user_email":""}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
