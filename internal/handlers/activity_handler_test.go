package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entrelink/investor-match/internal/models"
)

type fakeActivityRepo struct {
	logs     []models.QueryLog
	err      error
	gotLimit int
}

func (f *fakeActivityRepo) Create(queryLog *models.QueryLog) error {
	return nil
}

func (f *fakeActivityRepo) FindRecent(limit int) ([]models.QueryLog, error) {
	f.gotLimit = limit
	return f.logs, f.err
}

func newActivityTestApp(repo *fakeActivityRepo) *fiber.App {
	app := fiber.New()
	app.Get("/api/v1/recent-activity", NewActivityHandler(repo).HandleRecentActivity)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return resp, parsed
}

func TestHandleRecentActivity(t *testing.T) {
	repo := &fakeActivityRepo{
		logs: []models.QueryLog{
			{
				ID:            uuid.New(),
				Query:         "AI-powered supply chain optimization",
				InvestorCount: 4,
				CreatedAt:     time.Now(),
			},
		},
	}
	app := newActivityTestApp(repo)

	resp, body := getJSON(t, app, "/api/v1/recent-activity")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 20, repo.gotLimit)

	var logs []models.QueryLog
	require.NoError(t, json.Unmarshal(body["queries"], &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "AI-powered supply chain optimization", logs[0].Query)
	assert.Equal(t, 4, logs[0].InvestorCount)
}

func TestHandleRecentActivityCustomLimit(t *testing.T) {
	repo := &fakeActivityRepo{}
	app := newActivityTestApp(repo)

	resp, _ := getJSON(t, app, "/api/v1/recent-activity?limit=5")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, repo.gotLimit)
}

func TestHandleRecentActivityInvalidLimit(t *testing.T) {
	app := newActivityTestApp(&fakeActivityRepo{})

	for _, limit := range []string{"0", "-1", "101", "abc"} {
		resp, body := getJSON(t, app, "/api/v1/recent-activity?limit="+limit)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `"Invalid limit"`, string(body["error"]))
	}
}

func TestHandleRecentActivityRepoFailure(t *testing.T) {
	app := newActivityTestApp(&fakeActivityRepo{err: errors.New("database down")})

	resp, body := getJSON(t, app, "/api/v1/recent-activity")

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `"Failed to fetch recent activity"`, string(body["error"]))
}
