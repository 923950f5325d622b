package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/vncsmyrnk/votebox/internal/adapters/handler/http"
	"github.com/vncsmyrnk/votebox/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
	"github.com/vncsmyrnk/votebox/internal/core/services"
)

type testApp struct {
	Server *httptest.Server
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, postgres.Migrate(db))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	pollRepo := postgres.NewPollRepository(db)
	userRepo := postgres.NewUserRepository(db)

	pollSvc := services.NewPollService(log, pollRepo, postgres.NewPollResultRepository(db))
	voteSvc := services.NewVoteService(log, pollRepo, postgres.NewVoteRepository(db), domain.VoteScopeOption)
	authSvc := services.NewAuthService(log, userRepo, postgres.NewAuthRepository(db), nil, services.AuthConfig{
		JWTSecret: "test-secret",
	})

	router := handler.NewHandler(log, authSvc, handler.Handlers{
		Poll: handler.NewPollHandler(log, pollSvc),
		Vote: handler.NewVoteHandler(log, voteSvc),
		User: handler.NewUserHandler(log, services.NewUserService(userRepo)),
		Auth: handler.NewAuthHandler(log, authSvc, "/", handler.CookieConfig{
			SameSite:   http.SameSiteLaxMode,
			AccessTTL:  15 * time.Minute,
			RefreshTTL: time.Hour,
		}),
	}, handler.RouterConfig{AllowedOrigins: []string{"*"}})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{Server: server}
}

// newClient registers a fresh user and returns a client holding its cookies.
func (app *testApp) newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	resp := app.post(t, client, "/auth/register", map[string]any{
		"name":     gofakeit.Name(),
		"email":    gofakeit.Email(),
		"password": gofakeit.Password(true, true, true, false, false, 12),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return client
}

func (app *testApp) post(t *testing.T, client *http.Client, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := client.Post(app.Server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (app *testApp) do(t *testing.T, client *http.Client, method, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, app.Server.URL+path, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

type pollEnvelope struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	PollID  string            `json:"poll_id"`
	Poll    domain.PollDetail `json:"poll"`
}

// TestPollFlow covers the lifecycle: create, read, vote, duplicate vote,
// dashboard and delete.
func TestPollFlow(t *testing.T) {
	app := setupTestApp(t)
	owner := app.newClient(t)
	voter := app.newClient(t)

	resp := app.post(t, owner, "/api/polls", map[string]any{
		"title":       "Flow Test Poll",
		"description": "Testing the basic flow",
		"options":     []string{"Option A", "Option B", "  "},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[pollEnvelope](t, resp)
	require.True(t, created.Success)

	resp = app.do(t, voter, http.MethodGet, "/api/polls/"+created.PollID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decode[pollEnvelope](t, resp)
	require.Len(t, fetched.Poll.Options, 2)
	assert.Equal(t, "Option A", fetched.Poll.Options[0].Text)
	assert.Equal(t, "Option B", fetched.Poll.Options[1].Text)

	optionA := fetched.Poll.Options[0].ID
	votePath := fmt.Sprintf("/api/polls/%s/votes", created.PollID)

	resp = app.post(t, voter, votePath, map[string]any{"option_id": optionA})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = app.post(t, voter, votePath, map[string]any{"option_id": optionA})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "you have already voted on this option", decode[pollEnvelope](t, resp).Error)

	resp = app.do(t, voter, http.MethodGet, "/api/polls/"+created.PollID)
	detail := decode[pollEnvelope](t, resp).Poll
	assert.Equal(t, int64(1), detail.TotalVotes)
	assert.Equal(t, int64(1), detail.Options[0].VoteCount)
	assert.InDelta(t, 100.0, detail.Options[0].Percentage, 0.001)

	resp = app.do(t, owner, http.MethodGet, "/api/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dashboard := decode[struct {
		Polls []domain.UserPoll     `json:"polls"`
		Stats domain.DashboardStats `json:"stats"`
	}](t, resp)
	assert.Len(t, dashboard.Polls, 1)
	assert.Equal(t, domain.DashboardStats{TotalPolls: 1, ActivePolls: 1, TotalVotes: 1, ThisMonth: 1}, dashboard.Stats)

	resp = app.do(t, voter, http.MethodDelete, "/api/polls/"+created.PollID)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = app.do(t, owner, http.MethodDelete, "/api/polls/"+created.PollID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = app.do(t, owner, http.MethodGet, "/api/polls/"+created.PollID)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListPollsEmpty(t *testing.T) {
	app := setupTestApp(t)

	resp := app.do(t, http.DefaultClient, http.MethodGet, "/api/polls")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"polls":[]}`, string(body))
}

func TestAuthFlow(t *testing.T) {
	app := setupTestApp(t)
	client := app.newClient(t)

	resp := app.do(t, client, http.MethodGet, "/api/me")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = app.post(t, client, "/auth/refresh", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = app.post(t, client, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = app.do(t, client, http.MethodGet, "/api/me")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreatePollRejectsLongOption(t *testing.T) {
	app := setupTestApp(t)
	owner := app.newClient(t)

	resp := app.post(t, owner, "/api/polls", map[string]any{
		"title":   "Too long",
		"options": []string{"A", strings.Repeat("b", domain.MaxOptionLength+1)},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "poll options must be at most 500 characters", decode[pollEnvelope](t, resp).Error)

	resp = app.do(t, owner, http.MethodGet, "/api/dashboard")
	dashboard := decode[struct {
		Stats domain.DashboardStats `json:"stats"`
	}](t, resp)
	assert.Zero(t, dashboard.Stats.TotalPolls)
}
