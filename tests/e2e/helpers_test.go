//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	eventrepo "github.com/unihub/campus-events-backend/internal/adapter/postgres/event"
	notificationrepo "github.com/unihub/campus-events-backend/internal/adapter/postgres/notification"
	registrationrepo "github.com/unihub/campus-events-backend/internal/adapter/postgres/registration"
	"github.com/unihub/campus-events-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/unihub/campus-events-backend/internal/adapter/postgres/user"
	"github.com/unihub/campus-events-backend/internal/config"
	eventsvc "github.com/unihub/campus-events-backend/internal/service/event"
	notificationsvc "github.com/unihub/campus-events-backend/internal/service/notification"
	registrationsvc "github.com/unihub/campus-events-backend/internal/service/registration"
	scoringsvc "github.com/unihub/campus-events-backend/internal/service/scoring"
	"github.com/unihub/campus-events-backend/internal/transport/middleware"
	"github.com/unihub/campus-events-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool

	Events *eventrepo.Repo
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). The change-feed listener is
// not started; divergence healing is exercised through the reconcile path.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	events := eventrepo.New(pool)
	registrations := registrationrepo.New(pool)
	notifications := notificationrepo.New(pool)
	users := userrepo.New(pool)

	recommend := config.RecommendConfig{
		CategoryWeight:   0.4,
		SocietyWeight:    0.3,
		PopularityWeight: 0.2,
		NoveltyWeight:    0.1,
		MinScore:         0.1,
		DefaultLimit:     10,
		MaxLimit:         50,
	}

	handlers := rest.Handlers{
		Health:        rest.NewHealthHandler(pool, "test-version"),
		Events:        rest.NewEventHandler(eventsvc.NewService(logger, events, users), logger),
		Registrations: rest.NewRegistrationHandler(registrationsvc.NewService(logger, events, registrations), logger),
		Scoring:       rest.NewScoringHandler(scoringsvc.NewService(logger, recommend, events, registrations), logger),
		Notifications: rest.NewNotificationHandler(notificationsvc.NewService(logger, notifications, events), logger),
	}

	srv := httptest.NewServer(rest.NewRouter(handlers, logger, config.CORSConfig{
		AllowedOrigins: "*",
		AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Events: events,
	}
}

// do sends a JSON request to the API as the given user. A nil userID sends
// an anonymous request.
func (ts *testServer) do(t *testing.T, method, path string, userID *uuid.UUID, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, ts.URL+"/api/v1"+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set(middleware.ActorHeader, userID.String())
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decode reads the response body into a generic map and closes it.
func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
