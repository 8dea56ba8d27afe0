package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"testing"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/domain/matching"
	"jobmatch/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }

type stubDB struct{}

func (stubDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (stubDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("no catalogue in tests")
}
func (stubDB) QueryRow(context.Context, string, ...any) database.Row { return noRow{} }
func (stubDB) Ping(context.Context) error                            { return nil }
func (stubDB) Close() error                                          { return nil }
func (stubDB) Begin(context.Context) (database.Tx, error)            { return nil, errors.New("unsupported") }
func (stubDB) SQLDB() *sql.DB                                        { return nil }

func newTestApp(t *testing.T) (*App, config.Config) {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{AppName: "jobmatch", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{AccessSecret: "test-secret", AccessExpiresIn: time.Minute},
	}
	c := NewContainerFrom(cfg, log.New(io.Discard, "", 0), stubDB{}, cache.NewDisabled(), matching.DefaultScorer())
	t.Cleanup(func() { _ = c.Close() })
	return New(c), cfg
}

func call(t *testing.T, a *App, path, token string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestApp_HealthIsPublic(t *testing.T) {
	a, _ := newTestApp(t)

	code, body := call(t, a, "/health", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ok", body["message"])
}

func TestApp_APIRequiresToken(t *testing.T) {
	a, _ := newTestApp(t)

	for _, p := range []string{
		"/api/v1/jobs/recommendations",
		"/api/v1/jobs/" + uuid.NewString() + "/match",
		"/api/v1/users/me/preferences",
	} {
		code, _ := call(t, a, p, "")
		assert.Equal(t, fiber.StatusUnauthorized, code, p)
	}
}

func TestApp_RoutesWired(t *testing.T) {
	a, _ := newTestApp(t)
	tok, err := a.Container.JWT.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	code, body := call(t, a, "/api/v1/users/me/preferences", tok)
	assert.Equal(t, fiber.StatusOK, code)
	data, _ := body["data"].(map[string]any)
	assert.Equal(t, []any{}, data["job_titles"])

	code, _ = call(t, a, "/api/v1/jobs/"+uuid.NewString()+"/match", tok)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, body = call(t, a, "/api/v1/jobs/recommendations", tok)
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", body["message"])
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}
