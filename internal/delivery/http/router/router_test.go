package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"matchday/config"
	"matchday/internal/delivery/http/middleware"
	"matchday/internal/delivery/http/response"
	"matchday/internal/delivery/http/router"
	"matchday/internal/delivery/http/router/handler"
	"matchday/internal/delivery/http/validator"
	"matchday/internal/infra/auth"
	"matchday/internal/infra/kv"
	"matchday/internal/infra/persistence/kvjson"
	"matchday/internal/infra/sportsdb"
	"matchday/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// newTestApp wires the full HTTP surface over in-memory storage and a
// fake catalog upstream.
func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kv.NewMemoryStore()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret"

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/3/searchteams.php":
			io.WriteString(w, `{"teams":[{"idTeam":"133604","strTeam":"Arsenal"}]}`)
		case "/3/lookupteam.php":
			io.WriteString(w, `{"teams":null}`)
		default:
			io.WriteString(w, `{}`)
		}
	}))
	t.Cleanup(upstream.Close)
	cfg.SportsData = config.SportsDataConfig{
		BaseURL:           upstream.URL,
		APIKey:            "3",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
	}

	tokens, err := auth.NewTokenService(cfg)
	require.NoError(t, err)

	identity := impl.NewIdentityService(impl.IdentityServiceParams{
		UserRepo:    kvjson.NewUserRepository(store),
		SessionRepo: kvjson.NewSessionRepository(store),
		Verifier:    auth.NewPlainVerifier(),
		Tokens:      tokens,
		Logger:      logger,
	})

	lc := fxtest.NewLifecycle(t)
	favorites := impl.NewFavoritesService(impl.FavoritesServiceParams{
		Lifecycle: lc,
		Repo:      kvjson.NewFavoriteRepository(store),
		Logger:    logger,
	})
	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	catalog := impl.NewCatalogService(impl.CatalogServiceParams{
		Sports: sportsdb.NewClient(cfg, logger),
		Logger: logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		AuthHandler:      handler.NewAuthHandler(identity, logger),
		FavoritesHandler: handler.NewFavoritesHandler(favorites, logger),
		CatalogHandler:   handler.NewCatalogHandler(catalog, logger),
		LoggerMiddleware: middleware.NewLoggerMiddleware(logger, cfg),
	}).RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp response.Response
	json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

func TestRoutes_Health(t *testing.T) {
	e := newTestApp(t)

	rec, resp := doJSON(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestRoutes_RegisterLoginSession(t *testing.T) {
	e := newTestApp(t)

	rec, resp := doJSON(e, http.MethodPost, "/auth/register",
		`{"firstName":"Ann","lastName":"Lee","email":"ann@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)

	// Duplicate email maps to the conflict error code.
	rec, resp = doJSON(e, http.MethodPost, "/auth/register",
		`{"firstName":"X","lastName":"Y","email":"ANN@X.COM","password":"other12"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", resp.Error.Code)

	rec, _ = doJSON(e, http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"ann@x.com","password":"wrong99"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)

	rec, _ = doJSON(e, http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = doJSON(e, http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NO_SESSION", resp.Error.Code)
}

func TestRoutes_RegisterValidation(t *testing.T) {
	e := newTestApp(t)

	rec, _ := doJSON(e, http.MethodPost, "/auth/register",
		`{"firstName":"Ann","lastName":"Lee","email":"not-an-email","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_FavoritesLifecycle(t *testing.T) {
	e := newTestApp(t)

	// Payload arrives in the catalog wire shape.
	rec, _ := doJSON(e, http.MethodPost, "/favorites",
		`{"idTeam":"133604","strTeam":"Arsenal","strTeamBadge":"badge.png"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := doJSON(e, http.MethodGet, "/favorites/team/133604", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["favorite"])

	rec, _ = doJSON(e, http.MethodDelete, "/favorites/plant/133604", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(e, http.MethodDelete, "/favorites/team/133604", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = doJSON(e, http.MethodGet, "/favorites/team/133604", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok = resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["favorite"])
}

func TestRoutes_FavoriteWithoutIdentityRejected(t *testing.T) {
	e := newTestApp(t)

	rec, _ := doJSON(e, http.MethodPost, "/favorites", `{"strTeam":"Arsenal"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_CatalogSearchAndNotFound(t *testing.T) {
	e := newTestApp(t)

	rec, resp := doJSON(e, http.MethodGet, "/catalog/teams/search?q=Arsenal", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, resp = doJSON(e, http.MethodGet, "/catalog/teams/999999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}
