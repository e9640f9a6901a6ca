package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"investment_tracker/internal/db"
	"investment_tracker/internal/domain"
	"investment_tracker/internal/investing"
	"investment_tracker/internal/middleware"
	"investment_tracker/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	r  *gin.Engine
	db *gorm.DB
}

func setupRouter(t *testing.T, coin investing.Coin, rdb *redis.Client) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// Use a per-test in-memory database to avoid cross-test interference
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := db.OpenDialector(sqlite.Open(dsn), true)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	users := store.NewUserStore(conn)
	strategies := store.NewStrategyStore(conn)
	investments := store.NewInvestmentStore(conn)
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)
	r := NewRouter(Deps{
		Users:       users,
		Strategies:  strategies,
		Investments: investments,
		Engine:      investing.NewEngine(users, strategies, investments, coin, metrics),
		Redis:       rdb,
		CacheTTL:    time.Minute,
		Metrics:     metrics,
		Gatherer:    registry,
	})
	return testEnv{r: r, db: conn}
}

func httpDo(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the success envelope's payload into dest
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	data, ok := env["data"]
	require.True(t, ok, w.Body.String())
	require.NoError(t, json.Unmarshal(data, dest))
}

// requireError asserts the error envelope and status
func requireError(t *testing.T, w *httptest.ResponseRecorder, status int) string {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	var env map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	msg, ok := env["error"]
	require.True(t, ok, w.Body.String())
	return msg
}

func createUser(t *testing.T, r *gin.Engine, first string) domain.UserResource {
	t.Helper()
	w := httpDo(r, "POST", "/api/user", map[string]string{"first_name": first, "last_name": "Doe", "email": first + "@example.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var u domain.UserResource
	decodeData(t, w, &u)
	return u
}

func createStrategy(t *testing.T, r *gin.Engine) domain.StrategyResource {
	t.Helper()
	w := httpDo(r, "POST", "/api/strategy", map[string]interface{}{"type": "growth", "tenure": "monthly", "yield": 1.5, "relief": 0.8})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var s domain.StrategyResource
	decodeData(t, w, &s)
	return s
}

func path(prefix string, id uint) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}

func jsonUint(v uint) string {
	return fmt.Sprintf("%d", v)
}
