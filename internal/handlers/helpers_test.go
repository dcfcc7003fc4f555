package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talentflow-hq/talentflow/internal/database"
	"github.com/talentflow-hq/talentflow/internal/services"
)

var testKnownUsers = []string{"John Smith", "Sarah Johnson", "Mike Chen", "Emma Davis"}

var dbSeq atomic.Int64

// testRouter wires the full API over a fresh in-memory store. Each test gets
// its own named shared-cache database so gorm's connection pool sees the same
// tables on every connection.
func testRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := database.Connect(dsn, zap.NewNop())
	require.NoError(t, err)

	logger := zap.NewNop()
	api := &API{
		Jobs:        NewJobHandler(services.NewJobService(db, logger)),
		Candidates:  NewCandidateHandler(services.NewCandidateService(db, logger, testKnownUsers)),
		Assessments: NewAssessmentHandler(services.NewAssessmentService(db, logger)),
		Analytics:   NewAnalyticsHandler(services.NewAnalyticsService(db, logger)),
	}

	r := gin.New()
	api.Register(r)
	return r, db
}

// do performs one request against the router and decodes the JSON response
// into out when out is non-nil.
func do(t *testing.T, r *gin.Engine, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload.Error
}

func TestHealthCheck(t *testing.T) {
	r, _ := testRouter(t)
	w := do(t, r, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
