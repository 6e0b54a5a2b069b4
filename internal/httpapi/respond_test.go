package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblist/api-service/internal/auth"
	"joblist/api-service/internal/company"
	"joblist/api-service/internal/domain"
	"joblist/api-service/internal/job"
)

func TestRespondError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{&domain.ValidationError{Msg: "no data to update"}, http.StatusBadRequest},
		{fmt.Errorf("list: %w", &domain.ValidationError{Msg: "bad bound"}), http.StatusBadRequest},
		{&domain.NotFoundError{Resource: "job", Key: "nope"}, http.StatusNotFound},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)

		respondError(ctx, c.err)
		assert.Equal(t, c.want, w.Code, "err=%v", c.err)
	}
}

// testRouter builds the full router over nil pools. Only paths whose
// validation fires before the first store round-trip may be exercised.
func testRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	verifier := auth.NewVerifier("test-secret")
	adminToken, err := verifier.NewToken("admin", true)
	require.NoError(t, err)

	r := NewRouter(job.NewService(nil, nil), company.NewService(nil, nil), verifier)
	return r, adminToken
}

func TestListJobs_MinSalaryCeilingReturns400(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs?minSalary=1000000", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCompanies_InvertedRangeReturns400(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies?minEmployees=3&maxEmployees=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "3")
	assert.Contains(t, w.Body.String(), "2")
}

func TestPatchJob_EmptyBodyReturns400(t *testing.T) {
	r, token := testRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/jobs/job1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchJob_WithoutTokenReturns401(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/jobs/job1", strings.NewReader(`{"salary":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostJob_MissingRequiredFieldReturns400(t *testing.T) {
	r, token := testRouter(t)

	// companyHandle is required by the binding tags.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(`{"title":"job1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostJob_NegativeSalaryReturns400(t *testing.T) {
	r, token := testRouter(t)

	body := `{"title":"job1","salary":-10,"companyHandle":"c1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
