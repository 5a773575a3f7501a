package in_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	couplesin "chemlab/internal/modules/couples/adapter/in"
	couplesout "chemlab/internal/modules/couples/adapter/out"
	"chemlab/internal/modules/couples/dto"
	"chemlab/internal/modules/couples/service"
	"chemlab/internal/modules/couples/usecase"
	"chemlab/internal/platform/clock"
	"chemlab/internal/platform/httpx"
)

func newMux() *http.ServeMux {
	clk := clock.Fixed{At: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewCatalogService(couplesout.NewEmbeddedCoupleSource(clk)), clk)
	return httpx.NewMux(couplesin.NewHTTPHandler(uc, zap.NewNop()))
}

func TestListCouplesEndpoint(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/couples", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	out := dto.ListOutput{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 5, out.Total)
	assert.Contains(t, rec.Body.String(), `"minBackingAmount":500000`)
}

func TestGetCoupleEndpoint(t *testing.T) {
	t.Parallel()
	mux := newMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/couples", strings.NewReader(`{"coupleId":"2"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	out := dto.GetOutput{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Jordan Blake & Taylor Kim", out.Couple.Names())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/couples", strings.NewReader(`{"coupleId":"99"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Couple not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/couples", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
