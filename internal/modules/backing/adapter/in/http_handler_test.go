package in_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	backingin "chemlab/internal/modules/backing/adapter/in"
	backingout "chemlab/internal/modules/backing/adapter/out"
	"chemlab/internal/modules/backing/dto"
	"chemlab/internal/modules/backing/service"
	"chemlab/internal/modules/backing/usecase"
	couplesout "chemlab/internal/modules/couples/adapter/out"
	couplesservice "chemlab/internal/modules/couples/service"
	couplesusecase "chemlab/internal/modules/couples/usecase"
	"chemlab/internal/platform/clock"
	"chemlab/internal/platform/httpx"
	"chemlab/internal/platform/id"
	"chemlab/internal/platform/tx"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	clk := clock.Fixed{At: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	db, err := backingout.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	ledger, err := backingout.NewSQLiteLedger(context.Background(), db)
	require.NoError(t, err)

	couples := couplesusecase.NewInteractor(couplesservice.NewCatalogService(couplesout.NewEmbeddedCoupleSource(clk)), clk)
	svc := service.NewBackingService(
		backingout.NewCouplesCatalogAdapter(couples),
		ledger,
		backingout.NewSimulatedTransferer(0, nil),
		backingout.NewCouplesTallyAdapter(couples),
		tx.NewSQLManager(db),
		clk,
		id.UUID{},
		zap.NewNop(),
	)
	return httpx.NewMux(backingin.NewHTTPHandler(usecase.NewInteractor(svc), zap.NewNop()))
}

func TestRecordThenListBackings(t *testing.T) {
	t.Parallel()
	mux := newMux(t)

	rec := httptest.NewRecorder()
	body := `{"coupleId":"1","milestoneId":2,"amount":1000000}`
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backings/0xABCD", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	recorded := dto.RecordOutput{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recorded))
	assert.True(t, recorded.Success)
	assert.Equal(t, "0xabcd", recorded.Backing.Address)
	assert.Equal(t, int64(1_000_000), recorded.Backing.PotentialWinnings)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/backings/0xAbCd", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	list := dto.ListOutput{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, int64(1_000_000), list.TotalBacked)
	assert.Equal(t, int64(1_000_000), list.TotalPotentialWinnings)
}

func TestListUnknownAddressIsEmpty(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	newMux(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/backings/0xnobody", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"backings":[],"total":0,"totalBacked":0,"totalPotentialWinnings":0}`, rec.Body.String())
}

func TestRecordRejectsBadPayloads(t *testing.T) {
	t.Parallel()
	mux := newMux(t)
	cases := map[string]int{
		`not json`: http.StatusBadRequest,
		`{"coupleId":"1","milestoneId":2,"amount":1}`:   http.StatusBadRequest,
		`{"coupleId":"404","milestoneId":1,"amount":1}`: http.StatusNotFound,
		`{"coupleId":"1"}`: http.StatusBadRequest,
		`{"coupleId":"1","milestoneId":9,"amount":10000}`: http.StatusNotFound,
	}
	for body, want := range cases {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backings/0xabcd", strings.NewReader(body)))
		assert.Equal(t, want, rec.Code, body)
		assert.Contains(t, rec.Body.String(), `"error"`, body)
	}
}
