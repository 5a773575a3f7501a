package in_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	networkin "chemlab/internal/modules/network/adapter/in"
	"chemlab/internal/modules/network/dto"
	"chemlab/internal/modules/network/service"
	"chemlab/internal/modules/network/usecase"
	"chemlab/internal/platform/httpx"
)

func get(t *testing.T, development bool, target string) *httptest.ResponseRecorder {
	t.Helper()
	uc := usecase.NewInteractor(service.NewNetworkService(development))
	rec := httptest.NewRecorder()
	httpx.NewMux(networkin.NewHTTPHandler(uc, zap.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNetworkStatusOnWrongChain(t *testing.T) {
	t.Parallel()
	rec := get(t, false, "/api/network?chainId=84532&address=0x1234567890123456789012345678901234567890")
	require.Equal(t, http.StatusOK, rec.Code)
	out := dto.StatusOutput{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.False(t, out.IsCorrectNetwork)
	assert.True(t, out.ShouldShowWarning)
	assert.True(t, out.IsMainnet)
	assert.Equal(t, int64(8453), out.TargetChain.ID)
	require.NotNil(t, out.CurrentChainID)
	assert.Equal(t, int64(84532), *out.CurrentChainID)
	assert.Equal(t, "0x1234...7890", out.DisplayName)
}

func TestNetworkStatusDevelopmentAndDisconnected(t *testing.T) {
	t.Parallel()
	rec := get(t, true, "/api/network?chainId=0x14a34&basename=rio.base.eth")
	require.Equal(t, http.StatusOK, rec.Code)
	out := dto.StatusOutput{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.IsCorrectNetwork)
	assert.Equal(t, "Base Sepolia", out.TargetChain.Name)
	assert.Equal(t, "rio.base.eth", out.DisplayName)

	rec = get(t, true, "/api/network")
	require.Equal(t, http.StatusOK, rec.Code)
	out = dto.StatusOutput{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Nil(t, out.CurrentChainID)
	assert.False(t, out.IsCorrectNetwork)
	assert.Equal(t, "Unknown", out.DisplayName)
}

func TestNetworkStatusRejectsGarbage(t *testing.T) {
	t.Parallel()
	rec := get(t, false, "/api/network?chainId=mainnet")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid chainId"}`, rec.Body.String())
}
