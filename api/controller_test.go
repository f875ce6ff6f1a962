package api

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ch1ch0gz/NFTMortgage/custody"
	"github.com/ch1ch0gz/NFTMortgage/lib"
	"github.com/ch1ch0gz/NFTMortgage/mortgage"
	"github.com/ch1ch0gz/NFTMortgage/mortgagemanager"
	"github.com/ch1ch0gz/NFTMortgage/payments"
	"github.com/ch1ch0gz/NFTMortgage/settlement"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

func setupServer(t *testing.T) (*gin.Engine, *mortgagemanager.Ledger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := custody.NewMemoryRegistry()
	bank := settlement.NewMemoryBank()
	escrow := lib.GetRandomAddr()
	admin := lib.GetRandomAddr()
	seller := lib.GetRandomAddr()
	buyer := lib.GetRandomAddr()
	collection := lib.GetRandomAddr()
	tokenID := big.NewInt(1)

	factory := settlement.NewFactory(bank, escrow)
	schedule := payments.NewSchedule(0, 0)
	ledger := mortgagemanager.NewLedger(registry, factory, mortgage.NewJournal(0), schedule, escrow, admin, &lib.LoggerMock{})

	require.NoError(t, registry.Mint(seller, collection, tokenID))
	require.NoError(t, registry.Approve(seller, escrow, collection, tokenID))
	bank.Deposit(buyer, eth(50))

	now := time.Now()
	id, err := ledger.CreateMortgage(seller, now, eth(10), collection, tokenID, eth(3), eth(2), 4, common.Address{})
	require.NoError(t, err)
	require.NoError(t, ledger.RequestMortgage(buyer, now, id, eth(3)))

	return NewApiController(ledger, &lib.LoggerMock{}), ledger
}

func get(t *testing.T, server *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	res := httptest.NewRecorder()
	server.ServeHTTP(res, req)
	return res
}

func TestHealthCheck(t *testing.T) {
	server, _ := setupServer(t)

	res := get(t, server, "/healthcheck")
	require.Equal(t, http.StatusOK, res.Code)
	assert.NotEmpty(t, res.Header().Get("X-Request-ID"))

	var body HealthCheckResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.False(t, body.Halted)
}

func TestListMortgages(t *testing.T) {
	server, _ := setupServer(t)

	res := get(t, server, "/mortgages")
	require.Equal(t, http.StatusOK, res.Code)

	var body MortgagesResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, uint64(1), body.Mortgages[0].ID)
	assert.Equal(t, "active", body.Mortgages[0].Status)
	assert.Equal(t, "native", body.Mortgages[0].SettlementAsset)
	assert.NotNil(t, body.Mortgages[0].LastPayment)
}

func TestGetMortgage(t *testing.T) {
	server, _ := setupServer(t)

	res := get(t, server, "/mortgages/1")
	require.Equal(t, http.StatusOK, res.Code)

	var body Mortgage
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, uint64(1), body.ID)
	assert.Equal(t, eth(10).String(), body.Price)

	assert.Equal(t, http.StatusNotFound, get(t, server, "/mortgages/42").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, server, "/mortgages/abc").Code)
}

func TestGetMortgageSummary(t *testing.T) {
	server, _ := setupServer(t)

	res := get(t, server, "/mortgages/1/summary")
	require.Equal(t, http.StatusOK, res.Code)

	var body mortgagemanager.Summary
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "active", body.Status)
	assert.Equal(t, eth(9).String(), body.FinalBalance)
	assert.NotNil(t, body.NextDueDate)
}

func TestListEvents(t *testing.T) {
	server, _ := setupServer(t)

	res := get(t, server, "/events")
	require.Equal(t, http.StatusOK, res.Code)

	var body EventsResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Equal(t, 2, body.Total)
	assert.Equal(t, "mortgageCreated", body.Events[0].Name)
	assert.Equal(t, "mortgageRequested", body.Events[1].Name)
	assert.Equal(t, eth(3).String(), body.Events[1].Amount)
}
