package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
	"github.com/sbilibin2017/rewipay-ledger/internal/repositories"
	"github.com/sbilibin2017/rewipay-ledger/internal/services"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := repositories.NewDocumentFileRepository(filepath.Join(t.TempDir(), "database.json"))
	uow := repositories.NewUnitOfWork(store)

	accounts := repositories.NewAccountRepository(uow, models.DefaultInitialBalance)
	transactions := repositories.NewTransactionRepository(uow)

	ledger := services.NewLedgerService(uow, accounts, transactions, nil, services.DefaultListLimit)

	return NewRouter(Services{
		Ledger:      ledger,
		Catalog:     services.NewCatalogService(nil),
		Flights:     services.NewFlightService(ledger, repositories.NewFlightBookingRepository(uow)),
		Hotels:      services.NewHotelService(ledger, repositories.NewHotelBookingRepository(uow)),
		Marketplace: services.NewMarketplaceService(ledger, repositories.NewMarketplacePurchaseRepository(uow), repositories.NewMarketplaceOrderRepository(uow)),
		Utility:     services.NewUtilityService(ledger, repositories.NewUtilityBillRepository(uow)),
	}, []string{"*"})
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp map[string]any
	if rr.Body.Len() > 0 && rr.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr.Code, resp
}

func TestRouter_FlightBookingFlow(t *testing.T) {
	h := newTestRouter(t)

	code, resp := do(t, h, http.MethodGet, "/api/user/0xABC/balance", "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 10000, resp["balance"])

	code, resp = do(t, h, http.MethodPost, "/api/flights/book", `{
		"walletAddress": "0xABC", "flightId": "FL1000", "from": "DEL", "to": "BOM",
		"departureDate": "2025-07-01", "passengers": 1, "totalPrice": 500
	}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.EqualValues(t, 1, resp["bookingId"])
	assert.EqualValues(t, 9500, resp["newBalance"])

	req := httptest.NewRequest(http.MethodGet, "/api/user/0xABC/transactions", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var txns []models.Transaction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &txns))
	require.Len(t, txns, 1)
	assert.Equal(t, models.TransactionTypeFlightBooking, txns[0].Type)
	assert.True(t, txns[0].Amount.Equal(dec("-500")))
	assert.Equal(t, "Flight booking: DEL to BOM", txns[0].Description)

	code, resp = do(t, h, http.MethodGet, "/api/flights/bookings/0xABC", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp["bookings"], 1)
}

func TestRouter_InsufficientBalanceLeavesStateUnchanged(t *testing.T) {
	h := newTestRouter(t)

	code, resp := do(t, h, http.MethodPost, "/api/marketplace/purchase", `{
		"walletAddress": "0xLOW", "productId": "p-1", "productName": "Laptop", "price": 20000
	}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Insufficient balance", resp["error"])
	assert.EqualValues(t, 20000, resp["required"])
	assert.EqualValues(t, 10000, resp["available"])

	code, resp = do(t, h, http.MethodGet, "/api/user/0xLOW/balance", "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 10000, resp["balance"])

	code, resp = do(t, h, http.MethodGet, "/api/marketplace/orders/0xLOW", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp["orders"])
}

func TestRouter_AddressesAreCaseSensitive(t *testing.T) {
	h := newTestRouter(t)

	code, _ := do(t, h, http.MethodPost, "/api/user/0xABC/balance", `{"amount": 50}`)
	require.Equal(t, http.StatusOK, code)

	_, resp := do(t, h, http.MethodGet, "/api/user/0xABC/balance", "")
	assert.EqualValues(t, 50, resp["balance"])

	_, resp = do(t, h, http.MethodGet, "/api/user/0xabc/balance", "")
	assert.EqualValues(t, 10000, resp["balance"])
}

func TestRouter_Transfer(t *testing.T) {
	h := newTestRouter(t)

	code, resp := do(t, h, http.MethodPost, "/api/user/0xA/transfer", `{"toWalletAddress": "0xB", "amount": 1500, "note": "dinner"}`)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 8500, resp["newBalance"])

	_, resp = do(t, h, http.MethodGet, "/api/user/0xB/balance", "")
	assert.EqualValues(t, 11500, resp["balance"])
}

func TestRouter_UtilityFlow(t *testing.T) {
	h := newTestRouter(t)

	code, resp := do(t, h, http.MethodPost, "/api/utility/fetch-bill", `{"walletAddress":"0xABC","billerId":"water","customerId":"A1"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.Regexp(t, `^\d+\.\d{2}$`, resp["amount"])

	code, resp = do(t, h, http.MethodPost, "/api/utility/pay-bill", `{
		"walletAddress":"0xABC","billerId":"water","billerName":"Jal Board","customerId":"A1","amount":140
	}`)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, resp["paymentId"])
	assert.EqualValues(t, 9860, resp["newBalance"])

	code, resp = do(t, h, http.MethodGet, "/api/utility/bills/0xABC", "")
	require.Equal(t, http.StatusOK, code)
	bills, ok := resp["bills"].([]any)
	require.True(t, ok)
	require.Len(t, bills, 1)
	assert.Equal(t, "paid", bills[0].(map[string]any)["status"])
}

func TestRouter_CatalogAndHealth(t *testing.T) {
	h := newTestRouter(t)

	code, resp := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp["status"])

	code, resp = do(t, h, http.MethodPost, "/api/flights/search", `{"from":"DEL","to":"BOM","date":"2025-07-01"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp["flights"], 8)

	code, resp = do(t, h, http.MethodPost, "/api/hotels/search", `{"city":"Goa","checkIn":"2025-07-01","checkOut":"2025-07-02","rooms":1,"guests":2}`)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp["hotels"], 10)

	req := httptest.NewRequest(http.MethodGet, "/api/airports/india", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var airports []models.Airport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &airports))
	assert.Len(t, airports, 12)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
