package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opscore/internal/core/state"
	"opscore/pkg/logger"
)

func newTestRouter(t *testing.T) (http.Handler, *state.Store) {
	t.Helper()
	store := state.New()
	router := NewRouter(RouterConfig{Store: store, Logger: logger.Nop()})
	return router, store
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/health/live", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/health/ready", nil).Code)
}

func TestListItemsReturnsSeed(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/inventory/items", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 4)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRecordStockMoveEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory/stock-moves", map[string]any{
		"itemId":         "itm-1918c0de01-0001",
		"qty":            40,
		"fromLocationId": "loc-1918c0de01-0001",
		"toLocationId":   "loc-1918c0de01-0002",
		"refType":        "Adjustment",
		"refId":          "manual",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var move map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &move))
	assert.Equal(t, "itm-1918c0de01-0001", move["itemId"])
}

func TestValidationErrorEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	// itemId is required.
	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory/stock-moves", map[string]any{
		"qty": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestNotFoundErrorEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/mes/production-orders/prd-missing/release", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "ProductionOrder prd-missing not found", body["message"])
}

func TestAdminResetRestoresSeed(t *testing.T) {
	router, store := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory/stock-moves", map[string]any{
		"itemId":         "itm-1918c0de01-0001",
		"qty":            100,
		"fromLocationId": "loc-1918c0de01-0001",
		"refType":        "Adjustment",
		"refId":          "manual",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	store.View(func(snap *state.Snapshot) {
		assert.Len(t, snap.Inventory.StockMoves, 1)
		assert.Equal(t, "500", snap.Inventory.StockLots[0].Qty.String())
	})
}
