package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entttom/quartabill/internal/server"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config, nil)
}

func sampleRequest() map[string]interface{} {
	return map[string]interface{}{
		"customer": map[string]interface{}{
			"name":    "Praxis Dr. Berger",
			"address": "Hauptplatz 5\n6060 Hall in Tirol",
			"line_items": []map[string]interface{}{
				{
					"description": "Betreuung [Quartal]/[Jahr]",
					"quantity":    10,
					"unit":        "Std.",
					"unit_price":  50,
					"tax_type":    "mixed",
				},
			},
		},
		"issuer": map[string]interface{}{
			"name":          "Dr. Thomas Entner",
			"address":       "Mustergasse 1\n6020 Innsbruck",
			"iban":          "AT61 1904 3002 3457 3201",
			"payment_terms": 14,
		},
		"invoice": map[string]interface{}{
			"invoice_number": "0124BE",
			"quarter":        "Q1",
			"year":           2024,
			"date":           "2024-01-08",
		},
	}
}

func postJSON(t *testing.T, srv *server.Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestRenderEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/v1/invoices/render", sampleRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "1", w.Header().Get("X-Page-Count"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "0124BE_Praxis_Dr__Berger.pdf")
	require.True(t, w.Body.Len() > 4)
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestRenderEndpoint_EmptyBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/render", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderEndpoint_InvalidQuarter(t *testing.T) {
	srv := newTestServer()

	body := sampleRequest()
	body["invoice"].(map[string]interface{})["quarter"] = "Q7"
	w := postJSON(t, srv, "/api/v1/invoices/render", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Details, "quarter")
}

func TestBreakdownEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/v1/invoices/breakdown", sampleRequest())

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.BreakdownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "500.00", response.Subtotal)
	assert.Equal(t, "90.00", response.VAT)
	assert.Equal(t, "590.00", response.Total)
	require.Len(t, response.Groups, 1)
	assert.Equal(t, "mixed", response.Groups[0].Key)
}

func TestFileNameEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/v1/invoices/filename", sampleRequest())

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.FileNameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "0124BE_Praxis_Dr__Berger.pdf", response.FileName)
	assert.Equal(t, "0124BE_Praxis_Dr__Berger.eml", response.EMLName)
}
