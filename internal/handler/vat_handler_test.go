package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"financialtools/internal/service"
	"financialtools/pkg/money"
	"financialtools/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc service.VATService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewVATHandler(svc).RegisterRoutes(r.Group(""))
	return r
}

func do(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	return w, decoded
}

func TestVATHandler_ListBands(t *testing.T) {
	r := newTestRouter(service.NewVATService())

	w, body := do(t, r, http.MethodGet, "/api/vat/bands", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["status"])

	bands, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, bands, 8)
}

func TestVATHandler_Quote(t *testing.T) {
	r := newTestRouter(service.NewVATService())

	w, body := do(t, r, http.MethodPost, "/api/vat/quote", `{"amount":"100","basis":"INCLUSIVE","vat_rate":0.2}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, 83.33, data["excluding_vat"])
	assert.Equal(t, 100.0, data["including_vat"])
	assert.NotContains(t, data, "value")

	record := data["record"].(map[string]any)
	assert.Equal(t, 0.2, record["vatRate"])
	assert.Equal(t, true, record["isAssujetti"])
}

func TestVATHandler_Quote_NotAssujetti(t *testing.T) {
	r := newTestRouter(service.NewVATService())

	w, body := do(t, r, http.MethodPost, "/api/vat/quote", `{"amount":"42.5","basis":"EXCLUSIVE","is_assujetti":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, 42.5, data["value"])
	assert.NotContains(t, data, "including_vat")
	assert.NotContains(t, data, "excluding_vat")
}

func TestVATHandler_Quote_Errors(t *testing.T) {
	r := newTestRouter(service.NewVATService())

	cases := []struct {
		name string
		body string
		code string
	}{
		{name: "unknown band", body: `{"amount":"10","basis":"EXCLUSIVE","vat_rate":0.0825}`, code: "invalid_argument"},
		{name: "negative amount", body: `{"amount":"-0.01","basis":"EXCLUSIVE"}`, code: "invalid_argument"},
		{name: "bad basis", body: `{"amount":"10","basis":"GROSS"}`},
		{name: "missing amount", body: `{"basis":"EXCLUSIVE"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := do(t, r, http.MethodPost, "/api/vat/quote", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", body["status"])
			if tc.code != "" {
				assert.Equal(t, tc.code, body["code"])
			}
		})
	}
}

func TestVATHandler_Convert(t *testing.T) {
	r := newTestRouter(service.NewVATService())

	w, body := do(t, r, http.MethodPost, "/api/vat/convert", `{"amount":"90","direction":"TO_INCLUSIVE","vat_rate":0.2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 108.0, body["data"].(map[string]any)["rounded"])

	w, _ = do(t, r, http.MethodPost, "/api/vat/convert", `{"amount":"90","direction":"TO_INCLUSIVE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVATHandler_DecodeRecord(t *testing.T) {
	r := newTestRouter(service.NewVATService())

	w, body := do(t, r, http.MethodPost, "/api/amounts/decode", `{"amountExcludingVat":50,"vatRate":0.055,"isAssujetti":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, 52.75, data["including_vat"])
	assert.Equal(t, "5.5%", data["vat_label"])

	w, body = do(t, r, http.MethodPost, "/api/amounts/decode", `{"amountExcludingVat":50,"vatRate":0.0825,"isAssujetti":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_argument", body["code"])
}

func TestVATHandler_DecodeRecord_RejectsIncompleteRecords(t *testing.T) {
	r := newTestRouter(service.NewVATService())

	for _, payload := range []string{
		`{}`,
		`{"amount_excluding_vat":120,"vat_rate":0.2,"is_assujetti":true}`,
		`{"amountExcludingVat":120,"vatRate":0.2}`,
	} {
		w, body := do(t, r, http.MethodPost, "/api/amounts/decode", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
		assert.Equal(t, "invalid_argument", body["code"], payload)
		assert.NotContains(t, body, "data", payload)
	}

	w, _ := do(t, r, http.MethodPost, "/api/amounts/decode", `{"amountExcludingVat":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVATHandler_DescribeRate(t *testing.T) {
	r := newTestRouter(service.NewVATService())

	w, body := do(t, r, http.MethodGet, "/api/rates/describe?default_percentage=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, 0.1, data["rate"])
	assert.Equal(t, "10,00%", data["label"])

	w, body = do(t, r, http.MethodGet, "/api/rates/describe?rate=1.2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "120,00%", body["data"].(map[string]any)["label"])

	w, body = do(t, r, http.MethodGet, "/api/rates/describe", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "rate_absent", body["code"])

	w, body = do(t, r, http.MethodGet, "/api/rates/describe?percentage=20&default_rate=0.1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "20,00%", body["data"].(map[string]any)["label"])

	w, _ = do(t, r, http.MethodGet, "/api/rates/describe?rate=ten", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type failingVATService struct {
	service.VATService
	err error
}

func (f failingVATService) Quote(context.Context, service.QuoteRequest) (service.AmountResponse, error) {
	return service.AmountResponse{}, f.err
}

func TestVATHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{err: fmt.Errorf("%w: use Value()", money.ErrAmbiguity), status: http.StatusConflict, code: "ambiguity"},
		{err: fmt.Errorf("%w: nope", money.ErrInvalidArgument), status: http.StatusBadRequest, code: "invalid_argument"},
		{err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		r := newTestRouter(failingVATService{err: tc.err})
		w, body := do(t, r, http.MethodPost, "/api/vat/quote", `{"amount":"1","basis":"EXCLUSIVE"}`)

		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		var resp response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tc.status, resp.StatusCode)
		if tc.code != "" {
			assert.Equal(t, tc.code, body["code"])
		}
	}
}
