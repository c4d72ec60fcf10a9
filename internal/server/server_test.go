package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smallbiznis/feefeefee/internal/config"
	formdomain "github.com/smallbiznis/feefeefee/internal/form/domain"
	formservice "github.com/smallbiznis/feefeefee/internal/form/service"
	"github.com/smallbiznis/feefeefee/internal/observability"
	obsmetrics "github.com/smallbiznis/feefeefee/internal/observability/metrics"
	"github.com/smallbiznis/feefeefee/internal/receipt"
	"github.com/smallbiznis/feefeefee/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	router *gin.Engine
	form   formdomain.Service
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	settings := config.NewStaticCalculatorConfig(config.DefaultCalculatorConfig())

	form := formservice.New(formservice.Params{
		Log:      zap.NewNop(),
		GenID:    node,
		Store:    memory.New(),
		Settings: settings,
	})

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	NewServer(ServerParams{
		Gin:      router,
		Log:      zap.NewNop(),
		Form:     form,
		Settings: settings,
		Receipts: receipt.NewRenderer(),
	})
	return testServer{router: router, form: form}
}

func (ts testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	ts.router.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out.Data
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var out errorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out.Error
}

func TestFormLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/form", "")
	require.Equal(t, http.StatusOK, resp.Code)
	view := decode[formdomain.View](t, resp)
	require.Len(t, view.Items, 1)
	assert.Equal(t, config.DefaultReportURL, view.ReportURL)
	firstID := view.Items[0].ID

	resp = ts.do(t, http.MethodPost, "/api/form/items", "")
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Len(t, ts.form.State().Items, 2)

	resp = ts.do(t, http.MethodPatch, "/api/form/items/"+firstID, `{"value":"12,5"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	edited := decode[editItemResponse](t, resp)
	assert.True(t, edited.Result.Committed)
	assert.Equal(t, "12.5", edited.Result.Item.Value)
	assert.Equal(t, 12.5, edited.Form.Totals.Nominal)

	resp = ts.do(t, http.MethodPatch, "/api/form/items/"+firstID, `{"value":"1,,2"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	edited = decode[editItemResponse](t, resp)
	assert.False(t, edited.Result.Committed)
	assert.Equal(t, "1,,2", edited.Result.Pending)
	assert.Equal(t, "12.5", edited.Result.Item.Value)

	resp = ts.do(t, http.MethodPatch, "/api/form/items/"+firstID, `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = ts.do(t, http.MethodDelete, "/api/form/items/"+firstID, "")
	require.Equal(t, http.StatusOK, resp.Code)

	lastID := ts.form.State().Items[0].ID
	resp = ts.do(t, http.MethodDelete, "/api/form/items/"+lastID, "")
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "last_item", decodeError(t, resp).Type)

	resp = ts.do(t, http.MethodDelete, "/api/form/items/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = ts.do(t, http.MethodDelete, "/api/form", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[formdomain.View](t, resp).Items, 1)
}

func TestEditItem_OversizedValueKeepsFormReadable(t *testing.T) {
	ts := newTestServer(t)
	id := ts.form.State().Items[0].ID

	resp := ts.do(t, http.MethodPut, "/api/fee/query", `{"query":"vat"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.do(t, http.MethodPatch, "/api/form/items/"+id, `{"value":"1.7e308"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	edited := decode[editItemResponse](t, resp)
	assert.False(t, edited.Result.Committed)
	assert.Equal(t, "1.7e308", edited.Result.Pending)

	resp = ts.do(t, http.MethodGet, "/api/form", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 0.0, decode[formdomain.View](t, resp).Totals.Actual)

	resp = ts.do(t, http.MethodPut, "/api/fee/query", `{"query":"1e300"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = ts.do(t, http.MethodPatch, "/api/form/items/"+id, `{"value":"1000"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, decode[editItemResponse](t, resp).Result.Committed)

	resp = ts.do(t, http.MethodGet, "/api/form", "")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestSubmitFee_InvalidPlaceIsLocalized(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPut, "/api/language", `{"lang":"ru"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.do(t, http.MethodPost, "/api/fee/submit", `{"text":"Nowhere"}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	payload := decodeError(t, resp)
	assert.Equal(t, "invalid_place", payload.Type)
	assert.Equal(t, "Введённое вами (Nowhere) не является числом или известным нам кафе.", payload.Message)
}

func TestSubmitAndConfirmFee(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/fee/submit", `{"text":"15"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "+15%", ts.form.View().Badge)

	resp = ts.do(t, http.MethodPost, "/api/fee/confirm", `{"slug":"khinkali-house"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "14", ts.form.State().Query)
	assert.Equal(t, "Khinkali House", ts.form.State().Display)

	resp = ts.do(t, http.MethodPost, "/api/fee/confirm", `{"name":"Cafe Stamba"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "vat", ts.form.State().Query)

	resp = ts.do(t, http.MethodPost, "/api/fee/confirm", `{"slug":"missing"}`)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = ts.do(t, http.MethodPost, "/api/fee/confirm", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = ts.do(t, http.MethodPut, "/api/fee/query", `{"query":"Khin"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "", ts.form.View().Badge)
}

func TestGetFee(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/fee?q=VAT", "")
	require.Equal(t, http.StatusOK, resp.Code)
	got := decode[feeResponse](t, resp)
	assert.True(t, got.Fee.Set)
	assert.Equal(t, 0.18, got.Fee.Ratio)
	assert.Equal(t, "+18%", got.Badge)

	assert.Equal(t, "", ts.form.State().Query)
}

func TestListPlaces(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/places?q=vat&lang=en", "")
	require.Equal(t, http.StatusOK, resp.Code)
	got := decode[placesResponse](t, resp)
	require.NotEmpty(t, got.Options)
	assert.Equal(t, "vat", got.Options[0].Slug)
	assert.Contains(t, got.Summary, "results are available")

	resp = ts.do(t, http.MethodGet, "/api/places", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[placesResponse](t, resp).Options, 21)
}

func TestGetMessage(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/messages/price?lang=ka&arg=5", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "5 ₾", decode[messageResponse](t, resp).Text)

	req := httptest.NewRequest(http.MethodGet, "/api/messages/formFooterSum", nil)
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Сумма:", decode[messageResponse](t, w).Text)

	resp = ts.do(t, http.MethodGet, "/api/messages/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestLanguages(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPut, "/api/language", `{"lang":"de"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	got := decode[setLanguageResponse](t, resp)
	assert.False(t, got.Changed)
	assert.Equal(t, "en", string(got.Lang))

	resp = ts.do(t, http.MethodPut, "/api/language", `{"lang":"ka"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, decode[setLanguageResponse](t, resp).Changed)

	resp = ts.do(t, http.MethodGet, "/api/languages", "")
	require.Equal(t, http.StatusOK, resp.Code)
	langs := decode[languagesResponse](t, resp)
	assert.Equal(t, "ka", string(langs.Current))
	assert.Len(t, langs.Others, 2)
	assert.Len(t, langs.All, 3)
}

func TestRenderReceipt(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/form/receipt.pdf", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF")))
}

func TestNewEngine_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	httpMetrics, err := obsmetrics.NewHTTPMetrics(prometheus.NewRegistry(), obsmetrics.Config{})
	require.NoError(t, err)

	r := NewEngine(observability.Config{}, httpMetrics)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestMapError(t *testing.T) {
	status, payload := mapError(ErrInvalidRequest, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation_error", payload.Type)

	status, _ = mapError(assert.AnError, "")
	assert.Equal(t, http.StatusInternalServerError, status)

	errType, code := classifyErrorForLog(formdomain.ErrLastItem)
	assert.Equal(t, "last_item", errType)
	assert.Equal(t, "last_item", code)
}
