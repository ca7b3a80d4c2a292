package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookstore-integration/internal/application/book"
	appdelivery "github.com/xiebiao/bookstore-integration/internal/application/delivery"
	apporder "github.com/xiebiao/bookstore-integration/internal/application/order"
	"github.com/xiebiao/bookstore-integration/internal/domain/book"
	"github.com/xiebiao/bookstore-integration/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/middleware"
)

const testAPIKey = "test-api-key"

type fixture struct {
	router      *gin.Engine
	bookStore   *memory.BookStore
	orderLedger *memory.OrderLedger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	bookStore := memory.NewBookStore([]*book.Book{
		{ID: "b1", Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Price: 42.5, Stock: 5},
		{ID: "b2", Title: "The Go Programming Language", Stock: 0},
	})
	orderLedger := memory.NewOrderLedger(nil)
	deliveryLedger := memory.NewDeliveryLedger(nil)

	bookHandler := handler.NewBookHandler(
		appbook.NewListBooksUseCase(bookStore),
		appbook.NewGetBookUseCase(bookStore),
	)
	orderHandler := handler.NewOrderHandler(
		apporder.NewPlaceOrderUseCase(bookStore, orderLedger),
	)
	deliveryHandler := handler.NewDeliveryHandler(
		appdelivery.NewRecordDeliveryUseCase(deliveryLedger),
	)

	router := NewRouter(gin.TestMode, bookHandler, orderHandler, deliveryHandler,
		middleware.NewAPIKeyMiddleware(testAPIKey))

	return &fixture{router: router, bookStore: bookStore, orderLedger: orderLedger}
}

func (f *fixture) do(method, path, body, apiKey string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHomeIsPublic(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bookstore Integration API Running")
}

func TestPingIsPublic(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSwaggerUIServed(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/swagger/index.html", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyRequired(t *testing.T) {
	f := newFixture(t)

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/books", ""},
		{http.MethodGet, "/api/books/b1", ""},
		{http.MethodPost, "/api/orders", `{"book_id":"b1","quantity":1,"customer":"alice"}`},
		{http.MethodPost, "/api/delivery/update", `{"order_id":"o1","address":"somewhere"}`},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			missing := f.do(r.method, r.path, r.body, "")
			assert.Equal(t, http.StatusUnauthorized, missing.Code)
			assert.Equal(t, "Unauthorized - Invalid API Key", errorMessage(t, missing))

			wrong := f.do(r.method, r.path, r.body, "wrong-key")
			assert.Equal(t, http.StatusUnauthorized, wrong.Code)
		})
	}

	// Rejected writes performed no side effect.
	orders, err := f.orderLedger.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)

	b, err := f.bookStore.FindByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, 5, b.Stock)
}

func TestListBooks(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/books", "", testAPIKey)
	require.Equal(t, http.StatusOK, rec.Code)

	var books []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	require.Len(t, books, 2)
	assert.Equal(t, "b1", books[0]["id"])
	assert.Equal(t, "b2", books[1]["id"])
}

func TestGetBook(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/books/b1", "", testAPIKey)
	require.Equal(t, http.StatusOK, rec.Code)

	var b map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, "b1", b["id"])
	assert.Equal(t, "The Pragmatic Programmer", b["title"])
	assert.EqualValues(t, 5, b["stock"])

	// Repeated reads return identical data absent intervening mutation.
	again := f.do(http.MethodGet, "/api/books/b1", "", testAPIKey)
	assert.Equal(t, rec.Body.String(), again.Body.String())
}

func TestGetBookNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/books/unknown", "", testAPIKey)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Book not found", errorMessage(t, rec))
}

func TestPlaceOrder(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/orders", `{"book_id":"b1","quantity":2,"customer":"alice"}`, testAPIKey)
	require.Equal(t, http.StatusCreated, rec.Code)

	var o map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
	assert.NotEmpty(t, o["order_id"])
	assert.Equal(t, "b1", o["book_id"])
	assert.EqualValues(t, 2, o["quantity"])
	assert.Equal(t, "alice", o["customer"])
	assert.Equal(t, "PAID", o["status"])

	b, err := f.bookStore.FindByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Stock)
}

func TestPlaceOrderDrainsStockThenRejects(t *testing.T) {
	f := newFixture(t)
	body := `{"book_id":"b1","quantity":5,"customer":"alice"}`

	first := f.do(http.MethodPost, "/api/orders", body, testAPIKey)
	require.Equal(t, http.StatusCreated, first.Code)

	b, err := f.bookStore.FindByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, 0, b.Stock)

	second := f.do(http.MethodPost, "/api/orders", body, testAPIKey)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, "Insufficient stock", errorMessage(t, second))
}

func TestPlaceOrderValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing body", "", "JSON body is required"},
		{"invalid json", `{"book_id":`, "JSON body is required"},
		{"all fields missing", `{}`, "Missing fields: book_id, quantity, customer"},
		{"missing customer", `{"book_id":"b1","quantity":1}`, "Missing fields: customer"},
		{"zero quantity counts as missing", `{"book_id":"b1","quantity":0,"customer":"alice"}`, "Missing fields: quantity"},
		{"negative quantity counts as missing", `{"book_id":"b1","quantity":-2,"customer":"alice"}`, "Missing fields: quantity"},
		{"unknown book conflates to insufficient stock", `{"book_id":"ghost","quantity":1,"customer":"alice"}`, "Insufficient stock"},
		{"zero-stock book", `{"book_id":"b2","quantity":1,"customer":"alice"}`, "Insufficient stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/api/orders", tt.body, testAPIKey)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}

	// None of the rejected requests left a trace.
	orders, err := f.orderLedger.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)

	b, err := f.bookStore.FindByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, 5, b.Stock)
}

func TestUpdateDelivery(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/delivery/update", `{"order_id":"o1","address":"221B Baker Street"}`, testAPIKey)
	require.Equal(t, http.StatusCreated, rec.Code)

	var d map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.NotEmpty(t, d["delivery_id"])
	assert.Equal(t, "o1", d["order_id"])
	assert.Equal(t, "221B Baker Street", d["address"])
	assert.Equal(t, "READY_FOR_DISPATCH", d["status"])
}

func TestUpdateDeliveryValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing body", "", "JSON body is required"},
		{"all fields missing", `{}`, "Missing fields: order_id, address"},
		{"missing address", `{"order_id":"o1"}`, "Missing fields: address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodPost, "/api/delivery/update", tt.body, testAPIKey)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	f := newFixture(t)

	orderIDs := make(map[string]struct{})
	deliveryIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		rec := f.do(http.MethodPost, "/api/orders", `{"book_id":"b1","quantity":1,"customer":"alice"}`, testAPIKey)
		require.Equal(t, http.StatusCreated, rec.Code)
		var o map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
		id := o["order_id"].(string)
		_, dup := orderIDs[id]
		require.False(t, dup, "order id %s repeated", id)
		orderIDs[id] = struct{}{}

		rec = f.do(http.MethodPost, "/api/delivery/update", `{"order_id":"o1","address":"x"}`, testAPIKey)
		require.Equal(t, http.StatusCreated, rec.Code)
		var d map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		id = d["delivery_id"].(string)
		_, dup = deliveryIDs[id]
		require.False(t, dup, "delivery id %s repeated", id)
		deliveryIDs[id] = struct{}{}
	}
}
