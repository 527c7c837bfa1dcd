package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	dombilling "example.com/bookbarn/app/internal/domain/billing"
	domcart "example.com/bookbarn/app/internal/domain/cart"
	dompayment "example.com/bookbarn/app/internal/domain/payment"
	billinguc "example.com/bookbarn/app/internal/usecase/billing"
	cartuc "example.com/bookbarn/app/internal/usecase/cart"
	checkoutuc "example.com/bookbarn/app/internal/usecase/checkout"
)

type fakeCartStore struct {
	nextID int64
	lines  map[string]map[int64]*domcart.Line // email -> bookID -> line
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{lines: make(map[string]map[int64]*domcart.Line)}
}

func (f *fakeCartStore) AddOrUpdate(ctx context.Context, line domcart.Line) (*domcart.Line, error) {
	if f.lines[line.Email] == nil {
		f.lines[line.Email] = make(map[int64]*domcart.Line)
	}
	if existing, ok := f.lines[line.Email][line.BookID]; ok {
		existing.Count = line.Count
		copied := *existing
		return &copied, nil
	}
	f.nextID++
	line.ID = f.nextID
	f.lines[line.Email][line.BookID] = &line
	copied := line
	return &copied, nil
}

func (f *fakeCartStore) SetCount(ctx context.Context, email string, lineID int64, count int64) error {
	for _, line := range f.lines[email] {
		if line.ID == lineID {
			line.Count = count
			return nil
		}
	}
	return domcart.ErrLineNotFound
}

func (f *fakeCartStore) Remove(ctx context.Context, email string, lineID int64) error {
	for bookID, line := range f.lines[email] {
		if line.ID == lineID {
			delete(f.lines[email], bookID)
			return nil
		}
	}
	return domcart.ErrLineNotFound
}

func (f *fakeCartStore) ListFor(ctx context.Context, email string) ([]domcart.Line, error) {
	var result []domcart.Line
	for _, line := range f.lines[email] {
		result = append(result, *line)
	}
	return result, nil
}

func (f *fakeCartStore) ClearFor(ctx context.Context, email string) error {
	delete(f.lines, email)
	return nil
}

type fakeBillingStore struct {
	records []dombilling.Record
}

func (f *fakeBillingStore) Append(ctx context.Context, record dombilling.Record) (*dombilling.Record, error) {
	for _, existing := range f.records {
		if existing.TransactionID == record.TransactionID {
			return nil, dombilling.ErrDuplicateTransaction
		}
	}
	record.ID = int64(len(f.records) + 1)
	f.records = append(f.records, record)
	return &record, nil
}

func (f *fakeBillingStore) ListFor(ctx context.Context, email string) ([]dombilling.Record, error) {
	var result []dombilling.Record
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].Email == email {
			result = append(result, f.records[i])
		}
	}
	return result, nil
}

type fakePaymentGateway struct {
	redirectURL string
	err         error
	calls       int
}

func (f *fakePaymentGateway) CreateSession(ctx context.Context, session dompayment.Session) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.redirectURL, nil
}

func newTestAPI(cartStore *fakeCartStore, billingStore *fakeBillingStore, gateway *fakePaymentGateway) *API {
	return NewAPI(Dependencies{
		CartService: cartuc.NewService(cartStore),
		CheckoutService: checkoutuc.NewService(cartStore, billingStore, gateway, checkoutuc.Config{
			PublicBaseURL: "http://localhost:8157",
			FrontendURL:   "http://localhost:5173",
		}),
		BillingService: billinguc.NewService(billingStore),
		FrontendURL:    "http://localhost:5173",
	})
}

func doJSON(t *testing.T, api *API, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	return rec
}

func TestListCart_RequiresEmail(t *testing.T) {
	api := newTestAPI(newFakeCartStore(), &fakeBillingStore{}, &fakePaymentGateway{})

	rec := doJSON(t, api, http.MethodGet, "/carts", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCartLine_ThenList(t *testing.T) {
	api := newTestAPI(newFakeCartStore(), &fakeBillingStore{}, &fakePaymentGateway{})

	rec := doJSON(t, api, http.MethodPost, "/carts", map[string]any{
		"email":  "a@b.com",
		"bookId": 10,
		"count":  2,
		"title":  "Calculus",
		"author": "Stewart",
		"price":  500,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	require.Equal(t, float64(2), stored["count"])
	require.NotZero(t, stored["_id"])

	rec = doJSON(t, api, http.MethodGet, "/carts?email=a@b.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var lines []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	require.Equal(t, "Calculus", lines[0]["title"])
}

func TestAddCartLine_MissingFields(t *testing.T) {
	api := newTestAPI(newFakeCartStore(), &fakeBillingStore{}, &fakePaymentGateway{})

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "missing email", payload: map[string]any{"bookId": 10}},
		{name: "missing bookId", payload: map[string]any{"email": "a@b.com"}},
		{name: "bad email", payload: map[string]any{"email": "not-an-email", "bookId": 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, api, http.MethodPost, "/carts", tt.payload)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAddCartLine_SecondAddOverwritesCount(t *testing.T) {
	store := newFakeCartStore()
	api := newTestAPI(store, &fakeBillingStore{}, &fakePaymentGateway{})

	rec := doJSON(t, api, http.MethodPost, "/carts", map[string]any{"email": "a@b.com", "bookId": 10, "count": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, api, http.MethodPost, "/carts", map[string]any{"email": "a@b.com", "bookId": 10, "count": 7})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, store.lines["a@b.com"], 1)
	require.Equal(t, int64(7), store.lines["a@b.com"][10].Count)
}

func TestUpdateCartCount(t *testing.T) {
	store := newFakeCartStore()
	api := newTestAPI(store, &fakeBillingStore{}, &fakePaymentGateway{})

	rec := doJSON(t, api, http.MethodPost, "/carts", map[string]any{"email": "a@b.com", "bookId": 10, "count": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	var stored map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	lineID := int64(stored["_id"].(float64))

	rec = doJSON(t, api, http.MethodPut, fmt.Sprintf("/carts/%d?email=a@b.com", lineID), map[string]any{"count": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(4), store.lines["a@b.com"][10].Count)
}

func TestUpdateCartCount_Failures(t *testing.T) {
	store := newFakeCartStore()
	api := newTestAPI(store, &fakeBillingStore{}, &fakePaymentGateway{})

	rec := doJSON(t, api, http.MethodPut, "/carts/1?email=a@b.com", map[string]any{"count": 4})
	require.Equal(t, http.StatusNotFound, rec.Code, "unknown line")

	rec = doJSON(t, api, http.MethodPut, "/carts/1", map[string]any{"count": 4})
	require.Equal(t, http.StatusBadRequest, rec.Code, "missing email")

	_ = doJSON(t, api, http.MethodPost, "/carts", map[string]any{"email": "a@b.com", "bookId": 10, "count": 2})
	rec = doJSON(t, api, http.MethodPut, "/carts/1?email=a@b.com", map[string]any{"count": 0})
	require.Equal(t, http.StatusBadRequest, rec.Code, "zero count must be rejected, remove is the delete path")
	require.Equal(t, int64(2), store.lines["a@b.com"][10].Count)
}

func TestRemoveCartLine(t *testing.T) {
	store := newFakeCartStore()
	api := newTestAPI(store, &fakeBillingStore{}, &fakePaymentGateway{})

	rec := doJSON(t, api, http.MethodPost, "/carts", map[string]any{"email": "a@b.com", "bookId": 10, "count": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, api, http.MethodDelete, "/carts/1?email=a@b.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, store.lines["a@b.com"])

	// Deleting again surfaces not-found.
	rec = doJSON(t, api, http.MethodDelete, "/carts/1?email=a@b.com", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
