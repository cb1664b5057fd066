package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hotelops/booking-ledger/internal/config"
	"github.com/hotelops/booking-ledger/internal/domain"
	httphandler "github.com/hotelops/booking-ledger/internal/http"
	"github.com/hotelops/booking-ledger/internal/idempotency"
	"github.com/hotelops/booking-ledger/internal/observability"
	"github.com/hotelops/booking-ledger/internal/rateLimit"
)

func newTestServer(t *testing.T) (*httptest.Server, *domain.Ledger) {
	t.Helper()

	ledger := domain.NewLedger("Grand Hotel")
	logger := observability.NewLogger()
	idemp := idempotency.New(nil, time.Hour)
	rl := rateLimit.NewRateLimiter(nil)

	h := httphandler.NewHandlers(&config.Config{}, ledger, idemp, nil, logger)
	srv := httptest.NewServer(httphandler.SetupRouter(h, logger, rl, idemp))
	t.Cleanup(srv.Close)
	return srv, ledger
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestCreateRoom(t *testing.T) {
	srv, ledger := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/rooms", map[string]interface{}{
		"number": 101, "type": "Single", "price": 5000,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var room struct {
		Number    int  `json:"number"`
		Available bool `json:"available"`
	}
	decode(t, resp, &room)
	if room.Number != 101 || !room.Available {
		t.Errorf("unexpected room: %+v", room)
	}
	if ledger.RoomCount() != 1 {
		t.Errorf("ledger not updated: %d rooms", ledger.RoomCount())
	}

	resp = postJSON(t, srv.URL+"/v1/rooms", map[string]interface{}{
		"number": 101, "type": "Suite", "price": 25000,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate number, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/v1/rooms", map[string]interface{}{
		"number": 102, "type": "cabin", "price": 5000,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for bad type, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGuestEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/guests", map[string]interface{}{
		"name": "Alice", "surname": "Johnson", "age": 30,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/v1/guests", map[string]interface{}{
		"name": "42", "surname": "Johnson",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for numeric name, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	getResp, err := http.Get(srv.URL + "/v1/guests?name=Alice&surname=Johnson")
	if err != nil {
		t.Fatal(err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", getResp.StatusCode)
	}
	getResp.Body.Close()

	getResp, err = http.Get(srv.URL + "/v1/guests?name=Bob&surname=Smith")
	if err != nil {
		t.Fatal(err)
	}
	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", getResp.StatusCode)
	}
	getResp.Body.Close()
}

func TestReservationFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	postJSON(t, srv.URL+"/v1/rooms", map[string]interface{}{"number": 101, "type": "Single", "price": 5000}).Body.Close()
	postJSON(t, srv.URL+"/v1/rooms", map[string]interface{}{"number": 102, "type": "Double", "price": 8000}).Body.Close()
	postJSON(t, srv.URL+"/v1/guests", map[string]interface{}{"name": "Alice", "surname": "Johnson"}).Body.Close()
	postJSON(t, srv.URL+"/v1/guests", map[string]interface{}{"name": "Bob", "surname": "Smith"}).Body.Close()

	resp := postJSON(t, srv.URL+"/v1/reservations", map[string]interface{}{
		"guest_name": "Alice", "guest_surname": "Johnson",
		"room_number": 101, "check_in": "2025-10-10", "check_out": "2025-10-12",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created struct {
		ReservationID string `json:"reservation_id"`
		Nights        int    `json:"nights"`
	}
	decode(t, resp, &created)
	if created.Nights != 2 {
		t.Errorf("expected 2 nights, got %d", created.Nights)
	}

	// A second guest racing for the same room gets a conflict.
	resp = postJSON(t, srv.URL+"/v1/reservations", map[string]interface{}{
		"guest_name": "Bob", "guest_surname": "Smith",
		"room_number": 101, "check_in": "2025-10-11", "check_out": "2025-10-13",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	availResp, err := http.Get(srv.URL + "/v1/rooms/available")
	if err != nil {
		t.Fatal(err)
	}
	var avail []struct {
		Number int `json:"number"`
	}
	decode(t, availResp, &avail)
	if len(avail) != 1 || avail[0].Number != 102 {
		t.Errorf("expected only room 102 available, got %v", avail)
	}

	payResp := postJSON(t, srv.URL+"/v1/payments", map[string]interface{}{
		"reservation_id": created.ReservationID,
	})
	if payResp.StatusCode != http.StatusCreated {
		t.Errorf("expected 201 for payment, got %d", payResp.StatusCode)
	}
	var payment struct {
		Amount float64 `json:"amount"`
		Paid   bool    `json:"paid"`
	}
	decode(t, payResp, &payment)
	if payment.Amount != 5000 || !payment.Paid {
		t.Errorf("unexpected payment: %+v", payment)
	}

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/v1/reservations/"+created.ReservationID, nil)
	if err != nil {
		t.Fatal(err)
	}
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	if delResp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", delResp.StatusCode)
	}
	delResp.Body.Close()

	// Second cancel reports not found.
	delResp, err = http.DefaultClient.Do(req.Clone(req.Context()))
	if err != nil {
		t.Fatal(err)
	}
	if delResp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 on double cancel, got %d", delResp.StatusCode)
	}
	delResp.Body.Close()
}

func TestQuoteEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/quote?base=5000&nights=2&tax=true")
	if err != nil {
		t.Fatal(err)
	}
	var quote struct {
		Total float64 `json:"total"`
	}
	decode(t, resp, &quote)
	if quote.Total != 11800.00 {
		t.Errorf("expected 11800.00, got %v", quote.Total)
	}

	resp, err = http.Get(srv.URL + "/v1/quote?base=8000&nights=1&tax=false")
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &quote)
	if quote.Total != 8000.00 {
		t.Errorf("expected 8000.00, got %v", quote.Total)
	}

	resp, err = http.Get(srv.URL + "/v1/quote?base=abc&nights=1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRequestCounterRecordsRouteCodeMethod(t *testing.T) {
	srv, _ := newTestServer(t)

	counter := observability.RequestsTotal.WithLabelValues("/v1/healthz", "200", "GET")
	before := testutil.ToFloat64(counter)

	resp, err := http.Get(srv.URL + "/v1/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("expected counter %v, got %v", before+1, got)
	}
}

func TestShortIdempotencyKeyRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/guests", bytes.NewReader([]byte(`{"name":"Alice","surname":"Johnson"}`)))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "short")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for short key, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
