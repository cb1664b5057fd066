package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hotelops/booking-ledger/internal/adapters/rabbit"
	"github.com/hotelops/booking-ledger/internal/config"
	"github.com/hotelops/booking-ledger/internal/domain"
	"github.com/hotelops/booking-ledger/internal/idempotency"
	"github.com/hotelops/booking-ledger/internal/observability"
)

// Handlers is the presentation adapter over the ledger. It parses
// input, maps domain errors to status codes, and renders plain-data
// results. No booking rules live here.
type Handlers struct {
	cfg       *config.Config
	ledger    *domain.Ledger
	idemp     *idempotency.Idempotency
	rabbitPub *rabbit.Publisher
	logger    observability.Logger
}

func NewHandlers(cfg *config.Config, ledger *domain.Ledger, idemp *idempotency.Idempotency, rabbitPub *rabbit.Publisher, logger observability.Logger) *Handlers {
	return &Handlers{
		cfg:       cfg,
		ledger:    ledger,
		idemp:     idemp,
		rabbitPub: rabbitPub,
		logger:    logger,
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode response", err)
		http.Error(w, "operation failed", http.StatusInternalServerError)
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
	return data
}

// writeDomainError turns ledger failures into status codes. Anything
// uncategorized is reported as a generic operational failure, never
// swallowed.
func (h *Handlers) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidGuest),
		errors.Is(err, domain.ErrInvalidRoomType),
		errors.Is(err, domain.ErrInvalidPrice):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrRoomNotAvailable),
		errors.Is(err, domain.ErrDuplicateRoom):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrUnknownRoom),
		errors.Is(err, domain.ErrUnknownGuest),
		errors.Is(err, domain.ErrReservationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("operation failed", err)
		http.Error(w, "operation failed", http.StatusInternalServerError)
	}
}

func (h *Handlers) publish(r *http.Request, key string, payload map[string]interface{}) {
	if h.rabbitPub == nil {
		return
	}
	body, _ := json.Marshal(payload)
	msg := amqp.Publishing{
		MessageId:   uuid.New().String(),
		ContentType: "application/json",
		Body:        body,
	}
	if err := h.rabbitPub.Publish(r.Context(), key, msg); err != nil {
		h.logger.Warn("failed to publish "+key, err)
	}
}

type roomResponse struct {
	Number    int     `json:"number"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

func toRoomResponse(room domain.Room) roomResponse {
	return roomResponse{
		Number:    room.Number,
		Type:      string(room.Type),
		Price:     room.Price,
		Available: room.Available,
	}
}

func (h *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number int     `json:"number"`
		Type   string  `json:"type"`
		Price  float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.ledger.RegisterRoom(req.Number, req.Type, req.Price); err != nil {
		h.writeDomainError(w, err)
		return
	}
	observability.RoomsRegistered.Inc()

	// Re-read through the snapshot accessor so a concurrent reserve
	// cannot race the response fields.
	info, _ := h.ledger.RoomInfo(req.Number)
	h.writeJSON(w, http.StatusCreated, toRoomResponse(info))
}

func (h *Handlers) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Surname string `json:"surname"`
		Age     int    `json:"age"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	guest, err := h.ledger.RegisterGuest(req.Name, req.Surname, req.Age)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	info, _ := h.ledger.GuestInfo(guest.Name, guest.Surname)
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"name":         info.Name,
		"surname":      info.Surname,
		"reservations": info.Reservations,
	})
}

func (h *Handlers) GetGuest(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	surname := r.URL.Query().Get("surname")

	info, ok := h.ledger.GuestInfo(name, surname)
	if !ok {
		http.Error(w, "guest not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":         info.Name,
		"surname":      info.Surname,
		"reservations": info.Reservations,
	})
}

func (h *Handlers) CreateReservation(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get("Idempotency-Key")
	existing, err := h.idemp.Get(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if existing != nil {
		w.WriteHeader(existing.Status)
		w.Write(existing.Result)
		return
	}

	var req struct {
		GuestName    string `json:"guest_name"`
		GuestSurname string `json:"guest_surname"`
		RoomNumber   int    `json:"room_number"`
		CheckIn      string `json:"check_in"`
		CheckOut     string `json:"check_out"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	guest, ok := h.ledger.FindGuest(req.GuestName, req.GuestSurname)
	if !ok {
		http.Error(w, "guest not found", http.StatusNotFound)
		return
	}
	room, ok := h.ledger.FindRoom(req.RoomNumber)
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	res, err := h.ledger.Reserve(guest, room, req.CheckIn, req.CheckOut)
	if errors.Is(err, domain.ErrRoomNotAvailable) {
		observability.ReservationConflicts.Inc()
	}
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	observability.ReservationsCreated.Inc()

	h.publish(r, "reservation.created", map[string]interface{}{
		"reservation_id": res.ID,
		"room_number":    room.Number,
	})

	data := h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"reservation_id": res.ID,
		"room_number":    room.Number,
		"check_in":       res.CheckIn,
		"check_out":      res.CheckOut,
		"nights":         res.Nights(),
	})

	h.idemp.Set(r.Context(), key, idempotency.Response{Status: http.StatusCreated, Result: data})
}

func (h *Handlers) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	res, ok := h.ledger.FindReservation(id)
	if !ok {
		http.Error(w, "reservation not found", http.StatusNotFound)
		return
	}
	if err := h.ledger.Cancel(res); err != nil {
		h.writeDomainError(w, err)
		return
	}
	observability.ReservationsCancelled.Inc()

	h.publish(r, "reservation.cancelled", map[string]interface{}{
		"reservation_id": res.ID,
		"room_number":    res.Room.Number,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	rooms := h.ledger.AvailableRooms()
	resp := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toRoomResponse(room))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) Quote(w http.ResponseWriter, r *http.Request) {
	base, err := strconv.ParseFloat(r.URL.Query().Get("base"), 64)
	if err != nil || base < 0 {
		http.Error(w, "invalid base price", http.StatusBadRequest)
		return
	}
	nights, err := strconv.Atoi(r.URL.Query().Get("nights"))
	if err != nil || nights < 1 {
		http.Error(w, "invalid nights", http.StatusBadRequest)
		return
	}
	includeTax := r.URL.Query().Get("tax") == "true"

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"total": domain.QuoteTotal(base, nights, includeTax),
	})
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ReservationID string `json:"reservation_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, ok := h.ledger.FindReservation(req.ReservationID)
	if !ok {
		http.Error(w, "reservation not found", http.StatusNotFound)
		return
	}
	payment, err := h.ledger.ProcessPayment(res)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.publish(r, "payment.settled", map[string]interface{}{
		"payment_id":     payment.ID,
		"reservation_id": res.ID,
		"amount":         payment.Amount,
	})

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"payment_id": payment.ID,
		"amount":     payment.Amount,
		"paid":       payment.Paid,
	})
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.ledger.Stats()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"hotel":               h.ledger.Name(),
		"rooms":               stats.Rooms,
		"guests":              stats.Guests,
		"active_reservations": stats.ActiveReservations,
		"payments":            stats.Payments,
	})
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handlers) Readyz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
