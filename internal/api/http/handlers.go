package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodfleet/internal/domain"
	"foodfleet/internal/service"

	"github.com/gorilla/mux"
)

const (
	maxBodyBytes = 1 << 20

	msgInvalidBody      = "Invalid request body"
	msgFetchFailed      = "Error fetching data"
	msgOrderFailed      = "Error placing order"
	msgInquiryFailed    = "Error submitting inquiry"
	msgInquirySubmitted = "Help inquiry submitted successfully!"
	msgQRCodeFailed     = "Error generating QR code"
	msgOrderNotFound    = "Order not found"
	msgInvalidOrderID   = "Invalid order id"
)

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Orders    service.OrderServiceInterface
	Inquiries service.InquiryServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, inquiries service.InquiryServiceInterface) *Handler {
	return &Handler{
		Catalog:   catalog,
		Orders:    orders,
		Inquiries: inquiries,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/help", h.createHelpInquiry).Methods("POST")
}

type messageResponse struct {
	Message       string   `json:"message"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// writeJSON only logs encode failures; the status line is already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		requestLog(r).WithError(err).Debug("failed to write response")
	}
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, messageResponse{Message: message})
}

// writeServiceError maps validation failures to 400 and everything else to a
// 500 carrying fallback; the underlying error is only logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, r, http.StatusBadRequest, messageResponse{
			Message:       validationErr.Message,
			MissingFields: validationErr.Fields,
		})
		return
	}
	requestLog(r).WithError(err).Error(fallback)
	writeMessage(w, r, http.StatusInternalServerError, fallback)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, r, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "foodfleet",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurantsWithMenus(r.Context())
	if err != nil {
		writeServiceError(w, r, err, msgFetchFailed)
		return
	}
	writeJSON(w, r, http.StatusOK, restaurants)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.OrderRequest
	if !decodeBody(w, r, &order) {
		return
	}

	confirmation, err := h.Orders.PlaceOrder(r.Context(), &order)
	if err != nil {
		writeServiceError(w, r, err, msgOrderFailed)
		return
	}
	writeJSON(w, r, http.StatusCreated, confirmation)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || orderID <= 0 {
		writeMessage(w, r, http.StatusBadRequest, msgInvalidOrderID)
		return
	}

	qrCode, err := h.Orders.OrderQRCode(r.Context(), orderID)
	if errors.Is(err, service.ErrOrderNotFound) {
		writeMessage(w, r, http.StatusNotFound, msgOrderNotFound)
		return
	}
	if err != nil {
		writeServiceError(w, r, err, msgQRCodeFailed)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(qrCode); err != nil {
		requestLog(r).WithError(err).Debug("failed to write QR code")
	}
}

func (h *Handler) createHelpInquiry(w http.ResponseWriter, r *http.Request) {
	var inquiry domain.HelpInquiry
	if !decodeBody(w, r, &inquiry) {
		return
	}

	if err := h.Inquiries.SubmitInquiry(r.Context(), &inquiry); err != nil {
		writeServiceError(w, r, err, msgInquiryFailed)
		return
	}
	writeMessage(w, r, http.StatusCreated, msgInquirySubmitted)
}
