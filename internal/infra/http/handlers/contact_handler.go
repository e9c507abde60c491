package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
	"github.com/horsepowerelectrical/horsepower-api/internal/infra/http/middleware"
)

type ContactHandler struct {
	leadRepo    entity.LeadRepositoryInterface
	rateLimiter *RateLimiter
	logger      zerolog.Logger
}

func NewContactHandler(leadRepo entity.LeadRepositoryInterface, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		leadRepo:    leadRepo,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
		logger:      logger,
	}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, ContactResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ContactResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, ContactResponse{
			Success: false,
			Message: "Name, email and message are required",
		})
		return
	}

	lead := entity.NewLead(req.Name, req.Email, req.Phone, req.Message)

	if err := h.leadRepo.Insert(ctx, lead); err != nil {
		h.logger.Error().Err(err).Msg("contact: saving lead failed")
		writeJSON(w, http.StatusInternalServerError, ContactResponse{
			Success: false,
			Message: "Error saving your message. Please try again.",
		})
		return
	}

	middleware.RecordLeadCaptured()
	h.logger.Info().Str("lead_id", lead.ID).Msg("lead captured")

	writeJSON(w, http.StatusOK, ContactResponse{
		Success: true,
		Message: "Thank you for your message. We will get back to you soon!",
	})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
