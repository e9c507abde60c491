package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
	"github.com/horsepowerelectrical/horsepower-api/internal/infra/http/middleware"
	"github.com/horsepowerelectrical/horsepower-api/internal/security"
	"github.com/horsepowerelectrical/horsepower-api/internal/usecase"
)

type AdminHandler struct {
	adminRepo       usecase.AdminRepositoryInterface
	requestChangeUC *usecase.RequestProfileChangeUseCase
	verifyChangeUC  *usecase.VerifyProfileChangeUseCase
	jwtSecret       string
	jwtTTL          time.Duration
	logger          zerolog.Logger
}

func NewAdminHandler(
	adminRepo usecase.AdminRepositoryInterface,
	requestChangeUC *usecase.RequestProfileChangeUseCase,
	verifyChangeUC *usecase.VerifyProfileChangeUseCase,
	jwtSecret string,
	jwtTTL time.Duration,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminRepo:       adminRepo,
		requestChangeUC: requestChangeUC,
		verifyChangeUC:  verifyChangeUC,
		jwtSecret:       jwtSecret,
		jwtTTL:          jwtTTL,
		logger:          logger,
	}
}

type VerifyPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyPasswordResponse struct {
	Valid bool              `json:"valid"`
	Token string            `json:"token,omitempty"`
	Admin *entity.AdminUser `json:"admin,omitempty"`
}

// HandleVerifyPassword is the admin login. A valid pair yields a signed
// session token; the response never distinguishes unknown email from wrong
// password.
func (h *AdminHandler) HandleVerifyPassword(w http.ResponseWriter, r *http.Request) {
	var req VerifyPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	admin, err := h.adminRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if err == entity.ErrNotFound {
			writeJSON(w, http.StatusUnauthorized, VerifyPasswordResponse{Valid: false})
			return
		}
		h.logger.Error().Err(err).Msg("verify-password: admin lookup failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	if !security.CheckPassword(admin.PasswordHash, req.Password) {
		writeJSON(w, http.StatusUnauthorized, VerifyPasswordResponse{Valid: false})
		return
	}

	token, err := security.GenerateAdminToken(h.jwtSecret, admin.ID, admin.Email, string(admin.Role), h.jwtTTL)
	if err != nil {
		h.logger.Error().Err(err).Msg("verify-password: token signing failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	sanitized := admin.Sanitize()
	writeJSON(w, http.StatusOK, VerifyPasswordResponse{
		Valid: true,
		Token: token,
		Admin: &sanitized,
	})
}

type RequestVerificationResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	ChangeType entity.ChangeType `json:"changeType"`
}

func (h *AdminHandler) HandleRequestVerification(w http.ResponseWriter, r *http.Request) {
	var input usecase.RequestProfileChangeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	output, err := h.requestChangeUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordVerificationCodeIssued(string(output.ChangeType))

	writeJSON(w, http.StatusOK, RequestVerificationResponse{
		Success:    true,
		Message:    "Verification code sent to your email",
		ChangeType: output.ChangeType,
	})
}

type VerifyCodeResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       entity.AdminUser  `json:"data"`
	ChangeType entity.ChangeType `json:"changeType"`
}

func (h *AdminHandler) HandleVerifyCode(w http.ResponseWriter, r *http.Request) {
	var input usecase.VerifyProfileChangeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	output, err := h.verifyChangeUC.Execute(r.Context(), input)
	if err != nil {
		if de, ok := err.(*usecase.DomainError); ok && de.Code == usecase.CodeInvalidCode {
			middleware.RecordVerificationAttempt("invalid")
		} else {
			middleware.RecordVerificationAttempt("error")
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordVerificationAttempt("success")

	writeJSON(w, http.StatusOK, VerifyCodeResponse{
		Success:    true,
		Message:    "Profile updated successfully",
		Data:       output.Admin,
		ChangeType: output.ChangeType,
	})
}
