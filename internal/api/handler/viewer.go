package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/stayloft/stayloft/internal/api/middleware"
	"github.com/stayloft/stayloft/internal/api/response"
	"github.com/stayloft/stayloft/internal/api/validation"
	"github.com/stayloft/stayloft/internal/auth"
)

type loginRequest struct {
	Code *string `json:"code"`
}

type authURLResponse struct {
	URL string `json:"url"`
}

// ViewerHandler handles the viewer authentication endpoints.
type ViewerHandler struct {
	authService *auth.Service
}

// NewViewerHandler creates a new ViewerHandler.
func NewViewerHandler(authService *auth.Service) *ViewerHandler {
	return &ViewerHandler{authService: authService}
}

// Login handles POST /auth/login. A body carrying a code runs the provider
// exchange; an empty body resumes the session from the cookie.
func (h *ViewerHandler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateLoginRequest(validation.LoginRequest{Code: req.Code})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	var input auth.LoginInput = auth.ResumeSession{}
	if req.Code != nil {
		input = auth.ExternalCode{Code: strings.TrimSpace(*req.Code)}
	}

	viewer, err := h.authService.Login(r.Context(), w, r, input)
	if err != nil {
		h.writeAuthError(w, err, requestID)
		return
	}

	response.Success(w, http.StatusOK, viewer, requestID)
}

// Logout handles POST /auth/logout. Always succeeds, even with no active
// session.
func (h *ViewerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	viewer := h.authService.Logout(w)

	response.Success(w, http.StatusOK, viewer, requestID)
}

// AuthURL handles GET /auth/url.
func (h *ViewerHandler) AuthURL(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	url, err := h.authService.AuthURL()
	if err != nil {
		h.writeAuthError(w, err, requestID)
		return
	}

	response.Success(w, http.StatusOK, authURLResponse{URL: url}, requestID)
}

func (h *ViewerHandler) writeAuthError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, auth.ErrProviderConfig):
		response.Err(w, http.StatusServiceUnavailable, "PROVIDER_NOT_CONFIGURED", "Identity provider is not configured", requestID)
	case errors.Is(err, auth.ErrProviderExchange):
		response.Err(w, http.StatusUnauthorized, "PROVIDER_EXCHANGE_FAILED", "Identity provider rejected the login", requestID)
	default:
		slog.Error("auth operation failed", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Authentication failed", requestID)
	}
}
