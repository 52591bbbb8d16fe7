package resignation

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/futig/resignation-backend/internal/config"
	"github.com/futig/resignation-backend/internal/entity"
	"github.com/futig/resignation-backend/internal/pkg/logger"
	"github.com/futig/resignation-backend/internal/pkg/response"
	"github.com/futig/resignation-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ResignationUsecase
	cfg       config.FileUploadConfig
	validator *validator.Validator
}

func NewHandler(
	usecase ResignationUsecase,
	cfg config.FileUploadConfig,
	validator *validator.Validator,
) *Handler {
	return &Handler{
		usecase:   usecase,
		cfg:       cfg,
		validator: validator,
	}
}

// ValidateResignation handles POST /api/validate-resignation. safe_address
// may come from the form or the query string.
func (h *Handler) ValidateResignation(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ValidateResignation")

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return
	}

	_, fh, err := r.FormFile("file")
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "file is required", entity.ErrMissingField)
		return
	}

	if err := h.validator.ValidateUpload(fh, entity.DocumentKindResignation); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}

	content, err := h.validator.ReadFile(fh)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entity.ErrFileTooLarge) || errors.Is(err, entity.ErrEmptyFile) {
			status = http.StatusBadRequest
		}
		h.respondError(ctx, w, status, err.Error(), err)
		return
	}

	safeAddress := strings.TrimSpace(r.FormValue("safe_address"))

	ctx = logger.AddFields(ctx,
		zap.String("filename", validator.SanitizeFilename(fh.Filename)),
		zap.Bool("has_safe_address", safeAddress != ""),
	)
	ctxzap.Info(ctx, "validating resignation email", zap.Int("size", len(content)))

	result, err := h.usecase.Validate(ctx, content, safeAddress)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	resp := result.Response(safeAddress)

	ctxzap.Info(ctx, "resignation validated", zap.String("status", resp.Status))

	response.Success(w, resp)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Warn(ctx, message, zap.Error(err))
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if entity.IsInvalidInput(err) {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}
	h.respondError(ctx, w, http.StatusInternalServerError, err.Error(), err)
}
