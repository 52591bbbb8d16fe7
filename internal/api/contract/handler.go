package contract

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

const exportBaseName = "resignation-checklist"

type Handler struct {
	usecase    ContractUsecase
	formatters FormatterFactory
	cfg        config.FileUploadConfig
	validator  *validator.Validator
}

func NewHandler(
	usecase ContractUsecase,
	formatters FormatterFactory,
	cfg config.FileUploadConfig,
	validator *validator.Validator,
) *Handler {
	return &Handler{
		usecase:    usecase,
		formatters: formatters,
		cfg:        cfg,
		validator:  validator,
	}
}

// AnalyzeContract handles POST /api/analyze-contract
func (h *Handler) AnalyzeContract(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AnalyzeContract")

	content, ok := h.readContract(ctx, w, r)
	if !ok {
		return
	}

	result, err := h.usecase.Analyze(ctx, content)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "contract analyzed successfully",
		zap.Int("checklist_keys", len(result.ResignationChecklist)),
	)

	response.Success(w, result)
}

// ExportChecklist handles POST /api/analyze-contract/export?format=markdown|pdf|docx
func (h *Handler) ExportChecklist(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportChecklist")

	format := entity.ResultFormat(strings.ToLower(r.URL.Query().Get("format")))
	if format == "" {
		format = entity.FormatMarkdown
	}
	if !format.IsValid() {
		h.respondError(ctx, w, http.StatusBadRequest, "format must be one of markdown, pdf, docx", entity.ErrInvalidFormat)
		return
	}

	fm, err := h.formatters.Create(format)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}

	content, ok := h.readContract(ctx, w, r)
	if !ok {
		return
	}

	result, err := h.usecase.Analyze(ctx, content)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	data, err := fm.Format(result.ResignationChecklist)
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to render checklist", err)
		return
	}

	ctxzap.Info(ctx, "checklist exported",
		zap.String("format", string(format)),
		zap.Int("size", len(data)),
	)

	response.File(w, fm.ContentType(), exportBaseName+fm.FileExtension(), data)
}

// readContract parses the multipart form and returns the uploaded PDF. On
// failure the response has already been written.
func (h *Handler) readContract(ctx context.Context, w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return nil, false
	}

	_, fh, err := r.FormFile("file")
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "file is required", entity.ErrMissingField)
		return nil, false
	}

	if err := h.validator.ValidateUpload(fh, entity.DocumentKindContract); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return nil, false
	}

	content, err := h.validator.ReadFile(fh)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entity.ErrFileTooLarge) || errors.Is(err, entity.ErrEmptyFile) {
			status = http.StatusBadRequest
		}
		h.respondError(ctx, w, status, err.Error(), err)
		return nil, false
	}

	ctxzap.Info(ctx, "contract uploaded",
		zap.String("filename", validator.SanitizeFilename(fh.Filename)),
		zap.Int("size", len(content)),
	)

	return content, true
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
