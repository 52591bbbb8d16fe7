package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/futig/resignation-backend/internal/config"
	"github.com/futig/resignation-backend/internal/entity"
	"github.com/futig/resignation-backend/internal/pkg/formatter"
	"github.com/futig/resignation-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type fakeUsecase struct {
	result *entity.ContractAnalysis
	err    error
	calls  int
}

func (f *fakeUsecase) Analyze(ctx context.Context, content []byte) (*entity.ContractAnalysis, error) {
	f.calls++
	return f.result, f.err
}

func newTestRouter(uc *fakeUsecase) http.Handler {
	cfg := config.FileUploadConfig{MaxFileSize: 1 << 20, MaxUploadSize: 2 << 20}
	h := NewHandler(uc, formatter.NewFactory(), cfg, validator.NewFileValidator(cfg))

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r, h)
	})
	return r
}

func uploadRequest(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func successResult() *entity.ContractAnalysis {
	return &entity.ContractAnalysis{
		Status: "success",
		ResignationChecklist: entity.ContractChecklist{
			entity.ChecklistNoticePeriod: "30 days",
		},
	}
}

func TestAnalyzeContractRejectsWrongExtension(t *testing.T) {
	uc := &fakeUsecase{result: successResult()}
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, uploadRequest(t, "/api/analyze-contract", "contract.docx", []byte("data")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if uc.calls != 0 {
		t.Fatalf("usecase must not be called for rejected uploads")
	}

	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if !strings.Contains(body["detail"], "only PDF files are supported") {
		t.Fatalf("unexpected detail %q", body["detail"])
	}
}

func TestAnalyzeContractMissingFile(t *testing.T) {
	uc := &fakeUsecase{result: successResult()}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("other", "value")
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-contract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeContractSuccess(t *testing.T) {
	uc := &fakeUsecase{result: successResult()}
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, uploadRequest(t, "/api/analyze-contract", "Contract.PDF", []byte("%PDF-1.4")))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body entity.ContractAnalysis
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "success" || body.ResignationChecklist[entity.ChecklistNoticePeriod] != "30 days" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestAnalyzeContractErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: entity.NewError(entity.KindInvalidInput, "contract analysis", entity.ErrUnreadablePDF), want: http.StatusBadRequest},
		{name: "extraction", err: entity.NewError(entity.KindExtraction, "contract analysis", entity.ErrNoTextExtracted), want: http.StatusInternalServerError},
		{name: "invocation", err: entity.NewError(entity.KindInvocation, "contract analysis", errors.New("HTTP 503")), want: http.StatusInternalServerError},
		{name: "parse", err: entity.NewError(entity.KindParse, "contract analysis", fmt.Errorf("decode checklist: bad")), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestRouter(&fakeUsecase{err: tc.err}).ServeHTTP(rec, uploadRequest(t, "/api/analyze-contract", "c.pdf", []byte("x")))

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}

			var body map[string]string
			json.NewDecoder(rec.Body).Decode(&body)
			if body["detail"] != tc.err.Error() {
				t.Fatalf("expected detail %q, got %q", tc.err.Error(), body["detail"])
			}
		})
	}
}

func TestExportChecklist(t *testing.T) {
	uc := &fakeUsecase{result: successResult()}
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, uploadRequest(t, "/api/analyze-contract/export?format=markdown", "c.pdf", []byte("x")))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/markdown") {
		t.Fatalf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "resignation-checklist.md") {
		t.Fatalf("unexpected disposition %q", rec.Header().Get("Content-Disposition"))
	}
	if !strings.Contains(rec.Body.String(), "## Notice Period") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestExportChecklistRejectsUnknownFormat(t *testing.T) {
	uc := &fakeUsecase{result: successResult()}
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, uploadRequest(t, "/api/analyze-contract/export?format=html", "c.pdf", []byte("x")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if uc.calls != 0 {
		t.Fatalf("usecase must not be called for unknown formats")
	}
}
