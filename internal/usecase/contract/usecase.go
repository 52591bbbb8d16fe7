package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/futig/resignation-backend/internal/pkg/logger"
	"github.com/futig/resignation-backend/internal/prompt"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const StatusSuccess = "success"

// ContractUsecase turns an uploaded contract PDF into a resignation checklist.
type ContractUsecase struct {
	extractor    Extractor
	llmConnector LLMConnector
	template     *prompt.Template
	language     string
	logger       *zap.Logger
}

func NewUsecase(
	extractor Extractor,
	llmConnector LLMConnector,
	language string,
	logger *zap.Logger,
) *ContractUsecase {
	return &ContractUsecase{
		extractor:    extractor,
		llmConnector: llmConnector,
		template:     prompt.Contract(),
		language:     language,
		logger:       logger,
	}
}

// Analyze extracts the contract text, asks the model for a checklist and
// merges the answer over DefaultChecklist.
func (uc *ContractUsecase) Analyze(ctx context.Context, content []byte) (*entity.ContractAnalysis, error) {
	const op = "contract analysis"
	ctx = logger.WithAction(ctx, "analyze_contract")

	text, err := uc.extractor.Extract(ctx, content)
	if err != nil {
		return nil, entity.NewError(extractionKind(err), op, fmt.Errorf("extract text: %w", err))
	}

	ctxzap.Info(ctx, "contract text extracted", zap.Int("text_length", len(text)))

	messages, err := uc.template.Render(prompt.ContractData{
		Language:     uc.language,
		ContractText: text,
	})
	if err != nil {
		return nil, entity.NewError(entity.KindInvocation, op, fmt.Errorf("render prompt: %w", err))
	}

	raw, err := uc.llmConnector.Complete(ctx, &entity.CompletionRequest{Messages: messages})
	if err != nil {
		return nil, entity.NewError(entity.KindInvocation, op, fmt.Errorf("invoke model: %w", err))
	}

	parsed, err := ParseChecklist(raw)
	if err != nil {
		ctxzap.Warn(ctx, "model returned unparseable checklist", zap.Int("result_length", len(raw)))
		return nil, entity.NewError(entity.KindParse, op, err)
	}

	checklist := MergeChecklist(DefaultChecklist(), parsed)

	ctxzap.Info(ctx, "contract analyzed", zap.Int("checklist_keys", len(checklist)))

	return &entity.ContractAnalysis{
		Status:               StatusSuccess,
		ResignationChecklist: checklist,
	}, nil
}

func extractionKind(err error) entity.ErrorKind {
	if errors.Is(err, entity.ErrEmptyFile) || errors.Is(err, entity.ErrUnreadablePDF) {
		return entity.KindInvalidInput
	}
	return entity.KindExtraction
}
