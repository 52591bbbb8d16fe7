package resignation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/futig/resignation-backend/internal/pkg/logger"
	"github.com/futig/resignation-backend/internal/prompt"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ResignationUsecase validates resignation emails and notifies the agent
// service about approved ones.
type ResignationUsecase struct {
	parser       EmailParser
	llmConnector LLMConnector
	notifier     Notifier
	template     *prompt.Template
	location     *time.Location
	now          func() time.Time
	logger       *zap.Logger
}

func NewUsecase(
	parser EmailParser,
	llmConnector LLMConnector,
	notifier Notifier,
	location *time.Location,
	logger *zap.Logger,
) *ResignationUsecase {
	if location == nil {
		location = time.Local
	}
	return &ResignationUsecase{
		parser:       parser,
		llmConnector: llmConnector,
		notifier:     notifier,
		template:     prompt.Resignation(),
		location:     location,
		now:          time.Now,
		logger:       logger,
	}
}

// Validate runs the email through the model and the decision rules. When the
// resignation is valid and safeAddress is set the agent is notified once;
// a failed notification only shows up as AgentNotified=false.
func (uc *ResignationUsecase) Validate(ctx context.Context, content []byte, safeAddress string) (*entity.ValidationResult, error) {
	const op = "resignation validation"
	ctx = logger.WithAction(ctx, "validate_resignation")

	email, err := uc.parser.Parse(content)
	if err != nil {
		kind := entity.KindExtraction
		if errors.Is(err, entity.ErrInvalidEmail) || errors.Is(err, entity.ErrEmptyFile) {
			kind = entity.KindInvalidInput
		}
		return nil, entity.NewError(kind, op, fmt.Errorf("parse email: %w", err))
	}

	ctxzap.Info(ctx, "resignation email parsed",
		zap.String("sent_date", email.SentDate),
		zap.Int("body_length", len(email.Body)),
	)

	currentDate := uc.now().In(uc.location).Format(dateLayout)
	messages, err := uc.template.Render(prompt.NewResignationData(email, currentDate))
	if err != nil {
		return nil, entity.NewError(entity.KindInvocation, op, fmt.Errorf("render prompt: %w", err))
	}

	raw, err := uc.llmConnector.Complete(ctx, &entity.CompletionRequest{
		Messages: messages,
		JSONMode: true,
	})
	if err != nil {
		return nil, entity.NewError(entity.KindInvocation, op, fmt.Errorf("invoke model: %w", err))
	}

	analysis, err := ParseAnalysis(raw)
	if err != nil {
		ctxzap.Warn(ctx, "model returned invalid analysis", zap.Error(err))
		return nil, entity.NewError(entity.KindParse, op, err)
	}

	result := Decide(analysis)

	ctxzap.Info(ctx, "resignation validated",
		zap.Bool("is_valid", result.IsValid),
		zap.Int("notice_period_days", analysis.NoticePeriodDays),
		zap.Bool("format_valid", analysis.FormatCheck.IsValid),
	)

	if result.IsValid && safeAddress != "" {
		notified := uc.notify(ctx, safeAddress)
		result.AgentNotified = &notified
	}

	return result, nil
}

func (uc *ResignationUsecase) notify(ctx context.Context, safeAddress string) bool {
	ok, err := uc.notifier.NotifyAgent(ctx, safeAddress)
	if err != nil {
		ctxzap.Error(ctx, "failed to notify agent", zap.Error(err))
		return false
	}
	if !ok {
		ctxzap.Warn(ctx, "agent service rejected notification")
	}
	return ok
}
