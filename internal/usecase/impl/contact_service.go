package impl

import (
	"context"
	"log/slog"
	"time"

	"dukasync/config"
	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/domain/repository"
	"dukasync/internal/domain/service"
	"dukasync/internal/errors"
	"dukasync/internal/usecase"

	"go.uber.org/fx"
)

const defaultTargetInbox = "dukapap-founder"

// contactService implements usecase.ContactUsecase.
type contactService struct {
	messages    repository.VisitorMessageRepository
	sanitizer   service.ContentSanitizer
	targetInbox string
	logger      *slog.Logger
	now         func() time.Time
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	Messages  repository.VisitorMessageRepository
	Sanitizer service.ContentSanitizer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewContactService creates a new contact service.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	inbox := params.Config.Contact.TargetInbox
	if inbox == "" {
		inbox = defaultTargetInbox
	}

	return &contactService{
		messages:    params.Messages,
		sanitizer:   params.Sanitizer,
		targetInbox: inbox,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Submit stores the sanitized message for the configured inbox.
func (s *contactService) Submit(ctx context.Context, input usecase.ContactInput) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	message := &entity.VisitorMessage{
		Name:        s.sanitizer.Sanitize(input.Name),
		Email:       s.sanitizer.Sanitize(input.Email),
		Company:     s.sanitizer.Sanitize(input.Company),
		Message:     s.sanitizer.Sanitize(input.Message),
		TargetInbox: s.targetInbox,
		CreatedAt:   s.now(),
	}

	if err := s.messages.Create(ctx, message); err != nil {
		logger.Error("Failed to send visitor message", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrContactFailed.WithDetails(err.Error()), "submit contact message")
	}

	logger.Info("Visitor message stored", slog.String("target_inbox", s.targetInbox))

	return nil
}
