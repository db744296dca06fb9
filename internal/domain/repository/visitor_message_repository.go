package repository

import (
	"context"

	"dukasync/internal/domain/entity"
)

// VisitorMessageRepository stores contact form submissions.
type VisitorMessageRepository interface {
	Create(ctx context.Context, message *entity.VisitorMessage) error
}
