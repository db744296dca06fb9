package repository

import (
	"context"

	"dukasync/internal/domain/entity"
)

// SubscriptionRepository persists subscriptions keyed by the owning business id.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
}
