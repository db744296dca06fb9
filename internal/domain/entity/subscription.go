package entity

import "time"

// TrialPeriod is the length of the free trial granted to every new business.
const TrialPeriod = 30 * 24 * time.Hour

// SubscriptionStatus is the billing state of a subscription.
type SubscriptionStatus string

// SubscriptionStatusTrial marks a subscription still inside its trial window.
const SubscriptionStatusTrial SubscriptionStatus = "trial"

// Subscription is keyed by the owning business id.
type Subscription struct {
	OwnerType        OwnerType          `json:"ownerType"`
	OwnerID          string             `json:"ownerId"`
	PlanID           string             `json:"planId"`
	Status           SubscriptionStatus `json:"status"`
	TrialEndsAt      time.Time          `json:"trialEndsAt"`
	CurrentPeriodEnd time.Time          `json:"currentPeriodEnd"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// NewTrialSubscription builds the trial subscription of a freshly registered business.
// The trial window and the creation timestamps share the same instant.
func NewTrialSubscription(ownerType OwnerType, ownerID string, now time.Time) *Subscription {
	trialEndsAt := now.Add(TrialPeriod)

	return &Subscription{
		OwnerType:        ownerType,
		OwnerID:          ownerID,
		PlanID:           ownerType.BasicPlanID(),
		Status:           SubscriptionStatusTrial,
		TrialEndsAt:      trialEndsAt,
		CurrentPeriodEnd: trialEndsAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
