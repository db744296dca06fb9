// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers.
const (
	PubSubProviderGoogle = "google"
)

// Registration steps, in pipeline order.
const (
	StepCheckBusinessName   = "check-business-name"
	StepCreateIdentity      = "create-identity"
	StepSetDisplayName      = "set-display-name"
	StepWriteProfile        = "write-profile"
	StepWriteBusiness       = "write-business"
	StepReserveBusinessName = "reserve-business-name"
	StepSeedLedger          = "seed-ledger"
	StepCreateSubscription  = "create-subscription"
	StepNotifyOnboarding    = "notify-onboarding"
	StepPublishRegistered   = "publish-registered"
)

// Outcome labels used in logs and metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// Store collections and paths.
const (
	CollectionUsers           = "users"
	CollectionWholesalers     = "wholesalers"
	CollectionShops           = "shops"
	CollectionWholesalerNames = "wholesalerNames"
	CollectionSubscriptions   = "subscriptions"
	CollectionVisitorMessages = "visitorMessages"
)
