package firestore

import (
	"time"

	"dukasync/internal/domain/entity"
)

// wholesalerDocument mirrors a document in the 'wholesalers' collection.
// A nil registration number is stored as null.
type wholesalerDocument struct {
	ID                 string    `firestore:"id"`
	Name               string    `firestore:"name"`
	RegistrationNumber *string   `firestore:"registrationNumber"`
	OwnerUserID        string    `firestore:"ownerUserId"`
	County             string    `firestore:"county"`
	Constituency       string    `firestore:"constituency"`
	Type               string    `firestore:"type"`
	CreatedAt          time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt          time.Time `firestore:"updatedAt,serverTimestamp"`
}

// shopDocument mirrors a document in the 'shops' collection.
type shopDocument struct {
	ID           string    `firestore:"id"`
	OwnerUserID  string    `firestore:"ownerUserId"`
	Name         string    `firestore:"name"`
	County       string    `firestore:"county"`
	Constituency string    `firestore:"constituency"`
	Type         string    `firestore:"type"`
	CreatedAt    time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time `firestore:"updatedAt,serverTimestamp"`
}

// businessNameDocument mirrors a document in the 'wholesalerNames' collection, keyed by slug.
type businessNameDocument struct {
	BusinessKey string    `firestore:"businessKey"`
	DisplayName string    `firestore:"displayName"`
	OwnerUserID string    `firestore:"ownerUserId"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `firestore:"updatedAt,serverTimestamp"`
}

// subscriptionDocument mirrors a document in the 'subscriptions' collection.
// All timestamps come from the caller so the trial window is exact.
type subscriptionDocument struct {
	OwnerType        string    `firestore:"ownerType"`
	OwnerID          string    `firestore:"ownerId"`
	PlanID           string    `firestore:"planId"`
	Status           string    `firestore:"status"`
	TrialEndsAt      time.Time `firestore:"trialEndsAt"`
	CurrentPeriodEnd time.Time `firestore:"currentPeriodEnd"`
	CreatedAt        time.Time `firestore:"createdAt"`
	UpdatedAt        time.Time `firestore:"updatedAt"`
}

// visitorMessageDocument mirrors a document in the 'visitorMessages' collection.
type visitorMessageDocument struct {
	Name        string    `firestore:"name"`
	Email       string    `firestore:"email"`
	Company     string    `firestore:"company"`
	Message     string    `firestore:"message"`
	TargetInbox string    `firestore:"targetInbox"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}

func toWholesalerDocument(b *entity.BusinessEntity) *wholesalerDocument {
	return &wholesalerDocument{
		ID:                 b.ID,
		Name:               b.Name,
		RegistrationNumber: b.RegistrationNumber,
		OwnerUserID:        b.OwnerUserID,
		County:             b.County,
		Constituency:       b.Constituency,
		Type:               string(entity.RoleWholesaler),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func toShopDocument(b *entity.BusinessEntity) *shopDocument {
	return &shopDocument{
		ID:           b.ID,
		OwnerUserID:  b.OwnerUserID,
		Name:         b.Name,
		County:       b.County,
		Constituency: b.Constituency,
		Type:         string(entity.RoleShopkeeper),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func toBusinessNameDocument(index *entity.BusinessNameIndex) *businessNameDocument {
	return &businessNameDocument{
		BusinessKey: index.BusinessKey,
		DisplayName: index.DisplayName,
		OwnerUserID: index.OwnerUserID,
		CreatedAt:   index.CreatedAt,
		UpdatedAt:   index.UpdatedAt,
	}
}

func toSubscriptionDocument(s *entity.Subscription) *subscriptionDocument {
	return &subscriptionDocument{
		OwnerType:        string(s.OwnerType),
		OwnerID:          s.OwnerID,
		PlanID:           s.PlanID,
		Status:           string(s.Status),
		TrialEndsAt:      s.TrialEndsAt,
		CurrentPeriodEnd: s.CurrentPeriodEnd,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toVisitorMessageDocument(m *entity.VisitorMessage) *visitorMessageDocument {
	return &visitorMessageDocument{
		Name:        m.Name,
		Email:       m.Email,
		Company:     m.Company,
		Message:     m.Message,
		TargetInbox: m.TargetInbox,
		CreatedAt:   m.CreatedAt,
	}
}
