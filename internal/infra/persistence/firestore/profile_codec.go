package firestore

import (
	"time"

	"dukasync/internal/domain/entity"

	firestoresdk "cloud.google.com/go/firestore"
)

// Profile documents have a different field set per account type, so they are written as maps.
const (
	fieldUID                        = "uid"
	fieldAccountType                = "accountType"
	fieldRole                       = "role"
	fieldEmail                      = "email"
	fieldDisplayName                = "displayName"
	fieldBusinessName               = "businessName"
	fieldBusinessRegistrationNumber = "businessRegistrationNumber"
	fieldShopName                   = "shopName"
	fieldCounty                     = "county"
	fieldConstituency               = "constituency"
	fieldCreatedAt                  = "createdAt"
	fieldUpdatedAt                  = "updatedAt"
)

func encodeProfile(p *entity.UserProfile) map[string]any {
	doc := map[string]any{
		fieldUID:         p.UID,
		fieldAccountType: p.AccountType,
		fieldEmail:       p.Email,
		fieldCreatedAt:   firestoresdk.ServerTimestamp,
		fieldUpdatedAt:   firestoresdk.ServerTimestamp,
	}
	if p.DisplayName != "" {
		doc[fieldDisplayName] = p.DisplayName
	}

	switch entity.ParseRole(p.AccountType) {
	case entity.RoleWholesaler:
		var registrationNumber any
		if p.BusinessRegistrationNumber != nil {
			registrationNumber = *p.BusinessRegistrationNumber
		}
		doc[fieldBusinessName] = p.BusinessName
		doc[fieldBusinessRegistrationNumber] = registrationNumber
		doc[fieldCounty] = p.County
		doc[fieldConstituency] = p.Constituency
	case entity.RoleShopkeeper:
		doc[fieldShopName] = p.ShopName
		doc[fieldCounty] = p.County
		doc[fieldConstituency] = p.Constituency
	case entity.RoleCustomer, entity.RoleAdmin, entity.RoleNone:
	}

	return doc
}

// decodeProfile tolerates missing and mistyped fields: anything that is not a string reads as absent.
func decodeProfile(uid string, doc map[string]any) *entity.UserProfile {
	profile := &entity.UserProfile{
		UID:          uid,
		AccountType:  stringField(doc, fieldAccountType),
		LegacyRole:   stringField(doc, fieldRole),
		Email:        stringField(doc, fieldEmail),
		DisplayName:  stringField(doc, fieldDisplayName),
		BusinessName: stringField(doc, fieldBusinessName),
		ShopName:     stringField(doc, fieldShopName),
		County:       stringField(doc, fieldCounty),
		Constituency: stringField(doc, fieldConstituency),
		CreatedAt:    timeField(doc, fieldCreatedAt),
		UpdatedAt:    timeField(doc, fieldUpdatedAt),
	}

	if registrationNumber, ok := doc[fieldBusinessRegistrationNumber].(string); ok {
		profile.BusinessRegistrationNumber = &registrationNumber
	}

	return profile
}

func stringField(doc map[string]any, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}

	return ""
}

func timeField(doc map[string]any, key string) time.Time {
	if v, ok := doc[key].(time.Time); ok {
		return v
	}

	return time.Time{}
}
