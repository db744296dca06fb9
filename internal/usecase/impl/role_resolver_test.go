package impl

import (
	"context"
	"testing"

	"dukasync/internal/domain/entity"
	"dukasync/internal/domain/repository"
	mockRepo "dukasync/internal/mocks/repository"
	mockService "dukasync/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRoleResolver_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		profile     *entity.UserProfile
		err         error
		wantRole    entity.Role
		wantOutcome entity.RoleOutcome
	}{
		{
			name:        "account type wins",
			profile:     &entity.UserProfile{UID: "uid-1", AccountType: "Wholesaler", LegacyRole: "customer"},
			wantRole:    entity.RoleWholesaler,
			wantOutcome: entity.RoleOutcomeResolved,
		},
		{
			name:        "legacy role fallback",
			profile:     &entity.UserProfile{UID: "uid-1", LegacyRole: "ADMIN"},
			wantRole:    entity.RoleAdmin,
			wantOutcome: entity.RoleOutcomeResolved,
		},
		{
			name:        "unknown value",
			profile:     &entity.UserProfile{UID: "uid-1", AccountType: "supplier"},
			wantRole:    entity.RoleNone,
			wantOutcome: entity.RoleOutcomeResolved,
		},
		{
			name:        "no profile",
			err:         repository.ErrProfileNotFound,
			wantRole:    entity.RoleNone,
			wantOutcome: entity.RoleOutcomeNoProfile,
		},
		{
			name:        "fetch failure",
			err:         errors.New("permission denied"),
			wantRole:    entity.RoleNone,
			wantOutcome: entity.RoleOutcomeFetchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := mockRepo.NewMockProfileRepository(t)
			resolver := newRoleResolver(profiles, permissiveMetrics(t), discardLogger())
			ctx := context.Background()

			profiles.EXPECT().FindByID(ctx, "uid-1").Return(tt.profile, tt.err).Once()

			got := resolver.Resolve(ctx, "client-1", &entity.Session{UserID: "uid-1"})

			assert.Equal(t, tt.wantRole, got.Role)
			assert.Equal(t, tt.wantOutcome, got.Outcome)
			assert.Equal(t, "uid-1", got.UserID)
		})
	}
}

func TestRoleResolver_Resolve_NilSession(t *testing.T) {
	resolver := newRoleResolver(mockRepo.NewMockProfileRepository(t), permissiveMetrics(t), discardLogger())

	got := resolver.Resolve(context.Background(), "client-1", nil)

	assert.Equal(t, entity.RoleNone, got.Role)
	assert.Equal(t, entity.RoleOutcomeNoProfile, got.Outcome)
}

func TestRoleResolver_CachesUntilUserChanges(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	resolver := newRoleResolver(profiles, permissiveMetrics(t), discardLogger())
	ctx := context.Background()
	first := &entity.Session{UserID: "uid-1"}

	profiles.EXPECT().FindByID(ctx, "uid-1").
		Return(&entity.UserProfile{UID: "uid-1", AccountType: "shopkeeper"}, nil).Once()

	assert.Equal(t, entity.RoleShopkeeper, resolver.Resolve(ctx, "client-1", first).Role)
	assert.Equal(t, entity.RoleShopkeeper, resolver.Resolve(ctx, "client-1", first).Role)

	// Token refresh: same user, cache kept
	resolver.onAuthStateChange(entity.AuthStateChange{ClientID: "client-1", Session: &entity.Session{UserID: "uid-1", IDToken: "new"}})
	assert.Equal(t, entity.RoleShopkeeper, resolver.Resolve(ctx, "client-1", first).Role)

	// Another user signs in on the same client
	second := &entity.Session{UserID: "uid-2"}
	resolver.onAuthStateChange(entity.AuthStateChange{ClientID: "client-1", Session: second})
	profiles.EXPECT().FindByID(ctx, "uid-2").
		Return(&entity.UserProfile{UID: "uid-2", AccountType: "customer"}, nil).Once()
	assert.Equal(t, entity.RoleCustomer, resolver.Resolve(ctx, "client-1", second).Role)

	// Sign out evicts
	resolver.onAuthStateChange(entity.AuthStateChange{ClientID: "client-1"})
	profiles.EXPECT().FindByID(ctx, "uid-2").
		Return(&entity.UserProfile{UID: "uid-2", AccountType: "customer"}, nil).Once()
	assert.Equal(t, entity.RoleCustomer, resolver.Resolve(ctx, "client-1", second).Role)
}

func TestRoleResolver_FetchFailureIsNotCached(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	resolver := newRoleResolver(profiles, permissiveMetrics(t), discardLogger())
	ctx := context.Background()
	session := &entity.Session{UserID: "uid-1"}

	profiles.EXPECT().FindByID(ctx, "uid-1").Return(nil, errors.New("unavailable")).Once()
	profiles.EXPECT().FindByID(ctx, "uid-1").
		Return(&entity.UserProfile{UID: "uid-1", AccountType: "admin"}, nil).Once()

	assert.Equal(t, entity.RoleOutcomeFetchFailed, resolver.Resolve(ctx, "client-1", session).Outcome)
	assert.Equal(t, entity.RoleAdmin, resolver.Resolve(ctx, "client-1", session).Role)
}

func TestRoleResolver_EvictionDuringFetchDropsResult(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	resolver := newRoleResolver(profiles, permissiveMetrics(t), discardLogger())
	ctx := context.Background()
	session := &entity.Session{UserID: "uid-1"}

	profiles.EXPECT().FindByID(ctx, "uid-1").
		Run(func(context.Context, string) {
			resolver.onAuthStateChange(entity.AuthStateChange{ClientID: "client-1"})
		}).
		Return(&entity.UserProfile{UID: "uid-1", AccountType: "admin"}, nil).Once()
	profiles.EXPECT().FindByID(ctx, "uid-1").
		Return(&entity.UserProfile{UID: "uid-1", AccountType: "admin"}, nil).Once()

	assert.Equal(t, entity.RoleAdmin, resolver.Resolve(ctx, "client-1", session).Role)
	assert.Equal(t, entity.RoleAdmin, resolver.Resolve(ctx, "client-1", session).Role)
}

func TestRoleResolver_ResolveBearerIsNotCached(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	metrics := mockService.NewMockMetricsRecorder(t)
	resolver := newRoleResolver(profiles, metrics, discardLogger())
	ctx := context.Background()
	session := &entity.Session{UserID: "uid-1"}

	profiles.EXPECT().FindByID(ctx, "uid-1").
		Return(&entity.UserProfile{UID: "uid-1", AccountType: "customer"}, nil).Twice()
	metrics.EXPECT().ObserveRoleResolution(string(entity.RoleOutcomeResolved)).Twice()

	assert.Equal(t, entity.RoleCustomer, resolver.ResolveBearer(ctx, session).Role)
	assert.Equal(t, entity.RoleCustomer, resolver.ResolveBearer(ctx, session).Role)
}

func TestRoleResolver_SignOutLeavesNoBookkeeping(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	resolver := newRoleResolver(profiles, permissiveMetrics(t), discardLogger())
	ctx := context.Background()

	profiles.EXPECT().FindByID(ctx, "uid-1").
		Return(&entity.UserProfile{UID: "uid-1", AccountType: "customer"}, nil)

	for _, clientID := range []string{"client-1", "client-2", "client-3"} {
		resolver.Resolve(ctx, clientID, &entity.Session{UserID: "uid-1"})
		resolver.onAuthStateChange(entity.AuthStateChange{ClientID: clientID})
	}
	// Sign-outs for clients that never resolved a role
	resolver.onAuthStateChange(entity.AuthStateChange{ClientID: "client-4"})

	resolver.mu.Lock()
	defer resolver.mu.Unlock()
	assert.Empty(t, resolver.cache)
	assert.Empty(t, resolver.generation)
	assert.Empty(t, resolver.fetching)
}

func TestRoleResolver_EvictionDuringFetchLeavesNoBookkeeping(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	resolver := newRoleResolver(profiles, permissiveMetrics(t), discardLogger())
	ctx := context.Background()

	profiles.EXPECT().FindByID(ctx, "uid-1").
		Run(func(context.Context, string) {
			resolver.onAuthStateChange(entity.AuthStateChange{ClientID: "client-1"})
		}).
		Return(&entity.UserProfile{UID: "uid-1", AccountType: "admin"}, nil).Once()

	resolver.Resolve(ctx, "client-1", &entity.Session{UserID: "uid-1"})

	resolver.mu.Lock()
	defer resolver.mu.Unlock()
	assert.Empty(t, resolver.cache)
	assert.Empty(t, resolver.generation)
	assert.Empty(t, resolver.fetching)
}
