package impl

import (
	"context"
	"testing"
	"time"

	"dukasync/internal/domain/constants"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/domain/repository"
	"dukasync/internal/domain/service"
	"dukasync/internal/errors"
	mockRepo "dukasync/internal/mocks/repository"
	mockService "dukasync/internal/mocks/service"
	"dukasync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrationFixture struct {
	identity      *mockService.MockIdentityProvider
	profiles      *mockRepo.MockProfileRepository
	businesses    *mockRepo.MockBusinessRepository
	businessNames *mockRepo.MockBusinessNameRepository
	ledgers       *mockRepo.MockLedgerRepository
	subscriptions *mockRepo.MockSubscriptionRepository
	onboarding    *mockService.MockOnboardingNotifier
	publisher     *mockService.MockEventPublisher
	now           time.Time
	service       *registrationService
}

func newRegistrationFixture(t *testing.T) *registrationFixture {
	t.Helper()

	f := &registrationFixture{
		identity:      mockService.NewMockIdentityProvider(t),
		profiles:      mockRepo.NewMockProfileRepository(t),
		businesses:    mockRepo.NewMockBusinessRepository(t),
		businessNames: mockRepo.NewMockBusinessNameRepository(t),
		ledgers:       mockRepo.NewMockLedgerRepository(t),
		subscriptions: mockRepo.NewMockSubscriptionRepository(t),
		onboarding:    mockService.NewMockOnboardingNotifier(t),
		publisher:     mockService.NewMockEventPublisher(t),
		now:           time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	f.service = &registrationService{
		configured:    true,
		identity:      f.identity,
		profiles:      f.profiles,
		businesses:    f.businesses,
		businessNames: f.businessNames,
		ledgers:       f.ledgers,
		subscriptions: f.subscriptions,
		onboarding:    f.onboarding,
		publisher:     f.publisher,
		metrics:       permissiveMetrics(t),
		logger:        discardLogger(),
		now:           func() time.Time { return f.now },
	}

	return f
}

func wholesalerInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		FullName:        "Jane Wanjiru",
		Email:           "jane@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AccountType:     "wholesaler",
		BusinessName:    "Mama's Mini-Shop!!",
		County:          "Nairobi",
		Constituency:    "Westlands",
		AcceptTerms:     true,
	}
}

func TestRegistrationService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.RegisterInput)
		wantErr error
		wantMsg string
	}{
		{
			name:    "password mismatch",
			mutate:  func(in *usecase.RegisterInput) { in.ConfirmPassword = "other" },
			wantErr: domainerrors.ErrPasswordMismatch,
		},
		{
			name:    "admin cannot self register",
			mutate:  func(in *usecase.RegisterInput) { in.AccountType = "admin" },
			wantErr: domainerrors.ErrInvalidAccountType,
		},
		{
			name:    "missing business name",
			mutate:  func(in *usecase.RegisterInput) { in.BusinessName = "   " },
			wantErr: domainerrors.ErrMissingBusinessName,
		},
		{
			name: "missing shop name",
			mutate: func(in *usecase.RegisterInput) {
				in.AccountType = "shopkeeper"
				in.ShopName = ""
			},
			wantErr: domainerrors.ErrMissingShopName,
		},
		{
			name:    "missing county",
			mutate:  func(in *usecase.RegisterInput) { in.County = "" },
			wantErr: domainerrors.ErrMissingLocation,
			wantMsg: "Please select your county.",
		},
		{
			name: "shopkeeper without constituency",
			mutate: func(in *usecase.RegisterInput) {
				in.AccountType = "shopkeeper"
				in.ShopName = "Corner Shop"
				in.Constituency = ""
			},
			wantErr: domainerrors.ErrMissingLocation,
			wantMsg: "Please select your constituency.",
		},
		{
			name:    "terms not accepted",
			mutate:  func(in *usecase.RegisterInput) { in.AcceptTerms = false },
			wantErr: domainerrors.ErrTermsNotAccepted,
		},
		{
			name: "password mismatch is reported first",
			mutate: func(in *usecase.RegisterInput) {
				in.ConfirmPassword = "other"
				in.BusinessName = ""
				in.AcceptTerms = false
			},
			wantErr: domainerrors.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any write fails the test.
			f := newRegistrationFixture(t)
			input := wholesalerInput()
			tt.mutate(&input)

			out, err := f.service.Register(context.Background(), input)

			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				appErr, ok := errors.AsType[domainerrors.AppError](err)
				require.True(t, ok)
				assert.Equal(t, tt.wantMsg, appErr.Message())
			}
		})
	}
}

func TestRegistrationService_NotConfigured(t *testing.T) {
	f := newRegistrationFixture(t)
	f.service.configured = false

	_, err := f.service.Register(context.Background(), wholesalerInput())

	assert.ErrorIs(t, err, domainerrors.ErrServiceNotConfigured)
}

func TestRegistrationService_InvalidBusinessName(t *testing.T) {
	f := newRegistrationFixture(t)
	input := wholesalerInput()
	input.BusinessName = "!!!"

	_, err := f.service.Register(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidBusinessName)
}

func TestRegistrationService_DuplicateBusinessName(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	f.businessNames.EXPECT().Exists(ctx, "mama-s-mini-shop").Return(true, nil)

	_, err := f.service.Register(ctx, wholesalerInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateBusinessName)
	f.identity.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationService_Wholesaler(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()
	session := &entity.Session{UserID: "uid-1", Email: "jane@example.com", IDToken: "id-token"}

	var subscription *entity.Subscription

	f.businessNames.EXPECT().Exists(ctx, "mama-s-mini-shop").Return(false, nil)
	f.identity.EXPECT().SignUp(ctx, "jane@example.com", "secret123").Return(session, nil)
	f.identity.EXPECT().UpdateDisplayName(ctx, "uid-1", "Jane Wanjiru").Return(nil)
	f.profiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.UID == "uid-1" && p.AccountType == "wholesaler" &&
			p.BusinessName == "Mama's Mini-Shop!!" && p.BusinessRegistrationNumber == nil &&
			p.County == "Nairobi" && p.Constituency == "Westlands" && p.ShopName == ""
	})).Return(nil)
	f.businesses.EXPECT().Create(ctx, mock.MatchedBy(func(b *entity.BusinessEntity) bool {
		return b.ID == "uid-1" && b.OwnerUserID == "uid-1" && b.Type == entity.RoleWholesaler &&
			b.Name == "Mama's Mini-Shop!!"
	})).Return(nil)
	f.businessNames.EXPECT().Reserve(ctx, mock.MatchedBy(func(i *entity.BusinessNameIndex) bool {
		return i.BusinessKey == "mama-s-mini-shop" && i.OwnerUserID == "uid-1"
	})).Return(nil)
	f.ledgers.EXPECT().Seed(ctx, mock.MatchedBy(func(s *entity.FinancialLedgerSeed) bool {
		return s.OwnerID == "uid-1" && len(s.ChartOfAccounts) == 5 && s.Meta.CreatedBy == "uid-1"
	})).Return(nil)
	f.subscriptions.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, s *entity.Subscription) { subscription = s }).
		Return(nil)
	f.onboarding.EXPECT().Enabled().Return(true)
	f.onboarding.EXPECT().Notify(ctx, "id-token", mock.MatchedBy(func(p *service.OnboardingPayload) bool {
		return p.UID == "uid-1" && p.Role == "wholesaler" &&
			p.BusinessName != nil && *p.BusinessName == "Mama's Mini-Shop!!" &&
			p.ShopName == nil && p.County != nil && *p.County == "Nairobi"
	})).Return(nil)
	f.publisher.EXPECT().PublishAccountRegistered(ctx, mock.MatchedBy(func(e *service.AccountRegisteredEvent) bool {
		return e.UserID == "uid-1" && e.BusinessKey == "mama-s-mini-shop" && e.BusinessID == "uid-1"
	})).Return(nil)

	out, err := f.service.Register(ctx, wholesalerInput())

	require.NoError(t, err)
	assert.Equal(t, entity.DashboardPathWholesaler, out.Redirect)
	assert.Equal(t, registrationSuccessMessage, out.Message)
	assert.False(t, out.OnboardingIncomplete)
	assert.Same(t, session, out.Session)

	require.NotNil(t, subscription)
	assert.Equal(t, entity.OwnerTypeWholesaler, subscription.OwnerType)
	assert.Equal(t, "wholesaler_basic", subscription.PlanID)
	assert.Equal(t, entity.SubscriptionStatusTrial, subscription.Status)
	assert.Equal(t, f.now, subscription.CreatedAt)
	assert.Equal(t, int64(2_592_000_000), subscription.TrialEndsAt.Sub(subscription.CreatedAt).Milliseconds())
	assert.Equal(t, subscription.TrialEndsAt, subscription.CurrentPeriodEnd)
}

func TestRegistrationService_Customer_WritesOnlyProfile(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()
	session := &entity.Session{UserID: "uid-2", IDToken: "id-token"}

	f.identity.EXPECT().SignUp(ctx, "sam@example.com", "secret123").Return(session, nil)
	f.profiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.AccountType == "customer" && p.County == "" && p.DisplayName == ""
	})).Return(nil)
	f.onboarding.EXPECT().Enabled().Return(false)
	f.publisher.EXPECT().PublishAccountRegistered(ctx, mock.Anything).Return(nil)

	out, err := f.service.Register(ctx, usecase.RegisterInput{
		Email:           "sam@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AccountType:     "customer",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DashboardPathCustomer, out.Redirect)
	f.identity.AssertNotCalled(t, "UpdateDisplayName", mock.Anything, mock.Anything, mock.Anything)
	f.businesses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.ledgers.AssertNotCalled(t, "Seed", mock.Anything, mock.Anything)
	f.subscriptions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistrationService_Shopkeeper(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()
	session := &entity.Session{UserID: "uid-3"}

	f.identity.EXPECT().SignUp(ctx, "ali@example.com", "secret123").Return(session, nil)
	f.identity.EXPECT().UpdateDisplayName(ctx, "uid-3", "Ali").Return(nil)
	f.profiles.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.businesses.EXPECT().Create(ctx, mock.MatchedBy(func(b *entity.BusinessEntity) bool {
		return b.Type == entity.RoleShopkeeper && b.Name == "Corner Shop" && b.RegistrationNumber == nil
	})).Return(nil)
	f.subscriptions.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.Subscription) bool {
		return s.OwnerType == entity.OwnerTypeShop && s.PlanID == "shop_basic"
	})).Return(nil)
	f.onboarding.EXPECT().Enabled().Return(false)
	f.publisher.EXPECT().PublishAccountRegistered(ctx, mock.Anything).Return(nil)

	out, err := f.service.Register(ctx, usecase.RegisterInput{
		FullName:        "Ali",
		Email:           "ali@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AccountType:     "Shopkeeper",
		ShopName:        "Corner Shop",
		County:          "Mombasa",
		Constituency:    "Nyali",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DashboardPathShopkeeper, out.Redirect)
	f.businessNames.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	f.ledgers.AssertNotCalled(t, "Seed", mock.Anything, mock.Anything)
}

func expectWholesalerUpToLedger(ctx context.Context, f *registrationFixture) {
	f.businessNames.EXPECT().Exists(ctx, "mama-s-mini-shop").Return(false, nil)
	f.identity.EXPECT().SignUp(ctx, "jane@example.com", "secret123").Return(&entity.Session{UserID: "uid-1"}, nil)
	f.identity.EXPECT().UpdateDisplayName(ctx, "uid-1", "Jane Wanjiru").Return(nil)
	f.profiles.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.businesses.EXPECT().Create(ctx, mock.Anything).Return(nil)
}

func TestRegistrationService_LedgerFailure(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	expectWholesalerUpToLedger(ctx, f)
	f.businessNames.EXPECT().Reserve(ctx, mock.Anything).Return(nil)
	f.ledgers.EXPECT().Seed(ctx, mock.Anything).Return(errors.New("permission denied"))
	f.onboarding.EXPECT().Enabled().Return(true).Maybe()

	out, err := f.service.Register(ctx, wholesalerInput())

	require.Error(t, err)
	assert.Nil(t, out)

	partial, ok := errors.AsType[*domainerrors.PartialProvisioningError](err)
	require.True(t, ok)
	assert.True(t, partial.LedgerNotSeeded())
	assert.Equal(t, "LEDGER_NOT_SEEDED", partial.ErrorCode())
	assert.Contains(t, partial.Message(), "financial accounts were not set up")
	assert.Equal(t, []string{
		constants.StepCreateIdentity,
		constants.StepSetDisplayName,
		constants.StepWriteProfile,
		constants.StepWriteBusiness,
		constants.StepReserveBusinessName,
	}, partial.Completed())
	f.subscriptions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistrationService_LostNameRace(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	expectWholesalerUpToLedger(ctx, f)
	f.businessNames.EXPECT().Reserve(ctx, mock.Anything).Return(repository.ErrBusinessNameTaken)
	f.onboarding.EXPECT().Enabled().Return(false).Maybe()

	_, err := f.service.Register(ctx, wholesalerInput())

	partial, ok := errors.AsType[*domainerrors.PartialProvisioningError](err)
	require.True(t, ok)
	assert.Equal(t, constants.StepReserveBusinessName, partial.FailedStep())
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateBusinessName)
	f.ledgers.AssertNotCalled(t, "Seed", mock.Anything, mock.Anything)
}

func TestRegistrationService_BestEffortFailures(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()
	session := &entity.Session{UserID: "uid-1", IDToken: "id-token"}

	f.businessNames.EXPECT().Exists(ctx, "mama-s-mini-shop").Return(false, nil)
	f.identity.EXPECT().SignUp(ctx, "jane@example.com", "secret123").Return(session, nil)
	f.identity.EXPECT().UpdateDisplayName(ctx, "uid-1", "Jane Wanjiru").Return(errors.New("quota"))
	f.profiles.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.businesses.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.businessNames.EXPECT().Reserve(ctx, mock.Anything).Return(nil)
	f.ledgers.EXPECT().Seed(ctx, mock.Anything).Return(nil)
	f.subscriptions.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.onboarding.EXPECT().Enabled().Return(true)
	f.onboarding.EXPECT().Notify(ctx, "id-token", mock.Anything).Return(errors.New("onboarding returned 502"))
	f.publisher.EXPECT().PublishAccountRegistered(ctx, mock.Anything).Return(errors.New("topic not found"))

	out, err := f.service.Register(ctx, wholesalerInput())

	require.NoError(t, err)
	assert.True(t, out.OnboardingIncomplete)
	assert.Equal(t, onboardingWarningMessage, out.Message)
	assert.Equal(t, entity.DashboardPathWholesaler, out.Redirect)
}

func TestRegistrationService_IdentityFailure(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	f.businessNames.EXPECT().Exists(ctx, "mama-s-mini-shop").Return(false, nil)
	f.identity.EXPECT().SignUp(ctx, "jane@example.com", "secret123").Return(nil, domainerrors.ErrEmailAlreadyInUse)

	_, err := f.service.Register(ctx, wholesalerInput())

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
	_, partial := errors.AsType[*domainerrors.PartialProvisioningError](err)
	assert.False(t, partial)
	f.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistrationService_RegistrationNumber(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()
	input := wholesalerInput()
	input.BusinessRegistrationNumber = " PVT-123 "

	f.businessNames.EXPECT().Exists(ctx, "mama-s-mini-shop").Return(false, nil)
	f.identity.EXPECT().SignUp(ctx, "jane@example.com", "secret123").Return(&entity.Session{UserID: "uid-1"}, nil)
	f.identity.EXPECT().UpdateDisplayName(ctx, "uid-1", "Jane Wanjiru").Return(nil)
	f.profiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.BusinessRegistrationNumber != nil && *p.BusinessRegistrationNumber == "PVT-123"
	})).Return(nil)
	f.businesses.EXPECT().Create(ctx, mock.MatchedBy(func(b *entity.BusinessEntity) bool {
		return b.RegistrationNumber != nil && *b.RegistrationNumber == "PVT-123"
	})).Return(nil)
	f.businessNames.EXPECT().Reserve(ctx, mock.Anything).Return(nil)
	f.ledgers.EXPECT().Seed(ctx, mock.Anything).Return(nil)
	f.subscriptions.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.onboarding.EXPECT().Enabled().Return(false)
	f.publisher.EXPECT().PublishAccountRegistered(ctx, mock.Anything).Return(nil)

	_, err := f.service.Register(ctx, input)

	require.NoError(t, err)
}
