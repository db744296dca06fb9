package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dukasync/config"
	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/constants"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/domain/repository"
	"dukasync/internal/domain/service"
	"dukasync/internal/errors"
	"dukasync/internal/usecase"

	"go.uber.org/fx"
)

const (
	registrationSuccessMessage = "Account created! Redirecting to your dashboard…"
	onboardingWarningMessage   = "Account created, but some background setup did not complete. You may need to finish configuration from settings."
)

// registrationStep is one named write of the provisioning pipeline.
type registrationStep struct {
	name string
	run  func(ctx context.Context) error
	// bestEffort steps log and record their failure but never stop the pipeline.
	bestEffort bool
}

// registration carries the state of a single Register call through its steps.
type registration struct {
	input              usecase.RegisterInput
	role               entity.Role
	fullName           string
	businessName       string
	shopName           string
	businessKey        string
	registrationNumber *string
	now                time.Time

	session              *entity.Session
	profile              *entity.UserProfile
	onboardingIncomplete bool
}

// registrationService implements usecase.RegistrationUsecase.
type registrationService struct {
	configured    bool
	identity      service.IdentityProvider
	profiles      repository.ProfileRepository
	businesses    repository.BusinessRepository
	businessNames repository.BusinessNameRepository
	ledgers       repository.LedgerRepository
	subscriptions repository.SubscriptionRepository
	onboarding    service.OnboardingNotifier
	publisher     service.EventPublisher
	metrics       service.MetricsRecorder
	logger        *slog.Logger
	now           func() time.Time
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	Config        *config.Config
	Identity      service.IdentityProvider
	Profiles      repository.ProfileRepository
	Businesses    repository.BusinessRepository
	BusinessNames repository.BusinessNameRepository
	Ledgers       repository.LedgerRepository
	Subscriptions repository.SubscriptionRepository
	Onboarding    service.OnboardingNotifier
	Publisher     service.EventPublisher
	Metrics       service.MetricsRecorder
	Logger        *slog.Logger
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		configured:    params.Config.FirebaseConfigured(),
		identity:      params.Identity,
		profiles:      params.Profiles,
		businesses:    params.Businesses,
		businessNames: params.BusinessNames,
		ledgers:       params.Ledgers,
		subscriptions: params.Subscriptions,
		onboarding:    params.Onboarding,
		publisher:     params.Publisher,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// Register validates the input, then provisions the identity and its records step by step.
// Nothing is rolled back when a step after identity creation fails.
func (s *registrationService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	reg, err := s.validate(input)
	if err != nil {
		s.metrics.ObserveRegistration(entity.ParseRole(input.AccountType).String(), constants.OutcomeFailure)
		logger.Info("Registration rejected", slog.Any("error", err))

		return nil, err
	}
	reg.now = s.now()

	if err := s.checkBusinessName(ctx, reg); err != nil {
		s.metrics.ObserveRegistration(reg.role.String(), constants.OutcomeFailure)
		logger.Info("Registration rejected", slog.Any("error", err))

		return nil, err
	}

	session, err := s.identity.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		s.metrics.ObserveRegistrationStep(constants.StepCreateIdentity, constants.OutcomeFailure)
		s.metrics.ObserveRegistration(reg.role.String(), constants.OutcomeFailure)
		logger.Warn("Identity creation failed", slog.Any("error", err))

		return nil, err
	}
	s.metrics.ObserveRegistrationStep(constants.StepCreateIdentity, constants.OutcomeSuccess)
	reg.session = session
	reg.profile = reg.buildProfile()

	logger = logger.With(slog.String("uid", session.UserID), slog.String("role", reg.role.String()))

	completed := []string{constants.StepCreateIdentity}
	for _, step := range s.pipeline(reg) {
		err := step.run(ctx)
		if err == nil {
			completed = append(completed, step.name)
			s.metrics.ObserveRegistrationStep(step.name, constants.OutcomeSuccess)

			continue
		}

		s.metrics.ObserveRegistrationStep(step.name, constants.OutcomeFailure)

		if step.bestEffort {
			logger.Warn("Best-effort registration step failed",
				slog.String("step", step.name),
				slog.Any("error", err),
			)

			continue
		}

		logger.Error("Registration step failed",
			slog.String("step", step.name),
			slog.Any("completed", completed),
			slog.Any("error", err),
		)
		s.metrics.ObserveRegistration(reg.role.String(), constants.OutcomeFailure)

		return nil, domainerrors.NewPartialProvisioningError(step.name, completed, err)
	}

	s.metrics.ObserveRegistration(reg.role.String(), constants.OutcomeSuccess)
	logger.Info("Account registered", slog.Any("steps", completed))

	output := &usecase.RegisterOutput{
		Session:              reg.session,
		Profile:              reg.profile,
		Redirect:             reg.role.DashboardPath(),
		Message:              registrationSuccessMessage,
		OnboardingIncomplete: reg.onboardingIncomplete,
	}
	if reg.onboardingIncomplete {
		output.Message = onboardingWarningMessage
	}

	return output, nil
}

// validate applies the form rules in order; the first failure wins.
func (s *registrationService) validate(input usecase.RegisterInput) (*registration, error) {
	if !s.configured {
		return nil, errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	if input.Password != input.ConfirmPassword {
		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	role := entity.ParseRole(strings.TrimSpace(input.AccountType))
	if !role.CanSelfRegister() {
		return nil, errors.WithStack(domainerrors.ErrInvalidAccountType)
	}

	reg := &registration{
		input:    input,
		role:     role,
		fullName: strings.TrimSpace(input.FullName),
	}

	switch role {
	case entity.RoleWholesaler:
		reg.businessName = strings.TrimSpace(input.BusinessName)
		if reg.businessName == "" {
			return nil, errors.WithStack(domainerrors.ErrMissingBusinessName)
		}
	case entity.RoleShopkeeper:
		reg.shopName = strings.TrimSpace(input.ShopName)
		if reg.shopName == "" {
			return nil, errors.WithStack(domainerrors.ErrMissingShopName)
		}
	case entity.RoleCustomer, entity.RoleAdmin, entity.RoleNone:
	}

	if role.IsBusiness() {
		if strings.TrimSpace(input.County) == "" {
			return nil, errors.WithStack(domainerrors.ErrMissingLocation.WithMessage("Please select your county."))
		}
		if strings.TrimSpace(input.Constituency) == "" {
			return nil, errors.WithStack(domainerrors.ErrMissingLocation.WithMessage("Please select your constituency."))
		}
	}

	if role == entity.RoleWholesaler && !input.AcceptTerms {
		return nil, errors.WithStack(domainerrors.ErrTermsNotAccepted)
	}

	if role == entity.RoleWholesaler {
		if number := strings.TrimSpace(input.BusinessRegistrationNumber); number != "" {
			reg.registrationNumber = &number
		}
	}

	return reg, nil
}

// checkBusinessName runs before any write: a taken slug creates no identity.
func (s *registrationService) checkBusinessName(ctx context.Context, reg *registration) error {
	if reg.role != entity.RoleWholesaler {
		return nil
	}

	reg.businessKey = entity.BusinessNameSlug(reg.businessName)
	if reg.businessKey == "" {
		return errors.WithStack(domainerrors.ErrInvalidBusinessName)
	}

	exists, err := s.businessNames.Exists(ctx, reg.businessKey)
	if err != nil {
		s.metrics.ObserveRegistrationStep(constants.StepCheckBusinessName, constants.OutcomeFailure)

		return errors.Wrap(domainerrors.NewStoreError(err, constants.StepCheckBusinessName), "check business name")
	}
	if exists {
		s.metrics.ObserveRegistrationStep(constants.StepCheckBusinessName, constants.OutcomeFailure)

		return errors.WithStack(domainerrors.ErrDuplicateBusinessName.WithDetails(reg.businessKey))
	}
	s.metrics.ObserveRegistrationStep(constants.StepCheckBusinessName, constants.OutcomeSuccess)

	return nil
}

// pipeline lists the steps that follow identity creation for the role.
func (s *registrationService) pipeline(reg *registration) []registrationStep {
	steps := []registrationStep{}

	if reg.fullName != "" {
		steps = append(steps, registrationStep{name: constants.StepSetDisplayName, run: s.setDisplayName(reg), bestEffort: true})
	}
	steps = append(steps, registrationStep{name: constants.StepWriteProfile, run: s.writeProfile(reg)})

	switch reg.role {
	case entity.RoleWholesaler:
		steps = append(steps,
			registrationStep{name: constants.StepWriteBusiness, run: s.writeBusiness(reg)},
			registrationStep{name: constants.StepReserveBusinessName, run: s.reserveBusinessName(reg)},
			registrationStep{name: constants.StepSeedLedger, run: s.seedLedger(reg)},
			registrationStep{name: constants.StepCreateSubscription, run: s.createSubscription(reg)},
		)
	case entity.RoleShopkeeper:
		steps = append(steps,
			registrationStep{name: constants.StepWriteBusiness, run: s.writeBusiness(reg)},
			registrationStep{name: constants.StepCreateSubscription, run: s.createSubscription(reg)},
		)
	case entity.RoleCustomer, entity.RoleAdmin, entity.RoleNone:
	}

	if s.onboarding.Enabled() {
		steps = append(steps, registrationStep{name: constants.StepNotifyOnboarding, run: s.notifyOnboarding(reg), bestEffort: true})
	}

	return append(steps, registrationStep{name: constants.StepPublishRegistered, run: s.publishRegistered(reg), bestEffort: true})
}

func (s *registrationService) setDisplayName(reg *registration) func(context.Context) error {
	return func(ctx context.Context) error {
		return s.identity.UpdateDisplayName(ctx, reg.session.UserID, reg.fullName)
	}
}

func (s *registrationService) writeProfile(reg *registration) func(context.Context) error {
	return func(ctx context.Context) error {
		return s.profiles.Create(ctx, reg.profile)
	}
}

func (s *registrationService) writeBusiness(reg *registration) func(context.Context) error {
	return func(ctx context.Context) error {
		business := &entity.BusinessEntity{
			ID:           reg.session.UserID,
			OwnerUserID:  reg.session.UserID,
			County:       reg.input.County,
			Constituency: reg.input.Constituency,
			Type:         reg.role,
			CreatedAt:    reg.now,
			UpdatedAt:    reg.now,
		}
		if reg.role == entity.RoleWholesaler {
			business.Name = reg.businessName
			business.RegistrationNumber = reg.registrationNumber
		} else {
			business.Name = reg.shopName
		}

		return s.businesses.Create(ctx, business)
	}
}

func (s *registrationService) reserveBusinessName(reg *registration) func(context.Context) error {
	return func(ctx context.Context) error {
		err := s.businessNames.Reserve(ctx, &entity.BusinessNameIndex{
			BusinessKey: reg.businessKey,
			DisplayName: reg.businessName,
			OwnerUserID: reg.session.UserID,
			CreatedAt:   reg.now,
			UpdatedAt:   reg.now,
		})
		if errors.Is(err, repository.ErrBusinessNameTaken) {
			return errors.WithStack(domainerrors.ErrDuplicateBusinessName.WithDetails(reg.businessKey))
		}

		return err
	}
}

func (s *registrationService) seedLedger(reg *registration) func(context.Context) error {
	return func(ctx context.Context) error {
		return s.ledgers.Seed(ctx, entity.NewFinancialLedgerSeed(reg.session.UserID))
	}
}

func (s *registrationService) createSubscription(reg *registration) func(context.Context) error {
	return func(ctx context.Context) error {
		ownerType, ok := entity.OwnerTypeForRole(reg.role)
		if !ok {
			return errors.Errorf("role %q does not own a subscription", reg.role)
		}

		return s.subscriptions.Create(ctx, entity.NewTrialSubscription(ownerType, reg.session.UserID, reg.now))
	}
}

func (s *registrationService) notifyOnboarding(reg *registration) func(context.Context) error {
	return func(ctx context.Context) error {
		err := s.onboarding.Notify(ctx, reg.session.IDToken, reg.onboardingPayload())
		if err != nil {
			reg.onboardingIncomplete = true
			s.metrics.ObserveOnboarding(constants.OutcomeFailure)

			return err
		}
		s.metrics.ObserveOnboarding(constants.OutcomeSuccess)

		return nil
	}
}

func (s *registrationService) publishRegistered(reg *registration) func(context.Context) error {
	return func(ctx context.Context) error {
		event := &service.AccountRegisteredEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			UserID:     reg.session.UserID,
			Role:       reg.role.String(),
			Email:      reg.input.Email,
			County:     reg.input.County,
			OccurredAt: reg.now,
		}
		if reg.role.IsBusiness() {
			event.BusinessID = reg.session.UserID
		}
		if reg.role == entity.RoleWholesaler {
			event.BusinessKey = reg.businessKey
		}

		return s.publisher.PublishAccountRegistered(ctx, event)
	}
}

func (r *registration) buildProfile() *entity.UserProfile {
	profile := &entity.UserProfile{
		UID:         r.session.UserID,
		AccountType: r.role.String(),
		Email:       r.input.Email,
		DisplayName: r.input.FullName,
		CreatedAt:   r.now,
		UpdatedAt:   r.now,
	}

	switch r.role {
	case entity.RoleWholesaler:
		profile.BusinessName = r.businessName
		profile.BusinessRegistrationNumber = r.registrationNumber
		profile.County = r.input.County
		profile.Constituency = r.input.Constituency
	case entity.RoleShopkeeper:
		profile.ShopName = r.shopName
		profile.County = r.input.County
		profile.Constituency = r.input.Constituency
	case entity.RoleCustomer, entity.RoleAdmin, entity.RoleNone:
	}

	return profile
}

func (r *registration) onboardingPayload() *service.OnboardingPayload {
	payload := &service.OnboardingPayload{
		UID:                        r.session.UserID,
		Role:                       r.role.String(),
		Email:                      r.input.Email,
		Name:                       r.input.FullName,
		BusinessRegistrationNumber: r.registrationNumber,
	}

	if r.role == entity.RoleWholesaler {
		payload.BusinessName = &r.businessName
	}
	if r.role == entity.RoleShopkeeper {
		payload.ShopName = &r.shopName
	}
	if r.role.IsBusiness() {
		county, constituency := r.input.County, r.input.Constituency
		payload.County = &county
		payload.Constituency = &constituency
	}

	return payload
}
