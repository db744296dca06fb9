// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dukasync/config"
	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/constants"
	"dukasync/internal/domain/entity"
	domainerrors "dukasync/internal/domain/errors"
	"dukasync/internal/domain/service"
	"dukasync/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// tokenRefreshWindow is how close to expiry a cached ID token may get before a new one is minted.
	tokenRefreshWindow = 5 * time.Minute
	streamBufferSize   = 64
	// defaultClientIdleTimeout is how long a signed-in client may go unseen before it is signed out.
	defaultClientIdleTimeout = 24 * time.Hour
	idleSweepInterval        = time.Minute
)

// stateEvent is one message on the auth-state stream.
type stateEvent struct {
	change entity.AuthStateChange
	// settles marks events that complete a pending sign-in, sign-out or adoption.
	settles bool
	// refresh marks a token refresh; it only lands on a client still signed in as the same user.
	refresh bool
	// idleBefore marks an idle sign-out; it only lands on a client not seen since then.
	idleBefore time.Time
}

type clientState struct {
	session  *entity.Session
	pending  int
	lastSeen time.Time
}

// sessionService implements usecase.SessionUsecase.
// All state mutations happen on the single stream consumer goroutine.
type sessionService struct {
	provider   service.IdentityProvider
	metrics    service.MetricsRecorder
	configured bool
	logger     *slog.Logger
	now        func() time.Time
	// idleTimeout bounds how long an unseen signed-in client is kept.
	idleTimeout time.Duration

	events chan stateEvent

	mu        sync.Mutex
	clients   map[string]*clientState
	changed   chan struct{}
	listeners []usecase.SessionListener

	lifecycleMu sync.Mutex
	started     bool
	done        chan struct{}
	wg          sync.WaitGroup
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Lc       fx.Lifecycle
	Provider service.IdentityProvider
	Metrics  service.MetricsRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSessionService creates the session service and ties its stream to the application lifecycle.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	s := newSessionService(params.Provider, params.Metrics, params.Config.FirebaseConfigured(), params.Logger)
	if params.Config.Session != nil && params.Config.Session.IdleTimeout > 0 {
		s.idleTimeout = params.Config.Session.IdleTimeout
	}

	params.Lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})

	return s
}

func newSessionService(provider service.IdentityProvider, metrics service.MetricsRecorder, configured bool, logger *slog.Logger) *sessionService {
	return &sessionService{
		provider:    provider,
		metrics:     metrics,
		configured:  configured,
		logger:      logger,
		now:         time.Now,
		idleTimeout: defaultClientIdleTimeout,
		events:      make(chan stateEvent, streamBufferSize),
		clients:     make(map[string]*clientState),
		changed:     make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the stream consumer and the idle sweep. It is a no-op while they run.
func (s *sessionService) Start(_ context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.started {
		return nil
	}
	s.started = true

	select {
	case <-s.done:
		s.done = make(chan struct{})
	default:
	}
	done := s.done

	s.wg.Add(2)
	go s.consume(done)
	go s.sweepLoop(done)

	s.logger.Info("Auth state stream started")

	return nil
}

// Stop closes the stream and waits for its goroutines. A later Start reopens it.
func (s *sessionService) Stop(ctx context.Context) error {
	s.lifecycleMu.Lock()
	if !s.started {
		s.lifecycleMu.Unlock()

		return nil
	}
	s.started = false
	close(s.done)
	s.lifecycleMu.Unlock()

	stopped := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
		s.logger.Info("Auth state stream stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for auth state stream to stop")
	}
}

func (s *sessionService) consume(done <-chan struct{}) {
	defer s.wg.Done()

	for {
		select {
		case event := <-s.events:
			s.apply(event)
		case <-done:
			return
		}
	}
}

func (s *sessionService) sweepLoop(done <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(idleSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepIdle()
		case <-done:
			return
		}
	}
}

// sweepIdle publishes a sign-out for every settled client not seen within idleTimeout.
func (s *sessionService) sweepIdle() {
	cutoff := s.now().Add(-s.idleTimeout)

	s.mu.Lock()
	var idle []string
	for clientID, state := range s.clients {
		if state.pending == 0 && state.lastSeen.Before(cutoff) {
			idle = append(idle, clientID)
		}
	}
	s.mu.Unlock()

	for _, clientID := range idle {
		err := s.publish(context.Background(), stateEvent{
			change:     entity.AuthStateChange{ClientID: clientID},
			idleBefore: cutoff,
		})
		if err != nil {
			return
		}
	}

	if len(idle) > 0 {
		s.logger.Info("Idle clients signed out", slog.Int("count", len(idle)))
	}
}

// acceptsLocked drops conditional events that no longer match the client. The caller holds s.mu.
func acceptsLocked(event stateEvent, state *clientState) bool {
	switch {
	case event.refresh:
		return state != nil && state.session != nil && event.change.Session != nil &&
			state.session.UserID == event.change.Session.UserID
	case !event.idleBefore.IsZero():
		return state != nil && state.pending == 0 && state.lastSeen.Before(event.idleBefore)
	default:
		return true
	}
}

func (s *sessionService) apply(event stateEvent) {
	change := event.change

	s.mu.Lock()
	state := s.clients[change.ClientID]
	if !acceptsLocked(event, state) {
		s.mu.Unlock()

		return
	}
	if state == nil {
		state = &clientState{}
		s.clients[change.ClientID] = state
	}
	state.session = change.Session
	if event.idleBefore.IsZero() {
		state.lastSeen = s.now()
	}
	listeners := append([]usecase.SessionListener(nil), s.listeners...)
	s.mu.Unlock()

	// Listeners run before the pending operation settles, so a settled Await never sees a stale role cache.
	for _, listener := range listeners {
		listener(change)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if event.settles && state.pending > 0 {
		state.pending--
	}
	if state.session == nil && state.pending == 0 && s.clients[change.ClientID] == state {
		delete(s.clients, change.ClientID)
	}
	s.broadcastLocked()
}

// broadcastLocked wakes every Await call. s.mu must be held.
func (s *sessionService) broadcastLocked() {
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *sessionService) doneChan() <-chan struct{} {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	return s.done
}

func (s *sessionService) publish(ctx context.Context, event stateEvent) error {
	select {
	case s.events <- event:
		return nil
	case <-s.doneChan():
		return errors.New("auth state stream is stopped")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (s *sessionService) beginPending(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.clients[clientID]
	if state == nil {
		state = &clientState{}
		s.clients[clientID] = state
	}
	state.pending++
	state.lastSeen = s.now()
}

func (s *sessionService) cancelPending(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.clients[clientID]
	if state == nil {
		return
	}
	if state.pending > 0 {
		state.pending--
	}
	if state.session == nil && state.pending == 0 {
		delete(s.clients, clientID)
	}
	s.broadcastLocked()
}

// Configured reports whether the identity provider credentials are present.
func (s *sessionService) Configured() bool {
	return s.configured
}

// Current returns the client's state and marks the client as seen.
func (s *sessionService) Current(clientID string) entity.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.clients[clientID]
	if state == nil {
		return entity.SessionState{}
	}
	state.lastSeen = s.now()

	return entity.SessionState{Session: state.session, Resolving: state.pending > 0}
}

// Await blocks until the client's state settles.
func (s *sessionService) Await(ctx context.Context, clientID string) (entity.SessionState, error) {
	for {
		s.mu.Lock()
		state := s.clients[clientID]
		if state == nil || state.pending == 0 {
			var current entity.SessionState
			if state != nil {
				current.Session = state.session
				state.lastSeen = s.now()
			}
			s.mu.Unlock()

			return current, nil
		}
		changed := s.changed
		current := entity.SessionState{Session: state.session, Resolving: true}
		s.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return current, errors.WithStack(ctx.Err())
		}
	}
}

// Subscribe registers a listener for applied changes.
func (s *sessionService) Subscribe(listener usecase.SessionListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

// Login signs in and publishes the resulting session on the stream.
func (s *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Session, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if !s.configured {
		return nil, errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	s.beginPending(input.ClientID)

	session, err := s.provider.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		s.cancelPending(input.ClientID)
		s.metrics.ObserveLogin(constants.OutcomeFailure)
		logger.Info("Sign in rejected", slog.Any("error", err))

		return nil, err
	}

	if err := s.publish(ctx, stateEvent{
		change:  entity.AuthStateChange{ClientID: input.ClientID, Session: session},
		settles: true,
	}); err != nil {
		s.cancelPending(input.ClientID)

		return nil, err
	}

	s.metrics.ObserveLogin(constants.OutcomeSuccess)
	logger.Info("User signed in", slog.String("uid", session.UserID))

	return session, nil
}

// Logout publishes a sign-out for the client. Signed-out clients are left untouched.
func (s *sessionService) Logout(ctx context.Context, clientID string) error {
	s.mu.Lock()
	_, known := s.clients[clientID]
	s.mu.Unlock()

	if !known {
		return nil
	}

	s.beginPending(clientID)
	if err := s.publish(ctx, stateEvent{
		change:  entity.AuthStateChange{ClientID: clientID},
		settles: true,
	}); err != nil {
		s.cancelPending(clientID)
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Sign out not published", slog.Any("error", err))
	}

	return nil
}

// Adopt publishes a session created outside Login.
func (s *sessionService) Adopt(ctx context.Context, clientID string, session *entity.Session) error {
	if session == nil {
		return errors.New("cannot adopt a nil session")
	}

	s.beginPending(clientID)
	if err := s.publish(ctx, stateEvent{
		change:  entity.AuthStateChange{ClientID: clientID, Session: session},
		settles: true,
	}); err != nil {
		s.cancelPending(clientID)

		return err
	}

	return nil
}

// VerifyToken resolves a bearer session.
func (s *sessionService) VerifyToken(ctx context.Context, idToken string) (*entity.Session, error) {
	if !s.configured {
		return nil, errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	return s.provider.VerifyIDToken(ctx, idToken)
}

// FreshToken returns the cached ID token or mints a new one close to expiry.
// A refresh that finishes after the client signed out, or signed in as someone else, is not applied.
func (s *sessionService) FreshToken(ctx context.Context, clientID string) (string, error) {
	if !s.configured {
		return "", errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	session := s.Current(clientID).Session
	if session == nil {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if !session.TokenExpiresWithin(s.now(), tokenRefreshWindow) {
		return session.IDToken, nil
	}

	refreshed, err := s.provider.RefreshIDToken(ctx, session)
	if err != nil {
		return "", err
	}

	// Same user id, so listeners treat it as a token refresh
	if err := s.publish(ctx, stateEvent{
		change:  entity.AuthStateChange{ClientID: clientID, Session: refreshed},
		refresh: true,
	}); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Refreshed token not published", slog.Any("error", err))
	}

	return refreshed.IDToken, nil
}

// SendPasswordReset delegates to the identity provider.
func (s *sessionService) SendPasswordReset(ctx context.Context, email string) error {
	if !s.configured {
		return errors.WithStack(domainerrors.ErrServiceNotConfigured)
	}

	if err := s.provider.SendPasswordReset(ctx, email); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Password reset requested")

	return nil
}
