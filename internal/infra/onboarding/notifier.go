// Package onboarding posts new accounts to the optional backend onboarding endpoint.
package onboarding

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dukasync/config"
	deliverycontext "dukasync/internal/delivery/context"
	"dukasync/internal/domain/service"
	"dukasync/internal/errors"

	"github.com/doyensec/safeurl"
	"go.uber.org/fx"
)

const maxErrorBodySize = 1 << 10

type httpNotifier struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NotifierParams holds dependencies for the onboarding notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates the onboarding notifier. Without a configured URL it is disabled.
// Requests go through an SSRF-guarded client unless private networks are explicitly allowed.
func NewNotifier(params NotifierParams) (service.OnboardingNotifier, error) {
	cfg := params.Config.Onboarding
	if cfg == nil || strings.TrimSpace(cfg.URL) == "" {
		params.Logger.Info("Onboarding endpoint not configured, onboarding step disabled")

		return &httpNotifier{logger: params.Logger}, nil
	}

	endpoint, err := url.Parse(strings.TrimSpace(cfg.URL))
	if err != nil {
		return nil, errors.Wrap(err, "invalid onboarding url")
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, errors.Errorf("onboarding url must be http or https, got %q", endpoint.Scheme)
	}

	var client *http.Client
	if cfg.AllowPrivateNetworks {
		client = &http.Client{Timeout: cfg.Timeout}
	} else {
		port, err := endpointPort(endpoint)
		if err != nil {
			return nil, err
		}
		safeConfig := safeurl.GetConfigBuilder().
			SetTimeout(cfg.Timeout).
			SetAllowedSchemes("http", "https").
			SetAllowedPorts(port).
			Build()
		client = safeurl.Client(safeConfig).Client
	}

	params.Logger.Info("Onboarding notifier initialized",
		slog.String("host", endpoint.Host),
		slog.Bool("allow_private_networks", cfg.AllowPrivateNetworks),
	)

	return &httpNotifier{
		endpoint: endpoint.String(),
		client:   client,
		logger:   params.Logger,
	}, nil
}

func endpointPort(endpoint *url.URL) (int, error) {
	if p := endpoint.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return 0, errors.Wrap(err, "invalid onboarding port")
		}

		return port, nil
	}
	if endpoint.Scheme == "http" {
		return 80, nil
	}

	return 443, nil
}

// Enabled reports whether an endpoint is configured
func (n *httpNotifier) Enabled() bool {
	return n.endpoint != ""
}

// Notify posts the payload with the identity's bearer token
func (n *httpNotifier) Notify(ctx context.Context, idToken string, payload *service.OnboardingPayload) error {
	if !n.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+idToken)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "onboarding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return errors.Errorf("onboarding endpoint answered %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Debug("Onboarding endpoint accepted account",
		slog.String("uid", payload.UID),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

// Module provides the onboarding FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
