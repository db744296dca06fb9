package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"dukasync/config"
	"dukasync/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

const (
	eventAccountRegistered = "account.registered"
	// publishAckTimeout bounds the wait for the server id, so a slow broker cannot hold up a registration response.
	publishAckTimeout = 5 * time.Second
)

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher opens a publisher on an existing topic. A missing topic fails startup.
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := topicName(cfg.ProjectID, cfg.TopicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "registration topic %s is not reachable", topic)
	}

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

func topicName(projectID, topicID string) string {
	return "projects/" + projectID + "/topics/" + topicID
}

// registeredAttributes lets subscriptions filter by role or county without decoding the payload.
func registeredAttributes(event *service.AccountRegisteredEvent) map[string]string {
	attrs := map[string]string{
		"event": eventAccountRegistered,
		"uid":   event.UserID,
		"role":  event.Role,
	}
	if event.County != "" {
		attrs["county"] = event.County
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}

func (p *googlePublisher) PublishAccountRegistered(ctx context.Context, event *service.AccountRegisteredEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode account registered event")
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: registeredAttributes(event),
	})

	ackCtx, cancel := context.WithTimeout(ctx, publishAckTimeout)
	defer cancel()

	serverID, err := result.Get(ackCtx)
	if err != nil {
		return errors.Wrapf(err, "publish to %s", p.topic)
	}

	p.logger.Debug("Account registered event published",
		slog.String("uid", event.UserID),
		slog.String("role", event.Role),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
