// Package firebase connects the service to the hosted identity provider and stores.
package firebase

import (
	"context"
	"log/slog"

	"dukasync/config"

	"cloud.google.com/go/firestore"
	firebasesdk "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Clients holds the Firebase SDK clients. Every field is nil when Firebase is not configured,
// and Database is nil when no databaseUrl is set.
type Clients struct {
	App       *firebasesdk.App
	Auth      *auth.Client
	Firestore *firestore.Client
	Database  *db.Client
	Toolkit   *identitytoolkit.Service
}

// Configured reports whether the SDK clients were created.
func (c *Clients) Configured() bool {
	return c != nil && c.App != nil
}

// ClientsParams holds dependencies for Clients, injected by Fx
type ClientsParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewClients initializes the Firebase app and the clients derived from it.
func NewClients(params ClientsParams) (*Clients, error) {
	logger := params.Logger

	if !params.Config.FirebaseConfigured() {
		logger.Warn("Firebase is not configured, running without identity provider and stores")

		return &Clients{}, nil
	}

	cfg := params.Config.Firebase
	ctx := params.Ctx

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebasesdk.NewApp(ctx, &firebasesdk.Config{
		ProjectID:     cfg.ProjectID,
		DatabaseURL:   cfg.DatabaseURL,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	var dbClient *db.Client
	if cfg.DatabaseURL != "" {
		dbClient, err = app.Database(ctx)
		if err != nil {
			firestoreClient.Close()

			return nil, errors.Wrap(err, "failed to get realtime database client")
		}
	} else {
		logger.Warn("Firebase databaseUrl not set, ledger seeding will fail")
	}

	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		firestoreClient.Close()

		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Firestore client")

			return errors.WithStack(firestoreClient.Close())
		},
	})

	logger.Info("Firebase clients initialized",
		slog.String("project_id", cfg.ProjectID),
	)

	return &Clients{
		App:       app,
		Auth:      authClient,
		Firestore: firestoreClient,
		Database:  dbClient,
		Toolkit:   toolkit,
	}, nil
}

// FirestoreClient exposes the document store client to the persistence layer.
func FirestoreClient(c *Clients) *firestore.Client {
	return c.Firestore
}

// DatabaseClient exposes the real-time database client to the persistence layer.
func DatabaseClient(c *Clients) *db.Client {
	return c.Database
}

// Module provides the Firebase FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClients,
		FirestoreClient,
		DatabaseClient,
		NewIdentityProvider,
	),
)
