package main

import (
	"context"
	"log/slog"
	"os"

	"dukasync/config"
	"dukasync/internal/delivery"
	"dukasync/internal/delivery/api"
	apimiddleware "dukasync/internal/delivery/api/middleware"
	"dukasync/internal/delivery/api/router/handler"
	"dukasync/internal/infra/firebase"
	logs "dukasync/internal/infra/log"
	"dukasync/internal/infra/metrics"
	"dukasync/internal/infra/onboarding"
	"dukasync/internal/infra/persistence/firestore"
	"dukasync/internal/infra/persistence/rtdb"
	"dukasync/internal/infra/pubsub"
	"dukasync/internal/infra/qrcode"
	"dukasync/internal/infra/sanitize"
	"dukasync/internal/infra/storage"
	"dukasync/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
		metrics.Module,
		storage.Module,
		pubsub.Module,
		onboarding.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		firestore.Module,
		rtdb.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			sanitize.NewTextSanitizer,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewRoleResolver,
			impl.NewRouteGuard,
			impl.NewRegistrationService,
			impl.NewDashboardService,
			impl.NewContactService,
			impl.NewDownloadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
			apimiddleware.NewGuardMiddleware,
			apimiddleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewNavigationHandler,
			handler.NewDashboardHandler,
			handler.NewContactHandler,
			handler.NewDownloadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
