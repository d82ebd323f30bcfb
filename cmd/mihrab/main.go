package main

import (
	"context"
	"log/slog"
	"os"

	"mihrab/config"
	"mihrab/internal/delivery"
	"mihrab/internal/delivery/http"
	"mihrab/internal/delivery/http/middleware"
	"mihrab/internal/delivery/http/router/handler"
	"mihrab/internal/delivery/worker"
	"mihrab/internal/infra/auth"
	"mihrab/internal/infra/cache"
	"mihrab/internal/infra/client/aladhan"
	"mihrab/internal/infra/client/alquran"
	"mihrab/internal/infra/client/hadithcdn"
	"mihrab/internal/infra/client/overpass"
	logs "mihrab/internal/infra/log"
	"mihrab/internal/infra/notification"
	"mihrab/internal/infra/persistence/postgres"
	"mihrab/internal/infra/qrcode"
	"mihrab/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
		cache.NewRedisCache,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewStreakRepository,
			postgres.NewTasbeehRepository,
			postgres.NewMemorizationRepository,
			postgres.NewSettingRepository,
			postgres.NewDeviceRepository,
			postgres.NewBookmarkRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewFirebaseService,
			qrcode.NewQRCodeService,
			alquran.NewClient,
			aladhan.NewClient,
			hadithcdn.NewClient,
			overpass.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewQuranService,
			impl.NewPrayerService,
			impl.NewQiblaService,
			impl.NewHadithService,
			impl.NewPlacesService,
			impl.NewStreakService,
			impl.NewTasbeehService,
			impl.NewMemorizationService,
			impl.NewSettingService,
			impl.NewDeviceService,
			impl.NewShareService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewQuranHandler,
			handler.NewPrayerHandler,
			handler.NewQiblaHandler,
			handler.NewHadithHandler,
			handler.NewPlacesHandler,
			handler.NewStreakHandler,
			handler.NewTasbeehHandler,
			handler.NewMemorizationHandler,
			handler.NewSettingHandler,
			handler.NewDeviceHandler,
			handler.NewShareHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
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
