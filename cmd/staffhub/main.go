package main

import (
	"context"
	"log/slog"
	"os"

	"staffhub/config"
	"staffhub/internal/delivery"
	"staffhub/internal/delivery/http"
	"staffhub/internal/delivery/http/middleware"
	"staffhub/internal/delivery/http/router/handler"
	"staffhub/internal/infra/auth"
	logs "staffhub/internal/infra/log"
	"staffhub/internal/infra/persistence/postgres"
	"staffhub/internal/infra/sms"
	"staffhub/internal/infra/storage"
	"staffhub/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVerificationRepository,
			postgres.NewEmployeeRepository,
			postgres.NewDepartmentRepository,
			postgres.NewAttendanceRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewCredentialValidator,
			auth.NewJWTService,
			sms.NewConsoleSender,
			storage.NewAvatarStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStaffService,
			impl.NewAttendanceService,
			impl.NewAnalyticsService,
			impl.NewAvatarService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewStaffHandler,
			handler.NewAttendanceHandler,
			handler.NewAdminHandler,
			handler.NewAvatarHandler,
			handler.NewDepartmentHandler,
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
