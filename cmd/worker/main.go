package main

import (
	"context"
	"log/slog"
	"os"

	"marzan/config"
	"marzan/internal/delivery"
	"marzan/internal/delivery/worker"
	"marzan/internal/delivery/worker/handler"
	logs "marzan/internal/infra/log"
	"marzan/internal/infra/mail"
	"marzan/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type startWorkerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewLoyaltyCodeRepository,
			mail.NewSMTPMailer,
			handler.NewEmailHandler,
		),
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startWorker,
		),
	).Run()
}

func startWorker(ctx context.Context, params startWorkerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
