package tasks

import (
	"context"
	"log/slog"

	"marzan/config"
	"marzan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// asynqDispatcher implements service.CodeDispatcher using an asynq client.
type asynqDispatcher struct {
	client *asynq.Client
	logger *slog.Logger
}

// DispatcherParams holds dependencies for the code dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCodeDispatcher creates the asynq-backed code dispatcher.
func NewCodeDispatcher(params DispatcherParams) (service.CodeDispatcher, error) {
	if params.Config.Redis == nil || params.Config.Redis.URL == "" {
		return nil, errors.New("redis URL must be provided for the task queue")
	}

	opt, err := asynq.ParseRedisURI(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis URL")
	}

	client := asynq.NewClient(opt)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing task queue client")

			return client.Close()
		},
	})

	return &asynqDispatcher{
		client: client,
		logger: params.Logger,
	}, nil
}

// EnqueueSendCode enqueues the email delivery task for an issued code.
func (d *asynqDispatcher) EnqueueSendCode(ctx context.Context, codeID uuid.UUID) error {
	task, err := NewSendCodeEmailTask(codeID)
	if err != nil {
		return err
	}

	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return errors.Wrap(err, "failed to enqueue send code task")
	}

	d.logger.Info("Send code task enqueued",
		slog.String("task_id", info.ID),
		slog.String("code_id", codeID.String()),
	)

	return nil
}
