package worker

import (
	"context"
	"log/slog"

	"marzan/config"
	"marzan/internal/delivery"
	"marzan/internal/delivery/worker/handler"
	"marzan/internal/infra/tasks"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	logger *slog.Logger
	server *asynq.Server
	mux    *asynq.ServeMux
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	EmailHandler *handler.EmailHandler
}

// NewServer creates the asynq worker that consumes queued tasks.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Redis == nil || params.Cfg.Redis.URL == "" {
		return nil, errors.New("redis URL must be provided for the task queue")
	}

	opt, err := asynq.ParseRedisURI(params.Cfg.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis URL")
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendCodeEmail, params.EmailHandler.HandleSendCodeEmail)

	srv := &workerServer{
		logger: params.Logger,
		server: server,
		mux:    mux,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the task queue worker and blocks until shutdown.
func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting task queue worker")
	if err := s.server.Run(s.mux); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker.
func (s *workerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down task queue worker")
	s.server.Shutdown()

	return nil
}
