package main

import (
	"context"

	"foodbridge/config"
	"foodbridge/internal/domain/lifecycle"
	"foodbridge/internal/errors"
	logs "foodbridge/internal/infra/log"
	"foodbridge/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// withApp starts a short-lived fx app holding the database and whatever extra providers the command needs,
// fills targets via fx.Populate and stops the app once run returns.
func withApp(ctx context.Context, providers []any, run func() error, targets ...any) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			postgres.New,
		),
		fx.Provide(providers...),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build app")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start app")
	}

	runErr := run()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()

	return errors.Join(runErr, app.Stop(stopCtx))
}
