package main

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/leengari/colframe/internal/engine"
	"github.com/leengari/colframe/internal/logging"
	"github.com/leengari/colframe/internal/telemetry"
)

func main() {
	logger, closeLog := logging.Setup(logging.Options{Level: slog.LevelInfo})
	defer closeLog()
	slog.SetDefault(logger)

	shutdown := telemetry.Setup("colframe")
	defer shutdown(context.Background())

	pool, err := ants.NewPool(runtime.NumCPU(), ants.WithPanicHandler(func(v any) {
		logger.Error("engine worker panic", "panic", v)
	}))
	if err != nil {
		logger.Error("worker pool init failed", "error", err)
		os.Exit(1)
	}
	defer pool.Release()

	eng := engine.New(
		engine.WithLogger(logger),
		engine.WithObserver(engine.NewLoggingObserver(logger)),
		engine.WithPool(pool, runtime.NumCPU()),
	)

	root := &cobra.Command{
		Use:           "colframe",
		Short:         "Columnar frame engine demos and benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addCommands(root, eng)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
