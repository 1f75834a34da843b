package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpgo/wealth-planner/internal/advice"
	"github.com/rpgo/wealth-planner/internal/cache"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/server"
	"github.com/rpgo/wealth-planner/internal/store"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if flagAddr != "" {
		settings.Server.Addr = flagAddr
	}
	logger := newLogger(cmd, settings)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	presets, err := openStore(ctx, settings)
	if err != nil {
		return err
	}
	defer presets.Close()
	if n, err := presets.Seed(ctx, store.DefaultPresets()); err != nil {
		return err
	} else if n > 0 {
		logger.Infof("Seeded %d default presets", n)
	}

	resultCache := cache.New(settings.Cache.TTL.Duration, settings.Cache.Capacity)
	srv := server.New(server.Deps{
		Simulator:   newEngine(settings, logger),
		Recommender: advice.NewEngine(),
		Goals:       advice.NewGoalsAdvisor(),
		Parser:      config.NewInputParser(),
		Cache:       resultCache,
		Presets:     presets,
		Logger:      logger,
	})

	if resultCache.Enabled() && settings.Cache.SweepSchedule != "" {
		sweeper, err := srv.StartSweeper(settings.Cache.SweepSchedule)
		if err != nil {
			return err
		}
		defer sweeper.Stop()
	}

	return srv.ListenAndServe(ctx, settings.Server.Addr)
}
