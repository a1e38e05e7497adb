package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/Flightx/pkg/engine"
	"github.com/lintang-b-s/Flightx/pkg/http"
	"github.com/lintang-b-s/Flightx/pkg/http/usecases"
	"github.com/lintang-b-s/Flightx/pkg/logger"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	datasetPath = flag.String("dataset", "", "flight routes csv (.csv or .csv.bz2), overrides DATASET_PATH")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := util.ReadConfig(); err != nil {
		logger.Fatal("failed to read config", zap.Error(err))
	}
	if *datasetPath != "" {
		viper.Set("DATASET_PATH", *datasetPath)
	}

	flightEngine, err := engine.NewEngine(viper.GetString("DATASET_PATH"), logger)
	if err != nil {
		logger.Fatal("failed to load flight routes", zap.Error(err))
	}

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, flightEngine, viper.GetInt("MST_WORKERS"),
		viper.GetInt("NEARBY_MAX_RESULTS"), viper.GetBool("ALLOW_RELOAD"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api, err = api.Use(ctx,
		logger, viper.GetBool("RATE_LIMIT_ENABLED"), routingService)
	if err != nil {
		logger.Fatal("failed to start api", zap.Error(err))
	}

	signal := http.GracefulShutdown()

	logger.Info("Flightx Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("api stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
