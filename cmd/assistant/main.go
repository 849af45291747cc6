package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/lintang-b-s/travelassistant/pkg/console"
	"github.com/lintang-b-s/travelassistant/pkg/engine"
	"github.com/lintang-b-s/travelassistant/pkg/engine/routing"
	"github.com/lintang-b-s/travelassistant/pkg/logger"
	"github.com/lintang-b-s/travelassistant/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	catalogFile = flag.String("catalog", "", "yaml transport catalog (.yaml or .yaml.bz2), overrides CATALOG_FILE")
	timezone    = flag.String("timezone", "", "IANA timezone used for train departures, overrides TIMEZONE")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	if *catalogFile != "" {
		viper.Set("CATALOG_FILE", *catalogFile)
	}
	if *timezone != "" {
		viper.Set("TIMEZONE", *timezone)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	loc, err := loadLocation(viper.GetString("TIMEZONE"))
	if err != nil {
		logger.Fatal("invalid timezone", zap.String("timezone", viper.GetString("TIMEZONE")), zap.Error(err))
	}

	travelEngine, err := engine.NewEngine(viper.GetString("CATALOG_FILE"), routing.NewSystemClock(loc), logger)
	if err != nil {
		logger.Fatal("failed to initialize travel engine", zap.Error(err))
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	defer cleanup()

	stdin, restoreStdin := newStdin()
	defer restoreStdin()

	cons := console.New(travelEngine.GetQueryRouter(), stdin, os.Stdout, viper.GetString("PROMPT"), logger)
	if err := cons.Run(ctx); err != nil && !util.StopConcurrentOperation(ctx) {
		logger.Error("console stopped with error", zap.Error(err))
	}
	logger.Info("Morocco Travel Assistant stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}

// loadLocation. IANA zone names resolve from the embedded tz database when the host has none
func loadLocation(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}
