package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/travelassistant/pkg/datastructure"
	"github.com/lintang-b-s/travelassistant/pkg/logger"
	"github.com/lintang-b-s/travelassistant/pkg/util"
	"go.uber.org/zap"
)

var (
	exportPath   = flag.String("export", "", "write the built-in catalog to this path (.yaml or .yaml.bz2)")
	validatePath = flag.String("validate", "", "read and validate the catalog at this path")
)

func main() {
	flag.Parse()
	if *exportPath == "" && *validatePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *exportPath != "" {
		catalog := datastructure.NewDefaultCatalog()
		if err := catalog.WriteCatalog(*exportPath); err != nil {
			logger.Fatal("failed to write catalog", zap.String("path", *exportPath), zap.Error(err))
		}
		logger.Info("built-in catalog written", zap.String("path", *exportPath))
	}

	if *validatePath != "" {
		catalog, err := datastructure.ReadCatalog(*validatePath)
		if err != nil {
			logger.Fatal("invalid catalog", zap.String("path", *validatePath), zap.Error(err))
		}
		fmt.Printf("%s: %d cities, %d road segments, %d train routes\n", *validatePath,
			len(catalog.SupportedCities()), catalog.NumberOfRoadSegments(), catalog.NumberOfTrainRoutes())
	}
}
