package engine

import (
	"github.com/lintang-b-s/travelassistant/pkg/assistant"
	"github.com/lintang-b-s/travelassistant/pkg/datastructure"
	"github.com/lintang-b-s/travelassistant/pkg/engine/routing"
	"go.uber.org/zap"
)

type Engine struct {
	catalog        *datastructure.Catalog
	routeOptimizer *routing.RouteOptimizer
	queryRouter    *assistant.QueryRouter
}

func (e *Engine) GetCatalog() *datastructure.Catalog {
	return e.catalog
}

func (e *Engine) GetRouteOptimizer() *routing.RouteOptimizer {
	return e.routeOptimizer
}

func (e *Engine) GetQueryRouter() *assistant.QueryRouter {
	return e.queryRouter
}

// NewEngine. catalogFilePath empty = built-in tables
func NewEngine(catalogFilePath string, clock routing.Clock, logger *zap.Logger) (*Engine, error) {
	catalog, err := initializeCatalog(catalogFilePath, logger)
	if err != nil {
		return nil, err
	}

	routeOptimizer := routing.NewRouteOptimizer(catalog, logger, routing.WithClock(clock))
	queryRouter := assistant.NewQueryRouter(catalog.SupportedCities(), routeOptimizer, logger)

	return &Engine{
		catalog:        catalog,
		routeOptimizer: routeOptimizer,
		queryRouter:    queryRouter,
	}, nil
}

func initializeCatalog(catalogFilePath string, logger *zap.Logger) (*datastructure.Catalog, error) {
	if catalogFilePath == "" {
		logger.Info("Using built-in transport catalog...")
		return datastructure.NewDefaultCatalog(), nil
	}

	logger.Info("Reading transport catalog from ", zap.String("catalogFilePath", catalogFilePath))
	catalog, err := datastructure.ReadCatalog(catalogFilePath)
	if err != nil {
		return nil, err
	}
	logger.Info("Transport catalog loaded",
		zap.Int("cities", len(catalog.SupportedCities())),
		zap.Int("roadSegments", catalog.NumberOfRoadSegments()),
		zap.Int("trainRoutes", catalog.NumberOfTrainRoutes()))
	return catalog, nil
}
