package routing

import (
	"fmt"

	"github.com/lintang-b-s/travelassistant/pkg"
	"github.com/lintang-b-s/travelassistant/pkg/costfunction"
	da "github.com/lintang-b-s/travelassistant/pkg/datastructure"
	"github.com/lintang-b-s/travelassistant/pkg/util"
	"go.uber.org/zap"
)

/*
RouteOptimizer. resolves (start, end, mode) against the catalog.

it holds no mutable state: every call is independent, train mode only depends on the injected clock.
*/
type RouteOptimizer struct {
	catalog      Catalog
	costFunction CostFunction
	clock        Clock
	logger       *zap.Logger
}

type Option func(*RouteOptimizer)

// WithClock. a nil clock keeps the system clock
func WithClock(clock Clock) Option {
	return func(ro *RouteOptimizer) {
		if clock != nil {
			ro.clock = clock
		}
	}
}

func WithCostFunction(costFunction CostFunction) Option {
	return func(ro *RouteOptimizer) {
		ro.costFunction = costFunction
	}
}

func NewRouteOptimizer(catalog Catalog, logger *zap.Logger, opts ...Option) *RouteOptimizer {
	ro := &RouteOptimizer{
		catalog:      catalog,
		costFunction: costfunction.NewTimeCostFunction(),
		clock:        NewSystemClock(nil),
		logger:       logger,
	}
	for _, opt := range opts {
		opt(ro)
	}
	return ro
}

func (ro *RouteOptimizer) GetClock() Clock {
	return ro.clock
}

// FindOptimalRoute. errors are *util.Error values carrying the bilingual message, wrapping one of the
// routing sentinels (ErrNoRoute, ErrNoTrains, ErrNoAvailableTrains, ErrUnsupportedMode, ErrNoTrafficData)
func (ro *RouteOptimizer) FindOptimalRoute(start, end string, mode pkg.TransportMode) (*RouteResult, error) {
	switch mode {
	case pkg.CAR:
		car, err := ro.findCarRoute(start, end)
		if err != nil {
			return nil, err
		}
		return NewCarRouteResult(car), nil
	case pkg.TRAIN:
		train, err := ro.findNextTrain(start, end)
		if err != nil {
			return nil, err
		}
		return NewTrainRouteResult(train), nil
	default:
		ro.logger.Debug("unsupported transport mode", zap.String("mode", string(mode)))
		return nil, newRoutingError(ErrUnsupportedMode, util.ErrBadParamInput)
	}
}

func (ro *RouteOptimizer) findCarRoute(start, end string) (*CarEstimate, error) {
	roads, ok := ro.catalog.GetCarRoute(start, end)
	if !ok {
		ro.logger.Debug("no car route", zap.String("start", start), zap.String("end", end))
		return nil, newRoutingError(ErrNoRoute, util.ErrNotFound)
	}

	totalTime := 0.0
	trafficInfo := make([]string, 0, len(roads))
	for _, road := range roads {
		traffic := ro.catalog.GetTrafficStatus(road)
		weight := ro.costFunction.GetWeight(traffic)
		if weight >= pkg.INF_WEIGHT {
			ro.logger.Debug("road segment without speed data", zap.String("road", road),
				zap.String("start", start), zap.String("end", end))
			return nil, newRoutingError(ErrNoTrafficData, util.ErrNotFound)
		}
		totalTime += weight
		trafficInfo = append(trafficInfo, fmt.Sprintf("%s: %s", road, traffic.GetCongestion()))
	}

	return NewCarEstimate(util.RoundFloat(totalTime, ESTIMATE_PRECISION), trafficInfo), nil
}

func (ro *RouteOptimizer) findNextTrain(start, end string) (da.TrainDeparture, error) {
	routeKey := da.RouteKey(start, end)
	schedule := ro.catalog.GetTrainSchedule(routeKey)
	if len(schedule) == 0 {
		ro.logger.Debug("no train schedule", zap.String("route", routeKey))
		return da.TrainDeparture{}, newRoutingError(ErrNoTrains, util.ErrNotFound)
	}

	now := ro.clock.Now().Format(pkg.CLOCK_LAYOUT)
	for _, dep := range schedule {
		if dep.DepartsAfter(now) && dep.HasSeats() {
			return dep, nil
		}
	}

	ro.logger.Debug("no available train", zap.String("route", routeKey), zap.String("now", now))
	return da.TrainDeparture{}, newRoutingError(ErrNoAvailableTrains, util.ErrNotFound)
}

func newRoutingError(kind error, code error) error {
	return util.WrapErrorf(kind, code, "%s", Message(kind))
}
