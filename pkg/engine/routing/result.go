package routing

import (
	"github.com/lintang-b-s/travelassistant/pkg"
	da "github.com/lintang-b-s/travelassistant/pkg/datastructure"
)

type CarEstimate struct {
	EstimatedTimeHours float64
	TrafficInfo        []string // "segmentId: congestion", path order
}

func NewCarEstimate(estimatedTimeHours float64, trafficInfo []string) *CarEstimate {
	return &CarEstimate{
		EstimatedTimeHours: estimatedTimeHours,
		TrafficInfo:        trafficInfo,
	}
}

// RouteResult. exactly one of Car/Train is set, according to Mode
type RouteResult struct {
	Mode  pkg.TransportMode
	Car   *CarEstimate
	Train *da.TrainDeparture
}

func NewCarRouteResult(car *CarEstimate) *RouteResult {
	return &RouteResult{Mode: pkg.CAR, Car: car}
}

func NewTrainRouteResult(train da.TrainDeparture) *RouteResult {
	return &RouteResult{Mode: pkg.TRAIN, Train: &train}
}
