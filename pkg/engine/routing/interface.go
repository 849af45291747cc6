package routing

import (
	"time"

	"github.com/lintang-b-s/travelassistant/pkg/costfunction"
	da "github.com/lintang-b-s/travelassistant/pkg/datastructure"
)

type Catalog interface {
	GetTrafficStatus(roadID string) da.RoadSegment
	GetTrainSchedule(routeKey string) []da.TrainDeparture
	GetCarRoute(start, end string) ([]string, bool)
}

type CostFunction interface {
	GetWeight(e costfunction.SegmentAttributes) float64
}

type Clock interface {
	Now() time.Time
}
