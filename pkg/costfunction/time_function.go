package costfunction

import (
	"github.com/lintang-b-s/travelassistant/pkg"
)

// TimeFunction. travel time in hours over a fixed-length segment
type TimeFunction struct {
	segmentLength float64 // km
}

func NewTimeCostFunction() *TimeFunction {
	return &TimeFunction{segmentLength: pkg.SEGMENT_LENGTH_KM}
}

// GetWeight. pkg.INF_WEIGHT if the segment speed is unknown (0)
func (tf *TimeFunction) GetWeight(e SegmentAttributes) float64 {
	speed := e.GetSpeed()
	if speed <= 0 {
		return pkg.INF_WEIGHT
	}
	return tf.segmentLength / speed
}
