package pkg

// enum of congestion level on a road segment
type CongestionLevel uint8

const (
	LIGHT CongestionLevel = iota
	MODERATE
	HEAVY
	UNKNOWN_CONGESTION
)

func (c CongestionLevel) String() string {
	switch c {
	case LIGHT:
		return "light"
	case MODERATE:
		return "moderate"
	case HEAVY:
		return "heavy"
	default:
		return "unknown"
	}
}

func GetCongestionLevel(level string) CongestionLevel {
	switch level {
	case "light":
		return LIGHT
	case "moderate":
		return MODERATE
	case "heavy":
		return HEAVY
	default:
		return UNKNOWN_CONGESTION
	}
}

type TransportMode string

const (
	CAR   TransportMode = "car"
	TRAIN TransportMode = "train"
)

const (
	INF_WEIGHT float64 = 1e15

	// every segment is treated as this many km long when estimating car travel time
	SEGMENT_LENGTH_KM = 100.0

	// departure/arrival layout, 24h zero padded
	CLOCK_LAYOUT = "15:04"

	ROUTE_KEY_SEPARATOR = "-"
)
