package routing

const (
	// decimals kept in the car travel time estimate
	ESTIMATE_PRECISION uint = 1
)
