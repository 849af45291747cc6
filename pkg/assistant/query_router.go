package assistant

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/travelassistant/pkg"
	"github.com/lintang-b-s/travelassistant/pkg/datastructure"
	"github.com/lintang-b-s/travelassistant/pkg/engine/routing"
	"go.uber.org/zap"
)

type RouteOptimizer interface {
	FindOptimalRoute(start, end string, mode pkg.TransportMode) (*routing.RouteResult, error)
}

type QueryRouter struct {
	log            *zap.Logger
	routeOptimizer RouteOptimizer
	cities         []string
	foldedCities   []string
}

func NewQueryRouter(cities []string, routeOptimizer RouteOptimizer, log *zap.Logger) *QueryRouter {
	qr := &QueryRouter{
		log:            log,
		routeOptimizer: routeOptimizer,
		cities:         make([]string, len(cities)),
		foldedCities:   make([]string, len(cities)),
	}
	copy(qr.cities, cities)
	for i, city := range cities {
		qr.foldedCities[i] = strings.ToLower(city)
	}
	return qr
}

/*
ExtractCities. supported cities mentioned in text, as case-insensitive substrings.

matches keep the supported-city order, not the order they appear in the text:
"from Rabat to Casablanca" yields [Casablanca Rabat].
*/
func (qr *QueryRouter) ExtractCities(text string) []string {
	folded := strings.ToLower(text)
	cities := make([]string, 0, 2)
	for i, city := range qr.foldedCities {
		if strings.Contains(folded, city) {
			cities = append(cities, qr.cities[i])
		}
	}
	return cities
}

// ProcessQuery. travel options between the first two cities mentioned, or the help message
func (qr *QueryRouter) ProcessQuery(text string) string {
	cities := qr.ExtractCities(text)
	if len(cities) < 2 {
		return HelpMessage
	}
	start, end := cities[0], cities[1]

	carRoute, carErr := qr.routeOptimizer.FindOptimalRoute(start, end, pkg.CAR)
	if carErr != nil {
		qr.log.Debug("car option unavailable", zap.String("start", start), zap.String("end", end), zap.Error(carErr))
	}
	trainRoute, trainErr := qr.routeOptimizer.FindOptimalRoute(start, end, pkg.TRAIN)
	if trainErr != nil {
		qr.log.Debug("train option unavailable", zap.String("start", start), zap.String("end", end), zap.Error(trainErr))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, headerFormat, start, end)

	if carErr == nil {
		writeCarSection(&sb, carRoute.Car)
	}
	if trainErr == nil {
		writeTrainSection(&sb, trainRoute.Train)
	}

	return sb.String()
}

func writeCarSection(sb *strings.Builder, car *routing.CarEstimate) {
	sb.WriteString(carSectionTitle)
	fmt.Fprintf(sb, carEstimateFormat, car.EstimatedTimeHours)
	sb.WriteString(carTrafficTitle)
	for _, info := range car.TrafficInfo {
		fmt.Fprintf(sb, carTrafficRowFormat, info)
	}
	sb.WriteString("\n")
}

func writeTrainSection(sb *strings.Builder, train *datastructure.TrainDeparture) {
	sb.WriteString(trainSectionTitle)
	fmt.Fprintf(sb, trainCarrierFormat, train.GetCarrierType())
	fmt.Fprintf(sb, trainDepartureFormat, train.GetDeparture())
	fmt.Fprintf(sb, trainArrivalFormat, train.GetArrival())
	fmt.Fprintf(sb, trainSeatsFormat, train.GetAvailableSeats())
}
