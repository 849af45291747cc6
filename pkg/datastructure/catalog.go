package datastructure

import (
	"github.com/lintang-b-s/travelassistant/pkg"
)

/*
Catalog. read-only source of truth for road traffic and train timetables.

all tables are copied on construction and never mutated afterwards, so a *Catalog can be shared freely.
lookups never fail: missing keys return a default record or an empty slice.
*/
type Catalog struct {
	cities         []string
	roadSegments   map[string]RoadSegment
	carRoutes      map[CityPair][]string
	trainSchedules map[string][]TrainDeparture
}

func NewCatalog(cities []string, roadSegments []RoadSegment, carRoutes map[CityPair][]string,
	trainSchedules map[string][]TrainDeparture) *Catalog {
	c := &Catalog{
		cities:         make([]string, len(cities)),
		roadSegments:   make(map[string]RoadSegment, len(roadSegments)),
		carRoutes:      make(map[CityPair][]string, len(carRoutes)),
		trainSchedules: make(map[string][]TrainDeparture, len(trainSchedules)),
	}
	copy(c.cities, cities)

	for _, seg := range roadSegments {
		c.roadSegments[seg.GetID()] = seg
	}

	for pair, segs := range carRoutes {
		path := make([]string, len(segs))
		copy(path, segs)
		c.carRoutes[pair] = path
	}

	for key, deps := range trainSchedules {
		schedule := make([]TrainDeparture, len(deps))
		copy(schedule, deps)
		c.trainSchedules[key] = schedule
	}
	return c
}

// GetTrafficStatus. returns {congestion: unknown, speed: 0} for unknown road ids
func (c *Catalog) GetTrafficStatus(roadID string) RoadSegment {
	seg, ok := c.roadSegments[roadID]
	if !ok {
		return NewUnknownRoadSegment()
	}
	return seg
}

// GetTrainSchedule. departures of routeKey in stored order, empty if the route is unknown
func (c *Catalog) GetTrainSchedule(routeKey string) []TrainDeparture {
	deps := c.trainSchedules[routeKey]
	schedule := make([]TrainDeparture, len(deps))
	copy(schedule, deps)
	return schedule
}

// GetCarRoute. ordered road segment ids for the exact (start, end) pair
func (c *Catalog) GetCarRoute(start, end string) ([]string, bool) {
	segs, ok := c.carRoutes[NewCityPair(start, end)]
	if !ok || len(segs) == 0 {
		return nil, false
	}
	path := make([]string, len(segs))
	copy(path, segs)
	return path, true
}

func (c *Catalog) SupportedCities() []string {
	cities := make([]string, len(c.cities))
	copy(cities, c.cities)
	return cities
}

func (c *Catalog) NumberOfRoadSegments() int {
	return len(c.roadSegments)
}

func (c *Catalog) NumberOfTrainRoutes() int {
	return len(c.trainSchedules)
}

// NewDefaultCatalog. built-in moroccan road and rail tables
func NewDefaultCatalog() *Catalog {
	cities := []string{"Casablanca", "Rabat", "Marrakech", "Tangier", "El Jadida"}

	roadSegments := []RoadSegment{
		NewRoadSegment("A1", pkg.HEAVY, 80, "Casablanca-Rabat"),
		NewRoadSegment("A3", pkg.LIGHT, 120, "Rabat-Tangier"),
		NewRoadSegment("A7", pkg.MODERATE, 90, "Casablanca-Marrakech"),
		NewRoadSegment("A5", pkg.LIGHT, 110, "Casablanca-El Jadida"),
	}

	carRoutes := map[CityPair][]string{
		NewCityPair("Casablanca", "Rabat"):     {"A1"},
		NewCityPair("Rabat", "Casablanca"):     {"A1"},
		NewCityPair("Casablanca", "Marrakech"): {"A7"},
		NewCityPair("Marrakech", "Casablanca"): {"A7"},
		NewCityPair("Rabat", "Tangier"):        {"A3"},
		NewCityPair("Tangier", "Rabat"):        {"A3"},
		NewCityPair("Casablanca", "El Jadida"): {"A5"},
		NewCityPair("El Jadida", "Casablanca"): {"A5"},
	}

	trainSchedules := map[string][]TrainDeparture{
		"Casablanca-Rabat": {
			NewTrainDeparture("08:00", "08:45", 45, "ONCF"),
			NewTrainDeparture("10:00", "10:45", 20, "Al Boraq"),
		},
		"Rabat-Casablanca": {
			NewTrainDeparture("09:00", "09:45", 30, "ONCF"),
			NewTrainDeparture("11:00", "11:45", 50, "Al Boraq"),
		},
		"Casablanca-Marrakech": {
			NewTrainDeparture("08:30", "11:30", 40, "ONCF"),
			NewTrainDeparture("14:30", "17:30", 35, "ONCF"),
		},
		"Rabat-Tangier": {
			NewTrainDeparture("07:00", "09:30", 55, "Al Boraq"),
			NewTrainDeparture("15:00", "17:30", 25, "Al Boraq"),
		},
	}

	return NewCatalog(cities, roadSegments, carRoutes, trainSchedules)
}
