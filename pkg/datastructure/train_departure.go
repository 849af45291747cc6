package datastructure

import "github.com/lintang-b-s/travelassistant/pkg"

type TrainDeparture struct {
	departure      string // HH:MM
	arrival        string // HH:MM
	availableSeats int
	carrierType    string
}

func NewTrainDeparture(departure, arrival string, availableSeats int, carrierType string) TrainDeparture {
	return TrainDeparture{
		departure:      departure,
		arrival:        arrival,
		availableSeats: availableSeats,
		carrierType:    carrierType,
	}
}

func (td TrainDeparture) GetDeparture() string {
	return td.departure
}

func (td TrainDeparture) GetArrival() string {
	return td.arrival
}

func (td TrainDeparture) GetAvailableSeats() int {
	return td.availableSeats
}

func (td TrainDeparture) GetCarrierType() string {
	return td.carrierType
}

// DepartsAfter. zero-padded HH:MM strings compare lexicographically in chronological order within one day.
// departures past midnight relative to now are not handled.
func (td TrainDeparture) DepartsAfter(now string) bool {
	return td.departure > now
}

func (td TrainDeparture) HasSeats() bool {
	return td.availableSeats > 0
}

// RouteKey. timetable key "Start-End", exact case, no normalization
func RouteKey(start, end string) string {
	return start + pkg.ROUTE_KEY_SEPARATOR + end
}
