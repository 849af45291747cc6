package datastructure

import "github.com/lintang-b-s/travelassistant/pkg"

type RoadSegment struct {
	id         string
	congestion pkg.CongestionLevel
	speed      float64 // km/h, 0 = unknown
	route      string
}

func NewRoadSegment(id string, congestion pkg.CongestionLevel, speed float64, route string) RoadSegment {
	return RoadSegment{
		id:         id,
		congestion: congestion,
		speed:      speed,
		route:      route,
	}
}

// NewUnknownRoadSegment. record returned for segment ids missing from the catalog
func NewUnknownRoadSegment() RoadSegment {
	return RoadSegment{
		congestion: pkg.UNKNOWN_CONGESTION,
		speed:      0,
	}
}

func (rs RoadSegment) GetID() string {
	return rs.id
}

func (rs RoadSegment) GetCongestion() pkg.CongestionLevel {
	return rs.congestion
}

func (rs RoadSegment) GetSpeed() float64 {
	return rs.speed
}

func (rs RoadSegment) GetRoute() string {
	return rs.route
}

type CityPair struct {
	Start string
	End   string
}

func NewCityPair(start, end string) CityPair {
	return CityPair{Start: start, End: end}
}
