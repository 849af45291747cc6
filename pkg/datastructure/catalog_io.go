package datastructure

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dsnet/compress/bzip2"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/travelassistant/pkg"
	"github.com/lintang-b-s/travelassistant/pkg/util"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
)

type catalogFile struct {
	Cities         []string              `yaml:"cities" validate:"required,min=2,unique,dive,required"`
	RoadSegments   []roadSegmentRecord   `yaml:"road_segments" validate:"unique=ID,dive"`
	CarRoutes      []carRouteRecord      `yaml:"car_routes" validate:"dive"`
	TrainSchedules []trainScheduleRecord `yaml:"train_schedules" validate:"unique=Route,dive"`
}

type roadSegmentRecord struct {
	ID         string  `yaml:"id" validate:"required"`
	Congestion string  `yaml:"congestion" validate:"oneof=light moderate heavy unknown"`
	Speed      float64 `yaml:"speed" validate:"gte=0"`
	Route      string  `yaml:"route"`
}

type carRouteRecord struct {
	Start    string   `yaml:"start" validate:"required"`
	End      string   `yaml:"end" validate:"required"`
	Segments []string `yaml:"segments" validate:"required,min=1,dive,required"`
}

type trainScheduleRecord struct {
	Route      string                 `yaml:"route" validate:"required"`
	Departures []trainDepartureRecord `yaml:"departures" validate:"required,min=1,dive"`
}

type trainDepartureRecord struct {
	Departure      string `yaml:"departure" validate:"required,hhmm"`
	Arrival        string `yaml:"arrival" validate:"required,hhmm"`
	AvailableSeats int    `yaml:"available_seats" validate:"gte=0"`
	Type           string `yaml:"type" validate:"required"`
}

func isCompressed(filename string) bool {
	return strings.HasSuffix(filename, ".bz2")
}

// WriteCatalog. write the catalog as yaml, bzip2 compressed if filename ends with .bz2
func (c *Catalog) WriteCatalog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		w  io.Writer = f
		bz *bzip2.Writer
	)
	if isCompressed(filename) {
		bz, err = bzip2.NewWriter(f, &bzip2.WriterConfig{})
		if err != nil {
			return err
		}
		w = bz
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.toCatalogFile()); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if bz != nil {
		return bz.Close()
	}
	return nil
}

// ReadCatalog. read and validate a catalog written by WriteCatalog (or authored by hand)
func ReadCatalog(filename string) (*Catalog, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if isCompressed(filename) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	return decodeCatalog(r)
}

func decodeCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, util.WrapErrorf(ErrInvalidCatalog, util.ErrBadParamInput, "invalid catalog: %v", err)
	}

	if err := validateCatalogFile(cf); err != nil {
		return nil, err
	}

	return cf.toCatalog(), nil
}

func validateCatalogFile(cf catalogFile) error {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	if err := registerClockValidation(validate, trans); err != nil {
		return err
	}

	if err := validate.Struct(cf); err != nil {
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return util.WrapErrorf(ErrInvalidCatalog, util.ErrBadParamInput, "invalid catalog: validation error: %v", vvString)
	}

	// city matching is case-insensitive, so names must differ after folding
	seenCities := make(map[string]string, len(cf.Cities))
	for _, city := range cf.Cities {
		folded := strings.ToLower(city)
		if prev, ok := seenCities[folded]; ok {
			return util.WrapErrorf(ErrInvalidCatalog, util.ErrBadParamInput,
				"invalid catalog: cities %s and %s differ only in case", prev, city)
		}
		seenCities[folded] = city
	}

	seenPairs := make(map[CityPair]struct{}, len(cf.CarRoutes))
	for _, cr := range cf.CarRoutes {
		pair := NewCityPair(cr.Start, cr.End)
		if _, ok := seenPairs[pair]; ok {
			return util.WrapErrorf(ErrInvalidCatalog, util.ErrBadParamInput,
				"invalid catalog: car route %s -> %s is listed more than once", cr.Start, cr.End)
		}
		seenPairs[pair] = struct{}{}
	}

	// departures are scanned in stored order, they must already be ascending
	for _, schedule := range cf.TrainSchedules {
		for i := 1; i < len(schedule.Departures); i++ {
			if schedule.Departures[i].Departure < schedule.Departures[i-1].Departure {
				return util.WrapErrorf(ErrInvalidCatalog, util.ErrBadParamInput,
					"invalid catalog: departures of %s are not in ascending order (%s after %s)",
					schedule.Route, schedule.Departures[i].Departure, schedule.Departures[i-1].Departure)
			}
		}
	}
	return nil
}

func registerClockValidation(validate *validator.Validate, trans ut.Translator) error {
	err := validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != len(pkg.CLOCK_LAYOUT) {
			return false
		}
		_, err := time.Parse(pkg.CLOCK_LAYOUT, s)
		return err == nil
	})
	if err != nil {
		return err
	}

	return validate.RegisterTranslation("hhmm", trans, func(ut ut.Translator) error {
		return ut.Add("hhmm", "{0} must be a 24h HH:MM time", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("hhmm", fe.Field())
		return t
	})
}

func translateError(err error, trans ut.Translator) []error {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	errs := make([]error, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

func (cf catalogFile) toCatalog() *Catalog {
	roadSegments := make([]RoadSegment, 0, len(cf.RoadSegments))
	for _, rs := range cf.RoadSegments {
		roadSegments = append(roadSegments, NewRoadSegment(rs.ID, pkg.GetCongestionLevel(rs.Congestion),
			rs.Speed, rs.Route))
	}

	carRoutes := make(map[CityPair][]string, len(cf.CarRoutes))
	for _, cr := range cf.CarRoutes {
		carRoutes[NewCityPair(cr.Start, cr.End)] = cr.Segments
	}

	trainSchedules := make(map[string][]TrainDeparture, len(cf.TrainSchedules))
	for _, ts := range cf.TrainSchedules {
		deps := make([]TrainDeparture, 0, len(ts.Departures))
		for _, d := range ts.Departures {
			deps = append(deps, NewTrainDeparture(d.Departure, d.Arrival, d.AvailableSeats, d.Type))
		}
		trainSchedules[ts.Route] = deps
	}

	return NewCatalog(cf.Cities, roadSegments, carRoutes, trainSchedules)
}

func (c *Catalog) toCatalogFile() catalogFile {
	cf := catalogFile{
		Cities:         c.SupportedCities(),
		RoadSegments:   make([]roadSegmentRecord, 0, len(c.roadSegments)),
		CarRoutes:      make([]carRouteRecord, 0, len(c.carRoutes)),
		TrainSchedules: make([]trainScheduleRecord, 0, len(c.trainSchedules)),
	}

	for id, rs := range c.roadSegments {
		cf.RoadSegments = append(cf.RoadSegments, roadSegmentRecord{
			ID:         id,
			Congestion: rs.GetCongestion().String(),
			Speed:      rs.GetSpeed(),
			Route:      rs.GetRoute(),
		})
	}
	sort.Slice(cf.RoadSegments, func(i, j int) bool {
		return cf.RoadSegments[i].ID < cf.RoadSegments[j].ID
	})

	for pair, segs := range c.carRoutes {
		cf.CarRoutes = append(cf.CarRoutes, carRouteRecord{
			Start:    pair.Start,
			End:      pair.End,
			Segments: append([]string(nil), segs...),
		})
	}
	sort.Slice(cf.CarRoutes, func(i, j int) bool {
		if cf.CarRoutes[i].Start != cf.CarRoutes[j].Start {
			return cf.CarRoutes[i].Start < cf.CarRoutes[j].Start
		}
		return cf.CarRoutes[i].End < cf.CarRoutes[j].End
	})

	for key, deps := range c.trainSchedules {
		ts := trainScheduleRecord{
			Route:      key,
			Departures: make([]trainDepartureRecord, 0, len(deps)),
		}
		for _, d := range deps {
			ts.Departures = append(ts.Departures, trainDepartureRecord{
				Departure:      d.GetDeparture(),
				Arrival:        d.GetArrival(),
				AvailableSeats: d.GetAvailableSeats(),
				Type:           d.GetCarrierType(),
			})
		}
		cf.TrainSchedules = append(cf.TrainSchedules, ts)
	}
	sort.Slice(cf.TrainSchedules, func(i, j int) bool {
		return cf.TrainSchedules[i].Route < cf.TrainSchedules[j].Route
	})

	return cf
}
