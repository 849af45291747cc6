package assistant

import (
	"testing"

	"github.com/lintang-b-s/travelassistant/pkg"
	"github.com/lintang-b-s/travelassistant/pkg/datastructure"
	"github.com/lintang-b-s/travelassistant/pkg/engine/routing"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter(hour, minute int) *QueryRouter {
	catalog := datastructure.NewDefaultCatalog()
	ro := routing.NewRouteOptimizer(catalog, zap.NewNop(), routing.WithClock(routing.NewFixedClockAt(hour, minute)))
	return NewQueryRouter(catalog.SupportedCities(), ro, zap.NewNop())
}

type recordingOptimizer struct {
	calls []string
}

func (r *recordingOptimizer) FindOptimalRoute(start, end string, mode pkg.TransportMode) (*routing.RouteResult, error) {
	r.calls = append(r.calls, start+"|"+end+"|"+string(mode))
	return nil, routing.ErrNoRoute
}

func TestProcessQueryBothModes(t *testing.T) {
	qr := newTestRouter(7, 30)

	got := qr.ProcessQuery("How can I travel from Casablanca to Rabat?")

	want := "🚗 Travel options from Casablanca to Rabat:\n\n" +
		"🚘 By Car:\n" +
		"⏱️ Estimated time: 1.2 hours\n" +
		"🚦 Traffic conditions:\n" +
		"- A1: heavy\n" +
		"\n" +
		"🚂 By Train:\n" +
		"Next available ONCF:\n" +
		"- 🕒 Departure: 08:00\n" +
		"- 🏁 Arrival: 08:45\n" +
		"- 💺 Available seats: 45\n"
	assert.Equal(t, want, got)
}

func TestProcessQueryHelpMessage(t *testing.T) {
	testCases := []struct {
		name  string
		query string
	}{
		{name: "no city", query: "hello"},
		{name: "empty", query: ""},
		{name: "single city", query: "What is the weather in Marrakech?"},
		{name: "same city twice", query: "Rabat to Rabat"},
		{name: "unsupported cities", query: "from Fes to Agadir"},
	}

	qr := newTestRouter(7, 30)
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, HelpMessage, qr.ProcessQuery(tt.query))
		})
	}
}

func TestProcessQueryUsesCatalogOrder(t *testing.T) {
	qr := newTestRouter(7, 30)

	got := qr.ProcessQuery("I want to go from Rabat to Casablanca")

	assert.Contains(t, got, "🚗 Travel options from Casablanca to Rabat:")
	assert.Contains(t, got, "Next available ONCF:\n- 🕒 Departure: 08:00\n")
}

func TestProcessQueryPartialResults(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		hour, minute int
		want         string
	}{
		{
			name:   "car only, no timetable",
			query:  "casablanca to el jadida",
			hour:   7,
			minute: 30,
			want: "🚗 Travel options from Casablanca to El Jadida:\n\n" +
				"🚘 By Car:\n" +
				"⏱️ Estimated time: 0.9 hours\n" +
				"🚦 Traffic conditions:\n" +
				"- A5: light\n" +
				"\n",
		},
		{
			name:   "car only, trains already left",
			query:  "CASABLANCA to MARRAKECH",
			hour:   20,
			minute: 0,
			want: "🚗 Travel options from Casablanca to Marrakech:\n\n" +
				"🚘 By Car:\n" +
				"⏱️ Estimated time: 1.1 hours\n" +
				"🚦 Traffic conditions:\n" +
				"- A7: moderate\n" +
				"\n",
		},
		{
			name:   "no option at all keeps the header",
			query:  "Rabat to Marrakech",
			hour:   7,
			minute: 30,
			want:   "🚗 Travel options from Rabat to Marrakech:\n\n",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			qr := newTestRouter(tt.hour, tt.minute)
			assert.Equal(t, tt.want, qr.ProcessQuery(tt.query))
		})
	}
}

func TestProcessQueryCallsBothModes(t *testing.T) {
	rec := &recordingOptimizer{}
	qr := NewQueryRouter(datastructure.NewDefaultCatalog().SupportedCities(), rec, zap.NewNop())

	got := qr.ProcessQuery("tangier, rabat or casablanca?")

	assert.Equal(t, []string{"Casablanca|Rabat|car", "Casablanca|Rabat|train"}, rec.calls)
	assert.Equal(t, "🚗 Travel options from Casablanca to Rabat:\n\n", got)
}

func TestExtractCities(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "none", query: "hello", want: []string{}},
		{name: "text order ignored", query: "Tangier then Rabat", want: []string{"Rabat", "Tangier"}},
		{name: "case folded", query: "EL JADIDA and casablanca", want: []string{"Casablanca", "El Jadida"}},
		{name: "all", query: "el jadida tangier marrakech rabat casablanca",
			want: []string{"Casablanca", "Rabat", "Marrakech", "Tangier", "El Jadida"}},
		{name: "substring match", query: "casablancarabat", want: []string{"Casablanca", "Rabat"}},
	}

	qr := newTestRouter(7, 30)
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, qr.ExtractCities(tt.query))
		})
	}
}
