package routing

import (
	"errors"
)

var (
	ErrNoRoute           = errors.New("no route found")
	ErrNoTrains          = errors.New("no trains found")
	ErrNoAvailableTrains = errors.New("no available trains")
	ErrUnsupportedMode   = errors.New("unsupported transport mode")
	ErrNoTrafficData     = errors.New("traffic data unavailable")
)

type bilingualMessage struct {
	arabic  string
	english string
}

func (m bilingualMessage) String() string {
	return m.arabic + " - " + m.english
}

var messages = map[error]bilingualMessage{
	ErrNoRoute:           {arabic: "لم يتم العثور على طريق", english: "No route found"},
	ErrNoTrains:          {arabic: "لا توجد قطارات متوفرة", english: "No trains found"},
	ErrNoAvailableTrains: {arabic: "لا توجد قطارات متوفرة", english: "No available trains"},
	ErrUnsupportedMode:   {arabic: "وسيلة نقل غير مدعومة", english: "Unsupported transport mode"},
	ErrNoTrafficData:     {arabic: "بيانات حركة المرور غير متوفرة", english: "Traffic data unavailable"},
}

// Message. bilingual (arabic - english) text for a routing sentinel error
func Message(kind error) string {
	m, ok := messages[kind]
	if !ok {
		return kind.Error()
	}
	return m.String()
}
