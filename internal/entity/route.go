package entity

import (
	"fmt"
	"strings"
)

// Route selects the top level view. The zero value is the calendar.
type Route int

const (
	RouteCalendar Route = iota
	RouteScan
	RouteSettings
)

// Routes lists the routes in footer order.
func Routes() []Route {
	return []Route{RouteCalendar, RouteScan, RouteSettings}
}

func ParseRoute(s string) (Route, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "calendar":
		return RouteCalendar, nil
	case "scan":
		return RouteScan, nil
	case "settings":
		return RouteSettings, nil
	default:
		return RouteCalendar, fmt.Errorf("%w: %q", ErrUnknownRoute, s)
	}
}

func (r Route) String() string {
	switch r {
	case RouteScan:
		return "scan"
	case RouteSettings:
		return "settings"
	default:
		return "calendar"
	}
}

// Label is the footer caption.
func (r Route) Label() string {
	switch r {
	case RouteScan:
		return "Scan"
	case RouteSettings:
		return "Settings"
	default:
		return "Calendar"
	}
}

func (r Route) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
