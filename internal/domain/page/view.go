// Package page defines the renderable page states and the error payload.
package page

import (
	"fmt"
	"strings"

	"github.com/tesso57/availnot/internal/domain/account"
)

// View identifies one of the renderable page states.
type View int

const (
	// Unspecified means no view was requested.
	Unspecified View = iota
	Error
	Home
	Calendar
	Presence
)

// Views lists every renderable view.
var Views = []View{Error, Home, Calendar, Presence}

func (v View) String() string {
	switch v {
	case Unspecified:
		return "unspecified"
	case Error:
		return "error"
	case Home:
		return "home"
	case Calendar:
		return "calendar"
	case Presence:
		return "presence"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Known reports whether v is one of the renderable views.
func (v View) Known() bool {
	switch v {
	case Error, Home, Calendar, Presence:
		return true
	default:
		return false
	}
}

// ParseView parses a view name as produced by View.String.
func ParseView(name string) (View, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Unspecified, nil
	}
	for _, v := range Views {
		if v.String() == name {
			return v, nil
		}
	}
	return Unspecified, fmt.Errorf("unknown view %q", name)
}

// Resolve returns the view that is actually rendered for a request.
// Without a session, or without a requested view, the result is always Home,
// including for explicit Error requests.
func Resolve(session *account.Session, requested View) View {
	if !account.SignedIn(session) || requested == Unspecified {
		return Home
	}
	return requested
}
