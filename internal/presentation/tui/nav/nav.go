// Package nav renders the account and authenticated navigation regions.
package nav

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/availnot/internal/domain/account"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
	"github.com/tesso57/availnot/internal/presentation/tui/region"
)

// Callbacks are bound to the navigation affordances.
type Callbacks struct {
	SignIn       tea.Cmd
	SignOut      tea.Cmd
	ShowCalendar tea.Cmd
	ShowPresence tea.Cmd
}

// Presenter owns the two navigation regions.
type Presenter struct {
	account       *region.Region
	authenticated *region.Region
	callbacks     Callbacks
}

// New constructs a Presenter.
func New(accountNav, authenticatedNav *region.Region, cb Callbacks) *Presenter {
	return &Presenter{
		account:       accountNav,
		authenticated: authenticatedNav,
		callbacks:     cb,
	}
}

// Account renders the account menu for a signed-in user, or a sign-in
// affordance otherwise.
func (p *Presenter) Account(session *account.Session) {
	if !account.SignedIn(session) {
		p.account.SetClass("nav-item")
		p.account.Replace(
			element.New("button", "btn btn-link nav-link", "Sign in").Bind(p.callbacks.SignIn),
		)
		return
	}

	p.account.SetClass("nav-item dropdown")

	dropdown := element.New("a", "nav-link dropdown-toggle", "").
		SetAttr("data-toggle", "dropdown").
		SetAttr("role", "button")
	dropdown.Append(element.New("i", "far fa-user-circle fa-lg rounded-circle align-self-center", ""))

	menu := element.New("div", "dropdown-menu dropdown-menu-right", "")
	menu.Append(
		element.New("h5", "dropdown-item-text mb-0", session.Name),
		element.New("p", "dropdown-item-text text-muted mb-0", session.UserName),
		element.New("div", "dropdown-divider", ""),
		element.New("button", "dropdown-item", "Sign out").Bind(p.callbacks.SignOut),
	)
	dropdown.Append(menu)

	p.account.Replace(dropdown)
}

// Authenticated renders the view links for a signed-in user and marks the
// one matching active. Without a session the region is emptied.
func (p *Presenter) Authenticated(session *account.Session, active page.View) {
	if !account.SignedIn(session) {
		p.authenticated.Clear()
		return
	}

	p.authenticated.Replace(
		navItem("Calendar", active == page.Calendar, p.callbacks.ShowCalendar),
		navItem("Presence", active == page.Presence, p.callbacks.ShowPresence),
	)
}

func navItem(label string, active bool, cmd tea.Cmd) *element.Node {
	class := "btn btn-link nav-link"
	if active {
		class += " active"
	}
	li := element.New("li", "nav-item", "")
	li.Append(element.New("button", class, label).Bind(cmd))
	return li
}
