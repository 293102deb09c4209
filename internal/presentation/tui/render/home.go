package render

import (
	"fmt"

	"github.com/tesso57/availnot/internal/domain/account"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
)

// Title is the application heading shown on the home view.
const Title = "Available/Not"

const lead = "Simple app using Microsoft technologies and IoT to show others whether you're available or not"

// Home renders the welcome panel. A signed-in user is greeted by name;
// otherwise a single sign-in affordance is shown.
func (r *Renderer) Home(session *account.Session) {
	jumbotron := element.New("div", "jumbotron", "")
	jumbotron.Append(
		element.New("h1", "", Title),
		element.New("p", "lead", lead),
	)

	if account.SignedIn(session) {
		jumbotron.Append(
			element.New("h4", "", fmt.Sprintf("Welcome %s!", session.Name)),
			element.New("p", "", "Use the navigation bar at the top of the page to get started."),
		)
	} else {
		jumbotron.Append(
			element.New("button", "btn btn-primary btn-large", "Click here to sign in").Bind(r.signIn),
		)
	}

	r.show(jumbotron)
}
