// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"strings"

	"github.com/tesso57/availnot/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/availnot/internal/presentation/tui/components/main"
	"github.com/tesso57/availnot/internal/presentation/tui/components/modal"
	"github.com/tesso57/availnot/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/availnot/internal/presentation/tui/paint"
	"github.com/tesso57/availnot/internal/presentation/tui/render"
	"github.com/tesso57/availnot/internal/presentation/tui/state"
	"github.com/tesso57/availnot/internal/presentation/tui/textutil"
	"github.com/tesso57/availnot/internal/presentation/tui/update"
	"github.com/tesso57/availnot/internal/presentation/tui/view"
)

const sidebarTitle = "Navigate"

func (m *Model) buildProps() view.Props {
	layout := update.ComputeLayout(m.state)
	return view.Props{
		Header:  m.buildHeaderProps(),
		Sidebar: m.buildSidebarProps(layout),
		Main:    m.buildMainProps(layout),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) painter(width int) paint.Painter {
	return paint.New(m.theme, width, update.Focused(m.state, m.deps()))
}

func (m *Model) buildHeaderProps() header.Props {
	regions := m.controller.Regions()
	nav := m.painter(0).Inline(regions.AccountNav.Children()...)
	if m.state.Width > 0 {
		nav = textutil.Truncate(nav, m.state.Width-len(render.Title)-2)
	}
	return header.Props{
		Title:  render.Title,
		Nav:    nav,
		Width:  m.state.Width,
		Accent: m.theme.Accent,
		Border: m.theme.Border,
	}
}

func (m *Model) buildSidebarProps(layout update.Layout) sidebar.Props {
	regions := m.controller.Regions()
	return sidebar.Props{
		View:   m.painter(layout.SidebarWidth).Block(regions.AuthenticatedNav.Children()...),
		Width:  layout.SidebarWidth,
		Height: layout.BodyHeight,
		Title:  sidebarTitle,
		Active: m.state.Session != nil,
		Accent: m.theme.Accent,
		Border: m.theme.Border,
	}
}

func (m *Model) buildMainProps(layout update.Layout) mainview.Props {
	var body string
	if m.state.Loading {
		body = fmt.Sprintf("\n\n   %s %s", m.state.Spinner.View(), m.state.LoadingText)
	} else {
		body = m.painter(layout.MainWidth).Block(m.controller.Regions().Main.Children()...)
	}
	return mainview.Props{
		Width:  layout.MainWidth,
		Height: layout.BodyHeight,
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Screen == state.SignInScreen && m.state.DeviceCode != nil {
		return modal.Props{
			Visible: true,
			Kind:    modal.DeviceCode,
			Title:   "Sign in to Microsoft",
			Body:    deviceCodeBody(m.state),
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  m.theme.Accent,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  m.theme.Accent,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Screen, m.state.Loading, textutil.SingleLine(m.state.StatusMessage), helpText)
}

func deviceCodeBody(st *state.ModelState) string {
	code := st.DeviceCode
	var b strings.Builder
	fmt.Fprintf(&b, "Open   %s\n", code.VerificationURI)
	fmt.Fprintf(&b, "Code   %s\n", code.UserCode)
	if !code.ExpiresAt.IsZero() {
		fmt.Fprintf(&b, "Expires %s\n", code.ExpiresAt.Local().Format("15:04"))
	}
	fmt.Fprintf(&b, "\n(%s open browser, %s cancel)", st.Keys.Browser.Help().Key, st.Keys.Back.Help().Key)
	return b.String()
}
