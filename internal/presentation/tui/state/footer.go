package state

import "strings"

// FooterText returns the footer content for the current screen.
func FooterText(screen Screen, loading bool, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if loading || screen != PageScreen || status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}
