package components

import (
	"digital_analytics_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// StatusBanner shows the outcome of a contact submission. Idle renders nothing.
func StatusBanner(status models.SubmissionStatus, message string) g.Node {
	if message == "" {
		return nil
	}

	switch status {
	case models.StatusSuccess:
		return Div(
			ID("contact-status"),
			Role("status"),
			Class("flex items-center gap-3 rounded-xl border border-green-500/20 bg-green-500/10 px-4 py-3 text-green-700"),
			LucideIcon("check-circle", "h-5 w-5 flex-shrink-0"),
			Span(Class("text-sm font-medium"), g.Text(message)),
		)
	case models.StatusError:
		return Div(
			ID("contact-status"),
			Role("alert"),
			Class("flex items-center gap-3 rounded-xl border border-red-500/20 bg-red-500/10 px-4 py-3 text-red-600"),
			LucideIcon("alert-circle", "h-5 w-5 flex-shrink-0"),
			Span(Class("text-sm font-medium"), g.Text(message)),
		)
	}
	return nil
}
