package partials

import (
	"digital_analytics_site/middleware"
	"digital_analytics_site/models"
	"digital_analytics_site/services"
	"digital_analytics_site/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactFormID is the element htmx swaps with the server's response
const ContactFormID = "contact-form"

// ContactFormProps is everything the contact form needs to render one state
type ContactFormProps struct {
	State            services.ContactFormSnapshot
	CSRFToken        string
	TurnstileSiteKey string
	TermsURL         string
}

const inputClass = "w-full rounded-md border border-gray-200 bg-white px-3 h-10 sm:h-11 text-sm focus:border-primary focus:ring-primary disabled:opacity-60"

// ContactForm renders the form with its status banner directly above the submit control.
// hx-sync drops repeat submits while one is in flight; hx-disabled-elt disables the controls.
func ContactForm(p ContactFormProps) g.Node {
	form := p.State.Form
	disabled := p.State.Disabled

	return Form(
		ID(ContactFormID),
		Class("space-y-4 sm:space-y-6"),
		Method("post"),
		Action("/contact"),
		g.Attr("hx-post", "/contact"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-sync", "this:drop"),
		g.Attr("hx-disabled-elt", "find input, find textarea, find button"),
		Aria("labelledby", "contact-form-title"),
		Aria("describedby", "contact-form-description"),
		Aria("busy", boolString(disabled)),
		g.Attr("itemscope"),
		g.Attr("itemtype", "https://schema.org/ContactPoint"),
		Data("status", string(statusOrIdle(p.State.Status))),

		Input(Type("hidden"), Name(middleware.CSRFFormField), Value(p.CSRFToken)),

		textField(models.FieldName, "Name", "text", "Enter your name", form.Name, "name", disabled),
		textField(models.FieldEmail, "Email", "email", "Enter your email", form.Email, "email", disabled),
		Div(
			Class("space-y-2"),
			Label(For(models.FieldMessage), Class("text-sm font-medium sm:text-base"), g.Text("Message")),
			Textarea(
				ID(models.FieldMessage),
				Name(models.FieldMessage),
				Placeholder("Type your message..."),
				Rows("4"),
				Class("min-h-32 w-full resize-none rounded-md border border-gray-200 bg-white p-3 text-sm sm:min-h-40 focus:border-primary focus:ring-primary disabled:opacity-60"),
				Aria("required", "true"),
				g.Attr("itemprop", "description"),
				g.If(disabled, Disabled()),
				g.Text(form.Message),
			),
		),
		termsField(form.TermsAccepted, p.TermsURL, disabled),
		g.If(p.TurnstileSiteKey != "",
			Div(Class("cf-turnstile"), Data("sitekey", p.TurnstileSiteKey), Data("theme", "light")),
		),
		components.StatusBanner(p.State.Status, p.State.Message),
		Button(
			Type("submit"),
			Class("w-full rounded-md bg-primary py-3 text-sm font-medium text-white hover:bg-primary/90 sm:py-4 sm:text-base disabled:cursor-not-allowed disabled:opacity-60"),
			Aria("label", "Submit contact form"),
			g.If(disabled, Disabled()),
			Span(Class("submit-label"), g.Text("Submit")),
			Span(Class("submit-busy"), g.Text("Sending...")),
		),
	)
}

func textField(name, label, inputType, placeholder, value, autocomplete string, disabled bool) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(name), Class("text-sm font-medium sm:text-base"), g.Text(label)),
		Input(
			ID(name),
			Name(name),
			Type(inputType),
			Placeholder(placeholder),
			Value(value),
			AutoComplete(autocomplete),
			Class(inputClass),
			Aria("required", "true"),
			g.Attr("itemprop", name),
			g.If(disabled, Disabled()),
		),
	)
}

func termsField(accepted bool, termsURL string, disabled bool) g.Node {
	terms := g.Text("terms and conditions")
	if termsURL != "" {
		terms = A(Href(termsURL), Class("underline"), Target("_blank"), Rel("noopener noreferrer"), g.Text("terms and conditions"))
	}

	return Div(
		Class("flex items-start space-x-3"),
		Input(
			ID(models.FieldTerms),
			Name(models.FieldTerms),
			Type("checkbox"),
			Value("on"),
			Class("mt-1 h-4 w-4 rounded border-gray-300"),
			Aria("required", "true"),
			Aria("describedby", "terms-description"),
			g.If(accepted, Checked()),
			g.If(disabled, Disabled()),
		),
		Label(
			ID("terms-description"),
			For(models.FieldTerms),
			Class("text-sm text-gray-600"),
			g.Text("I accept the "),
			terms,
		),
	)
}

func statusOrIdle(s models.SubmissionStatus) models.SubmissionStatus {
	if s == "" {
		return models.StatusIdle
	}
	return s
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
