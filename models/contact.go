package models

// ContactForm is the field state of the landing page contact form
type ContactForm struct {
	Name          string
	Email         string
	Message       string
	TermsAccepted bool
}

// Request returns the payload sent to the submission endpoint. The terms flag is never transmitted.
func (f ContactForm) Request() ContactRequest {
	return ContactRequest{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	}
}

// ContactRequest is the JSON body accepted by the submission endpoint
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse is the JSON body returned by the submission endpoint
type ContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SubmissionStatus is the lifecycle state of one contact form
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSuccess    SubmissionStatus = "success"
	StatusError      SubmissionStatus = "error"
)

// Contact form field names, shared by the HTML form and the controller
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
	FieldTerms   = "terms"
)
