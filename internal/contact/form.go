// Package contact implements the contact form: four text fields and a
// submission lifecycle of idle -> submitting -> success | idle-with-notice.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Status is the submission state shown next to the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
)

// SuccessDisplay is how long the success banner stays up by default.
const SuccessDisplay = 3 * time.Second

const FailureNotice = "Something went wrong. Please try again."

var (
	ErrSubmitting   = errors.New("a submission is already in progress")
	ErrInvalid      = errors.New("invalid contact form")
	ErrUnknownField = errors.New("unknown contact field")
)

// Fields are the raw form inputs.
type Fields struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Message is the payload handed to the delivery collaborator. The subject
// field is collected by the form but not forwarded.
type Message struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
}

// Sender delivers a message. It either succeeds or returns an error that is
// only ever displayed, never interpreted.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

// Form is not safe for concurrent use; callers serialize access.
type Form struct {
	fields     Fields
	submitting bool
	successAt  time.Time
	notice     string
	display    time.Duration
	now        func() time.Time
}

type Option func(*Form)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

// WithSuccessDisplay overrides SuccessDisplay.
func WithSuccessDisplay(d time.Duration) Option {
	return func(f *Form) { f.display = d }
}

func NewForm(opts ...Option) *Form {
	f := &Form{display: SuccessDisplay, now: time.Now}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Status derives the current state. Success reverts to idle once the
// display duration has elapsed.
func (f *Form) Status() Status {
	switch {
	case f.submitting:
		return StatusSubmitting
	case !f.successAt.IsZero() && f.now().Sub(f.successAt) < f.display:
		return StatusSuccess
	default:
		return StatusIdle
	}
}

func (f *Form) Fields() Fields {
	return f.fields
}

// Notice is the failure message from the last attempt, if any.
func (f *Form) Notice() string {
	return f.notice
}

// SetField updates one input by name.
func (f *Form) SetField(name, value string) error {
	switch name {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "subject":
		f.fields.Subject = value
	case "message":
		f.fields.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// SetFields replaces all inputs.
func (f *Form) SetFields(in Fields) {
	f.fields = in
}

// Validate checks the required inputs.
func (fs Fields) Validate() error {
	var problems []string
	if strings.TrimSpace(fs.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(fs.Email) == "" {
		problems = append(problems, "email is required")
	} else if _, err := mail.ParseAddress(fs.Email); err != nil {
		problems = append(problems, "email is not a valid address")
	}
	if strings.TrimSpace(fs.Message) == "" {
		problems = append(problems, "message is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, ", "))
	}
	return nil
}

// Begin starts a submission and returns the message to deliver. A second
// Begin before Complete is rejected.
func (f *Form) Begin() (Message, error) {
	if f.submitting {
		return Message{}, ErrSubmitting
	}
	if err := f.fields.Validate(); err != nil {
		return Message{}, err
	}
	f.submitting = true
	f.successAt = time.Time{}
	f.notice = ""
	return Message{
		FromName:  f.fields.Name,
		FromEmail: f.fields.Email,
		Message:   f.fields.Message,
	}, nil
}

// Complete finishes the submission started by Begin with the delivery
// outcome. On success the inputs are cleared; on failure they are kept so the
// visitor can retry.
func (f *Form) Complete(deliveryErr error) {
	f.submitting = false
	if deliveryErr != nil {
		f.notice = FailureNotice
		return
	}
	f.fields = Fields{}
	f.successAt = f.now()
}

// Submit runs Begin, the delivery and Complete in one call. The returned
// error is the delivery error, or the reason Begin refused.
func (f *Form) Submit(ctx context.Context, sender Sender) error {
	msg, err := f.Begin()
	if err != nil {
		return err
	}
	err = sender.Send(ctx, msg)
	f.Complete(err)
	return err
}

// View is the form as the page shell draws it.
type View struct {
	Fields    Fields `json:"fields"`
	Status    Status `json:"status"`
	Notice    string `json:"notice,omitempty"`
	CanSubmit bool   `json:"can_submit"`
}

func (f *Form) View() View {
	st := f.Status()
	return View{
		Fields:    f.fields,
		Status:    st,
		Notice:    f.notice,
		CanSubmit: st != StatusSubmitting,
	}
}
