package login

import (
	"fmt"

	"github.com/pkg/errors"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const (
	MessageMissingFields      = "Por favor, ingresa tu correo electrónico y contraseña."
	MessageInvalidCredentials = "Credenciales incorrectas. Verifica tu correo y contraseña."
	messageWelcome            = "¡Inicio de sesión exitoso! Bienvenido/a, %s."
)

func WelcomeMessage(email string) string {
	return fmt.Sprintf(messageWelcome, email)
}

var (
	ErrAlreadySubmitting = errors.New("form is already submitting")
	ErrNotSubmitting     = errors.New("form is not submitting")
)

// Form is the state of a login form. The zero value is an idle, empty form.
type Form struct {
	Email    string
	Password string
	Error    string
	Success  string
	Phase    Phase
}

func (f Form) IsLoading() bool {
	return f.Phase == PhaseSubmitting
}

// Submit starts a submission with the given credentials. It reports whether
// the form is now waiting for its resolution: a form missing one of the
// fields fails right away instead.
func (f *Form) Submit(email, password string) (bool, error) {
	if f.Phase == PhaseSubmitting {
		return false, errors.WithStack(ErrAlreadySubmitting)
	}

	f.Email = email
	f.Password = password
	f.Error = ""
	f.Success = ""

	if email == "" || password == "" {
		f.Phase = PhaseFailure
		f.Error = MessageMissingFields
		return false, nil
	}

	f.Phase = PhaseSubmitting

	return true, nil
}

// Resolve ends a pending submission. On success the fields are cleared, on
// failure they are kept for correction.
func (f *Form) Resolve(authenticated bool) error {
	if f.Phase != PhaseSubmitting {
		return errors.WithStack(ErrNotSubmitting)
	}

	if !authenticated {
		f.Phase = PhaseFailure
		f.Error = MessageInvalidCredentials
		return nil
	}

	f.Phase = PhaseSuccess
	f.Success = WelcomeMessage(f.Email)
	f.Email = ""
	f.Password = ""

	return nil
}
