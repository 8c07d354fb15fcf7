package login

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestFormSubmit(t *testing.T) {
	type testCase struct {
		Email           string
		Password        string
		ExpectedPending bool
		ExpectedPhase   Phase
		ExpectedError   string
	}

	testCases := []testCase{
		{
			Email:           "",
			Password:        "",
			ExpectedPending: false,
			ExpectedPhase:   PhaseFailure,
			ExpectedError:   MessageMissingFields,
		},
		{
			Email:           "profesor@academia.edu",
			Password:        "",
			ExpectedPending: false,
			ExpectedPhase:   PhaseFailure,
			ExpectedError:   MessageMissingFields,
		},
		{
			Email:           "",
			Password:        "secreto",
			ExpectedPending: false,
			ExpectedPhase:   PhaseFailure,
			ExpectedError:   MessageMissingFields,
		},
		{
			Email:           "profesor@academia.edu",
			Password:        "secreto",
			ExpectedPending: true,
			ExpectedPhase:   PhaseSubmitting,
			ExpectedError:   "",
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			var form Form

			pending, err := form.Submit(tc.Email, tc.Password)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedPending, pending; e != g {
				t.Errorf("pending: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedPhase, form.Phase; e != g {
				t.Errorf("phase: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedError, form.Error; e != g {
				t.Errorf("error: expected '%v', got '%v'", e, g)
			}

			if e, g := "", form.Success; e != g {
				t.Errorf("success: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.Email, form.Email; e != g {
				t.Errorf("email: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestFormResolve(t *testing.T) {
	t.Run("success clears the fields", func(t *testing.T) {
		var form Form

		if _, err := form.Submit("a@b.c", "123456"); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if err := form.Resolve(true); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := PhaseSuccess, form.Phase; e != g {
			t.Errorf("phase: expected '%v', got '%v'", e, g)
		}

		if e, g := "¡Inicio de sesión exitoso! Bienvenido/a, a@b.c.", form.Success; e != g {
			t.Errorf("success: expected '%v', got '%v'", e, g)
		}

		if form.Email != "" || form.Password != "" {
			t.Errorf("expected fields to be cleared, got '%v' and '%v'", form.Email, form.Password)
		}

		if form.IsLoading() {
			t.Errorf("expected form not to be loading")
		}
	})

	t.Run("failure keeps the fields", func(t *testing.T) {
		var form Form

		if _, err := form.Submit("ab.c", "123456"); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if !form.IsLoading() {
			t.Errorf("expected form to be loading")
		}

		if err := form.Resolve(false); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := PhaseFailure, form.Phase; e != g {
			t.Errorf("phase: expected '%v', got '%v'", e, g)
		}

		if e, g := MessageInvalidCredentials, form.Error; e != g {
			t.Errorf("error: expected '%v', got '%v'", e, g)
		}

		if e, g := "ab.c", form.Email; e != g {
			t.Errorf("email: expected '%v', got '%v'", e, g)
		}

		if e, g := "123456", form.Password; e != g {
			t.Errorf("password: expected '%v', got '%v'", e, g)
		}
	})

	t.Run("resubmission clears previous messages", func(t *testing.T) {
		form := Form{Phase: PhaseFailure, Error: MessageInvalidCredentials}

		if _, err := form.Submit("a@b.c", "123456"); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "", form.Error; e != g {
			t.Errorf("error: expected '%v', got '%v'", e, g)
		}
	})
}

func TestFormInvalidTransitions(t *testing.T) {
	var form Form

	if err := form.Resolve(true); !errors.Is(err, ErrNotSubmitting) {
		t.Errorf("resolve while idle: expected '%v', got '%v'", ErrNotSubmitting, err)
	}

	if _, err := form.Submit("a@b.c", "123456"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := form.Submit("a@b.c", "123456"); !errors.Is(err, ErrAlreadySubmitting) {
		t.Errorf("submit while submitting: expected '%v', got '%v'", ErrAlreadySubmitting, err)
	}
}
