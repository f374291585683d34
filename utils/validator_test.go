package utils

import "testing"

type registerForm struct {
	Name                 string `validate:"required,nameok"`
	Email                string `validate:"required,email"`
	Password             string `validate:"required,pwdmin"`
	PasswordConfirmation string `validate:"required,eqfield=Password"`
}

func TestValidateStructOK(t *testing.T) {
	f := registerForm{
		Name:                 "Jane Doe",
		Email:                "jane@example.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	}
	if err := ValidateStruct(&f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStructFailures(t *testing.T) {
	cases := []struct {
		name string
		form registerForm
	}{
		{"missing name", registerForm{Email: "a@b.co", Password: "secret1", PasswordConfirmation: "secret1"}},
		{"bad email", registerForm{Name: "Jane", Email: "not-an-email", Password: "secret1", PasswordConfirmation: "secret1"}},
		{"short password", registerForm{Name: "Jane", Email: "a@b.co", Password: "abc", PasswordConfirmation: "abc"}},
		{"mismatched confirmation", registerForm{Name: "Jane", Email: "a@b.co", Password: "secret1", PasswordConfirmation: "secret2"}},
		{"name with invalid chars", registerForm{Name: "Jane <script>", Email: "a@b.co", Password: "secret1", PasswordConfirmation: "secret1"}},
	}
	for _, c := range cases {
		if err := ValidateStruct(&c.form); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestValidateStructNonStruct(t *testing.T) {
	if err := ValidateStruct("not a struct"); err == nil {
		t.Error("expected error for non-struct input")
	}
}
