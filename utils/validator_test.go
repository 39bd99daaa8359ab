package utils

import (
	"strings"
	"testing"
)

type signupForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Confirm  string `validate:"eqfield=Password"`
}

func TestValidateStruct_Valid(t *testing.T) {
	form := signupForm{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
		Confirm:  "correct-horse",
	}
	if err := ValidateStruct(&form); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestValidateStruct_Required(t *testing.T) {
	form := signupForm{Email: "ada@example.com", Password: "correct-horse", Confirm: "correct-horse"}
	err := ValidateStruct(&form)
	if err == nil || !strings.Contains(err.Error(), "Name") {
		t.Fatalf("expected Name error, got %v", err)
	}
}

func TestValidateStruct_Email(t *testing.T) {
	form := signupForm{Name: "Ada", Email: "not-an-email", Password: "correct-horse", Confirm: "correct-horse"}
	err := ValidateStruct(&form)
	if err == nil || !strings.Contains(err.Error(), "Email") {
		t.Fatalf("expected Email error, got %v", err)
	}
}

func TestValidateStruct_MinLength(t *testing.T) {
	form := signupForm{Name: "Ada", Email: "ada@example.com", Password: "short", Confirm: "short"}
	err := ValidateStruct(&form)
	if err == nil || !strings.Contains(err.Error(), "Password") {
		t.Fatalf("expected Password error, got %v", err)
	}
}

func TestValidateStruct_EqField(t *testing.T) {
	form := signupForm{Name: "Ada", Email: "ada@example.com", Password: "correct-horse", Confirm: "different"}
	err := ValidateStruct(&form)
	if err == nil || !strings.Contains(err.Error(), "Confirm") {
		t.Fatalf("expected Confirm error, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc.def.ghi": "abc.def.ghi",
		"bearer abc.def.ghi": "abc.def.ghi",
		"abc.def.ghi":        "abc.def.ghi",
		"":                   "",
		"Basic dXNlcg==":     "",
	}
	for header, want := range cases {
		if got := ExtractBearerToken(header); got != want {
			t.Errorf("ExtractBearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestRoundFloat(t *testing.T) {
	if got := RoundFloat(374.99625, 2); got != 375.0 {
		t.Errorf("RoundFloat(374.99625, 2) = %v", got)
	}
	if got := RoundFloat(12.344, 2); got != 12.34 {
		t.Errorf("RoundFloat(12.344, 2) = %v", got)
	}
}
