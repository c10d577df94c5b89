package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateSignupInput(t *testing.T) {
	tests := []struct {
		name    string
		in      signupInput
		wantErr bool
	}{
		{"valid", signupInput{Name: "Ada", Email: "ada@x.com", Password: "hunter22"}, false},
		{"missing name", signupInput{Email: "ada@x.com", Password: "hunter22"}, true},
		{"missing email", signupInput{Name: "Ada", Password: "hunter22"}, true},
		{"missing password", signupInput{Name: "Ada", Email: "ada@x.com"}, true},
		{"all missing", signupInput{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateSignupInput(tt.in)
			if tt.wantErr && msg == "" {
				t.Error("expected a validation message, got none")
			}
			if !tt.wantErr && msg != "" {
				t.Errorf("expected no validation message, got %q", msg)
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	if msg := validateLoginInput(loginInput{Email: "a@x.com", Password: "pw"}); msg != "" {
		t.Errorf("expected valid input, got %q", msg)
	}
	if msg := validateLoginInput(loginInput{Email: "a@x.com"}); msg == "" {
		t.Error("expected a validation message for missing password")
	}
	if msg := validateLoginInput(loginInput{Password: "pw"}); msg == "" {
		t.Error("expected a validation message for missing email")
	}
}

// Both login failure arms funnel through respondInvalidCredentials, so
// locking its output locks the unknown-email / wrong-password parity.
func TestRespondInvalidCredentials(t *testing.T) {
	first := httptest.NewRecorder()
	respondInvalidCredentials(first)
	second := httptest.NewRecorder()
	respondInvalidCredentials(second)

	if first.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", first.Code)
	}
	if first.Code != second.Code || first.Body.String() != second.Body.String() {
		t.Error("login failures must be indistinguishable")
	}
	if body := first.Body.String(); body == "" {
		t.Error("expected a generic error body")
	}
}
