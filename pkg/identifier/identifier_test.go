package identifier

import (
	"regexp"
	"strings"
	"testing"
)

func TestNewPatientID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^PAT-\d{5}$`)

	for i := 0; i < 200; i++ {
		id := NewPatientID()
		if !pattern.MatchString(id) {
			t.Fatalf("generated id %q does not match PAT-NNNNN", id)
		}
	}
}

func TestNewPassword_LengthAndCharset(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw := NewPassword()
		if len(pw) != 8 {
			t.Fatalf("expected password length 8, got %d (%q)", len(pw), pw)
		}
		for _, c := range pw {
			if !strings.ContainsRune(passwordAlphabet, c) {
				t.Fatalf("password %q contains invalid character %q", pw, c)
			}
		}
	}
}

func TestNewPassword_NotConstant(t *testing.T) {
	a, b := NewPassword(), NewPassword()
	if a == b {
		t.Errorf("two generated passwords are identical: %q", a)
	}
}
