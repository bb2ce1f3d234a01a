package totp

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
)

func TestNewAndVerify(t *testing.T) {
	e, err := New("qrpanel", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(e.URI, "otpauth://totp/") || !strings.Contains(e.URI, "secret="+e.Secret) {
		t.Fatalf("unexpected uri %q", e.URI)
	}
	code, err := totp.GenerateCode(e.Secret, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !Verify(e.Secret, " "+code+" ") {
		t.Fatal("current code rejected")
	}
	if Verify(e.Secret, "") {
		t.Fatal("empty code accepted")
	}
}

func TestNewRequiresNames(t *testing.T) {
	if _, err := New("", "bob"); err == nil {
		t.Fatal("expected error")
	}
}
