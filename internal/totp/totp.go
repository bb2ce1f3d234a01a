// Package totp builds authenticator enrolment URIs to render as QR codes.
package totp

import (
	"fmt"
	"strings"

	"github.com/pquerna/otp/totp"
)

type Enrolment struct {
	URI    string
	Secret string // base32
}

// New generates a fresh TOTP secret for account and returns its otpauth URI.
func New(issuer, account string) (*Enrolment, error) {
	issuer, account = strings.TrimSpace(issuer), strings.TrimSpace(account)
	if issuer == "" || account == "" {
		return nil, fmt.Errorf("issuer and account required")
	}
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
	})
	if err != nil {
		return nil, err
	}
	return &Enrolment{URI: key.URL(), Secret: key.Secret()}, nil
}

func Verify(secret, code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	return totp.Validate(code, secret)
}
