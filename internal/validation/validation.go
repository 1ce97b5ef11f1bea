// Package validation holds the input rules of the account and post forms.
// Every failure wraps common.ErrValidation with the message shown to the user.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/myblog/internal/common"
	"github.com/dmitrijs2005/myblog/internal/models"
)

const (
	MinUsernameLength = 4
	MinPasswordLength = 6

	// PasswordSymbols lists the characters that count as a symbol.
	PasswordSymbols = "!@#$%^&*()-+={}[]:;\"'<>,.?/~`"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}

// Required fails when any field is blank after trimming.
func Required(fields ...string) error {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return invalid("Please fill in all fields!")
		}
	}
	return nil
}

// Username checks the length and returns the normalised (lowercased) name.
func Username(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < MinUsernameLength {
		return "", invalid("Username is less than 4 characters")
	}
	return strings.ToLower(s), nil
}

func Email(s string) error {
	if !emailPattern.MatchString(s) {
		return invalid("Please enter a valid email address!")
	}
	return nil
}

// Password enforces at least 6 characters, one uppercase letter and one
// symbol from PasswordSymbols.
func Password(s string) error {
	var upper, symbol bool
	for _, r := range s {
		if unicode.IsUpper(r) {
			upper = true
		}
		if strings.ContainsRune(PasswordSymbols, r) {
			symbol = true
		}
	}
	if utf8.RuneCountInString(s) < MinPasswordLength || !upper || !symbol {
		return invalid("Password must be min 6 characters, contains at least 1 uppercase & 1 symbol")
	}
	return nil
}

func PasswordsMatch(password, confirm string) error {
	if password != confirm {
		return invalid("Passwords do not match!")
	}
	return nil
}

// Post checks a trimmed title and content pair.
func Post(title, content string) error {
	if title == "" || content == "" {
		return invalid("Please fill in all fields!")
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return invalid(fmt.Sprintf("Title must be at most %d characters", models.MaxTitleLength))
	}
	return nil
}
