package models

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Donghyun-K/board-client/internal/common"
)

const (
	MinNameLen        = 4
	MaxNameLen        = 20
	MaxTitleLen       = 100
	MaxDescriptionLen = 1000
)

var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]*$`)

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", common.ErrValidation, field, reason)
}

func checkLength(field, v string, min, max int) error {
	n := utf8.RuneCountInString(v)
	if n == 0 {
		return invalid(field, "is required")
	}
	if n < min {
		return invalid(field, fmt.Sprintf("must be at least %d characters", min))
	}
	if max > 0 && n > max {
		return invalid(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

func checkPassword(p string) error {
	if err := checkLength("password", p, MinNameLen, MaxNameLen); err != nil {
		return err
	}
	if !alphanumeric.MatchString(p) {
		return invalid("password", "may only contain letters and digits")
	}
	return nil
}

func (r SignInRequest) Validate() error {
	if err := checkLength("username", r.Username, MinNameLen, MaxNameLen); err != nil {
		return err
	}
	return checkPassword(r.Password)
}

func (r SignUpRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return invalid("email", "is required")
	}
	if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
		return invalid("email", "is not a valid address")
	}
	if err := (SignInRequest{Username: r.Username, Password: r.Password}).Validate(); err != nil {
		return err
	}
	if r.PasswordConfirm != r.Password {
		return invalid("password confirmation", "does not match")
	}
	return nil
}

// Validate checks a board for creation. Use ValidateUpdate for PATCH bodies.
func (b BoardInput) Validate() error {
	if err := checkLength("title", strings.TrimSpace(b.Title), 1, MaxTitleLen); err != nil {
		return err
	}
	return checkLength("description", strings.TrimSpace(b.Description), 1, MaxDescriptionLen)
}

func (b BoardInput) ValidateUpdate() error {
	if strings.TrimSpace(b.Title) == "" {
		return invalid("title", "is required")
	}
	if strings.TrimSpace(b.Description) == "" {
		return invalid("description", "is required")
	}
	switch b.Status {
	case BoardStatusPublic, BoardStatusPrivate:
		return nil
	}
	return invalid("status", "must be PUBLIC or PRIVATE")
}

func (p PostInput) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return invalid("title", "is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return invalid("content", "is required")
	}
	return nil
}
