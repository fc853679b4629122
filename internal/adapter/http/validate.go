package adapthttp

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

// Field limits mirror the persisted column sizes and count characters, not
// bytes. Validation happens before any persistence call; the returned
// message is empty when the value is acceptable.

func validateUserName(name string) string {
	if n := utf8.RuneCountInString(name); n == 0 || n > 20 {
		return "'userName' length must be between 1 and 20 characters"
	}
	return ""
}

func validatePassword(password string) string {
	if n := utf8.RuneCountInString(password); n < 8 || n > 20 {
		return "'password' length must be between 8 and 20 characters"
	}
	return ""
}

func validateEmail(email string) string {
	if n := utf8.RuneCountInString(email); n == 0 || n > 255 {
		return "'email' length must be between 1 and 255 characters"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "'email' must be a valid email address"
	}
	return ""
}

func validateText(field, value string) string {
	if n := utf8.RuneCountInString(value); n == 0 || n > 255 {
		return fmt.Sprintf("'%s' length must be between 1 and 255 characters", field)
	}
	return ""
}
