package helpers

import (
	"net/url"
	"regexp"
	"strings"
)

// EmailRegex is the address shape accepted for recipients and contact emails.
var EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsEmailValid checks if the provided string looks like a deliverable email address
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > 254 {
		return false
	}
	return EmailRegex.MatchString(email)
}

// IsHTTPSURL reports whether raw is an absolute https URL with a host
func IsHTTPSURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}

// NormalizeEmail lowercases and trims an address for comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
