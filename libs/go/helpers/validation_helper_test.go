package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"player@example.com", true},
		{"  td+spring@club.co.uk ", true},
		{"first.last@sub.example.org", true},
		{"", false},
		{"no-at-sign.example.com", false},
		{"player@localhost", false},
		{"player@example.c", false},
		{"two@@example.com", false},
		{strings.Repeat("a", 250) + "@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmailValid(tt.email))
		})
	}
}

func TestIsHTTPSURL(t *testing.T) {
	assert.True(t, IsHTTPSURL("https://ratings.example.com/api"))
	assert.False(t, IsHTTPSURL("http://ratings.example.com"))
	assert.False(t, IsHTTPSURL("https://"))
	assert.False(t, IsHTTPSURL("not a url"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "player@example.com", NormalizeEmail("  Player@Example.COM "))
}
