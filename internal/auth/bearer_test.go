package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBearer(t *testing.T) {
	// Bentuk token compact: header.payload.signature
	const compact = "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiI3In0.c2ln"

	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "bearer prefix", header: "Bearer " + compact, want: compact, ok: true},
		{name: "bearer prefix lowercase", header: "bearer " + compact, want: compact, ok: true},
		{name: "bearer with extra spaces", header: "Bearer   " + compact + "  ", want: compact, ok: true},
		{name: "raw token with two dots", header: compact, want: compact, ok: true},
		{name: "json envelope", header: `Bearer {"token":"` + compact + `"}`, want: compact, ok: true},
		{name: "empty header", header: "", ok: false},
		{name: "bearer without token", header: "Bearer ", ok: false},
		{name: "raw text without dots", header: "some-opaque-string", ok: false},
		{name: "raw text with one dot", header: "a.b", ok: false},
		{name: "broken json envelope", header: `Bearer {"token":`, ok: false},
		{name: "json envelope without token field", header: `Bearer {"access":"x"}`, ok: false},
		{name: "basic auth header", header: "Basic dXNlcjpwYXNz", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeBearer(tt.header)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
