package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil stays nil", input: nil, want: nil},
		{name: "empty stays empty", input: []string{}, want: []string{}},
		{name: "blank entries dropped", input: []string{"owner", "", "  ", "tenant"}, want: []string{"owner", "tenant"}},
		{name: "first occurrence wins", input: []string{" tenant", "owner", "tenant "}, want: []string{"tenant", "owner"}},
		{name: "case folded", input: []string{" Admin ", "admin", "OWNER"}, want: []string{"admin", "owner"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrimLower(tt.input))
		})
	}
}
