package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductRefNumeric(t *testing.T) {
	tests := []struct {
		ref    ProductRef
		wantID int
		wantOK bool
	}{
		{"17", 17, true},
		{"1", 1, true},
		{"iphone-15-pro", 0, false},
		{"auto-1725000000000-0", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		id, ok := tt.ref.Numeric()
		assert.Equal(t, tt.wantOK, ok, "ref %q", tt.ref)
		assert.Equal(t, tt.wantID, id, "ref %q", tt.ref)
	}
}

func TestProductRefIsSlug(t *testing.T) {
	assert.False(t, ProductRef("42").IsSlug())
	assert.True(t, ProductRef("galaxy-s24").IsSlug())
}
