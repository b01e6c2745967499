package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthsFromText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"12 muaj", 12},
		{"24", 24},
		{"garanci 6 muajsh", 6},
		{"no digits here", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, monthsFromText(tt.input), "input %q", tt.input)
	}
}

func TestWarrantyFormAliases(t *testing.T) {
	albanian := map[string]any{
		"emri":    "Ana",
		"mbiemri": "Doe",
		"marka":   "Apple",
		"modeli":  "iPhone 15",
	}
	assert.Equal(t, "Ana", stringField(albanian, firstNameAliases...))
	assert.Equal(t, "Doe", stringField(albanian, lastNameAliases...))
	assert.Equal(t, "Apple", stringField(albanian, brandAliases...))
	assert.Equal(t, "iPhone 15", stringField(albanian, modelAliases...))

	english := map[string]any{
		"firstName": "Ana",
		"last_name": "Doe",
		"brand":     "Samsung",
		"model":     "S24",
	}
	assert.Equal(t, "Ana", stringField(english, firstNameAliases...))
	assert.Equal(t, "Doe", stringField(english, lastNameAliases...))
	assert.Equal(t, "Samsung", stringField(english, brandAliases...))
	assert.Equal(t, "S24", stringField(english, modelAliases...))
}
