// pkg/validation/validation_test.go
package validation

import (
	"math"
	"strings"
	"testing"
)

func TestValidateLevelName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Orbital Insertion", "Orbital Insertion", false},
		{"trims whitespace", "  Binary Crossing  ", "Binary Crossing", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("a", MaxLevelNameLen+1), "", true},
		{"invalid utf8", "level\xff", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateLevelName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateLevelName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateLevelName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateBody(t *testing.T) {
	tests := []struct {
		name    string
		mass    float64
		radius  float64
		wantErr bool
	}{
		{"valid planet", 1e4, 12, false},
		{"massless target", 0, 20, false},
		{"negative mass", -1, 10, true},
		{"mass NaN", math.NaN(), 10, true},
		{"mass infinite", math.Inf(1), 10, true},
		{"mass too large", MaxBodyMass * 2, 10, true},
		{"zero radius", 100, 0, true},
		{"negative radius", 100, -5, true},
		{"radius too large", 100, MaxBodyRadius + 1, true},
		{"radius NaN", 100, math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBody(tt.mass, tt.radius)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBody(%v, %v) error = %v, wantErr %v", tt.mass, tt.radius, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		color   string
		wantErr bool
	}{
		{"#ff6347", false},
		{"#ADD8E6", false},
		{"#000000", false},
		{"ff6347", true},
		{"#fff", true},
		{"#gggggg", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			err := ValidateColor(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
	}{
		{"inside", 600, 400, false},
		{"on edge", 1200, 800, false},
		{"origin", 0, 0, false},
		{"negative x", -1, 400, true},
		{"past width", 1201, 400, true},
		{"NaN", math.NaN(), 400, true},
		{"infinite", 600, math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpawnPosition(tt.x, tt.y, 1200, 800)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpawnPosition(%v, %v) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLevelIndex(t *testing.T) {
	if err := ValidateLevelIndex(0, 2); err != nil {
		t.Errorf("index 0 of 2 should be valid: %v", err)
	}
	if err := ValidateLevelIndex(1, 2); err != nil {
		t.Errorf("index 1 of 2 should be valid: %v", err)
	}
	if err := ValidateLevelIndex(2, 2); err == nil {
		t.Error("index 2 of 2 should be invalid")
	}
	if err := ValidateLevelIndex(-1, 2); err == nil {
		t.Error("negative index should be invalid")
	}
}
