package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidPeriod(t *testing.T) {
	tests := []struct {
		period string
		want   bool
	}{
		{"2024-01", true},
		{"2024-12", true},
		{"2024-13", false},
		{"2024-00", false},
		{"2024-1", false},
		{"24-01", false},
		{"2024/01", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPeriod(tt.period), "period %q", tt.period)
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"00:00", true},
		{"07:00", true},
		{"23:59", true},
		{"24:00", false},
		{"7:00", false},
		{"07:60", false},
		{"0700", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidTimeOfDay(tt.value), "time %q", tt.value)
	}
}

func TestIsValidCCCD(t *testing.T) {
	assert.True(t, IsValidCCCD("079123456789"))  // 12-digit CCCD
	assert.True(t, IsValidCCCD("123456789"))     // 9-digit CMND
	assert.False(t, IsValidCCCD("12345678"))     // too short
	assert.False(t, IsValidCCCD("0791234567890")) // too long
	assert.False(t, IsValidCCCD("07912345678a"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("0912345678"))
	assert.True(t, IsValidPhoneNumber("+84912345678"))
	assert.True(t, IsValidPhoneNumber("0912 345 678"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("abcdefghij"))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("NV1"))
	assert.True(t, IsValidEmployeeCode("NV001"))
	assert.True(t, IsValidEmployeeCode("NV123456"))
	assert.False(t, IsValidEmployeeCode("nv001"))
	assert.False(t, IsValidEmployeeCode("NV"))
	assert.False(t, IsValidEmployeeCode("W1X"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-12-01")
	assert.True(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("01/12/2024")
	assert.False(t, ok)
}
