package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate_Strings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical", "2025-08-01", "2025-08-01"},
		{"unpadded", "2025-8-1", "2025-08-01"},
		{"slashes", "2025/8/1", "2025-08-01"},
		{"dots", "2025.8.1", "2025-08-01"},
		{"zh", "2025年8月1日", "2025-08-01"},
		{"zh no day suffix", "2025年8月1", "2025-08-01"},
		{"full width", "２０２５－０８－０１", "2025-08-01"},
		{"serial digits", "45870", "2025-08-01"},
		{"surrounding space", " 2025-08-01 ", "2025-08-01"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"time is not a date", "08:30", ""},
		{"garbage", "abc", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NormalizeDate(c.input))
		})
	}
}

func TestNormalizeDate_Numbers(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"serial float", float64(45870), "2025-08-01"},
		{"serial int", 45870, "2025-08-01"},
		{"serial with time part", 45870.5, "2025-08-01"},
		{"nil", nil, ""},
		{"unsupported type", []int{45870}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NormalizeDate(c.input))
		})
	}
}
