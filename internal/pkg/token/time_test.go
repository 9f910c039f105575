package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime_Strings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical clock", "08:30", "08:30"},
		{"single digit hour", "8:30", "08:30"},
		{"seconds dropped", "8:30:15", "08:30"},
		{"bare four digits", "0830", "08:30"},
		{"bare three digits", "830", "08:30"},
		{"evening bare digits", "1830", "18:30"},
		{"day fraction string", "0.5", "12:00"},
		{"day fraction morning", "0.3541666666666667", "08:30"},
		{"embedded date time", "2025-07-23 07:45:19", "07:45"},
		{"embedded date time slashes", "2025/7/23 7:45", "07:45"},
		{"zh afternoon", "下午2:00", "14:00"},
		{"zh afternoon already 24h", "下午12:30", "12:30"},
		{"zh morning midnight", "上午12:30", "00:30"},
		{"zh morning plain", "上午8:30", "08:30"},
		{"pm", "2:30 PM", "14:30"},
		{"pm lowercase no space", "2.30pm", "14:30"},
		{"am midnight", "12:15 AM", "00:15"},
		{"zh clock", "8点30分", "08:30"},
		{"zh clock hour only", "8点", "08:00"},
		{"zh clock shi", "18时05分", "18:05"},
		{"full width digits", "０８：３０", "08:30"},
		{"surrounding space", "  8:30  ", "08:30"},
		{"dash placeholder", "-", ""},
		{"double dash placeholder", "--", ""},
		{"em dash placeholder", "—", ""},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"date is not a time", "2025-08-01", ""},
		{"garbage", "abc", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NormalizeTime(c.input))
		})
	}
}

func TestNormalizeTime_Numbers(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"half day", float64(0.5), "12:00"},
		{"morning fraction", 0.3541666666666667, "08:30"},
		{"evening fraction", 0.75, "18:00"},
		{"zero", float64(0), "00:00"},
		{"float32", float32(0.5), "12:00"},
		{"unsupported type", []string{"8:30"}, ""},
		{"nil", nil, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NormalizeTime(c.input))
		})
	}
}

// Canonical output fed back in must come out unchanged.
func TestNormalizeTime_Idempotent(t *testing.T) {
	inputs := []string{"8:30", "0830", "下午2:00", "2:30 PM", "0.5"}
	for _, in := range inputs {
		once := NormalizeTime(in)
		assert.Equal(t, once, NormalizeTime(once), "input %q", in)
	}
}

func TestNormalizeTimeRange(t *testing.T) {
	cases := []struct {
		name      string
		input     any
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{"dash", "08:30-12:00", "08:30", "12:00", true},
		{"tilde", "8:30~12:00", "08:30", "12:00", true},
		{"zh dao", "8:30到12:00", "08:30", "12:00", true},
		{"zh zhi", "8:30至12:00", "08:30", "12:00", true},
		{"bare digits", "0830~1200", "08:30", "12:00", true},
		{"full width", "０８：３０－１２：００", "08:30", "12:00", true},
		{"spaces around separator", "8:30 - 12:00", "08:30", "12:00", true},
		{"inverted still parses", "12:00-08:30", "12:00", "08:30", true},
		{"date shaped", "2025-08-01", "", "", false},
		{"single time", "08:30", "", "", false},
		{"not a string", float64(0.5), "", "", false},
		{"garbage", "a-b", "", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, end, ok := NormalizeTimeRange(c.input)
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.wantStart, start)
			assert.Equal(t, c.wantEnd, end)
		})
	}
}
