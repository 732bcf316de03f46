package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStrongPassword(t *testing.T) {
	assert.Empty(t, Check("Str0ng!pass"))
	assert.Empty(t, Check("Aa1!Aa1!"))
}

func TestCheckSingleViolations(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{"too short", "Aa1!Aa1", []string{ReqLength}},
		{"no uppercase", "weak1pass!", []string{ReqUppercase}},
		{"no lowercase", "WEAK1PASS!", []string{ReqLowercase}},
		{"no digit", "WeakPass!!", []string{ReqDigit}},
		{"no special", "WeakPass11", []string{ReqSpecial}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.password))
		})
	}
}

func TestCheckReportsInFixedOrder(t *testing.T) {
	got := Check("")
	want := []string{ReqLength, ReqUppercase, ReqLowercase, ReqDigit, ReqSpecial}
	assert.Equal(t, want, got)
}

func TestCheckCountsRunesNotBytes(t *testing.T) {
	// 8 multibyte runes plus the required classes.
	assert.NotContains(t, Check("Äbcdef1!"), ReqLength)
}

func TestMessage(t *testing.T) {
	msg := Message([]string{ReqUppercase, ReqDigit})
	assert.Equal(t, "Password must contain: an uppercase letter, a digit.", msg)
}
