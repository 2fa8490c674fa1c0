package strength

import (
	"testing"

	"github.com/mkoshelev/lockvault/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantLevel models.StrengthLevel
		wantScore int
	}{
		{"empty", "", models.StrengthWeak, 25},
		{"short lowercase", "abc", models.StrengthWeak, 25},
		{"twelve lowercase", "aaaaaaaaaaaa", models.StrengthFair, 50},
		{"nine chars all classes", "Abcdef12!", models.StrengthGood, 75},
		{"twelve chars all classes", "Abcdefgh12!!", models.StrengthStrong, 100},
		{"long three classes", "abcdefgh1234", models.StrengthGood, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(tt.candidate)
			assert.Equal(t, tt.wantLevel, report.Level)
			assert.Equal(t, tt.wantScore, report.Score)
		})
	}
}

func TestMeetsPolicy(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"valid", "Demo123!", true},
		{"seven chars", "short1!", false},
		{"no symbol", "Abcdefg1", false},
		{"no digit", "Abcdefg!", false},
		{"no upper", "abcdefg1!", false},
		{"no lower", "ABCDEFG1!", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeetsPolicy(tt.candidate))
		})
	}
}
