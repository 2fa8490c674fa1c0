package models

// StrengthLevel classifies a candidate secret.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "weak"
	StrengthFair   StrengthLevel = "fair"
	StrengthGood   StrengthLevel = "good"
	StrengthStrong StrengthLevel = "strong"
)

// StrengthReport is the result of evaluating a candidate secret.
// Score is a 0-100 value derived from the level.
type StrengthReport struct {
	Level StrengthLevel `json:"level"`
	Score int           `json:"score"`
}
