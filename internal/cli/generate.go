package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mkoshelev/lockvault/internal/models"
	"github.com/mkoshelev/lockvault/internal/passgen"
	"github.com/mkoshelev/lockvault/internal/strength"
)

func strengthLabel(level models.StrengthLevel) string {
	switch level {
	case models.StrengthWeak:
		return color.RedString("weak")
	case models.StrengthFair:
		return color.YellowString("fair")
	case models.StrengthGood:
		return color.CyanString("good")
	case models.StrengthStrong:
		return color.GreenString("strong")
	default:
		return string(level)
	}
}

// generate is the interactive shell variant; it prompts for the length and
// character classes and prints the result with its strength.
func (a *App) generate() {
	cfg := passgen.DefaultConfig()

	lengthText, err := GetSimpleText(a.reader, fmt.Sprintf("Length [%d]", passgen.DefaultLength), a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	if lengthText != "" {
		length, err := strconv.Atoi(lengthText)
		if err != nil || length <= 0 {
			fmt.Fprintln(a.out, color.RedString("✗"), "Invalid length:", lengthText)
			return
		}
		cfg.Length = length
	}

	classes, err := GetSimpleText(a.reader, "Character classes, any of l/u/d/s [luds]", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	if classes != "" {
		cfg.Lower = strings.ContainsRune(classes, 'l')
		cfg.Upper = strings.ContainsRune(classes, 'u')
		cfg.Digits = strings.ContainsRune(classes, 'd')
		cfg.Symbols = strings.ContainsRune(classes, 's')
	}

	a.printGenerated(cfg)
}

func (a *App) printGenerated(cfg passgen.Config) {
	secret, err := passgen.Generate(cfg)
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), errorMessage(err))
		return
	}

	report := strength.Evaluate(secret)
	fmt.Fprintf(a.out, "Generated: %s\n", secret)
	fmt.Fprintf(a.out, "Strength:  %s (%d/100)\n", strengthLabel(report.Level), report.Score)
}

// strength evaluates a candidate given inline, or prompts for one without
// echo when invoked bare.
func (a *App) strength(ctx context.Context, args []string) {
	var candidate string
	if len(args) > 0 {
		candidate = strings.Join(args, " ")
	} else {
		secret, err := GetPassword("Password to evaluate: ", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Input error:", err)
			return
		}
		candidate = string(secret)
	}

	a.printStrength(candidate)
}

func (a *App) printStrength(candidate string) {
	report := strength.Evaluate(candidate)
	fmt.Fprintf(a.out, "Strength: %s (%d/100)\n", strengthLabel(report.Level), report.Score)
	if !strength.MeetsPolicy(candidate) {
		fmt.Fprintf(a.out, "%s Does not meet the master password policy (min %d chars, all four character classes)\n",
			color.YellowString("!"), strength.PolicyMinLength)
	} else {
		fmt.Fprintln(a.out, color.GreenString("✓"), "Meets the master password policy")
	}
}
