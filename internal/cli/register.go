package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/mkoshelev/lockvault/internal/common"
)

func (a *App) register(ctx context.Context) {
	loginName, err := GetSimpleText(a.reader, "Login name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}

	password, err := GetPassword("Master password: ", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Confirm master password: ", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		fmt.Fprintln(a.out, color.RedString("✗"), "Passwords do not match")
		return
	}

	owner, err := a.dir.Register(ctx, loginName, email, string(password))
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), errorMessage(err))
		return
	}

	a.logger.Info(ctx, "owner registered", "owner_id", owner.ID)
	fmt.Fprintln(a.out, color.GreenString("✓"), "Registration successful! Please login.")
}
