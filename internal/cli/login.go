package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mkoshelev/lockvault/internal/common"
)

func (a *App) login(ctx context.Context) {
	prompt := "Login name or email"
	if a.savedLogin != "" {
		prompt = fmt.Sprintf("Login name or email [%s]", a.savedLogin)
	}

	identifier, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	if identifier == "" {
		identifier = a.savedLogin
	}

	password, err := GetPassword("Master password: ", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	defer common.WipeByteArray(password)

	// key derivation is deliberately slow, give feedback meanwhile
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Unlocking vault..."
	s.Start()
	session, err := a.vault.Login(ctx, identifier, string(password))
	s.Stop()

	if err != nil {
		// an unknown identifier reads the same as a bad password
		if errors.Is(err, common.ErrNotFound) {
			err = common.ErrInvalidCredential
		}
		fmt.Fprintln(a.out, color.RedString("✗"), errorMessage(err))
		return
	}

	a.session.Close()
	a.session = session
	a.savedLogin = session.Owner().LoginName

	remember, err := Confirm(a.reader, "Remember me on this device?", a.out)
	if err == nil && remember {
		if err := a.sessions.Remember(ctx, session.Owner()); err != nil {
			a.logger.Warn(ctx, "error caching session token", "error", err)
		}
	}

	fmt.Fprintln(a.out, color.GreenString("✓"), "Login successful!")
}

func (a *App) logout(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, errorMessage(common.ErrUnauthenticated))
		return
	}

	a.session.Close()
	a.session = nil
	a.savedLogin = ""

	if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Warn(ctx, "error clearing session token", "error", err)
	}

	fmt.Fprintln(a.out, color.GreenString("✓"), "Logged out successfully!")
}
