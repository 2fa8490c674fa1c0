package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mkoshelev/lockvault/internal/common"
)

func (a *App) promptStatus() string {
	if owner := a.session.Owner(); owner != nil {
		return fmt.Sprintf("(%s)", owner.LoginName)
	}
	return ""
}

// Run starts the interactive shell and blocks until exit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to LockVault (type 'help' for commands)")

	a.restoreSavedLogin(ctx)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "lockvault %s> ", a.promptStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: add, list, show <id>, update <id>, delete <id>, generate, strength, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, generate, strength, exit")
			}
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "add":
			a.add(ctx)
		case "list":
			a.list(ctx)
		case "show":
			a.show(ctx, args)
		case "update":
			a.update(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "generate":
			a.generate()
		case "strength":
			a.strength(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// restoreSavedLogin pre-fills the login identity from a cached continuity
// token, if one is still valid.
func (a *App) restoreSavedLogin(ctx context.Context) {
	claims, err := a.sessions.Restore(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			a.logger.Warn(ctx, "error restoring session token", "error", err)
		}
		return
	}
	a.savedLogin = claims.LoginName
	fmt.Fprintf(a.out, "Welcome back, %s! Type 'login' to unlock your vault.\n", claims.LoginName)
}
