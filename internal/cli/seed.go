package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/mkoshelev/lockvault/internal/common"
)

const (
	demoLogin      = "demo"
	demoEmail      = "demo@lockvault.local"
	demoCredential = "SamplePass123!"
)

type seedRecord struct {
	site      string
	accountID string
	secret    string
	notes     string
}

var seedRecords = []seedRecord{
	{"Gmail", "demo@gmail.com", "Gm@ilDemo2024", "Main email"},
	{"Facebook", "demo.user", "Fb!Sample456", "Social"},
	{"GitHub", "demo-dev", "Gh_Dev789!", "Work account"},
}

// Seed provisions the demo owner with a handful of sample records. It is a
// no-op when the demo owner already exists.
func (a *App) Seed(ctx context.Context) error {
	if _, err := a.dir.FindByLogin(ctx, demoLogin); err == nil {
		fmt.Fprintln(a.out, "Demo data already present, nothing to do.")
		return nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	if _, err := a.dir.Register(ctx, demoLogin, demoEmail, demoCredential); err != nil {
		return fmt.Errorf("error registering demo owner: %w", err)
	}

	session, err := a.vault.Login(ctx, demoLogin, demoCredential)
	if err != nil {
		return fmt.Errorf("error unlocking demo vault: %w", err)
	}
	defer session.Close()

	for _, r := range seedRecords {
		if _, err := a.vault.Add(ctx, session, r.site, r.accountID, r.secret, r.notes); err != nil {
			return fmt.Errorf("error seeding record for %s: %w", r.site, err)
		}
	}

	a.logger.Info(ctx, "demo data seeded", "records", len(seedRecords))
	fmt.Fprintf(a.out, "%s Seeded demo owner %q (password %q) with %d records\n",
		color.GreenString("✓"), demoLogin, demoCredential, len(seedRecords))
	return nil
}
