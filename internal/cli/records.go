package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mkoshelev/lockvault/internal/common"
	"github.com/mkoshelev/lockvault/internal/strength"
)

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected a record id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id: %q", args[0])
	}
	return id, nil
}

func (a *App) add(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, errorMessage(common.ErrUnauthenticated))
		return
	}

	site, err := GetSimpleText(a.reader, "Site", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}

	accountID, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}

	secret, err := GetPassword("Password: ", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	defer common.WipeByteArray(secret)

	notes, err := GetSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}

	record, err := a.vault.Add(ctx, a.session, site, accountID, string(secret), notes)
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), errorMessage(err))
		return
	}

	report := strength.Evaluate(string(secret))
	a.logger.Info(ctx, "record added", "record_id", record.ID)
	fmt.Fprintf(a.out, "%s Record #%d saved (password strength: %s)\n",
		color.GreenString("✓"), record.ID, strengthLabel(report.Level))
}

func (a *App) list(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, errorMessage(common.ErrUnauthenticated))
		return
	}

	records, err := a.vault.List(ctx, a.session)
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), errorMessage(err))
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No records yet. Use 'add' to create one.")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSITE\tUSERNAME\tNOTES")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.Site, r.AccountID, r.Notes)
	}
	w.Flush()
}

func (a *App) show(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, errorMessage(common.ErrUnauthenticated))
		return
	}

	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), err)
		return
	}

	record, err := a.vault.Get(ctx, a.session, id)
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), errorMessage(err))
		return
	}
	defer common.WipeByteArray(record.Secret)

	fmt.Fprintf(a.out, "Site:     %s\n", record.Site)
	fmt.Fprintf(a.out, "Username: %s\n", record.AccountID)
	fmt.Fprintf(a.out, "Password: %s\n", string(record.Secret))
	if record.Notes != "" {
		fmt.Fprintf(a.out, "Notes:    %s\n", record.Notes)
	}
	fmt.Fprintf(a.out, "Created:  %s\n", record.CreatedAt.Format("2006-01-02 15:04"))
	if record.UpdatedAt != nil {
		fmt.Fprintf(a.out, "Updated:  %s\n", record.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func (a *App) update(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, errorMessage(common.ErrUnauthenticated))
		return
	}

	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), err)
		return
	}

	current, err := a.vault.Get(ctx, a.session, id)
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), errorMessage(err))
		return
	}
	defer common.WipeByteArray(current.Secret)

	site, err := GetSimpleText(a.reader, fmt.Sprintf("Site [%s]", current.Site), a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	if site == "" {
		site = current.Site
	}

	accountID, err := GetSimpleText(a.reader, fmt.Sprintf("Username [%s]", current.AccountID), a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	if accountID == "" {
		accountID = current.AccountID
	}

	secret, err := GetPassword("Password (empty to keep current): ", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	defer common.WipeByteArray(secret)
	if len(secret) == 0 {
		secret = current.Secret
	}

	notes, err := GetSimpleText(a.reader, fmt.Sprintf("Notes [%s]", current.Notes), a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	if notes == "" {
		notes = current.Notes
	}

	if _, err := a.vault.Update(ctx, a.session, id, site, accountID, string(secret), notes); err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), errorMessage(err))
		return
	}

	a.logger.Info(ctx, "record updated", "record_id", id)
	fmt.Fprintf(a.out, "%s Record #%d updated\n", color.GreenString("✓"), id)
}

func (a *App) delete(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, errorMessage(common.ErrUnauthenticated))
		return
	}

	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), err)
		return
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete record #%d?", id), a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	if err := a.vault.Delete(ctx, a.session, id); err != nil {
		fmt.Fprintln(a.out, color.RedString("✗"), errorMessage(err))
		return
	}

	a.logger.Info(ctx, "record deleted", "record_id", id)
	fmt.Fprintf(a.out, "%s Record #%d deleted\n", color.GreenString("✓"), id)
}
