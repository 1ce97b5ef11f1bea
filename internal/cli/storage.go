package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/myblog/internal/models"
)

// Dump lists the raw storage, one "key = value" line per entry.
func (a *App) Dump(ctx context.Context) error {
	entries, err := a.storage.Dump(ctx)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if len(entries) == 0 {
		a.println("Storage is empty.")
		return nil
	}
	for _, e := range entries {
		a.println(fmt.Sprintf("%s = %s", e.Key, e.Value))
	}
	return nil
}

// Reset wipes every account, post and setting after a confirmation and
// shows the index view.
func (a *App) Reset(ctx context.Context) error {
	if a.busy() {
		return nil
	}
	if !Confirm(a.reader, "This removes all accounts and posts. Continue?", a.out) {
		a.println("Nothing removed.")
		return nil
	}
	if err := a.storage.Reset(ctx); err != nil {
		a.report(ctx, err)
		return err
	}
	a.println("All data removed.")
	a.nav.Go(ctx, models.ViewIndex)
	return nil
}
