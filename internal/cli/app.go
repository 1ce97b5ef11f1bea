package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/myblog/internal/common"
	"github.com/dmitrijs2005/myblog/internal/config"
	"github.com/dmitrijs2005/myblog/internal/export"
	"github.com/dmitrijs2005/myblog/internal/jsonstore"
	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/models"
	"github.com/dmitrijs2005/myblog/internal/navigation"
	"github.com/dmitrijs2005/myblog/internal/repositories/accounts"
	"github.com/dmitrijs2005/myblog/internal/repositories/kv"
	"github.com/dmitrijs2005/myblog/internal/repositories/posts"
	"github.com/dmitrijs2005/myblog/internal/services"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

type App struct {
	config  *config.Config
	auth    *services.AuthService
	posts   *services.PostService
	handoff *services.HandoffService
	theme   *services.ThemeService
	storage *services.StorageService
	printer *export.Printer
	nav     *navigation.Navigator
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
}

// NewApp wires the services over store. Every App gets its own tab id in
// the log, so processes sharing one Redis store can be told apart.
func NewApp(cfg *config.Config, store kv.Store, in io.Reader, out io.Writer, log logging.Logger) *App {
	if log == nil {
		log = logging.Discard()
	}
	log = log.With("tab", uuid.NewString())

	js := jsonstore.New(store, log)
	a := &App{
		config:  cfg,
		auth:    services.NewAuthService(accounts.NewKVRepository(js), log),
		posts:   services.NewPostService(posts.NewKVRepository(js, log), log),
		handoff: services.NewHandoffService(js, cfg.PendingEditMaxAge, log),
		theme:   services.NewThemeService(js),
		storage: services.NewStorageService(store, log),
		printer: export.NewPrinter(cfg.PrintDir, log),
		reader:  bufio.NewReader(in),
		out:     out,
		log:     log,
	}
	a.nav = navigation.New(models.ViewIndex, cfg.NavigationDelay, a.load, log)
	return a
}

// Run shows the index view and serves commands until the user exits.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to my-Blog (type 'help' for commands)")
	a.nav.Go(ctx, models.ViewIndex)
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

// Wait blocks until a pending view transition has fired.
func (a *App) Wait() {
	a.nav.Wait()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// currentUser reads the session. Storage errors are logged and treated as
// logged out.
func (a *App) currentUser(ctx context.Context) (string, bool) {
	user, ok, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read session", "error", err)
		return "", false
	}
	return user, ok
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.currentUser(ctx)
	return ok
}

func (a *App) getStatus(ctx context.Context) string {
	view := string(a.nav.Current())
	if user, ok := a.currentUser(ctx); ok {
		return fmt.Sprintf("[%s] %s", user, view)
	}
	return view
}

// report shows err to the user. Errors carrying a domain sentinel have a
// message of their own; anything else is a storage failure and is logged.
func (a *App) report(ctx context.Context, err error) {
	for _, sentinel := range []error{
		common.ErrValidation, common.ErrConflict, common.ErrNotFound,
		common.ErrUnauthorized, common.ErrAuthRequired, common.ErrInvalidHandoff,
	} {
		if errors.Is(err, sentinel) {
			a.println(common.Message(err))
			return
		}
	}
	a.log.Error(ctx, "command failed", "view", a.nav.Current(), "error", err)
	a.println("Something went wrong, please try again.")
}

// busy refuses a form submission while the previous one is still
// redirecting.
func (a *App) busy() bool {
	if a.nav.Busy() {
		a.println("Please wait, redirecting...")
		return true
	}
	return false
}

// deferTo moves to view after the display delay.
func (a *App) deferTo(ctx context.Context, view models.View) {
	if err := a.nav.Defer(ctx, view); err != nil {
		a.println("Please wait, redirecting...")
	}
}

// requireUser returns the session user or tells the user to log in first.
func (a *App) requireUser(ctx context.Context) (string, error) {
	user, ok := a.currentUser(ctx)
	if !ok {
		a.println("Please login first.")
		return "", common.ErrAuthRequired
	}
	return user, nil
}

func (a *App) parseID(arg string) (models.PostID, error) {
	id, err := models.ParsePostID(arg)
	if err != nil || id <= 0 {
		a.println(fmt.Sprintf("Invalid post id %q", arg))
		return 0, fmt.Errorf("%w: invalid post id %q", common.ErrValidation, arg)
	}
	return id, nil
}
