package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/myblog/internal/models"
)

var viewTitles = map[models.View]string{
	models.ViewIndex:    "my-Blog",
	models.ViewLogin:    "Login",
	models.ViewRegister: "Sign up",
	models.ViewBlog:     "My Blog",
	models.ViewNewBlog:  "New Blog",
	models.ViewEditBlog: "Edit Blog",
}

// load renders view. It is the navigator's loader, so it also runs for
// deferred transitions on the timer goroutine.
func (a *App) load(ctx context.Context, view models.View) {
	a.println(fmt.Sprintf("== %s ==", viewTitles[view]))
	if user, ok := a.currentUser(ctx); ok {
		a.println(fmt.Sprintf("[%s]", user))
	}

	switch view {
	case models.ViewIndex:
		a.loadIndex(ctx)
	case models.ViewBlog:
		a.loadBlog(ctx)
	case models.ViewEditBlog:
		a.loadEdit(ctx)
	}
}

func (a *App) loadIndex(ctx context.Context) {
	msg, ok, err := a.auth.TakeLogoutMessage(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to read logout message", "error", err)
		return
	}
	if ok {
		a.println("You have logged out successfully")
		a.println(msg)
	}
}

func (a *App) loadBlog(ctx context.Context) {
	user, ok := a.currentUser(ctx)
	if !ok {
		a.println("Please log in to view your posts.")
		return
	}

	list, err := a.posts.ListVisible(ctx, user)
	if err != nil {
		a.report(ctx, err)
		return
	}
	if len(list) == 0 {
		a.println("No Blog Post yet !")
		return
	}
	for _, p := range list {
		a.printPost(p)
	}
}

func (a *App) printPost(p models.Post) {
	a.println(fmt.Sprintf("[%s] %s", p.ID, p.Title))
	a.println(fmt.Sprintf("    Posted on %s by %s", p.Date, p.Username))
	for _, line := range strings.Split(p.Content, "\n") {
		a.println("    " + line)
	}
	a.println()
}

// loadEdit consumes the pending edit and runs the edit form. Any problem
// with the handoff sends the user back to the listing.
func (a *App) loadEdit(ctx context.Context) {
	tok, err := a.handoff.Consume(ctx)
	if err != nil {
		a.report(ctx, err)
		a.nav.Go(ctx, models.ViewBlog)
		return
	}

	user, ok := a.currentUser(ctx)
	if !ok || user != tok.User {
		a.log.Warn(ctx, "pending edit for another user", "post_id", tok.ID, "token_user", tok.User)
		a.println("Post not found or not owned by current user.")
		a.nav.Go(ctx, models.ViewBlog)
		return
	}

	post, err := a.posts.Get(ctx, tok.ID, tok.User)
	if err != nil {
		a.report(ctx, err)
		a.nav.Go(ctx, models.ViewBlog)
		return
	}

	a.editForm(ctx, post)
}
