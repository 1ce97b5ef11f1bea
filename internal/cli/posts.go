package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/myblog/internal/models"
	"github.com/dmitrijs2005/myblog/internal/navigation"
	"github.com/dmitrijs2005/myblog/internal/services"
)

func (a *App) Blog(ctx context.Context) error {
	a.nav.Go(ctx, models.ViewBlog)
	return nil
}

// NewPost runs the new post form for the session user.
func (a *App) NewPost(ctx context.Context) error {
	if a.busy() {
		return navigation.ErrTransitionPending
	}
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}
	a.nav.Go(ctx, models.ViewNewBlog)

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter content (Markdown)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.posts.Create(ctx, user, title, content); err != nil {
		a.report(ctx, err)
		return err
	}

	a.println("Blog Saved & Posted")
	a.deferTo(ctx, models.ViewBlog)
	return nil
}

// Edit hands the post over to the edit view, which runs the form.
func (a *App) Edit(ctx context.Context, arg string) error {
	if a.busy() {
		return navigation.ErrTransitionPending
	}
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := a.parseID(arg)
	if err != nil {
		return err
	}

	if err := a.handoff.Issue(ctx, id, user); err != nil {
		a.report(ctx, err)
		return err
	}
	a.nav.Go(ctx, models.ViewEditBlog)
	return nil
}

// editForm shows post and reads the new title and content. Empty input
// keeps the current value.
func (a *App) editForm(ctx context.Context, post models.Post) {
	a.println("Title: " + post.Title)
	a.println("Content:")
	a.println(post.Content)

	title, err := getSimpleText(a.reader, "New title (empty keeps the current one)", a.out)
	if err != nil {
		return
	}
	content, err := getMultiline(a.reader, "New content (empty keeps the current one)", a.out)
	if err != nil {
		return
	}
	if title == "" {
		title = post.Title
	}
	if content == "" {
		content = post.Content
	}

	res, err := a.posts.Update(ctx, post.ID, post.Username, title, content)
	if err != nil {
		a.report(ctx, err)
		return
	}
	if res == services.NoChange {
		a.println("No changes made. Type 'blog' to go back to your posts.")
		return
	}

	a.println("Edited successfully and posted!")
	a.deferTo(ctx, models.ViewBlog)
}

// Delete hides the post after a confirmation and shows the listing again.
func (a *App) Delete(ctx context.Context, arg string) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := a.parseID(arg)
	if err != nil {
		return err
	}

	hidden, err := a.posts.Hide(ctx, id, user, func(p models.Post) bool {
		return Confirm(a.reader, fmt.Sprintf("Are you sure you want to delete \"%s\"?", p.Title), a.out)
	})
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if !hidden {
		a.println("Nothing deleted.")
		return nil
	}
	a.nav.Go(ctx, models.ViewBlog)
	return nil
}

// Print saves a printable HTML page of the post and shows its path.
func (a *App) Print(ctx context.Context, arg string) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}
	id, err := a.parseID(arg)
	if err != nil {
		return err
	}

	post, err := a.posts.Get(ctx, id, user)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	theme, err := a.theme.Current(ctx)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	path, err := a.printer.Print(ctx, post, theme)
	if err != nil {
		a.report(ctx, err)
		return err
	}

	a.println("Saved printable page to " + path)
	return nil
}

func (a *App) ToggleTheme(ctx context.Context) error {
	next, err := a.theme.Toggle(ctx)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	a.println(fmt.Sprintf("Theme: %s", next))
	return nil
}
