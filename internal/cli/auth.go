package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/myblog/internal/common"
	"github.com/dmitrijs2005/myblog/internal/models"
	"github.com/dmitrijs2005/myblog/internal/navigation"
)

// Register runs the sign-up form. On success it prints
// "Account created successfully." and moves to the login view after the
// display delay. Password buffers are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	if a.busy() {
		return navigation.ErrTransitionPending
	}
	a.nav.Go(ctx, models.ViewRegister)

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.auth.Register(ctx, username, email, string(password), string(confirm)); err != nil {
		a.report(ctx, err)
		return err
	}

	a.println("Account created successfully.")
	a.deferTo(ctx, models.ViewLogin)
	return nil
}

// Login runs the login form and moves to the blog view on success.
func (a *App) Login(ctx context.Context) error {
	if a.busy() {
		return navigation.ErrTransitionPending
	}
	a.nav.Go(ctx, models.ViewLogin)

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		a.report(ctx, err)
		return err
	}

	a.println("Login successfully.")
	a.deferTo(ctx, models.ViewBlog)
	return nil
}

// Logout ends the session and shows the index view with the farewell.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		if errors.Is(err, common.ErrAuthRequired) {
			a.println("You are not logged in.")
		} else {
			a.report(ctx, err)
		}
		return err
	}
	a.nav.Go(ctx, models.ViewIndex)
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, ok := a.currentUser(ctx)
	if !ok {
		a.println("Not logged in")
		return nil
	}
	a.println(fmt.Sprintf("[%s]", user))
	return nil
}

func (a *App) Home(ctx context.Context) error {
	a.nav.Go(ctx, models.ViewIndex)
	return nil
}
