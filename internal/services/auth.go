package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/myblog/internal/common"
	"github.com/dmitrijs2005/myblog/internal/logging"
	"github.com/dmitrijs2005/myblog/internal/models"
	"github.com/dmitrijs2005/myblog/internal/repositories/accounts"
	"github.com/dmitrijs2005/myblog/internal/validation"
)

// AuthService owns the account set and the session.
//
// Contract:
//   - Register: validate and append a new account; does not log in.
//   - Login: check credentials and start the session.
//   - Logout: end the session and leave a farewell for the next index load.
//   - CurrentUser: report the session user.
//   - TakeLogoutMessage: read the farewell once.
type AuthService struct {
	repo accounts.Repository
	log  logging.Logger
}

func NewAuthService(repo accounts.Repository, log logging.Logger) *AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &AuthService{repo: repo, log: log}
}

// Register creates an account. Fields are trimmed; the username is stored
// lowercased and must be unique ignoring case.
func (s *AuthService) Register(ctx context.Context, username, email, password, confirm string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	confirm = strings.TrimSpace(confirm)

	if err := validation.Required(username, email, password, confirm); err != nil {
		return err
	}
	username, err := validation.Username(username)
	if err != nil {
		return err
	}
	if err := validation.Email(email); err != nil {
		return err
	}
	if err := validation.Password(password); err != nil {
		return err
	}
	if err := validation.PasswordsMatch(password, confirm); err != nil {
		return err
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return err
	}
	if _, ok := findAccount(all, username); ok {
		return fmt.Errorf("%w: Account already exist.", common.ErrConflict)
	}

	all = append(all, models.Account{Username: username, Email: email, Password: password})
	if err := s.repo.Save(ctx, all); err != nil {
		return err
	}

	s.log.Info(ctx, "account registered", "user", username)
	return nil
}

// Login starts a session for username. The password is compared exactly.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if err := validation.Required(username, password); err != nil {
		return err
	}
	username = strings.ToLower(username)

	all, err := s.repo.All(ctx)
	if err != nil {
		return err
	}
	acc, ok := findAccount(all, username)
	if !ok {
		return fmt.Errorf("%w: Username does not exist. Please sign up", common.ErrNotFound)
	}
	if acc.Password != password {
		s.log.Debug(ctx, "login rejected", "user", username)
		return fmt.Errorf("%w: Password Incorrect. Try again", common.ErrUnauthorized)
	}

	if err := s.repo.SetSession(ctx, acc.Username); err != nil {
		return err
	}
	s.log.Info(ctx, "logged in", "user", acc.Username)
	return nil
}

// Logout ends the session and stores the farewell message.
func (s *AuthService) Logout(ctx context.Context) error {
	user, ok, err := s.repo.Session(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: You are not logged in", common.ErrAuthRequired)
	}

	if err := s.repo.SetFarewell(ctx, FarewellMessage(user)); err != nil {
		return err
	}
	if err := s.repo.ClearSession(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "logged out", "user", user)
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (string, bool, error) {
	return s.repo.Session(ctx)
}

func (s *AuthService) TakeLogoutMessage(ctx context.Context) (string, bool, error) {
	return s.repo.TakeFarewell(ctx)
}

// FarewellMessage is shown on the index view after user logs out.
func FarewellMessage(user string) string {
	return user + ", thank you for using my-Blog, see you next time!"
}

func findAccount(all []models.Account, username string) (models.Account, bool) {
	for _, a := range all {
		if strings.EqualFold(a.Username, username) {
			return a, true
		}
	}
	return models.Account{}, false
}
