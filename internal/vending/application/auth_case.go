package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/calinovidiu96/vending-machine/internal/pkg/jwt"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/google/uuid"
)

type Authenticator struct {
	usersRepository    domain.UsersRepository
	sessionsRepository domain.SessionsRepository
	passwordHasher     domain.PasswordHasher
	tokenIssuer        jwt.TokenIssuer
}

func NewAuthenticator(
	usersRepository domain.UsersRepository,
	sessionsRepository domain.SessionsRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
) *Authenticator {
	return &Authenticator{
		usersRepository:    usersRepository,
		sessionsRepository: sessionsRepository,
		passwordHasher:     passwordHasher,
		tokenIssuer:        tokenIssuer,
	}
}

// SignUp registers a user with an empty deposit and opens its first session.
func (a *Authenticator) SignUp(ctx context.Context, username, password string, role domain.Role) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", &domain.InvalidArgumentsError{Msg: "username must not be empty"}
	}
	if len(password) < domain.MinPasswordLength {
		return "", &domain.InvalidArgumentsError{Msg: fmt.Sprintf("password must be at least %d characters", domain.MinPasswordLength)}
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return "", err
	}

	_, found, err := a.usersRepository.TryGetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if found {
		return "", &domain.UserExistsError{Msg: "Username already exists, please login instead."}
	}

	hashedPassword, err := a.passwordHasher.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	// a concurrent signup may still win the username; CreateUser reports it as UserExists
	if err = a.usersRepository.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return a.openSession(ctx, user)
}

func (a *Authenticator) LogIn(ctx context.Context, username, password string) (string, error) {
	user, found, err := a.usersRepository.TryGetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &domain.CredentialsMismatchError{Msg: "Invalid credentials."}
	}

	valid, err := a.passwordHasher.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return "", &domain.CredentialsMismatchError{Msg: "Invalid credentials."}
	}

	return a.openSession(ctx, user)
}

// LogOut ends a single session; tokens bound to other sessions stay valid.
func (a *Authenticator) LogOut(ctx context.Context, sessionID string) error {
	return a.sessionsRepository.Revoke(ctx, sessionID)
}

func (a *Authenticator) LogOutAll(ctx context.Context, userID uuid.UUID) error {
	return a.sessionsRepository.RevokeAll(ctx, userID)
}

func (a *Authenticator) openSession(ctx context.Context, user domain.User) (string, error) {
	sessionID, err := a.sessionsRepository.CreateSession(ctx, user.ID)
	if err != nil {
		return "", err
	}

	token, err := a.tokenIssuer.IssueToken(user.ID, string(user.Role), sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
