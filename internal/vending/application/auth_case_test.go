//go:generate mockgen
package application

import (
	"context"
	"testing"

	jwtmocks "github.com/calinovidiu96/vending-machine/gen/mocks/jwt"
	vendingmocks "github.com/calinovidiu96/vending-machine/gen/mocks/vending"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type authDeps struct {
	usersRepository    *vendingmocks.MockUsersRepository
	sessionsRepository *vendingmocks.MockSessionsRepository
	passwordHasher     *vendingmocks.MockPasswordHasher
	tokenIssuer        *jwtmocks.MockTokenIssuer
}

func newAuthDeps(ctrl *gomock.Controller) *authDeps {
	return &authDeps{
		usersRepository:    vendingmocks.NewMockUsersRepository(ctrl),
		sessionsRepository: vendingmocks.NewMockSessionsRepository(ctrl),
		passwordHasher:     vendingmocks.NewMockPasswordHasher(ctrl),
		tokenIssuer:        jwtmocks.NewMockTokenIssuer(ctrl),
	}
}

func (d *authDeps) authenticator() *Authenticator {
	return NewAuthenticator(d.usersRepository, d.sessionsRepository, d.passwordHasher, d.tokenIssuer)
}

func TestAuthenticator_SignUp(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name               string
		username, password string
		role               domain.Role

		prepareFn func(t *testing.T, d *authDeps)

		expectedToken string
		expectedErr   error
	}

	tests := []testCase{
		{
			name:     "buyer signs up",
			username: "alice",
			password: "password123",
			role:     domain.RoleBuyer,
			prepareFn: func(t *testing.T, d *authDeps) {
				var createdID uuid.UUID

				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").Return(domain.User{}, false, nil)
				d.passwordHasher.EXPECT().HashPassword("password123").Return("hashed_password", nil)
				d.usersRepository.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user domain.User) error {
						assert.NotEqual(t, uuid.Nil, user.ID)
						assert.Equal(t, "alice", user.Username)
						assert.Equal(t, "hashed_password", user.PasswordHash)
						assert.Equal(t, domain.RoleBuyer, user.Role)
						assert.Zero(t, user.Deposit)
						createdID = user.ID
						return nil
					})
				d.sessionsRepository.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, userID uuid.UUID) (string, error) {
						assert.Equal(t, createdID, userID)
						return "session-1", nil
					})
				d.tokenIssuer.EXPECT().IssueToken(gomock.Any(), "buyer", "session-1").Return("jwt_token", nil)
			},
			expectedToken: "jwt_token",
		},
		{
			name:     "username taken",
			username: "alice",
			password: "password123",
			role:     domain.RoleSeller,
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").
					Return(domain.User{Username: "alice"}, true, nil)
			},
			expectedErr: &domain.UserExistsError{},
		},
		{
			name:     "username taken concurrently",
			username: "alice",
			password: "password123",
			role:     domain.RoleSeller,
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").Return(domain.User{}, false, nil)
				d.passwordHasher.EXPECT().HashPassword("password123").Return("hashed_password", nil)
				d.usersRepository.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(&domain.UserExistsError{Msg: "user alice already exists"})
			},
			expectedErr: &domain.UserExistsError{},
		},
		{
			name:        "short password",
			username:    "alice",
			password:    "12345",
			role:        domain.RoleBuyer,
			prepareFn:   func(t *testing.T, d *authDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "empty username",
			username:    "  ",
			password:    "password123",
			role:        domain.RoleBuyer,
			prepareFn:   func(t *testing.T, d *authDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "unknown role",
			username:    "alice",
			password:    "password123",
			role:        domain.Role("admin"),
			prepareFn:   func(t *testing.T, d *authDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:     "session store failure",
			username: "alice",
			password: "password123",
			role:     domain.RoleBuyer,
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").Return(domain.User{}, false, nil)
				d.passwordHasher.EXPECT().HashPassword("password123").Return("hashed_password", nil)
				d.usersRepository.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
				d.sessionsRepository.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return("", assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:     "hashing failure",
			username: "alice",
			password: "password123",
			role:     domain.RoleBuyer,
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").Return(domain.User{}, false, nil)
				d.passwordHasher.EXPECT().HashPassword("password123").Return("", assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newAuthDeps(ctrl)
			tt.prepareFn(t, d)

			token, err := d.authenticator().SignUp(t.Context(), tt.username, tt.password, tt.role)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestAuthenticator_LogIn(t *testing.T) {
	t.Parallel()

	stored := domain.User{
		ID:           buyerID,
		Username:     "alice",
		PasswordHash: "stored_hash",
		Role:         domain.RoleSeller,
		Deposit:      40,
	}

	type testCase struct {
		name     string
		password string

		prepareFn func(t *testing.T, d *authDeps)

		expectedToken string
		expectedErr   error
	}

	tests := []testCase{
		{
			name:     "correct password",
			password: "password123",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").Return(stored, true, nil)
				d.passwordHasher.EXPECT().VerifyPassword("password123", "stored_hash").Return(true, nil)
				d.sessionsRepository.EXPECT().CreateSession(gomock.Any(), buyerID).Return("session-2", nil)
				d.tokenIssuer.EXPECT().IssueToken(buyerID, "seller", "session-2").Return("jwt_token", nil)
			},
			expectedToken: "jwt_token",
		},
		{
			name:     "wrong password",
			password: "wrongpass",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").Return(stored, true, nil)
				d.passwordHasher.EXPECT().VerifyPassword("wrongpass", "stored_hash").Return(false, nil)
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:     "unknown user",
			password: "password123",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").Return(domain.User{}, false, nil)
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:     "repository error",
			password: "password123",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").Return(domain.User{}, false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:     "token issuing error",
			password: "password123",
			prepareFn: func(t *testing.T, d *authDeps) {
				d.usersRepository.EXPECT().TryGetUserByUsername(gomock.Any(), "alice").Return(stored, true, nil)
				d.passwordHasher.EXPECT().VerifyPassword("password123", "stored_hash").Return(true, nil)
				d.sessionsRepository.EXPECT().CreateSession(gomock.Any(), buyerID).Return("session-2", nil)
				d.tokenIssuer.EXPECT().IssueToken(buyerID, "seller", "session-2").Return("", assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newAuthDeps(ctrl)
			tt.prepareFn(t, d)

			token, err := d.authenticator().LogIn(t.Context(), "alice", tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestAuthenticator_LogOut(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newAuthDeps(ctrl)
	d.sessionsRepository.EXPECT().Revoke(gomock.Any(), "session-1").Return(nil)
	d.sessionsRepository.EXPECT().RevokeAll(gomock.Any(), buyerID).Return(assert.AnError)

	authenticator := d.authenticator()
	assert.NoError(t, authenticator.LogOut(t.Context(), "session-1"))
	assert.ErrorIs(t, authenticator.LogOutAll(t.Context(), buyerID), assert.AnError)
}
