package domain

import (
	"context"
	"fmt"

	"github.com/calinovidiu96/vending-machine/internal/pkg/database"
	"github.com/google/uuid"
)

const MinPasswordLength = 6

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleBuyer, RoleSeller:
		return Role(raw), nil
	default:
		return "", &InvalidArgumentsError{Msg: fmt.Sprintf("unknown role %q, expected buyer or seller", raw)}
	}
}

// DepositCoins are the only amounts a buyer may insert in one deposit.
var DepositCoins = [...]int64{5, 10, 20, 50, 100}

func IsDepositCoin(amount int64) bool {
	for _, coin := range DepositCoins {
		if coin == amount {
			return true
		}
	}

	return false
}

// User is an account. Deposit is spendable only for buyers; sellers
// accumulate sale proceeds in it.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	Deposit      int64
}

type UsersRepository interface {
	CreateUser(ctx context.Context, user User) error
	TryGetUserByUsername(ctx context.Context, username string) (User, bool, error)
	LockUser(ctx context.Context, querier database.Querier, userID uuid.UUID) (User, error)
	DebitDeposit(ctx context.Context, querier database.Querier, userID uuid.UUID, amount int64) (int64, error)
	CreditDeposit(ctx context.Context, querier database.Querier, userID uuid.UUID, amount int64) (int64, error)
	SetDeposit(ctx context.Context, executor database.Executor, userID uuid.UUID, deposit int64) error
}
