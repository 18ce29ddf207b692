package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/calinovidiu96/vending-machine/internal/pkg/database"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UsersRepository struct {
	querier database.QueryExecuter
}

func NewUsersRepository(querier database.QueryExecuter) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

func (r *UsersRepository) CreateUser(ctx context.Context, user domain.User) error {
	creationSQL := `INSERT INTO users (id, username, password_hash, role, deposit) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(ctx, creationSQL, user.ID, user.Username, user.PasswordHash, string(user.Role), user.Deposit)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return &domain.UserExistsError{Msg: fmt.Sprintf("user %s already exists", user.Username)}
		}

		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *UsersRepository) TryGetUserByUsername(ctx context.Context, username string) (domain.User, bool, error) {
	querySQL := `SELECT id, username, password_hash, role, deposit FROM users WHERE username = $1`

	user, err := scanUser(r.querier.QueryRow(ctx, querySQL, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, false, nil
		}

		return domain.User{}, false, fmt.Errorf("failed to find user: %w", err)
	}

	return user, true, nil
}

func (r *UsersRepository) LockUser(ctx context.Context, querier database.Querier, userID uuid.UUID) (domain.User, error) {
	lockSQL := `SELECT id, username, password_hash, role, deposit FROM users WHERE id = $1 FOR UPDATE`

	user, err := scanUser(querier.QueryRow(ctx, lockSQL, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %s not found", userID)}
		}

		return domain.User{}, fmt.Errorf("failed to lock user row: %w", err)
	}

	return user, nil
}

// DebitDeposit refuses to take the deposit below zero.
func (r *UsersRepository) DebitDeposit(ctx context.Context, querier database.Querier, userID uuid.UUID, amount int64) (int64, error) {
	debitSQL := `UPDATE users SET deposit = deposit - $1 WHERE id = $2 AND deposit >= $1 RETURNING deposit`

	var deposit int64
	err := querier.QueryRow(ctx, debitSQL, amount, userID).Scan(&deposit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.InsufficientCreditError{Msg: "Insufficient credit."}
		}

		return 0, fmt.Errorf("failed to debit deposit: %w", err)
	}

	return deposit, nil
}

func (r *UsersRepository) CreditDeposit(ctx context.Context, querier database.Querier, userID uuid.UUID, amount int64) (int64, error) {
	creditSQL := `UPDATE users SET deposit = deposit + $1 WHERE id = $2 RETURNING deposit`

	var deposit int64
	err := querier.QueryRow(ctx, creditSQL, amount, userID).Scan(&deposit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %s not found", userID)}
		}

		return 0, fmt.Errorf("failed to credit deposit: %w", err)
	}

	return deposit, nil
}

func (r *UsersRepository) SetDeposit(ctx context.Context, executor database.Executor, userID uuid.UUID, deposit int64) error {
	resetSQL := `UPDATE users SET deposit = $1 WHERE id = $2`

	tag, err := executor.Exec(ctx, resetSQL, deposit, userID)
	if err != nil {
		return fmt.Errorf("failed to set deposit: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %s not found", userID)}
	}

	return nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		user domain.User
		role string
	)

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &role, &user.Deposit)
	if err != nil {
		return domain.User{}, err
	}
	user.Role = domain.Role(role)

	return user, nil
}
