package application

import (
	"context"

	"github.com/calinovidiu96/vending-machine/internal/pkg/database"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/google/uuid"
)

type DepositCase struct {
	usersRepository domain.UsersRepository
	txManager       database.TxManager
}

func NewDepositCase(usersRepository domain.UsersRepository, txManager database.TxManager) *DepositCase {
	return &DepositCase{
		usersRepository: usersRepository,
		txManager:       txManager,
	}
}

func (dc *DepositCase) Deposit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error) {
	if !domain.IsDepositCoin(amount) {
		return 0, &domain.InvalidArgumentsError{Msg: "Invalid coin. Accepted coins are 5, 10, 20, 50 and 100."}
	}

	var newDeposit int64
	err := dc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		user, err := dc.usersRepository.LockUser(ctx, executor, userID)
		if err != nil {
			return err
		}

		if user.Role != domain.RoleBuyer {
			return &domain.WrongRoleError{Msg: "You can't deposit credits as a seller."}
		}

		newDeposit, err = dc.usersRepository.CreditDeposit(ctx, executor, user.ID, amount)
		return err
	})
	if err != nil {
		return 0, conflictToDomain(err)
	}

	return newDeposit, nil
}

func (dc *DepositCase) Reset(ctx context.Context, userID uuid.UUID) (int64, error) {
	err := dc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		user, err := dc.usersRepository.LockUser(ctx, executor, userID)
		if err != nil {
			return err
		}

		if user.Role != domain.RoleBuyer {
			return &domain.WrongRoleError{Msg: "You can't reset credit as a seller."}
		}

		return dc.usersRepository.SetDeposit(ctx, executor, user.ID, 0)
	})
	if err != nil {
		return 0, conflictToDomain(err)
	}

	return 0, nil
}
