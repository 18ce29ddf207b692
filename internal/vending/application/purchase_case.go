package application

import (
	"context"
	"errors"
	"time"

	"github.com/calinovidiu96/vending-machine/internal/pkg/database"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/google/uuid"
)

const (
	OutcomeSuccess            = "success"
	OutcomeInsufficientStock  = "insufficient_stock"
	OutcomeInsufficientCredit = "insufficient_credit"
	OutcomeConflict           = "conflict"
	OutcomeRejected           = "rejected"
	OutcomeError              = "error"
)

type PurchaseCase struct {
	usersRepository    domain.UsersRepository
	productsRepository domain.ProductsRepository
	txManager          database.TxManager
	observer           domain.PurchaseObserver
}

func NewPurchaseCase(
	usersRepository domain.UsersRepository,
	productsRepository domain.ProductsRepository,
	txManager database.TxManager,
	observer domain.PurchaseObserver,
) *PurchaseCase {
	return &PurchaseCase{
		usersRepository:    usersRepository,
		productsRepository: productsRepository,
		txManager:          txManager,
		observer:           observer,
	}
}

// Buy moves amount*cost from the buyer to the seller and takes amount units
// out of stock. Either all three changes are committed or none.
func (pc *PurchaseCase) Buy(ctx context.Context, buyerID, productID uuid.UUID, amount int64) (domain.Receipt, error) {
	started := time.Now()

	receipt, err := pc.buy(ctx, buyerID, productID, amount)
	pc.observer.ObservePurchase(purchaseOutcome(err), time.Since(started))

	return receipt, err
}

func (pc *PurchaseCase) buy(ctx context.Context, buyerID, productID uuid.UUID, amount int64) (domain.Receipt, error) {
	var receipt domain.Receipt

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		buyer, err := pc.usersRepository.LockUser(ctx, executor, buyerID)
		if err != nil {
			return err
		}

		if buyer.Role != domain.RoleBuyer {
			return &domain.WrongRoleError{Msg: "You need to have a buyer account to buy products."}
		}

		product, err := pc.productsRepository.LockProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		if amount <= 0 {
			return &domain.InvalidArgumentsError{Msg: "amount must be a positive integer"}
		}

		if amount > product.AmountAvailable {
			return &domain.InsufficientStockError{Msg: "Insufficient stock."}
		}

		totalCost, ok := domain.TotalCost(amount, product.Cost)
		if !ok || totalCost > buyer.Deposit {
			return &domain.InsufficientCreditError{Msg: "Insufficient credit. Please deposit more."}
		}

		remaining, err := pc.usersRepository.DebitDeposit(ctx, executor, buyer.ID, totalCost)
		if err != nil {
			return err
		}

		_, err = pc.usersRepository.CreditDeposit(ctx, executor, product.SellerID, totalCost)
		if err != nil {
			return err
		}

		err = pc.productsRepository.DecrementStock(ctx, executor, product.ID, amount)
		if err != nil {
			return err
		}

		change, err := domain.MakeChange(remaining)
		if err != nil {
			return err
		}

		receipt = domain.Receipt{
			TotalSpent:       totalCost,
			ProductPurchased: product.Name,
			Change:           change,
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrTransactionConflict) {
			return domain.Receipt{}, &domain.TransactionConflictError{Msg: "The purchase conflicted with another request, please retry."}
		}

		return domain.Receipt{}, err
	}

	return receipt, nil
}

func purchaseOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, &domain.InsufficientStockError{}):
		return OutcomeInsufficientStock
	case errors.Is(err, &domain.InsufficientCreditError{}):
		return OutcomeInsufficientCredit
	case errors.Is(err, &domain.TransactionConflictError{}):
		return OutcomeConflict
	case errors.Is(err, &domain.WrongRoleError{}),
		errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.UserNotFoundError{}),
		errors.Is(err, &domain.ProductNotFoundError{}):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}
