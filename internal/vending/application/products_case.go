package application

import (
	"context"
	"errors"

	"github.com/calinovidiu96/vending-machine/internal/pkg/database"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/google/uuid"
)

type ProductsCase struct {
	usersRepository    domain.UsersRepository
	productsRepository domain.ProductsRepository
	txManager          database.TxManager
}

func NewProductsCase(
	usersRepository domain.UsersRepository,
	productsRepository domain.ProductsRepository,
	txManager database.TxManager,
) *ProductsCase {
	return &ProductsCase{
		usersRepository:    usersRepository,
		productsRepository: productsRepository,
		txManager:          txManager,
	}
}

func (pc *ProductsCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return pc.productsRepository.ListProducts(ctx)
}

func (pc *ProductsCase) AddProduct(ctx context.Context, sellerID uuid.UUID, draft domain.ProductDraft) (domain.Product, error) {
	var product domain.Product

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		seller, err := pc.usersRepository.LockUser(ctx, executor, sellerID)
		if err != nil {
			return err
		}

		if seller.Role != domain.RoleSeller {
			return &domain.WrongRoleError{Msg: "You need to have a seller account to add products."}
		}

		if err = draft.Validate(); err != nil {
			return err
		}

		product = domain.Product{
			ID:              uuid.New(),
			Name:            draft.Name,
			Cost:            draft.Cost,
			AmountAvailable: draft.AmountAvailable,
			SellerID:        seller.ID,
		}

		return pc.productsRepository.CreateProduct(ctx, executor, product)
	})
	if err != nil {
		return domain.Product{}, conflictToDomain(err)
	}

	return product, nil
}

func (pc *ProductsCase) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, patch domain.ProductPatch) (domain.Product, error) {
	var product domain.Product

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		var err error
		product, err = pc.productsRepository.LockProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		if product.SellerID != sellerID {
			return &domain.NotOwnerError{Msg: "This product can be updated just by its owner."}
		}

		if err = patch.Validate(); err != nil {
			return err
		}

		product.Apply(patch)

		return pc.productsRepository.UpdateProduct(ctx, executor, product)
	})
	if err != nil {
		return domain.Product{}, conflictToDomain(err)
	}

	return product, nil
}

func (pc *ProductsCase) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := pc.productsRepository.LockProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		if product.SellerID != sellerID {
			return &domain.NotOwnerError{Msg: "This product can be deleted just by its owner."}
		}

		return pc.productsRepository.DeleteProduct(ctx, executor, product.ID)
	})

	return conflictToDomain(err)
}

func conflictToDomain(err error) error {
	if errors.Is(err, database.ErrTransactionConflict) {
		return &domain.TransactionConflictError{Msg: "The request conflicted with another one, please retry."}
	}

	return err
}
