package domain

import (
	"context"
	"fmt"

	"github.com/calinovidiu96/vending-machine/internal/pkg/database"
	"github.com/google/uuid"
)

const (
	MinProductNameLength = 3
	CostStep             = 5
)

type Product struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"productName"`
	Cost            int64     `json:"cost"`
	AmountAvailable int64     `json:"amountAvailable"`
	SellerID        uuid.UUID `json:"sellerId"`
}

type ProductDraft struct {
	Name            string
	Cost            int64
	AmountAvailable int64
}

// ProductPatch holds the fields of an update; nil fields stay unchanged.
type ProductPatch struct {
	Name            *string
	Cost            *int64
	AmountAvailable *int64
}

func (d ProductDraft) Validate() error {
	if err := ValidateCost(d.Cost); err != nil {
		return err
	}
	if err := validateName(d.Name); err != nil {
		return err
	}

	return validateAmountAvailable(d.AmountAvailable)
}

func (p ProductPatch) Validate() error {
	if p.Cost != nil {
		if err := ValidateCost(*p.Cost); err != nil {
			return err
		}
	}
	if p.Name != nil {
		if err := validateName(*p.Name); err != nil {
			return err
		}
	}
	if p.AmountAvailable != nil {
		return validateAmountAvailable(*p.AmountAvailable)
	}

	return nil
}

func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Cost != nil {
		p.Cost = *patch.Cost
	}
	if patch.AmountAvailable != nil {
		p.AmountAvailable = *patch.AmountAvailable
	}
}

func ValidateCost(cost int64) error {
	if cost < 0 || cost%CostStep != 0 {
		return &InvalidArgumentsError{Msg: "The cost of product should be a multiple of 5."}
	}

	return nil
}

func validateName(name string) error {
	if len([]rune(name)) < MinProductNameLength {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("product name must be at least %d characters", MinProductNameLength)}
	}

	return nil
}

func validateAmountAvailable(amount int64) error {
	if amount < 0 {
		return &InvalidArgumentsError{Msg: "amount available cannot be negative"}
	}

	return nil
}

type ProductsRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, executor database.Executor, product Product) error
	LockProduct(ctx context.Context, querier database.Querier, productID uuid.UUID) (Product, error)
	UpdateProduct(ctx context.Context, executor database.Executor, product Product) error
	DeleteProduct(ctx context.Context, executor database.Executor, productID uuid.UUID) error
	DecrementStock(ctx context.Context, executor database.Executor, productID uuid.UUID, amount int64) error
}
