package domain

import (
	"context"

	"github.com/google/uuid"
)

type AccountService interface {
	SignUp(ctx context.Context, username, password string, role Role) (string, error)
	LogIn(ctx context.Context, username, password string) (string, error)
	LogOut(ctx context.Context, sessionID string) error
	LogOutAll(ctx context.Context, userID uuid.UUID) error
}

type DepositService interface {
	Deposit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error)
	Reset(ctx context.Context, userID uuid.UUID) (int64, error)
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]Product, error)
	AddProduct(ctx context.Context, sellerID uuid.UUID, draft ProductDraft) (Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, patch ProductPatch) (Product, error)
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error
}

type PurchaseService interface {
	Buy(ctx context.Context, buyerID, productID uuid.UUID, amount int64) (Receipt, error)
}
