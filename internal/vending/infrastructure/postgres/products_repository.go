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

type ProductsRepository struct {
	querier database.Querier
}

func NewProductsRepository(querier database.Querier) *ProductsRepository {
	return &ProductsRepository{
		querier: querier,
	}
}

func (r *ProductsRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	listSQL := `SELECT id, product_name, cost, amount_available, seller_id FROM products ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		err = rows.Scan(&product.ID, &product.Name, &product.Cost, &product.AmountAvailable, &product.SellerID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, executor database.Executor, product domain.Product) error {
	creationSQL := `INSERT INTO products (id, product_name, cost, amount_available, seller_id) VALUES ($1, $2, $3, $4, $5)`

	_, err := executor.Exec(ctx, creationSQL, product.ID, product.Name, product.Cost, product.AmountAvailable, product.SellerID)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

func (r *ProductsRepository) LockProduct(ctx context.Context, querier database.Querier, productID uuid.UUID) (domain.Product, error) {
	lockSQL := `SELECT id, product_name, cost, amount_available, seller_id FROM products WHERE id = $1 FOR UPDATE`

	var product domain.Product
	err := querier.QueryRow(ctx, lockSQL, productID).
		Scan(&product.ID, &product.Name, &product.Cost, &product.AmountAvailable, &product.SellerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, productNotFound(productID)
		}

		return domain.Product{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) UpdateProduct(ctx context.Context, executor database.Executor, product domain.Product) error {
	updateSQL := `UPDATE products SET product_name = $1, cost = $2, amount_available = $3 WHERE id = $4`

	tag, err := executor.Exec(ctx, updateSQL, product.Name, product.Cost, product.AmountAvailable, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	} else if tag.RowsAffected() == 0 {
		return productNotFound(product.ID)
	}

	return nil
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, executor database.Executor, productID uuid.UUID) error {
	deleteSQL := `DELETE FROM products WHERE id = $1`

	tag, err := executor.Exec(ctx, deleteSQL, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	} else if tag.RowsAffected() == 0 {
		return productNotFound(productID)
	}

	return nil
}

// DecrementStock refuses to take the stock below zero.
func (r *ProductsRepository) DecrementStock(ctx context.Context, executor database.Executor, productID uuid.UUID, amount int64) error {
	decrementSQL := `UPDATE products SET amount_available = amount_available - $1 WHERE id = $2 AND amount_available >= $1`

	tag, err := executor.Exec(ctx, decrementSQL, amount, productID)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientStockError{Msg: "Insufficient stock."}
	}

	return nil
}

func productNotFound(productID uuid.UUID) error {
	return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %s not found", productID)}
}
