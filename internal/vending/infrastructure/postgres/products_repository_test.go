package postgres

import (
	"testing"

	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProductID = uuid.MustParse("0b8a4d9e-2f61-4c3e-8d2a-1f7e5c9b4a01")

var productColumns = []string{"id", "product_name", "cost", "amount_available", "seller_id"}

func TestProductsRepository_ListProducts(t *testing.T) {
	t.Parallel()

	otherID := uuid.MustParse("0b8a4d9e-2f61-4c3e-8d2a-1f7e5c9b4a02")

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxPoolIface)

		expected    []domain.Product
		expectedErr error
	}

	tests := []testCase{
		{
			name: "several products",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				rows := pgxmock.NewRows(productColumns).
					AddRow(testProductID, "Cola", int64(25), int64(10), testSellerID).
					AddRow(otherID, "Chips", int64(50), int64(0), testSellerID)
				mock.ExpectQuery("SELECT (.+) FROM products").WillReturnRows(rows)
			},
			expected: []domain.Product{
				{ID: testProductID, Name: "Cola", Cost: 25, AmountAvailable: 10, SellerID: testSellerID},
				{ID: otherID, Name: "Chips", Cost: 50, AmountAvailable: 0, SellerID: testSellerID},
			},
		},
		{
			name: "empty catalog",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM products").WillReturnRows(pgxmock.NewRows(productColumns))
			},
			expected: []domain.Product{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM products").WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareFn(t, mock)

			products, err := NewProductsRepository(mock).ListProducts(t.Context())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, products)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductsRepository_LockProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expected    domain.Product
		expectedErr error
	}

	tests := []testCase{
		{
			name: "successful lock",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows(productColumns).
					AddRow(testProductID, "Cola", int64(25), int64(10), testSellerID)
				mock.ExpectQuery("SELECT (.+) FOR UPDATE").
					WithArgs(testProductID).
					WillReturnRows(rows)
			},
			expected: domain.Product{ID: testProductID, Name: "Cola", Cost: 25, AmountAvailable: 10, SellerID: testSellerID},
		},
		{
			name: "product not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FOR UPDATE").
					WithArgs(testProductID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FOR UPDATE").
					WithArgs(testProductID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			product, err := NewProductsRepository(nil).LockProduct(t.Context(), mock, testProductID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, product)
			}
		})
	}
}

func TestProductsRepository_Mutations(t *testing.T) {
	t.Parallel()

	product := domain.Product{ID: testProductID, Name: "Cola", Cost: 25, AmountAvailable: 10, SellerID: testSellerID}

	type testCase struct {
		name string

		callFn    func(t *testing.T, repo *ProductsRepository, mock pgxmock.PgxConnIface) error
		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	create := func(t *testing.T, repo *ProductsRepository, mock pgxmock.PgxConnIface) error {
		t.Helper()
		return repo.CreateProduct(t.Context(), mock, product)
	}
	update := func(t *testing.T, repo *ProductsRepository, mock pgxmock.PgxConnIface) error {
		t.Helper()
		return repo.UpdateProduct(t.Context(), mock, product)
	}
	remove := func(t *testing.T, repo *ProductsRepository, mock pgxmock.PgxConnIface) error {
		t.Helper()
		return repo.DeleteProduct(t.Context(), mock, testProductID)
	}
	decrement := func(t *testing.T, repo *ProductsRepository, mock pgxmock.PgxConnIface) error {
		t.Helper()
		return repo.DecrementStock(t.Context(), mock, testProductID, 3)
	}

	tests := []testCase{
		{
			name:   "create",
			callFn: create,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("INSERT INTO products").
					WithArgs(testProductID, "Cola", int64(25), int64(10), testSellerID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:   "create database error",
			callFn: create,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("INSERT INTO products").
					WithArgs(testProductID, "Cola", int64(25), int64(10), testSellerID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:   "update",
			callFn: update,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET product_name").
					WithArgs("Cola", int64(25), int64(10), testProductID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:   "update vanished product",
			callFn: update,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET product_name").
					WithArgs("Cola", int64(25), int64(10), testProductID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:   "delete",
			callFn: remove,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE FROM products").
					WithArgs(testProductID).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name:   "delete vanished product",
			callFn: remove,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE FROM products").
					WithArgs(testProductID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:   "decrement stock",
			callFn: decrement,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET amount_available = amount_available -").
					WithArgs(int64(3), testProductID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:   "decrement below zero",
			callFn: decrement,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET amount_available = amount_available -").
					WithArgs(int64(3), testProductID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.InsufficientStockError{},
		},
		{
			name:   "decrement database error",
			callFn: decrement,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET amount_available = amount_available -").
					WithArgs(int64(3), testProductID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			err = tt.callFn(t, NewProductsRepository(nil), mock)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
