package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestValidateCost(t *testing.T) {
	t.Parallel()

	valid := []int64{0, 5, 10, 95, 1000}
	invalid := []int64{-5, -1, 1, 7, 101}

	for _, cost := range valid {
		assert.NoError(t, ValidateCost(cost), "cost %d", cost)
	}
	for _, cost := range invalid {
		assert.ErrorIs(t, ValidateCost(cost), &InvalidArgumentsError{}, "cost %d", cost)
	}
}

func TestProductDraft_Validate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		draft       ProductDraft
		expectedErr error
	}

	tests := []testCase{
		{name: "valid", draft: ProductDraft{Name: "Cola", Cost: 25, AmountAvailable: 10}},
		{name: "free product", draft: ProductDraft{Name: "Air", Cost: 0, AmountAvailable: 1}},
		{name: "cost not multiple of five", draft: ProductDraft{Name: "Cola", Cost: 23, AmountAvailable: 10}, expectedErr: &InvalidArgumentsError{}},
		{name: "negative cost", draft: ProductDraft{Name: "Cola", Cost: -5, AmountAvailable: 10}, expectedErr: &InvalidArgumentsError{}},
		{name: "short name", draft: ProductDraft{Name: "Co", Cost: 5, AmountAvailable: 10}, expectedErr: &InvalidArgumentsError{}},
		{name: "negative stock", draft: ProductDraft{Name: "Cola", Cost: 5, AmountAvailable: -1}, expectedErr: &InvalidArgumentsError{}},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.draft.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductPatch_ValidateAndApply(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ProductPatch{}.Validate())
	assert.ErrorIs(t, ProductPatch{Cost: ptr(int64(12))}.Validate(), &InvalidArgumentsError{})
	assert.ErrorIs(t, ProductPatch{Name: ptr("ab")}.Validate(), &InvalidArgumentsError{})
	assert.ErrorIs(t, ProductPatch{AmountAvailable: ptr(int64(-3))}.Validate(), &InvalidArgumentsError{})

	product := Product{Name: "Cola", Cost: 25, AmountAvailable: 10}
	product.Apply(ProductPatch{Cost: ptr(int64(30))})
	assert.Equal(t, Product{Name: "Cola", Cost: 30, AmountAvailable: 10}, product)

	product.Apply(ProductPatch{Name: ptr("Fanta"), AmountAvailable: ptr(int64(0))})
	assert.Equal(t, Product{Name: "Fanta", Cost: 30, AmountAvailable: 0}, product)
}

func TestTotalCost(t *testing.T) {
	t.Parallel()

	total, ok := TotalCost(3, 25)
	assert.True(t, ok)
	assert.Equal(t, int64(75), total)

	_, ok = TotalCost(1<<62, 5)
	assert.False(t, ok)

	_, ok = TotalCost(-1, 5)
	assert.False(t, ok)
}

func TestParseRoleAndDepositCoins(t *testing.T) {
	t.Parallel()

	role, err := ParseRole("buyer")
	assert.NoError(t, err)
	assert.Equal(t, RoleBuyer, role)

	role, err = ParseRole("seller")
	assert.NoError(t, err)
	assert.Equal(t, RoleSeller, role)

	_, err = ParseRole("admin")
	assert.ErrorIs(t, err, &InvalidArgumentsError{})

	for _, coin := range []int64{5, 10, 20, 50, 100} {
		assert.True(t, IsDepositCoin(coin))
	}
	for _, amount := range []int64{0, 1, 15, 25, 200, -5} {
		assert.False(t, IsDepositCoin(amount))
	}
}
