package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPurchase(t *testing.T) {
	tests := []struct {
		name          string
		account       Account
		itemID        string
		price         int
		expected      Account
		expectedError error
	}{
		{
			name:     "ExactBalance",
			account:  Account{Coins: 100},
			itemID:   "item-movie",
			price:    100,
			expected: Account{Coins: 0, Inventory: []string{"item-movie"}},
		},
		{
			name:     "AppendKeepsOrderAndDuplicates",
			account:  Account{Coins: 1500, Inventory: []string{"item-movie", "item-guide"}},
			itemID:   "item-movie",
			price:    100,
			expected: Account{Coins: 1400, Inventory: []string{"item-movie", "item-guide", "item-movie"}},
		},
		{
			name:          "InsufficientFunds",
			account:       Account{Coins: 50, Inventory: []string{"item-guide"}},
			itemID:        "item-movie",
			price:         100,
			expectedError: ErrInsufficientFunds,
		},
		{
			name:          "AbsentFieldsReadAsZero",
			account:       Account{},
			itemID:        "item-badge",
			price:         1000,
			expectedError: ErrInsufficientFunds,
		},
		{
			name:     "AdminFlagPreserved",
			account:  Account{Coins: 500, Admin: true},
			itemID:   "item-guide",
			price:    500,
			expected: Account{Coins: 0, Inventory: []string{"item-guide"}, Admin: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyPurchase(tt.account, tt.itemID, tt.price)

			assert.Equal(t, tt.expectedError, err)
			if tt.expectedError == nil {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestApplyPurchase_DoesNotAliasInventory(t *testing.T) {
	backing := make([]string, 1, 10)
	backing[0] = "item-guide"
	acc := Account{Coins: 1000, Inventory: backing}

	first, err := ApplyPurchase(acc, "item-movie", 100)
	require.NoError(t, err)
	second, err := ApplyPurchase(acc, "item-badge", 100)
	require.NoError(t, err)

	assert.Equal(t, []string{"item-guide", "item-movie"}, first.Inventory)
	assert.Equal(t, []string{"item-guide", "item-badge"}, second.Inventory)
	assert.Equal(t, []string{"item-guide"}, acc.Inventory)
	assert.Equal(t, int64(1000), acc.Coins)
}
