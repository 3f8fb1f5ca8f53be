package user

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMemoryRepository(seed map[string]Account) *MemoryRepository {
	return NewMemoryRepository(seed, zap.NewNop().Sugar())
}

func TestMemoryRepository_BuyItem(t *testing.T) {
	ctx := context.Background()

	t.Run("ExactBalance", func(t *testing.T) {
		repo := newTestMemoryRepository(map[string]Account{"user1": {Coins: 100}})

		require.NoError(t, repo.BuyItem(ctx, "user1", "item-movie", 100))

		acc, _ := repo.Account("user1")
		assert.Equal(t, int64(0), acc.Coins)
		assert.Equal(t, []string{"item-movie"}, acc.Inventory)
	})

	t.Run("InsufficientFundsLeavesAccount", func(t *testing.T) {
		repo := newTestMemoryRepository(map[string]Account{
			"user1": {Coins: 50, Inventory: []string{"item-guide"}},
		})

		err := repo.BuyItem(ctx, "user1", "item-movie", 100)
		assert.Equal(t, ErrInsufficientFunds, err)

		acc, _ := repo.Account("user1")
		assert.Equal(t, int64(50), acc.Coins)
		assert.Equal(t, []string{"item-guide"}, acc.Inventory)
	})

	t.Run("NotIdempotent", func(t *testing.T) {
		repo := newTestMemoryRepository(map[string]Account{"user1": {Coins: 250}})

		require.NoError(t, repo.BuyItem(ctx, "user1", "item-movie", 100))
		require.NoError(t, repo.BuyItem(ctx, "user1", "item-movie", 100))

		acc, _ := repo.Account("user1")
		assert.Equal(t, int64(50), acc.Coins)
		assert.Equal(t, []string{"item-movie", "item-movie"}, acc.Inventory)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		repo := newTestMemoryRepository(nil)

		assert.Equal(t, ErrUserNotFound, repo.BuyItem(ctx, "ghost", "item-movie", 100))
	})
}

func TestMemoryRepository_ConcurrentPurchases(t *testing.T) {
	const (
		workers = 50
		price   = 100
	)
	repo := newTestMemoryRepository(map[string]Account{"user1": {Coins: 1050}})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.BuyItem(context.Background(), "user1", "item-movie", price)
			if err != nil {
				assert.True(t, errors.Is(err, ErrInsufficientFunds))
				return
			}
			mu.Lock()
			succeeded++
			mu.Unlock()
		}()
	}
	wg.Wait()

	acc, _ := repo.Account("user1")
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, int64(50), acc.Coins)
	assert.Len(t, acc.Inventory, 10)
}

func TestMemoryRepository_GrantAdmin(t *testing.T) {
	repo := newTestMemoryRepository(map[string]Account{"user1": {Coins: 10}})

	require.NoError(t, repo.GrantAdmin(context.Background(), "user1"))
	acc, _ := repo.Account("user1")
	assert.True(t, acc.Admin)
	assert.Equal(t, int64(10), acc.Coins)

	assert.Equal(t, ErrUserNotFound, repo.GrantAdmin(context.Background(), "ghost"))
}
