package user

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// MemoryRepository хранит аккаунты в памяти процесса.
// Нужен для локального запуска без облака и для тестов.
type MemoryRepository struct {
	mu       sync.Mutex
	accounts map[string]Account
	Logger   *zap.SugaredLogger
}

func NewMemoryRepository(seed map[string]Account, l *zap.SugaredLogger) *MemoryRepository {
	accounts := make(map[string]Account, len(seed))
	for id, acc := range seed {
		accounts[id] = acc
	}

	return &MemoryRepository{
		accounts: accounts,
		Logger:   l,
	}
}

func (mr *MemoryRepository) BuyItem(_ context.Context, userID, itemID string, price int) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	acc, found := mr.accounts[userID]
	if !found {
		mr.Logger.Errorf("%v. More details: user_id - %s -", ErrUserNotFound, userID)
		return ErrUserNotFound
	}

	updated, err := ApplyPurchase(acc, itemID, price)
	if err != nil {
		return err
	}
	mr.accounts[userID] = updated

	mr.Logger.Infof("item - %s - added for user_id - %s -, coins left %d", itemID, userID, updated.Coins)
	return nil
}

func (mr *MemoryRepository) GrantAdmin(_ context.Context, userID string) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	acc, found := mr.accounts[userID]
	if !found {
		return ErrUserNotFound
	}
	acc.Admin = true
	mr.accounts[userID] = acc

	return nil
}

// Account возвращает копию аккаунта.
func (mr *MemoryRepository) Account(userID string) (Account, bool) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	acc, found := mr.accounts[userID]
	if !found {
		return Account{}, false
	}
	acc.Inventory = append([]string(nil), acc.Inventory...)

	return acc, true
}
