package user

import (
	"context"
	"errors"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=user

// Тексты ошибок уходят клиенту как есть, поэтому они человекочитаемые.
var (
	ErrUserNotFound      = errors.New("User data not found.")
	ErrInsufficientFunds = errors.New("You do not have enough coins for this purchase.")
	ErrInternalDB        = errors.New("database internal error")
)

// Account - данные пользователя, которые трогает покупка.
// Отсутствующие в хранилище поля читаются как 0 и пустой инвентарь.
type Account struct {
	Coins     int64    `json:"coins" firestore:"coins"`
	Inventory []string `json:"inventory" firestore:"inventory"`
	Admin     bool     `json:"admin" firestore:"-"`
}

type UserRepo interface {
	// BuyItem атомарно списывает price и добавляет itemID в инвентарь.
	// Цена к этому моменту уже сверена с официальной.
	BuyItem(ctx context.Context, userID, itemID string, price int) error
	// GrantAdmin безусловно выдает пользователю права админа.
	GrantAdmin(ctx context.Context, userID string) error
}

// ClaimSetter - часть клиента сервиса идентификации, которая нам нужна.
// *auth.Client из firebase подходит без обертки.
type ClaimSetter interface {
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
}

// AdminClaim - claim, который выставляется при выдаче прав.
const AdminClaim = "admin"

/*
ApplyPurchase - общая для всех хранилищ часть покупки:
  - хватает ли монет
  - новый баланс = баланс - цена
  - новый инвентарь = старый + itemID (дубликаты разрешены)

Исходный аккаунт не меняется, слайс инвентаря копируется.
*/
func ApplyPurchase(acc Account, itemID string, price int) (Account, error) {
	if acc.Coins < int64(price) {
		return Account{}, ErrInsufficientFunds
	}

	inventory := make([]string, 0, len(acc.Inventory)+1)
	inventory = append(inventory, acc.Inventory...)
	inventory = append(inventory, itemID)

	return Account{
		Coins:     acc.Coins - int64(price),
		Inventory: inventory,
		Admin:     acc.Admin,
	}, nil
}
