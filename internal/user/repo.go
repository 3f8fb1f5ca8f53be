package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type UserDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewUserDBRepository(db *sql.DB, l *zap.SugaredLogger) *UserDBRepository {
	return &UserDBRepository{
		DB:     db,
		Logger: l,
	}
}

/*
Покупка в postgres. Декомпозируем на:
  - Заблокируем и прочитаем аккаунт        -> lockAccount
  - Посчитаем новый баланс и инвентарь     -> ApplyPurchase
  - Запишем оба поля одним запросом        -> saveAccount

Все в одной транзакции бд, при любой ошибке ничего не меняется.
*/
func (ur *UserDBRepository) BuyItem(ctx context.Context, userID, itemID string, price int) error {
	tx, err := ur.DB.BeginTx(ctx, nil)
	if err != nil {
		ur.Logger.Errorf("%v. More details: %v", ErrInternalDB, err)
		return err
	}
	defer tx.Rollback()

	acc, err := lockAccount(ctx, userID, tx, ur.Logger)
	if err != nil {
		return err
	}

	updated, err := ApplyPurchase(acc, itemID, price)
	if err != nil {
		ur.Logger.Infof("purchase of - %s - rejected for user_id - %s -: %v", itemID, userID, err)
		return err
	}

	if err = saveAccount(ctx, userID, updated, tx, ur.Logger); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		ur.Logger.Errorf("%v. More details: %v", ErrInternalDB, err)
		return err
	}

	ur.Logger.Infof("item - %s - added for user_id - %s -, coins left %d", itemID, userID, updated.Coins)
	return nil
}

// Чтение аккаунта с блокировкой строки до конца транзакции
func lockAccount(ctx context.Context, userID string, tx *sql.Tx, l *zap.SugaredLogger) (Account, error) {
	// FOR UPDATE сериализует конкурентные покупки одного пользователя
	q := `
	SELECT COALESCE(coins, 0), COALESCE(inventory, '{}')
	FROM accounts
	WHERE user_id = $1
	FOR UPDATE
	`
	var acc Account
	var inventory pq.StringArray
	err := tx.QueryRowContext(ctx, q, userID).Scan(&acc.Coins, &inventory)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Errorf("%v. More details: %v", ErrUserNotFound, err)
			return Account{}, ErrUserNotFound
		}

		l.Errorf("%v. More details: %v", ErrInternalDB, err)
		return Account{}, err
	}
	acc.Inventory = inventory

	return acc, nil
}

func saveAccount(ctx context.Context, userID string, acc Account, tx *sql.Tx, l *zap.SugaredLogger) error {
	q := `
	UPDATE accounts
	SET coins = $1, inventory = $2
	WHERE user_id = $3
	`
	_, err := tx.ExecContext(ctx, q, acc.Coins, pq.Array(acc.Inventory), userID)
	if err != nil {
		l.Errorf("%v. More details: %v", ErrInternalDB, err)
		return err
	}

	return nil
}

// Выдача прав админа. В postgres флаг лежит прямо в строке аккаунта.
func (ur *UserDBRepository) GrantAdmin(ctx context.Context, userID string) error {
	q := `
	UPDATE accounts
	SET admin = TRUE
	WHERE user_id = $1
	`
	res, err := ur.DB.ExecContext(ctx, q, userID)
	if err != nil {
		ur.Logger.Errorf("%v. More details: %v", ErrInternalDB, err)
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		ur.Logger.Errorf("%v. More details: %v", ErrInternalDB, err)
		return err
	}
	if n == 0 {
		ur.Logger.Errorf("%v. More details: user_id - %s -", ErrUserNotFound, userID)
		return ErrUserNotFound
	}

	ur.Logger.Infof("admin granted for user_id - %s -", userID)
	return nil
}
