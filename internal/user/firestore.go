package user

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Путь до документа пользователя, appID общий с фронтендом.
const accountDocPath = "artifacts/%s/users/%s/appData/data"

type FirestoreRepository struct {
	Client *firestore.Client
	Claims ClaimSetter
	AppID  string
	Logger *zap.SugaredLogger
}

func NewFirestoreRepository(
	client *firestore.Client,
	claims ClaimSetter,
	appID string,
	l *zap.SugaredLogger,
) *FirestoreRepository {
	return &FirestoreRepository{
		Client: client,
		Claims: claims,
		AppID:  appID,
		Logger: l,
	}
}

func (fr *FirestoreRepository) accountDoc(userID string) *firestore.DocumentRef {
	return fr.Client.Doc(fmt.Sprintf(accountDocPath, fr.AppID, userID))
}

// Покупка внутри транзакции firestore: чтение, проверка и запись
// изолированы от других писателей в этот же документ.
func (fr *FirestoreRepository) BuyItem(ctx context.Context, userID, itemID string, price int) error {
	ref := fr.accountDoc(userID)
	// Doc возвращает nil для id со слешами
	if ref == nil {
		fr.Logger.Errorf("%v. More details: bad user_id - %s -", ErrUserNotFound, userID)
		return ErrUserNotFound
	}

	var coinsLeft int64
	err := fr.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrUserNotFound
			}
			return err
		}

		var acc Account
		if err := snap.DataTo(&acc); err != nil {
			return err
		}

		updated, err := ApplyPurchase(acc, itemID, price)
		if err != nil {
			return err
		}
		coinsLeft = updated.Coins

		return tx.Update(ref, []firestore.Update{
			{Path: "coins", Value: updated.Coins},
			{Path: "inventory", Value: updated.Inventory},
		})
	})
	if err != nil {
		fr.Logger.Errorf("error during purchase transaction. More details: %v", err)
		return err
	}

	fr.Logger.Infof("item - %s - added for user_id - %s -, coins left %d", itemID, userID, coinsLeft)
	return nil
}

// Права админа - это custom claim в firebase auth, а не поле документа.
func (fr *FirestoreRepository) GrantAdmin(ctx context.Context, userID string) error {
	err := fr.Claims.SetCustomUserClaims(ctx, userID, map[string]interface{}{AdminClaim: true})
	if err != nil {
		fr.Logger.Errorf("error setting admin claim. More details: %v", err)
		return err
	}

	fr.Logger.Infof("admin claim set for user_id - %s -", userID)
	return nil
}
