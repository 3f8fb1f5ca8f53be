package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"merchfn/internal/types"
	"merchfn/internal/user"

	"go.uber.org/zap"
)

const (
	MaxBodyBytes = 1 << 20

	PurchaseSuccessMessage = "Purchase successful! Your item is in your inventory."
	grantSuccessFormat     = "Success! %s is now an admin."
)

type UserHandlers struct {
	UserRepo user.UserRepo
	Logger   *zap.SugaredLogger
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

/*
Покупка. Все проверки до обращения к хранилищу:
  - все три поля на месте
  - цена совпадает с официальной (неизвестный товар = несовпадение)

Дальше списание и добавление в инвентарь делает репозиторий в транзакции.
Любая его ошибка отдается клиенту как есть с 500.
*/
func (h *UserHandlers) Purchase(w http.ResponseWriter, r *http.Request) {
	var req types.PurchaseRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.Logger.Errorf("%v. More details: %v", ErrInvalidBody, err)
		SendErrorTo(w, ErrInvalidBody, http.StatusBadRequest, h.Logger)
		return
	}

	if !req.Complete() {
		SendErrorTo(w, ErrMissingPurchaseData, http.StatusBadRequest, h.Logger)
		return
	}

	if !types.PriceMatches(req.ItemID, req.ItemPrice) {
		h.Logger.Warnf("price mismatch for item - %s -: claimed %v, user_id - %s -",
			req.ItemID, req.ItemPrice, req.UserID,
		)
		SendErrorTo(w, ErrPriceMismatch, http.StatusBadRequest, h.Logger)
		return
	}

	// цену берем из таблицы, а не из запроса
	price, _ := types.PriceOf(req.ItemID)

	if err := h.UserRepo.BuyItem(r.Context(), req.UserID, req.ItemID, price); err != nil {
		h.Logger.Errorf("error during purchase transaction. More details: %v", err)
		SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	SendMessageTo(w, PurchaseSuccessMessage, h.Logger)
	h.Logger.Infof("item - %s - purchased successfully for user_id - %s -", req.ItemID, req.UserID)
}

/*
Выдача прав админа. Проверяем только наличие userId, email нужен для ответа.

Вызывающего здесь не проверяем: любой, кто может дернуть эндпоинт, выдаст
права любому userId. Закрывается middleware.AdminCaller (require_admin_caller).
*/
func (h *UserHandlers) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	var req types.GrantAdminRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.Logger.Errorf("%v. More details: %v", ErrInvalidBody, err)
		SendErrorTo(w, ErrInvalidBody, http.StatusBadRequest, h.Logger)
		return
	}

	if req.UserID == "" {
		SendErrorTo(w, ErrNotAuthenticated, http.StatusUnauthorized, h.Logger)
		return
	}

	if err := h.UserRepo.GrantAdmin(r.Context(), req.UserID); err != nil {
		h.Logger.Errorf("error setting admin claim. More details: %v", err)
		SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	SendMessageTo(w, fmt.Sprintf(grantSuccessFormat, req.Email), h.Logger)
	h.Logger.Infof("user_id - %s - is now an admin", req.UserID)
}

func (h *UserHandlers) Health(w http.ResponseWriter, _ *http.Request) {
	SendMessageTo(w, "ok", h.Logger)
}
