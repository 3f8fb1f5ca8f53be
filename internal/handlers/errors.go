package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"merchfn/internal/types"

	"go.uber.org/zap"
)

// Тексты ошибок валидации уходят клиенту как есть.
var (
	ErrMissingPurchaseData = errors.New("Missing data. Need userId, itemId, and itemPrice.")
	ErrPriceMismatch       = errors.New("Price mismatch. Transaction voided.")
	ErrNotAuthenticated    = errors.New("User not authenticated.")
	ErrInvalidBody         = errors.New("invalid request body")
)

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(types.ErrorResponse{Error: err.Error()}); errEncode != nil {
		logger.Error(errEncode)
	}
}

func SendMessageTo(w http.ResponseWriter, message string, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if errEncode := json.NewEncoder(w).Encode(types.MessageResponse{Message: message}); errEncode != nil {
		logger.Error(errEncode)
	}
}
