package handlers

import (
	"net/http"

	"merchfn/internal/middleware"
	"merchfn/internal/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouters собирает роутер. Если verifier не nil, grant-admin доступен
// только админам.
func NewRouters(uh *UserHandlers, verifier session.CallerVerifier, logger *zap.SugaredLogger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger), middleware.Recover(logger))

	initHandlers(r, verifier, uh, logger)

	return r
}

func initHandlers(
	r *mux.Router,
	verifier session.CallerVerifier,
	userHandler *UserHandlers,
	logger *zap.SugaredLogger,
) {
	r.HandleFunc("/healthz", userHandler.Health).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/purchase", userHandler.Purchase).Methods("POST")

	// guard вешаем только на маршрут grant-admin: второй subrouter с тем же
	// префиксом ломает 405 для /purchase
	var grant http.Handler = http.HandlerFunc(userHandler.GrantAdmin)
	if verifier != nil {
		grant = middleware.AdminCaller(verifier, logger)(grant)
	}
	apiRouter.Handle("/grant-admin", grant).Methods("POST")
}

// Chain оборачивает одиночный обработчик теми же middleware, что и роутер.
// Нужен для облачных функций, где каждый эндпоинт развертывается отдельно.
func Chain(h http.HandlerFunc, logger *zap.SugaredLogger, mws ...func(http.Handler) http.Handler) http.Handler {
	var handler http.Handler = h
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}

	return middleware.RequestLogger(logger)(middleware.Recover(logger)(handler))
}
