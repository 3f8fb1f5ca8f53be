// Package merchfn - точки входа облачных функций: purchase и grant-admin.
package merchfn

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"merchfn/internal/app"
	"merchfn/internal/handlers"
	"merchfn/internal/middleware"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"go.uber.org/zap"
)

func init() {
	functions.HTTP("purchase", Purchase)
	functions.HTTP("grant-admin", GrantAdmin)
}

type entrypoints struct {
	purchase http.Handler
	grant    http.Handler
}

// Зависимости собираются на первом запросе и живут весь процесс.
var (
	entryOnce sync.Once
	entry     *entrypoints
	entryErr  error
)

func loadEntrypoints() (*entrypoints, error) {
	entryOnce.Do(func() {
		entry, entryErr = newEntrypoints(context.Background())
	})
	return entry, entryErr
}

func newEntrypoints(ctx context.Context) (*entrypoints, error) {
	c, err := app.NewConfig(app.ConfigPath())
	if err != nil {
		return nil, err
	}

	zapLogger, err := app.NewLogger(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := zapLogger.Sugar()

	deps, err := app.NewDeps(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	uh := &handlers.UserHandlers{
		UserRepo: deps.UserRepo,
		Logger:   logger,
	}

	var guards []func(http.Handler) http.Handler
	if deps.Verifier != nil {
		guards = append(guards, middleware.AdminCaller(deps.Verifier, logger))
	}

	return &entrypoints{
		purchase: handlers.Chain(uh.Purchase, logger),
		grant:    handlers.Chain(uh.GrantAdmin, logger, guards...),
	}, nil
}

// ErrInitFailed - то, что видит клиент при сломанной инициализации.
// Подробности (конфиг, ключи) только в логе.
var ErrInitFailed = errors.New("internal server error")

func serve(
	w http.ResponseWriter,
	r *http.Request,
	load func() (*entrypoints, error),
	pick func(*entrypoints) http.Handler,
) {
	e, err := load()
	if err != nil {
		// логгера из конфига может не быть, пишем в stderr
		l := zap.NewExample().Sugar()
		l.Errorf("error to init function. More details: %v", err)
		handlers.SendErrorTo(w, ErrInitFailed, http.StatusInternalServerError, l)
		return
	}

	pick(e).ServeHTTP(w, r)
}

// Purchase - облачная функция покупки.
func Purchase(w http.ResponseWriter, r *http.Request) {
	serve(w, r, loadEntrypoints, func(e *entrypoints) http.Handler { return e.purchase })
}

// GrantAdmin - облачная функция выдачи прав админа.
func GrantAdmin(w http.ResponseWriter, r *http.Request) {
	serve(w, r, loadEntrypoints, func(e *entrypoints) http.Handler { return e.grant })
}
