package app

import (
	"context"
	"database/sql"
	"io"

	"merchfn/internal/session"
	"merchfn/internal/user"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Deps - все, что нужно обработчикам, под выбранный бэкенд.
type Deps struct {
	UserRepo user.UserRepo
	// nil, если проверка вызывающего grant-admin выключена
	Verifier session.CallerVerifier

	closers []io.Closer
}

func (d *Deps) Close() error {
	var firstErr error
	for _, c := range d.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func NewDeps(ctx context.Context, c *Config, logger *zap.SugaredLogger) (*Deps, error) {
	d := &Deps{}

	switch c.Backend {
	case BackendFirestore:
		p, err := GetPlatform(ctx, c.ServiceAccountJSON)
		if err != nil {
			logger.Errorf("error to init firebase: %v", err)
			return nil, err
		}
		d.UserRepo = user.NewFirestoreRepository(p.Firestore, p.Auth, c.AppID, logger)
		if c.RequireAdminCaller {
			d.Verifier = session.NewFirebaseVerifier(p.Auth, logger)
		}
		// firestore клиент живет весь процесс, его не закрываем

	case BackendPostgres:
		db, err := sql.Open("postgres", c.DSN())
		if err != nil {
			logger.Errorf("error to database start: %v", err)
			return nil, err
		}
		db.SetMaxOpenConns(c.MaxOpenConns)

		if err = db.PingContext(ctx); err != nil {
			logger.Infof("Failed to get response to ping: %v", err)
		}
		d.UserRepo = user.NewUserDBRepository(db, logger)
		d.closers = append(d.closers, db)

	case BackendMemory:
		d.UserRepo = user.NewMemoryRepository(c.SeedAccounts, logger)

	default:
		return nil, ErrUnknownBackend
	}

	if c.RequireAdminCaller && d.Verifier == nil {
		d.Verifier = session.NewJWTVerifier(logger, c.Secret)
	}
	if !c.RequireAdminCaller {
		logger.Warnw("grant-admin accepts any caller, set require_admin_caller to restrict it",
			"backend", c.Backend,
		)
	}

	return d, nil
}
