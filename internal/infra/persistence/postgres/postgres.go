package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"ecocart/config"
	"ecocart/internal/domain/lifecycle"
	"ecocart/internal/infra/metrics"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
)

// Params are the inputs of New. Metrics is absent in binaries without a /metrics endpoint.
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the primary (and replica) pool, pings it on start and closes it on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	// Multi-statement writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDB("postgres", sqlDB); err != nil {
			return nil, err
		}
	}

	watcher := &poolWatcher{db: sqlDB, logger: params.Logger, interval: poolSampleInterval}
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			watcher.start()

			return nil
		},
		OnStop: func(context.Context) error {
			watcher.stop()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolWatcher logs connection waits between two samples of sql.DBStats.
type poolWatcher struct {
	db       *sql.DB
	logger   *slog.Logger
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func (w *poolWatcher) start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.run(ctx)
}

func (w *poolWatcher) stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *poolWatcher) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	prev := w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := w.db.Stats()
			w.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (w *poolWatcher) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolSlowWait {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}

// Module provides the database handle and every repository
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewUserRepository,
		NewSupplierRepository,
		NewCategoryRepository,
		NewProductRepository,
		NewListingRepository,
		NewDiscountRepository,
		NewShoppingListRepository,
		NewShoppingItemRepository,
		NewContactRepository,
		NewDeviceRepository,
		NewReminderLogRepository,
	),
)
