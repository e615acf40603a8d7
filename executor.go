package relsql

import (
	"context"
	"database/sql"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Queryer is the subset of *sql.DB, *sql.Conn and *sql.Tx an Executor
// needs.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ExecutorStats counts executed queries.
type ExecutorStats struct {
	Queries     int64
	Errors      int64
	SlowQueries int64
}

// Executor renders trees with one dialect and runs them, applying the
// configured command timeout to every query. It is safe for concurrent
// use when its Queryer is.
type Executor struct {
	db            Queryer
	renderer      Renderer
	logger        *slog.Logger
	timeout       time.Duration
	slowThreshold time.Duration

	queries     atomic.Int64
	failures    atomic.Int64
	slowQueries atomic.Int64
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = l
	}
}

// WithSlowThreshold sets the duration above which queries are logged as
// slow. Default is 500ms; zero disables slow query logging.
func WithSlowThreshold(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.slowThreshold = d
	}
}

// WithCommandTimeout overrides the command timeout from Settings.
func WithCommandTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.timeout = d
	}
}

// NewExecutor creates an Executor. A nil renderer is resolved from
// settings.Dialect.
func NewExecutor(db Queryer, renderer Renderer, settings Settings, opts ...ExecutorOption) (*Executor, error) {
	if db == nil {
		return nil, errors.New("executor: nil database")
	}
	if renderer == nil {
		r, err := settings.Renderer()
		if err != nil {
			return nil, errors.Wrap(err, "executor")
		}
		renderer = r
	}
	e := &Executor{
		db:            db,
		renderer:      renderer,
		logger:        slog.Default(),
		timeout:       settings.Timeout(),
		slowThreshold: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Renderer returns the executor's renderer.
func (e *Executor) Renderer() Renderer {
	return e.renderer
}

// Stats returns a snapshot of the query counters.
func (e *Executor) Stats() ExecutorStats {
	return ExecutorStats{
		Queries:     e.queries.Load(),
		Errors:      e.failures.Load(),
		SlowQueries: e.slowQueries.Load(),
	}
}

// Query renders node, binds values and calls fn with the resulting rows.
// The rows are closed when fn returns.
func (e *Executor) Query(ctx context.Context, node Node, values map[string]any, fn func(*sql.Rows) error) error {
	result, err := e.renderer.Render(node)
	if err != nil {
		e.logger.ErrorContext(ctx, "render failed", "dialect", e.renderer.Name(), "error", err)
		return errors.Wrap(err, "render")
	}
	args, err := BindWith(e.renderer, result, values)
	if err != nil {
		e.logger.ErrorContext(ctx, "bind failed", "dialect", e.renderer.Name(), "params", result.ParamNames(), "error", err)
		return err
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	e.queries.Add(1)
	rows, err := e.db.QueryContext(ctx, result.SQL, args...)
	if err != nil {
		e.failures.Add(1)
		e.logger.ErrorContext(ctx, "query failed", "dialect", e.renderer.Name(), "query", result.SQL, "error", err)
		return errors.Wrap(err, "query")
	}
	defer func() { _ = rows.Close() }()

	if err := fn(rows); err != nil {
		e.failures.Add(1)
		return err
	}
	if err := rows.Err(); err != nil {
		e.failures.Add(1)
		return errors.Wrap(err, "rows")
	}

	if d := time.Since(start); e.slowThreshold > 0 && d > e.slowThreshold {
		e.slowQueries.Add(1)
		e.logger.WarnContext(ctx, "slow query detected", "dialect", e.renderer.Name(), "duration", d, "query", result.SQL)
	}
	return nil
}
