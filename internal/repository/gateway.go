package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/shomrim_dispatch/internal/models"
)

// Querier - общий интерфейс пула и транзакции
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Gateway - единая точка доступа к PostgreSQL: транзакции и построчное отображение
type Gateway struct {
	pool *pgxpool.Pool
	// Одиночные запросы вне транзакции
	q Querier
}

func NewGateway(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool, q: pool}
}

// Pool возвращает пул для одиночных запросов вне транзакции
func (g *Gateway) Pool() Querier {
	return g.q
}

// WithTx выполняет fn в одной транзакции. Ошибка или паника в fn откатывают все изменения.
func (g *Gateway) WithTx(ctx context.Context, opts pgx.TxOptions, fn func(tx pgx.Tx) error) (err error) {
	tx, err := g.pool.BeginTx(ctx, opts)
	if err != nil {
		return translateError("begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return translateError("commit transaction", err)
	}
	return nil
}

// QueryRecords возвращает все строки запроса. Пустой результат - пустой срез, не ошибка.
func (g *Gateway) QueryRecords(ctx context.Context, sql string, args ...any) ([]models.Record, error) {
	return queryRecords(ctx, g.q, sql, args...)
}

// QueryRecord возвращает первую строку запроса; ok == false, если строк нет
func (g *Gateway) QueryRecord(ctx context.Context, sql string, args ...any) (models.Record, bool, error) {
	records, err := queryRecords(ctx, g.q, sql, args...)
	if err != nil {
		return nil, false, err
	}
	if len(records) == 0 {
		return nil, false, nil
	}
	return records[0], true, nil
}

func queryRecords(ctx context.Context, q Querier, sql string, args ...any) ([]models.Record, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError("query records", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	records := make([]models.Record, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, translateError("read record values", err)
		}
		rec := make(models.Record, len(fields))
		for i, f := range fields {
			rec[i] = models.Column{Name: f.Name, Value: values[i]}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("iterate records", err)
	}
	return records, nil
}

// translateError приводит ошибки драйвера к классам ошибок приложения
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation,
			pgerrcode.ForeignKeyViolation,
			pgerrcode.CheckViolation,
			pgerrcode.NotNullViolation:
			return fmt.Errorf("%s: %w: %w", op, models.ErrConflict, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
