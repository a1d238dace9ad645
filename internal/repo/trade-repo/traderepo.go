package traderepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/internal/ledger"
	"github.com/GlebRadaev/trueqia/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = 50 * time.Millisecond
)

type Repository struct {
	db            pg.Database
	txManager     pg.TXManager
	retryInterval time.Duration
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:            db,
		txManager:     txManager,
		retryInterval: retryInterval,
	}
}

const tradeColumns = `id, offer_id, from_user_id, to_user_id, tokens, status, created_at, resolved_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (*domain.Trade, error) {
	var (
		trade  domain.Trade
		status string
	)
	err := row.Scan(&trade.ID, &trade.OfferID, &trade.FromUserID, &trade.ToUserID,
		&trade.Tokens, &status, &trade.CreatedAt, &trade.ResolvedAt)
	if err != nil {
		return nil, err
	}
	trade.Status = domain.TradeStatus(status)
	return &trade, nil
}

func (r *Repository) Create(ctx context.Context, trade *domain.Trade) error {
	query := `
		INSERT INTO trades (id, offer_id, from_user_id, to_user_id, tokens, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, trade.ID, trade.OfferID, trade.FromUserID, trade.ToUserID,
		trade.Tokens, string(trade.Status), trade.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			if notFound := missingReference(pgErr.ConstraintName, trade); notFound != nil {
				return notFound
			}
		}
		zap.L().Error("can't save trade", zap.Error(err))
		return err
	}
	return nil
}

// missingReference names the row a foreign key violation on insert points at.
func missingReference(constraint string, trade *domain.Trade) error {
	switch constraint {
	case "trades_offer_id_fkey":
		return &domain.NotFoundError{Entity: "offer", ID: trade.OfferID.String()}
	case "trades_from_user_id_fkey":
		return &domain.NotFoundError{Entity: "user", ID: strconv.Itoa(trade.FromUserID)}
	case "trades_to_user_id_fkey":
		return &domain.NotFoundError{Entity: "user", ID: strconv.Itoa(trade.ToUserID)}
	default:
		return nil
	}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE id = $1`
	trade, err := scanTrade(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find trade", zap.Error(err))
		return nil, err
	}
	return trade, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE from_user_id = $1 OR to_user_id = $1 ORDER BY created_at ASC, id ASC`
	return r.findMany(ctx, query, userID)
}

// FindStalePending returns pending trades created before the given time, oldest first.
func (r *Repository) FindStalePending(ctx context.Context, before time.Time, limit uint32) ([]domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE status = 'pending' AND created_at < $1 ORDER BY created_at ASC LIMIT $2`
	return r.findMany(ctx, query, before, int(limit))
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Trade, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get trades", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	trades := make([]domain.Trade, 0)
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			zap.L().Error("can't scan trade row", zap.Error(err))
			return nil, err
		}
		trades = append(trades, *trade)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate trade rows", zap.Error(err))
		return nil, err
	}
	return trades, nil
}

func (r *Repository) CountByStatus(ctx context.Context, userID int) (domain.TradeStats, error) {
	query := `
		SELECT status, COUNT(*)
		FROM trades
		WHERE from_user_id = $1 OR to_user_id = $1
		GROUP BY status
	`
	var stats domain.TradeStats
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't count trades", zap.Error(err))
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			zap.L().Error("can't scan trade count", zap.Error(err))
			return stats, err
		}
		switch domain.TradeStatus(status) {
		case domain.TradePending:
			stats.Pending = count
		case domain.TradeAccepted:
			stats.Accepted = count
		case domain.TradeRejected:
			stats.Rejected = count
		case domain.TradeCancelled:
			stats.Cancelled = count
		}
	}
	return stats, rows.Err()
}

// Resolve moves a pending trade to a terminal status without touching balances.
func (r *Repository) Resolve(ctx context.Context, id uuid.UUID, status domain.TradeStatus, resolvedAt time.Time) (*domain.Trade, error) {
	return r.transition(ctx, id, status, resolvedAt)
}

// Settle accepts a pending trade and moves its tokens from the initiator to the counterparty.
// The status change and both balance updates commit together or not at all.
func (r *Repository) Settle(ctx context.Context, id uuid.UUID, resolvedAt time.Time) (*domain.Trade, error) {
	var settled *domain.Trade
	err := r.withRetry(ctx, func() error {
		return r.txManager.Begin(ctx, func(ctx context.Context) error {
			trade, err := r.transition(ctx, id, domain.TradeAccepted, resolvedAt)
			if err != nil {
				return err
			}
			if err := r.transfer(ctx, trade.FromUserID, trade.ToUserID, trade.Tokens); err != nil {
				return err
			}
			settled = trade
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}

// transition is the single point of serialization for a trade: only one caller
// can match the pending row, everyone else gets InvalidStateError.
func (r *Repository) transition(ctx context.Context, id uuid.UUID, status domain.TradeStatus, resolvedAt time.Time) (*domain.Trade, error) {
	query := `
		UPDATE trades
		SET status = $2, resolved_at = $3
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + tradeColumns
	trade, err := scanTrade(r.db.QueryRow(ctx, query, id, string(status), resolvedAt))
	if err == nil {
		return trade, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("can't update trade status", zap.Error(err))
		return nil, err
	}

	var current string
	err = r.db.QueryRow(ctx, `SELECT status FROM trades WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "trade", ID: id.String()}
		}
		zap.L().Error("can't read trade status", zap.Error(err))
		return nil, err
	}
	return nil, &domain.InvalidStateError{TradeID: id.String(), Status: domain.TradeStatus(current)}
}

// transfer locks both balances in ascending id order so that crossing settlements cannot deadlock.
func (r *Repository) transfer(ctx context.Context, fromID, toID int, amount int64) error {
	query := `
		SELECT id, tokens
		FROM users
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`
	rows, err := r.db.Query(ctx, query, []int{fromID, toID})
	if err != nil {
		zap.L().Error("can't lock balances", zap.Error(err))
		return err
	}
	accounts := make(map[int]ledger.Account, 2)
	for rows.Next() {
		var acc ledger.Account
		if err := rows.Scan(&acc.UserID, &acc.Tokens); err != nil {
			rows.Close()
			zap.L().Error("can't scan balance row", zap.Error(err))
			return err
		}
		accounts[acc.UserID] = acc
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate balance rows", zap.Error(err))
		return err
	}

	from, ok := accounts[fromID]
	if !ok {
		return &domain.NotFoundError{Entity: "user", ID: strconv.Itoa(fromID)}
	}
	to, ok := accounts[toID]
	if !ok {
		return &domain.NotFoundError{Entity: "user", ID: strconv.Itoa(toID)}
	}

	from, to, err = ledger.Transfer(from, to, amount)
	if err != nil {
		return err
	}

	update := `UPDATE users SET tokens = $1 WHERE id = $2`
	for _, acc := range []ledger.Account{from, to} {
		if _, err := r.db.Exec(ctx, update, acc.Tokens, acc.UserID); err != nil {
			zap.L().Error("can't update balance", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = fn()
		if !isRetryable(err) {
			return err
		}
		if attempt == maxRetries {
			break
		}
		zap.L().Warn("settlement conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.retryInterval * time.Duration(attempt)):
		}
	}
	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
}
