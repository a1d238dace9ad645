package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/internal/pg"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, tokens, allwain_balance, created_at
		FROM users
		WHERE login = $1
	`
	return repo.findOne(ctx, query, login)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, tokens, allwain_balance, created_at
		FROM users
		WHERE id = $1
	`
	return repo.findOne(ctx, query, id)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Tokens, &user.AllwainBalance, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, tokens, allwain_balance)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Tokens, user.AllwainBalance).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrLoginTaken
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
