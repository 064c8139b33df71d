package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/pg"
)

const columns = `id, login, password_hash, role, is_active, payment_method, payment_details, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) find(ctx context.Context, where string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT "+columns+" FROM users WHERE "+where, arg).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.IsActive,
		&user.PaymentMethod, &user.PaymentDetails, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return repo.find(ctx, "login = $1", login)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.find(ctx, "id = $1", id)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role).Scan(&user.ID, &user.IsActive, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdatePaymentInfo(ctx context.Context, userID int, method string, details map[string]string) error {
	query := `UPDATE users SET payment_method = $1, payment_details = $2 WHERE id = $3`
	tag, err := repo.db.Exec(ctx, query, method, details, userID)
	if err != nil {
		zap.L().Error("can't update payment info", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (repo *Repository) SetActive(ctx context.Context, userID int, active bool) error {
	tag, err := repo.db.Exec(ctx, `UPDATE users SET is_active = $1 WHERE id = $2`, active, userID)
	if err != nil {
		zap.L().Error("can't update user status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (repo *Repository) SetRole(ctx context.Context, userID int, role string) error {
	tag, err := repo.db.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, userID)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
