package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smarthire-api/core/database"
	"smarthire-api/core/logger"
	"smarthire-api/modules/calendar/entity"

	"github.com/google/uuid"
)

type CalendarRepositoryInterface interface {
	CreateConnection(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error)
	UpdateConnection(ctx context.Context, conn *entity.CalendarConnection) error
	GetConnectionByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error)
	GetConnectionByEmail(ctx context.Context, calendarEmail string) (*entity.CalendarConnection, error)
	GetConnectionsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CalendarConnection, error)
	DeleteConnection(ctx context.Context, userID uuid.UUID, provider string) error
}

type CalendarRepository struct {
	db database.IDatabase
}

func NewCalendarRepository(db database.IDatabase) CalendarRepositoryInterface {
	return &CalendarRepository{db: db}
}

func (r *CalendarRepository) CreateConnection(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error) {
	query := `
		INSERT INTO calendar_connections (user_id, provider, calendar_email, access_token, refresh_token, token_expires_at, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	now := time.Now()
	conn.CreatedAt = now
	conn.UpdatedAt = now

	row := r.db.QueryRowContext(ctx, query,
		conn.UserID,
		conn.Provider,
		conn.CalendarEmail,
		conn.AccessToken,
		conn.RefreshToken,
		conn.TokenExpiresAt,
		conn.IsActive,
		conn.CreatedAt,
		conn.UpdatedAt,
	)
	if err := row.Scan(&conn.ID); err != nil {
		logger.Error("CalendarRepository:CreateConnection:Error", "error", err)
		return nil, err
	}
	return conn, nil
}

func (r *CalendarRepository) UpdateConnection(ctx context.Context, conn *entity.CalendarConnection) error {
	query := `
		UPDATE calendar_connections
		SET access_token = $1, refresh_token = $2, token_expires_at = $3, calendar_email = $4, is_active = $5, updated_at = $6
		WHERE id = $7
	`
	conn.UpdatedAt = time.Now()
	err := r.db.ExecContext(ctx, query,
		conn.AccessToken,
		conn.RefreshToken,
		conn.TokenExpiresAt,
		conn.CalendarEmail,
		conn.IsActive,
		conn.UpdatedAt,
		conn.ID,
	)
	if err != nil {
		logger.Error("CalendarRepository:UpdateConnection:Error", "error", err, "connection_id", conn.ID)
	}
	return err
}

func (r *CalendarRepository) GetConnectionByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*entity.CalendarConnection, error) {
	query := `
		SELECT id, user_id, provider, calendar_email, access_token, refresh_token, token_expires_at, is_active, created_at, updated_at
		FROM calendar_connections
		WHERE user_id = $1 AND provider = $2 AND is_active = true
	`
	var conn entity.CalendarConnection
	err := r.db.GetContext(ctx, &conn, query, userID, provider)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("CalendarRepository:GetConnectionByUserAndProvider:Error", "error", err)
		return nil, err
	}
	return &conn, nil
}

func (r *CalendarRepository) GetConnectionByEmail(ctx context.Context, calendarEmail string) (*entity.CalendarConnection, error) {
	query := `
		SELECT id, user_id, provider, calendar_email, access_token, refresh_token, token_expires_at, is_active, created_at, updated_at
		FROM calendar_connections
		WHERE calendar_email = $1 AND is_active = true
	`
	var conn entity.CalendarConnection
	err := r.db.GetContext(ctx, &conn, query, calendarEmail)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("CalendarRepository:GetConnectionByEmail:Error", "error", err, "email", calendarEmail)
		return nil, err
	}
	return &conn, nil
}

func (r *CalendarRepository) GetConnectionsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CalendarConnection, error) {
	query := `
		SELECT id, user_id, provider, calendar_email, access_token, refresh_token, token_expires_at, is_active, created_at, updated_at
		FROM calendar_connections
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	var conns []entity.CalendarConnection
	if err := r.db.SelectContext(ctx, &conns, query, userID); err != nil {
		logger.Error("CalendarRepository:GetConnectionsByUserID:Error", "error", err)
		return nil, err
	}
	return conns, nil
}

func (r *CalendarRepository) DeleteConnection(ctx context.Context, userID uuid.UUID, provider string) error {
	query := `DELETE FROM calendar_connections WHERE user_id = $1 AND provider = $2`
	err := r.db.ExecContext(ctx, query, userID, provider)
	if err != nil {
		logger.Error("CalendarRepository:DeleteConnection:Error", "error", err)
	}
	return err
}
