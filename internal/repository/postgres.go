package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmarochko/emergency_alert_system/internal/models"
	"github.com/dmarochko/emergency_alert_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAlertRepository - постоянное хранилище заявок поверх PostgreSQL.
// Семантика id та же, что и у MemoryAlertRepository: id равен числу записей
// на момент вставки, поэтому вставка сериализуется блокировкой таблицы.
type PostgresAlertRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &PostgresAlertRepository{
		db: db,
	}
}

// Create вставляет новую заявку, присваивая ей следующий порядковый id
func (r *PostgresAlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Таблица блокируется, чтобы параллельные вставки не получили одинаковый id
	if _, err := tx.Exec(ctx, `LOCK TABLE alerts IN EXCLUSIVE MODE;`); err != nil {
		return fmt.Errorf("failed to lock alerts table: %w", err)
	}

	query := `
		INSERT INTO alerts (
			id, reporter_name, reporter_type, raw_message, translated_message,
			urgency, issue_type, people_affected, text_location,
			latitude, longitude, status, admin_note
		)
		SELECT COUNT(*), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		FROM alerts
		RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, query,
		alert.ReporterName,
		alert.ReporterType,
		alert.RawMessage,
		alert.TranslatedMessage,
		alert.Urgency,
		alert.IssueType,
		alert.PeopleAffected,
		alert.TextLocation,
		alert.Latitude,
		alert.Longitude,
		alert.Status,
		alert.AdminNote,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit alert creation: %w", err)
	}
	return nil
}

// Approve переводит заявку в статус Approved и возвращает обновлённую запись
func (r *PostgresAlertRepository) Approve(ctx context.Context, id int, adminNote string) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `
		UPDATE alerts SET
			status = $1,
			admin_note = $2,
			approved_at = NOW()
		WHERE id = $3
		RETURNING
			id, reporter_name, reporter_type, raw_message, translated_message,
			urgency, issue_type, people_affected, text_location,
			latitude, longitude, created_at, status, admin_note, approved_at;
	`
	err := r.db.QueryRow(ctx, query, models.StatusApproved, adminNote, id).Scan(
		&alert.ID,
		&alert.ReporterName,
		&alert.ReporterType,
		&alert.RawMessage,
		&alert.TranslatedMessage,
		&alert.Urgency,
		&alert.IssueType,
		&alert.PeopleAffected,
		&alert.TextLocation,
		&alert.Latitude,
		&alert.Longitude,
		&alert.CreatedAt,
		&alert.Status,
		&alert.AdminNote,
		&alert.ApprovedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to approve alert: %w", err)
	}
	return alert, nil
}

// List возвращает все заявки в порядке поступления
func (r *PostgresAlertRepository) List(ctx context.Context) ([]*models.Alert, error) {
	query := `
		SELECT
			id, reporter_name, reporter_type, raw_message, translated_message,
			urgency, issue_type, people_affected, text_location,
			latitude, longitude, created_at, status, admin_note, approved_at
		FROM alerts
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.ReporterName,
			&alert.ReporterType,
			&alert.RawMessage,
			&alert.TranslatedMessage,
			&alert.Urgency,
			&alert.IssueType,
			&alert.PeopleAffected,
			&alert.TextLocation,
			&alert.Latitude,
			&alert.Longitude,
			&alert.CreatedAt,
			&alert.Status,
			&alert.AdminNote,
			&alert.ApprovedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}
