package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CreateBookingInput struct {
	Reference    string
	PackageID    string
	Participants int
	StartDate    time.Time
	EndDate      time.Time
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	TotalPrice   int64
	Status       string
	SessionID    *string
}

// BookingRepository is the record store for confirmed bookings. The capacity
// check the service runs before checkout is a snapshot read; this layer is
// where a deployment must make the capacity check and the insert atomic if it
// needs hard overbooking protection.
type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// ListBetween returns every booking whose stay overlaps [from, to). Stays are
// half-open day intervals, so a booking ending on `from` does not overlap.
func (r *BookingRepository) ListBetween(ctx context.Context, from, to time.Time) ([]models.BookingRecord, error) {
	query := `
		SELECT id, reference, package_id, participants, start_date, end_date,
		       email, first_name, last_name, phone, total_price, status,
		       session_id, created_at
		FROM bookings
		WHERE status = 'confirmed'
		  AND start_date < $2
		  AND end_date > $1
		ORDER BY start_date, id
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.BookingRecord
	for rows.Next() {
		var rec models.BookingRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Reference,
			&rec.PackageID,
			&rec.Participants,
			&rec.StartDate,
			&rec.EndDate,
			&rec.Email,
			&rec.FirstName,
			&rec.LastName,
			&rec.Phone,
			&rec.TotalPrice,
			&rec.Status,
			&rec.SessionID,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Append inserts one booking record.
func (r *BookingRepository) Append(ctx context.Context, input CreateBookingInput) (*models.BookingRecord, error) {
	query := `
		INSERT INTO bookings (reference, package_id, participants, start_date, end_date,
		                      email, first_name, last_name, phone, total_price, status, session_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, reference, package_id, participants, start_date, end_date,
		          email, first_name, last_name, phone, total_price, status,
		          session_id, created_at
	`

	var rec models.BookingRecord
	err := r.db.QueryRow(ctx, query,
		input.Reference,
		input.PackageID,
		input.Participants,
		input.StartDate,
		input.EndDate,
		input.Email,
		input.FirstName,
		input.LastName,
		input.Phone,
		input.TotalPrice,
		input.Status,
		input.SessionID,
	).Scan(
		&rec.ID,
		&rec.Reference,
		&rec.PackageID,
		&rec.Participants,
		&rec.StartDate,
		&rec.EndDate,
		&rec.Email,
		&rec.FirstName,
		&rec.LastName,
		&rec.Phone,
		&rec.TotalPrice,
		&rec.Status,
		&rec.SessionID,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
