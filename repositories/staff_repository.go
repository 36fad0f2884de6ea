package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/shopline-auth/models"
)

// ErrStaffNotFound is returned when no staff record matches
var ErrStaffNotFound = errors.New("staff not found")

// StaffRepository interface defines staff database operations
type StaffRepository interface {
	Upsert(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	Count(ctx context.Context) (int, error)
}

// staffRepository implements StaffRepository interface
type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

// Upsert records a login: new staff are inserted, known staff get their
// details refreshed and their login count bumped.
func (r *staffRepository) Upsert(ctx context.Context, staff *models.Staff) error {
	query := `
		INSERT INTO staffs (id, merchant_id, name, email, strategy, profile, first_login_at, last_login_at, login_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1)
		ON CONFLICT(id) DO UPDATE SET
			merchant_id = excluded.merchant_id,
			name = excluded.name,
			email = excluded.email,
			strategy = excluded.strategy,
			profile = excluded.profile,
			last_login_at = excluded.last_login_at,
			login_count = staffs.login_count + 1
	`

	now := time.Now().UTC()
	profile := staff.Profile
	if profile == "" {
		profile = "{}"
	}

	_, err := r.db.ExecContext(ctx, query,
		staff.ID,
		staff.MerchantID,
		staff.Name,
		staff.Email,
		staff.Strategy,
		profile,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert staff: %w", err)
	}

	stored, err := r.GetByID(ctx, staff.ID)
	if err != nil {
		return err
	}
	*staff = *stored
	return nil
}

// GetByID retrieves a staff member by ID
func (r *staffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	query := `
		SELECT id, merchant_id, name, email, strategy, profile,
		       first_login_at, last_login_at, login_count
		FROM staffs
		WHERE id = ?
	`

	var staff models.Staff
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&staff.ID,
		&staff.MerchantID,
		&staff.Name,
		&staff.Email,
		&staff.Strategy,
		&staff.Profile,
		&staff.FirstLoginAt,
		&staff.LastLoginAt,
		&staff.LoginCount,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrStaffNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	return &staff, nil
}

// Count returns the total number of staff who have signed in
func (r *staffRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM staffs`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count staffs: %w", err)
	}

	return count, nil
}
