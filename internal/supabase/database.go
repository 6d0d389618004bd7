package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

var ErrEmptyUpdate = errors.New("no fields to update")

const profileColumns = `id, email, full_name, phone_number, district, sector, cell,
		emergency_contact_name, emergency_contact_phone, insurance_provider,
		insurance_number, is_verified, is_active, last_login_at, created_at, updated_at`

// Columns a partial profile update may touch, in the order they are rendered
// into the UPDATE statement.
var profileUpdateColumns = []string{
	"full_name",
	"phone_number",
	"district",
	"sector",
	"cell",
	"emergency_contact_name",
	"emergency_contact_phone",
	"insurance_provider",
	"insurance_number",
}

// UserStore reads and writes the users table over a direct Postgres
// connection to the Supabase database.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(connectionString string) (*UserStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &UserStore{db: db}, nil
}

// Probe performs a single one-row existence query against the users table.
// An empty table is still a reachable backend.
func (s *UserStore) Probe(ctx context.Context) error {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `SELECT id FROM users LIMIT 1`).Scan(&id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return nil
}

func (s *UserStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE id = $1
	`, profileColumns), id)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *UserStore) CreateProfile(ctx context.Context, userID, email string, input models.ProfileInput) (*models.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		INSERT INTO users (id, email, full_name, phone_number, district, sector, cell,
			emergency_contact_name, emergency_contact_phone, insurance_provider, insurance_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, profileColumns),
		id, email, input.FullName, nullable(input.PhoneNumber),
		nullable(input.District), nullable(input.Sector), nullable(input.Cell),
		nullable(input.EmergencyContactName), nullable(input.EmergencyContactPhone),
		nullable(input.InsuranceProvider), nullable(input.InsuranceNumber),
	)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile writes only the given columns. Unknown columns are ignored
// rather than rejected, so callers can pass request fields through directly.
func (s *UserStore) UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	for _, column := range profileUpdateColumns {
		value, ok := fields[column]
		if !ok {
			continue
		}
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if len(args) == 1 {
		return nil, ErrEmptyUpdate
	}

	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setClauses, ", "), profileColumns), args...)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func (s *UserStore) TouchLastLogin(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE users
		SET last_login_at = NOW()
		WHERE id = $1
	`, id)
	return err
}

func (s *UserStore) Close() error {
	return s.db.Close()
}

func scanProfile(row *sql.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &p.PhoneNumber, &p.District, &p.Sector, &p.Cell,
		&p.EmergencyContactName, &p.EmergencyContactPhone, &p.InsuranceProvider,
		&p.InsuranceNumber, &p.IsVerified, &p.IsActive, &p.LastLoginAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
