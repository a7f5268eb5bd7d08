package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/domain/repository"
)

var _ repository.ApplicantRepository = (*ApplicantRepo)(nil)

const applicantColumns = `id, company_id, first_name, last_name, email, phone, income, household_size, ami_percent, location_preference, created_at, updated_at`

// ApplicantRepo implementación del puerto ApplicantRepository sobre PostgreSQL.
type ApplicantRepo struct {
	q Querier
}

// NewApplicantRepository construye el adaptador de persistencia para solicitantes.
func NewApplicantRepository(q Querier) *ApplicantRepo {
	return &ApplicantRepo{q: q}
}

// Create persiste un nuevo solicitante.
func (r *ApplicantRepo) Create(a *entity.Applicant) error {
	query := `
		INSERT INTO applicants (` + applicantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CompanyID, a.FirstName, a.LastName, a.Email, a.Phone,
		a.Income, a.HouseholdSize, a.AMIPercent, a.LocationPreference,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert applicant: %w", err)
	}
	return nil
}

// GetByID obtiene un solicitante por ID.
func (r *ApplicantRepo) GetByID(id string) (*entity.Applicant, error) {
	return r.getOne(`SELECT `+applicantColumns+` FROM applicants WHERE id = $1`, id)
}

// GetByEmail obtiene un solicitante por email.
func (r *ApplicantRepo) GetByEmail(email string) (*entity.Applicant, error) {
	return r.getOne(`SELECT `+applicantColumns+` FROM applicants WHERE email = $1`, email)
}

func (r *ApplicantRepo) getOne(query string, arg any) (*entity.Applicant, error) {
	var a entity.Applicant
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.CompanyID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
		&a.Income, &a.HouseholdSize, &a.AMIPercent, &a.LocationPreference,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get applicant: %w", err)
	}
	return &a, nil
}

// Update actualiza los datos del solicitante.
func (r *ApplicantRepo) Update(a *entity.Applicant) error {
	query := `
		UPDATE applicants SET first_name = $2, last_name = $3, email = $4, phone = $5,
			income = $6, household_size = $7, ami_percent = $8, location_preference = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.FirstName, a.LastName, a.Email, a.Phone,
		a.Income, a.HouseholdSize, a.AMIPercent, a.LocationPreference, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update applicant: %w", err)
	}
	return nil
}

// ListByCompany lista solicitantes por company con paginación.
func (r *ApplicantRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Applicant, error) {
	query := `
		SELECT ` + applicantColumns + `
		FROM applicants WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Applicant
	for rows.Next() {
		var a entity.Applicant
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
			&a.Income, &a.HouseholdSize, &a.AMIPercent, &a.LocationPreference, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan applicant: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
