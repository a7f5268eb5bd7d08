package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = `id, company_id, applicant_id, project_id, status, submitted_at, reviewed_at, reviewed_by, additional_notes, developer_notes, preferred_move_in, created_at, updated_at`

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL.
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador de persistencia para applications.
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

// Create persiste una nueva application.
func (r *ApplicationRepo) Create(app *entity.Application) error {
	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		app.ID, app.CompanyID, app.ApplicantID, app.ProjectID, app.Status,
		app.SubmittedAt, app.ReviewedAt, app.ReviewedBy, app.AdditionalNotes,
		app.DeveloperNotes, app.PreferredMoveIn, app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID obtiene una application por ID (sin relaciones).
func (r *ApplicationRepo) GetByID(id string) (*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	var a entity.Application
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.CompanyID, &a.ApplicantID, &a.ProjectID, &a.Status,
		&a.SubmittedAt, &a.ReviewedAt, &a.ReviewedBy, &a.AdditionalNotes,
		&a.DeveloperNotes, &a.PreferredMoveIn, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

// GetDetailByID es el fetch con JOIN: una sola consulta trae la application
// junto con applicant, project y company anidados. LEFT JOIN: una FK rota no
// tumba la fila principal, la relación llega en nil.
//
// Sin retry ni timeout propio; se confía en los defaults del pool.
func (r *ApplicationRepo) GetDetailByID(ctx context.Context, id string) (*entity.ApplicationDetail, error) {
	query := `
		SELECT
			a.id, a.company_id, a.applicant_id, a.project_id, a.status,
			a.submitted_at, a.reviewed_at, a.reviewed_by, a.additional_notes,
			a.developer_notes, a.preferred_move_in, a.created_at, a.updated_at,
			ap.id, ap.company_id, ap.first_name, ap.last_name, ap.email, ap.phone,
			ap.income, ap.household_size, ap.ami_percent, ap.location_preference,
			ap.created_at, ap.updated_at,
			p.id, p.company_id, p.name, p.address, p.city, p.state, p.zip,
			p.total_units, p.affordable_units, p.ami_levels, p.min_income, p.max_income,
			p.status, p.latitude, p.longitude, p.description, p.amenities,
			p.pet_policy, p.smoking_policy, p.created_at, p.updated_at,
			c.id, c.name, c.key, c.plan, c.seats, c.status, c.created_at, c.updated_at
		FROM applications a
		LEFT JOIN applicants ap ON ap.id = a.applicant_id
		LEFT JOIN projects   p  ON p.id  = a.project_id
		LEFT JOIN companies  c  ON c.id  = a.company_id
		WHERE a.id = $1`

	var (
		a entity.Application

		// Columnas de relaciones como punteros: el LEFT JOIN puede traerlas en NULL.
		apID, apCompanyID, apFirst, apLast, apEmail, apPhone, apLocation *string
		apIncome                                                        *decimal.Decimal
		apHousehold, apAMI                                              *int
		apCreated, apUpdated                                            *time.Time

		pID, pCompanyID, pName, pAddress, pCity, pState, pZip *string
		pTotal, pAffordable                                   *int
		pAMILevels                                            []int32
		pMinIncome, pMaxIncome                                *decimal.Decimal
		pStatus, pDescription, pAmenities, pPet, pSmoking     *string
		pLat, pLng                                            *float64
		pCreated, pUpdated                                    *time.Time

		cID, cName, cKey, cPlan, cStatus *string
		cSeats                           *int
		cCreated, cUpdated               *time.Time
	)

	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.CompanyID, &a.ApplicantID, &a.ProjectID, &a.Status,
		&a.SubmittedAt, &a.ReviewedAt, &a.ReviewedBy, &a.AdditionalNotes,
		&a.DeveloperNotes, &a.PreferredMoveIn, &a.CreatedAt, &a.UpdatedAt,
		&apID, &apCompanyID, &apFirst, &apLast, &apEmail, &apPhone,
		&apIncome, &apHousehold, &apAMI, &apLocation, &apCreated, &apUpdated,
		&pID, &pCompanyID, &pName, &pAddress, &pCity, &pState, &pZip,
		&pTotal, &pAffordable, &pAMILevels, &pMinIncome, &pMaxIncome,
		&pStatus, &pLat, &pLng, &pDescription, &pAmenities,
		&pPet, &pSmoking, &pCreated, &pUpdated,
		&cID, &cName, &cKey, &cPlan, &cSeats, &cStatus, &cCreated, &cUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application detail: %w", err)
	}

	detail := &entity.ApplicationDetail{Application: a}

	if apID != nil {
		detail.Applicant = &entity.Applicant{
			ID:                 *apID,
			CompanyID:          deref(apCompanyID),
			FirstName:          deref(apFirst),
			LastName:           deref(apLast),
			Email:              deref(apEmail),
			Phone:              deref(apPhone),
			Income:             derefDecimal(apIncome),
			HouseholdSize:      derefInt(apHousehold),
			AMIPercent:         derefInt(apAMI),
			LocationPreference: deref(apLocation),
			CreatedAt:          derefTime(apCreated),
			UpdatedAt:          derefTime(apUpdated),
		}
	}
	if pID != nil {
		detail.Project = &entity.Project{
			ID:              *pID,
			CompanyID:       deref(pCompanyID),
			Name:            deref(pName),
			Address:         deref(pAddress),
			City:            deref(pCity),
			State:           deref(pState),
			Zip:             deref(pZip),
			TotalUnits:      derefInt(pTotal),
			AffordableUnits: derefInt(pAffordable),
			AMILevels:       pAMILevels,
			MinIncome:       derefDecimal(pMinIncome),
			MaxIncome:       derefDecimal(pMaxIncome),
			Status:          deref(pStatus),
			Latitude:        pLat,
			Longitude:       pLng,
			Description:     deref(pDescription),
			Amenities:       deref(pAmenities),
			PetPolicy:       deref(pPet),
			SmokingPolicy:   deref(pSmoking),
			CreatedAt:       derefTime(pCreated),
			UpdatedAt:       derefTime(pUpdated),
		}
	}
	if cID != nil {
		detail.Company = &entity.Company{
			ID:        *cID,
			Name:      deref(cName),
			Key:       deref(cKey),
			Plan:      deref(cPlan),
			Seats:     derefInt(cSeats),
			Status:    deref(cStatus),
			CreatedAt: derefTime(cCreated),
			UpdatedAt: derefTime(cUpdated),
		}
	}
	return detail, nil
}

// Update actualiza una application (transiciones de estado y notas).
func (r *ApplicationRepo) Update(app *entity.Application) error {
	query := `
		UPDATE applications SET status = $2, reviewed_at = $3, reviewed_by = $4,
			additional_notes = $5, developer_notes = $6, preferred_move_in = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		app.ID, app.Status, app.ReviewedAt, app.ReviewedBy,
		app.AdditionalNotes, app.DeveloperNotes, app.PreferredMoveIn, app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	return nil
}

// ListByCompany lista applications por company con paginación.
func (r *ApplicationRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Application, error) {
	return r.list(`SELECT `+applicationColumns+`
		FROM applications WHERE company_id = $1 ORDER BY submitted_at DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
}

// ListByApplicant lista applications de un solicitante con paginación.
func (r *ApplicationRepo) ListByApplicant(applicantID string, limit, offset int) ([]*entity.Application, error) {
	return r.list(`SELECT `+applicationColumns+`
		FROM applications WHERE applicant_id = $1 ORDER BY submitted_at DESC LIMIT $2 OFFSET $3`,
		applicantID, limit, offset)
}

func (r *ApplicationRepo) list(query string, args ...any) ([]*entity.Application, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Application
	for rows.Next() {
		var a entity.Application
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.ApplicantID, &a.ProjectID, &a.Status,
			&a.SubmittedAt, &a.ReviewedAt, &a.ReviewedBy, &a.AdditionalNotes,
			&a.DeveloperNotes, &a.PreferredMoveIn, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ── Helpers de deref para columnas NULL del LEFT JOIN ─────────────────────────

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
