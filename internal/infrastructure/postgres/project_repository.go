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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, company_id, name, address, city, state, zip, total_units, affordable_units, ami_levels, min_income, max_income, status, latitude, longitude, description, amenities, pet_policy, smoking_policy, created_at, updated_at`

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(p *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CompanyID, p.Name, p.Address, p.City, p.State, p.Zip,
		p.TotalUnits, p.AffordableUnits, p.AMILevels, p.MinIncome, p.MaxIncome,
		p.Status, p.Latitude, p.Longitude, p.Description, p.Amenities,
		p.PetPolicy, p.SmokingPolicy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Address, &p.City, &p.State, &p.Zip,
		&p.TotalUnits, &p.AffordableUnits, &p.AMILevels, &p.MinIncome, &p.MaxIncome,
		&p.Status, &p.Latitude, &p.Longitude, &p.Description, &p.Amenities,
		&p.PetPolicy, &p.SmokingPolicy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// Update actualiza un proyecto existente.
func (r *ProjectRepo) Update(p *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, address = $3, city = $4, state = $5, zip = $6,
			total_units = $7, affordable_units = $8, ami_levels = $9, min_income = $10,
			max_income = $11, status = $12, latitude = $13, longitude = $14,
			description = $15, amenities = $16, pet_policy = $17, smoking_policy = $18,
			updated_at = $19
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Address, p.City, p.State, p.Zip,
		p.TotalUnits, p.AffordableUnits, p.AMILevels, p.MinIncome, p.MaxIncome,
		p.Status, p.Latitude, p.Longitude, p.Description, p.Amenities,
		p.PetPolicy, p.SmokingPolicy, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// ListByCompany lista proyectos por company con paginación.
func (r *ProjectRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

// ListImages lista las imágenes persistidas de un proyecto, en orden.
func (r *ProjectRepo) ListImages(projectID string) ([]entity.ProjectImage, error) {
	query := `
		SELECT id, project_id, url, caption, sort_order, created_at
		FROM project_images WHERE project_id = $1 ORDER BY sort_order ASC`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project images: %w", err)
	}
	defer rows.Close()
	var list []entity.ProjectImage
	for rows.Next() {
		var img entity.ProjectImage
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.URL, &img.Caption, &img.SortOrder, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project image: %w", err)
		}
		list = append(list, img)
	}
	return list, rows.Err()
}

// SearchByBounds búsqueda por bounding box. Solo proyectos geocodificados
// (latitude/longitude NOT NULL).
func (r *ProjectRepo) SearchByBounds(ctx context.Context, minLat, maxLat, minLng, maxLng float64, limit int) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		  AND latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		ORDER BY created_at DESC LIMIT $5`
	rows, err := r.q.Query(ctx, query, minLat, maxLat, minLng, maxLng, limit)
	if err != nil {
		return nil, fmt.Errorf("search projects by bounds: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

func scanProjects(rows pgx.Rows) ([]*entity.Project, error) {
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Address, &p.City, &p.State, &p.Zip,
			&p.TotalUnits, &p.AffordableUnits, &p.AMILevels, &p.MinIncome, &p.MaxIncome,
			&p.Status, &p.Latitude, &p.Longitude, &p.Description, &p.Amenities,
			&p.PetPolicy, &p.SmokingPolicy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
