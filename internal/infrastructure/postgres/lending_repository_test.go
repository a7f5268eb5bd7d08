package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: pgx v5 difiere los errores de ejecución del servidor hasta rows.Err()
// (Query solo devuelve errores de envío/inicio). Los fakes reproducen ese
// contrato para verificar que 42P01 diferido también degrada a ErrTableMissing.
// ──────────────────────────────────────────────────────────────────────────────

// errRows filas sin datos cuyo Err() devuelve el error diferido.
type errRows struct {
	err error
}

func (r *errRows) Close()                                       {}
func (r *errRows) Err() error                                   { return r.err }
func (r *errRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *errRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *errRows) Next() bool                                   { return false }
func (r *errRows) Scan(dest ...any) error                       { return r.err }
func (r *errRows) Values() ([]any, error)                       { return nil, r.err }
func (r *errRows) RawValues() [][]byte                          { return nil }
func (r *errRows) Conn() *pgx.Conn                              { return nil }

// fakeQuerier devuelve queryErr directamente desde Query, o (rows, nil) con
// rowsErr diferido, según cómo se configure.
type fakeQuerier struct {
	queryErr error
	rowsErr  error
	execErr  error
}

func (f *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &errRows{err: f.rowsErr}, nil
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return &errRows{err: f.rowsErr}
}

func reportFixture() *entity.Report {
	now := time.Now()
	return &entity.Report{
		ID:          "report-1",
		CompanyID:   "company-1",
		Title:       "Resumen CRA Q1",
		Kind:        "cra_summary",
		Period:      "2026-Q1",
		GeneratedAt: now,
		CreatedAt:   now,
	}
}

func undefinedTableErr(table string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:    "42P01",
		Message: `relation "` + table + `" does not exist`,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests: tabla ausente → domain.ErrTableMissing, venga el 42P01 por donde venga
// ──────────────────────────────────────────────────────────────────────────────

// 42P01 diferido en rows.Err() debe mapearse igual que el devuelto por Query.
func TestInvestmentRepo_42P01Diferido_MapeaErrTableMissing(t *testing.T) {
	repo := NewInvestmentRepository(&fakeQuerier{rowsErr: undefinedTableErr("investments")})

	list, err := repo.ListByCompany(context.Background(), "company-1", 20, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableMissing,
		"el 42P01 diferido en rows.Err() debe degradar a ErrTableMissing")
	assert.Nil(t, list)
}

func TestCRAMetricRepo_42P01Diferido_MapeaErrTableMissing(t *testing.T) {
	repo := NewCRAMetricRepository(&fakeQuerier{rowsErr: undefinedTableErr("cra_metrics")})

	_, err := repo.ListByCompany(context.Background(), "company-1")

	assert.ErrorIs(t, err, domain.ErrTableMissing)
}

func TestReportRepo_42P01Diferido_MapeaErrTableMissing(t *testing.T) {
	repo := NewReportRepository(&fakeQuerier{rowsErr: undefinedTableErr("reports")})

	_, err := repo.ListByCompany(context.Background(), "company-1", 20, 0)

	assert.ErrorIs(t, err, domain.ErrTableMissing)
}

// El camino directo (error de envío en Query) se sigue mapeando.
func TestInvestmentRepo_42P01EnQuery_MapeaErrTableMissing(t *testing.T) {
	repo := NewInvestmentRepository(&fakeQuerier{queryErr: undefinedTableErr("investments")})

	_, err := repo.ListByCompany(context.Background(), "company-1", 20, 0)

	assert.ErrorIs(t, err, domain.ErrTableMissing)
}

// Un error diferido que NO es 42P01 se propaga envuelto, nunca como tabla ausente.
func TestInvestmentRepo_ErrorDiferidoGenerico_NoDegrada(t *testing.T) {
	boom := errors.New("connection reset by peer")
	repo := NewInvestmentRepository(&fakeQuerier{rowsErr: boom})

	_, err := repo.ListByCompany(context.Background(), "company-1", 20, 0)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTableMissing,
		"solo undefined_table debe activar los placeholders del dashboard")
	assert.ErrorIs(t, err, boom)
}

// Exec devuelve los errores de servidor directamente; Create también degrada.
func TestReportRepo_Create_42P01_MapeaErrTableMissing(t *testing.T) {
	repo := NewReportRepository(&fakeQuerier{execErr: undefinedTableErr("reports")})

	err := repo.Create(reportFixture())

	assert.ErrorIs(t, err, domain.ErrTableMissing)
}
