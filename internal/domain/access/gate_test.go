package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Vivienda-api/internal/domain/access"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// fakeRecord registro mínimo para ejercitar el gate.
type fakeRecord struct {
	companyID string
	email     string
}

func (f fakeRecord) OwnerCompanyID() string { return f.companyID }
func (f fakeRecord) ApplicantEmail() string { return f.email }

// Admin ve y edita cualquier registro, sin importar company ni email.
func TestCanView_AdminSiemprePuede(t *testing.T) {
	admin := access.Caller{Role: entity.RoleAdmin}
	records := []fakeRecord{
		{companyID: "company-a", email: "x@y.com"},
		{companyID: "company-b", email: ""},
		{companyID: "", email: ""},
	}
	for _, r := range records {
		assert.True(t, access.CanView(admin, r), "admin debe ver cualquier registro")
		assert.True(t, access.CanEdit(admin, r), "admin debe editar cualquier registro")
	}
}

// Developer de la company A no puede ver registros de la company B.
func TestCanView_DeveloperCrossTenantDenegado(t *testing.T) {
	dev := access.Caller{Role: entity.RoleDeveloper, CompanyID: "company-a"}
	record := fakeRecord{companyID: "company-b"}

	assert.False(t, access.CanView(dev, record))
	assert.False(t, access.CanEdit(dev, record))
}

// Developer de la misma company ve y edita.
func TestCanView_DeveloperMismaCompany(t *testing.T) {
	dev := access.Caller{Role: entity.RoleDeveloper, CompanyID: "company-a"}
	record := fakeRecord{companyID: "company-a"}

	assert.True(t, access.CanView(dev, record))
	assert.True(t, access.CanEdit(dev, record))
}

// Applicant ve solo si su email coincide con el del solicitante; nunca edita.
func TestCanView_ApplicantPorEmail(t *testing.T) {
	caller := access.Caller{Role: entity.RoleApplicant, Email: "ana@example.com"}

	propio := fakeRecord{companyID: "company-a", email: "ana@example.com"}
	ajeno := fakeRecord{companyID: "company-a", email: "otro@example.com"}

	assert.True(t, access.CanView(caller, propio))
	assert.False(t, access.CanEdit(caller, propio), "applicant nunca edita")
	assert.False(t, access.CanView(caller, ajeno))
}

// Email vacío en ambos lados no debe dar acceso (relación sin resolver).
func TestCanView_EmailVacioNoCoincide(t *testing.T) {
	caller := access.Caller{Role: entity.RoleApplicant, Email: ""}
	record := fakeRecord{companyID: "company-a", email: ""}

	assert.False(t, access.CanView(caller, record))
}

// CompanyID vacío en el caller tampoco da acceso aunque el registro esté sin company.
func TestCanView_CompanyVaciaNoCoincide(t *testing.T) {
	caller := access.Caller{Role: entity.RoleDeveloper, CompanyID: ""}
	record := fakeRecord{companyID: ""}

	assert.False(t, access.CanView(caller, record))
}

// Rol desconocido siempre denegado.
func TestCanView_RolDesconocidoDenegado(t *testing.T) {
	caller := access.Caller{Role: "auditor", CompanyID: "company-a", Email: "a@b.com"}
	record := fakeRecord{companyID: "company-a", email: "a@b.com"}

	assert.False(t, access.CanView(caller, record))
	assert.False(t, access.CanEdit(caller, record))
}

// Lender se comporta como developer: scoping por company.
func TestCanView_LenderPorCompany(t *testing.T) {
	lender := access.Caller{Role: entity.RoleLender, CompanyID: "bank-1"}

	assert.True(t, access.CanView(lender, fakeRecord{companyID: "bank-1"}))
	assert.False(t, access.CanView(lender, fakeRecord{companyID: "bank-2"}))
}
