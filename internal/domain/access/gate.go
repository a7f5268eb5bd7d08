// Package access implementa el gate de permisos: funciones puras, síncronas y
// sin I/O que deciden si un caller puede ver o editar un registro. La denegación
// se renderiza como estado terminal "access denied", nunca como excepción.
package access

import "github.com/jhoicas/Vivienda-api/internal/domain/entity"

// Caller identidad mínima del usuario autenticado, extraída de los claims JWT.
type Caller struct {
	Role      string
	CompanyID string
	Email     string
}

// Protected contrato que debe cumplir un registro para evaluarse en el gate.
// ApplicantEmail devuelve vacío si el registro no tiene solicitante asociado
// (o si la relación no pudo resolverse).
type Protected interface {
	OwnerCompanyID() string
	ApplicantEmail() string
}

// CanView decide visibilidad según la tabla de política:
//
//	admin                         -> siempre
//	developer / lender            -> company_id coincide
//	applicant                     -> email del solicitante coincide
//	cualquier otro caso           -> denegado
func CanView(caller Caller, record Protected) bool {
	switch caller.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleDeveloper, entity.RoleLender:
		return caller.CompanyID != "" && caller.CompanyID == record.OwnerCompanyID()
	case entity.RoleApplicant:
		return caller.Email != "" && caller.Email == record.ApplicantEmail()
	default:
		return false
	}
}

// CanEdit decide edición: igual que CanView salvo que los applicants nunca editan.
func CanEdit(caller Caller, record Protected) bool {
	switch caller.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleDeveloper, entity.RoleLender:
		return caller.CompanyID != "" && caller.CompanyID == record.OwnerCompanyID()
	default:
		return false
	}
}
