package entity

// ApplicationDetail es el read model de una application con sus relaciones
// anidadas, con la misma forma que produce el fetch con JOIN. Las relaciones
// ausentes quedan en nil (nunca se omiten): el transformer de view-model es el
// único punto donde un nil se convierte en defaults presentables.
type ApplicationDetail struct {
	Application Application
	Applicant   *Applicant
	Project     *Project
	Company     *Company
	Images      []ProjectImage
}

// OwnerCompanyID implementa el contrato del gate de permisos.
func (d *ApplicationDetail) OwnerCompanyID() string {
	return d.Application.CompanyID
}

// ApplicantEmail devuelve el email del solicitante, o vacío si la relación no resolvió.
func (d *ApplicationDetail) ApplicantEmail() string {
	if d.Applicant == nil {
		return ""
	}
	return d.Applicant.Email
}
