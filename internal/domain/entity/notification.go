package entity

import "time"

// Notification notificación in-app para un usuario.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	Kind      string // application_update, match_found, report_ready
	Read      bool
	CreatedAt time.Time
}

// Document metadatos de un documento subido (la carga física vive en el storage externo).
type Document struct {
	ID          string
	CompanyID   string
	OwnerID     string // user o applicant dueño del documento
	Name        string
	ContentType string
	SizeBytes   int64
	StorageKey  string // key en el bucket externo; esta app solo guarda la referencia
	CreatedAt   time.Time
}
