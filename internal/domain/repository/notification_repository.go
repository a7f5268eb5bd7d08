package repository

import "github.com/jhoicas/Vivienda-api/internal/domain/entity"

// NotificationRepository puerto de persistencia para notificaciones in-app.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListByUser(userID string, limit, offset int) ([]*entity.Notification, error)
	CountUnread(userID string) (int, error)
	MarkRead(id, userID string) error
}

// DocumentRepository puerto de persistencia para metadatos de documentos.
type DocumentRepository interface {
	Create(d *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Document, error)
	Delete(id string) error
}
