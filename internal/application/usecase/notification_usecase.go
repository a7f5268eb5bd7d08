package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Vivienda-api/internal/application/dto"
	"github.com/jhoicas/Vivienda-api/internal/domain"
	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/domain/repository"
)

// NotificationUseCase casos de uso de notificaciones in-app.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// ListByUser lista las notificaciones del usuario con contador de no leídas.
func (uc *NotificationUseCase) ListByUser(userID string, limit, offset int) (*dto.NotificationListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := uc.repo.CountUnread(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Kind:      n.Kind,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{Items: items, Unread: unread}, nil
}

// MarkRead marca una notificación como leída. El repo scopea por userID: un
// usuario no puede marcar notificaciones ajenas.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	return uc.repo.MarkRead(id, userID)
}

// DocumentUseCase casos de uso de metadatos de documentos. El binario vive en
// el storage externo; aquí solo se registra la referencia.
type DocumentUseCase struct {
	repo repository.DocumentRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo}
}

// Create registra la referencia a un documento ya subido.
func (uc *DocumentUseCase) Create(companyID, ownerID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	doc := &entity.Document{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		OwnerID:     ownerID,
		Name:        in.Name,
		ContentType: in.ContentType,
		SizeBytes:   in.SizeBytes,
		StorageKey:  in.StorageKey,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(doc); err != nil {
		return nil, err
	}
	return documentToResponse(doc), nil
}

// ListByOwner lista los documentos de un owner con paginación.
func (uc *DocumentUseCase) ListByOwner(ownerID string, limit, offset int) ([]dto.DocumentResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *documentToResponse(d))
	}
	return items, nil
}

// Delete elimina la referencia. El owner debe coincidir: borrar referencias
// ajenas devuelve domain.ErrForbidden.
func (uc *DocumentUseCase) Delete(id, ownerID string) error {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if doc.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func documentToResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		StorageKey:  d.StorageKey,
		CreatedAt:   d.CreatedAt,
	}
}
