package repository

import "github.com/jhoicas/leave-api/internal/domain/entity"

// LeaveRequestRepository define el puerto de persistencia para LeaveRequest.
// GetByID devuelve (nil, nil) cuando la solicitud no existe.
type LeaveRequestRepository interface {
	Create(req *entity.LeaveRequest) error
	GetByID(id string) (*entity.LeaveRequest, error)
	// ListAll devuelve todas las solicitudes ordenadas por created_at descendente.
	ListAll() ([]*entity.LeaveRequest, error)
	// ListByUser devuelve las solicitudes del usuario, mismo orden.
	ListByUser(userID string) ([]*entity.LeaveRequest, error)
	UpdateStatus(id, status string) error
}
