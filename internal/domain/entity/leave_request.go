package entity

import "time"

// Estados válidos para LeaveRequest. El grafo de transiciones es completo:
// un admin puede mover cualquier estado a cualquier otro, incluido volver a pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus indica si el estado pertenece al ciclo de vida de una solicitud.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// LeaveRequest es una solicitud de licencia de un usuario: rango de fechas,
// motivo y estado. Nunca se elimina; solo el estado muta tras la creación.
type LeaveRequest struct {
	ID        string
	UserID    string
	UserName  string // derivado del User dueño, solo para presentación
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    string
	CreatedAt time.Time
}
