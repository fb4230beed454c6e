package dto

import "time"

// CreateLeaveRequest entrada para crear una solicitud de licencia.
// Las fechas van como strings YYYY-MM-DD; el use case las parsea y valida.
type CreateLeaveRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// UpdateStatusRequest entrada para que un admin cambie el estado de una solicitud.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// LeaveResponse salida de una solicitud, incluye el nombre del solicitante.
type LeaveResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaveListResponse listado completo (sin paginación, acotado por rol en el use case).
type LeaveListResponse struct {
	LeaveRequests []LeaveResponse `json:"leave_requests"`
}
