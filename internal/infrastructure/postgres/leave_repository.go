package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/leave-api/internal/domain/entity"
	"github.com/jhoicas/leave-api/internal/domain/repository"
)

var _ repository.LeaveRequestRepository = (*LeaveRepo)(nil)

// LeaveRepo implementación del puerto LeaveRequestRepository sobre PostgreSQL.
// Las lecturas unen con users para derivar el nombre del solicitante.
type LeaveRepo struct {
	q Querier
	// forUpdate hace que GetByID bloquee la fila (repos atados a transacción).
	forUpdate bool
}

// NewLeaveRequestRepository construye el adaptador de persistencia para solicitudes.
func NewLeaveRequestRepository(q Querier) *LeaveRepo {
	return &LeaveRepo{q: q}
}

const leaveColumns = `
	lr.id, lr.user_id, u.name, lr.start_date, lr.end_date, lr.reason, lr.status, lr.created_at`

// Create persiste una nueva solicitud.
func (r *LeaveRepo) Create(req *entity.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (id, user_id, start_date, end_date, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.UserID, req.StartDate, req.EndDate, req.Reason, req.Status, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert leave request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID. Devuelve (nil, nil) si no existe.
// Un id que no es UUID no puede existir en la tabla: se trata como no
// encontrado en lugar de dejar que falle el codec de pgx.
// En un repo transaccional la fila queda bloqueada hasta el commit.
func (r *LeaveRepo) GetByID(id string) (*entity.LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests lr JOIN users u ON u.id = lr.user_id
		WHERE lr.id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE OF lr`
	}
	var lr entity.LeaveRequest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&lr.ID, &lr.UserID, &lr.UserName, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave request by id: %w", err)
	}
	return &lr, nil
}

// ListAll devuelve todas las solicitudes, más recientes primero. Sin paginación.
func (r *LeaveRepo) ListAll() ([]*entity.LeaveRequest, error) {
	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests lr JOIN users u ON u.id = lr.user_id
		ORDER BY lr.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	return scanLeaves(rows)
}

// ListByUser devuelve las solicitudes de un usuario, más recientes primero.
func (r *LeaveRepo) ListByUser(userID string) ([]*entity.LeaveRequest, error) {
	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests lr JOIN users u ON u.id = lr.user_id
		WHERE lr.user_id = $1
		ORDER BY lr.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list leave requests by user: %w", err)
	}
	return scanLeaves(rows)
}

// UpdateStatus fija el nuevo estado de la solicitud.
func (r *LeaveRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE leave_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update leave status: %w", err)
	}
	return nil
}

func scanLeaves(rows pgx.Rows) ([]*entity.LeaveRequest, error) {
	defer rows.Close()
	var list []*entity.LeaveRequest
	for rows.Next() {
		var lr entity.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.UserID, &lr.UserName, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		list = append(list, &lr)
	}
	return list, rows.Err()
}
