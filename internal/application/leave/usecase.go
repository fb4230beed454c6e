package leave

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/leave-api/internal/application/dto"
	"github.com/jhoicas/leave-api/internal/domain"
	"github.com/jhoicas/leave-api/internal/domain/entity"
	domleave "github.com/jhoicas/leave-api/internal/domain/leave"
	"github.com/jhoicas/leave-api/internal/domain/repository"
)

// LeaveUseCase casos de uso de solicitudes de licencia: crear, listar y cambiar estado.
type LeaveUseCase struct {
	leaveRepo repository.LeaveRequestRepository
	userRepo  repository.UserRepository
	tx        TxRunner
	now       func() time.Time
}

// NewLeaveUseCase construye el caso de uso.
func NewLeaveUseCase(leaveRepo repository.LeaveRequestRepository, userRepo repository.UserRepository, tx TxRunner) *LeaveUseCase {
	return &LeaveUseCase{leaveRepo: leaveRepo, userRepo: userRepo, tx: tx, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *LeaveUseCase) WithClock(now func() time.Time) *LeaveUseCase {
	uc.now = now
	return uc
}

// Create valida y persiste una nueva solicitud con estado pending.
// Orden de validación (gana el primer fallo): campos presentes → motivo no
// vacío tras trim → fechas parseables YYYY-MM-DD → end >= start → start >= hoy.
func (uc *LeaveUseCase) Create(userID string, in dto.CreateLeaveRequest) (*dto.LeaveResponse, error) {
	if in.StartDate == "" || in.EndDate == "" || in.Reason == "" {
		return nil, domain.ErrMissingFields
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, domain.ErrEmptyReason
	}
	start, err := domleave.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := domleave.ParseDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	if err := domleave.ValidateRange(start, end, uc.now()); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	req := &entity.LeaveRequest{
		ID:        uuid.New().String(),
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Status:    entity.StatusPending,
		CreatedAt: uc.now(),
	}
	if user != nil {
		req.UserName = user.Name
	}
	if err := uc.leaveRepo.Create(req); err != nil {
		return nil, err
	}
	return toLeaveResponse(req), nil
}

// List devuelve las solicitudes visibles para el llamante: todas si es admin,
// solo las propias en caso contrario. Siempre en orden de creación descendente.
func (uc *LeaveUseCase) List(callerID, callerRole string) (*dto.LeaveListResponse, error) {
	var (
		list []*entity.LeaveRequest
		err  error
	)
	if callerRole == entity.RoleAdmin {
		list, err = uc.leaveRepo.ListAll()
	} else {
		list, err = uc.leaveRepo.ListByUser(callerID)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeaveResponse, 0, len(list))
	for _, req := range list {
		items = append(items, *toLeaveResponse(req))
	}
	return &dto.LeaveListResponse{LeaveRequests: items}, nil
}

// UpdateStatus cambia el estado de una solicitud. Solo admins; el estado debe
// ser pending, approved o rejected (cualquier transición entre ellos vale,
// incluida volver a pending). Corre dentro de una transacción para que dos
// cambios concurrentes sobre la misma solicitud no se pisen.
func (uc *LeaveUseCase) UpdateStatus(ctx context.Context, callerRole, leaveID, newStatus string) (*dto.LeaveResponse, error) {
	if callerRole != entity.RoleAdmin {
		return nil, domain.ErrAdminRequired
	}
	if !entity.ValidStatus(newStatus) {
		return nil, domain.ErrInvalidStatus
	}
	var updated *entity.LeaveRequest
	err := uc.tx.Run(ctx, func(leaveRepo repository.LeaveRequestRepository) error {
		req, err := leaveRepo.GetByID(leaveID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrLeaveNotFound
		}
		if err := leaveRepo.UpdateStatus(leaveID, newStatus); err != nil {
			return err
		}
		req.Status = newStatus
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLeaveResponse(updated), nil
}

func toLeaveResponse(r *entity.LeaveRequest) *dto.LeaveResponse {
	if r == nil {
		return nil
	}
	return &dto.LeaveResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		StartDate: r.StartDate.Format(domleave.DateLayout),
		EndDate:   r.EndDate.Format(domleave.DateLayout),
		Reason:    r.Reason,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
