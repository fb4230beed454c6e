package http_test

import (
	"context"
	"sort"

	"github.com/jhoicas/leave-api/internal/domain"
	"github.com/jhoicas/leave-api/internal/domain/entity"
	"github.com/jhoicas/leave-api/internal/domain/repository"
)

// Fakes en memoria con la misma semántica que los adaptadores de PostgreSQL:
// (nil, nil) cuando no hay filas, ErrEmailAlreadyExists en email duplicado,
// listados en orden de creación descendente.

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type memLeaveRepo struct {
	reqs []*entity.LeaveRequest
}

func (r *memLeaveRepo) Create(req *entity.LeaveRequest) error {
	cp := *req
	r.reqs = append(r.reqs, &cp)
	return nil
}

func (r *memLeaveRepo) GetByID(id string) (*entity.LeaveRequest, error) {
	for _, req := range r.reqs {
		if req.ID == id {
			cp := *req
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLeaveRepo) ListAll() ([]*entity.LeaveRequest, error) {
	out := make([]*entity.LeaveRequest, 0, len(r.reqs))
	for _, req := range r.reqs {
		cp := *req
		out = append(out, &cp)
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *memLeaveRepo) ListByUser(userID string) ([]*entity.LeaveRequest, error) {
	var out []*entity.LeaveRequest
	for _, req := range r.reqs {
		if req.UserID == userID {
			cp := *req
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *memLeaveRepo) UpdateStatus(id, status string) error {
	for _, req := range r.reqs {
		if req.ID == id {
			req.Status = status
			return nil
		}
	}
	return domain.ErrLeaveNotFound
}

func sortByCreatedDesc(list []*entity.LeaveRequest) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

// fakeTx ejecuta el callback directamente sobre el repo en memoria.
type fakeTx struct {
	repo *memLeaveRepo
}

func (t *fakeTx) Run(_ context.Context, fn func(repository.LeaveRequestRepository) error) error {
	return fn(t.repo)
}
