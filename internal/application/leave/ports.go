package leave

import (
	"context"

	"github.com/jhoicas/leave-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un LeaveRequestRepository atado a una transacción.
// Lo implementa postgres.TxRunner; mantiene el cambio de estado serializado
// frente a actualizaciones concurrentes sobre la misma solicitud.
type TxRunner interface {
	Run(ctx context.Context, fn func(leaveRepo repository.LeaveRequestRepository) error) error
}
