package ticket

import (
	"context"

	"github.com/mondaynail/salon-api/internal/models"
)

// Repository is the persistence contract for work tickets. Single-record
// writes rely on the store's native atomicity; there are no multi-record
// transactions and no optimistic-concurrency check on update (last writer
// wins on a given record).
type Repository interface {
	Create(
		ctx context.Context,
		t *models.WorkTicket,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.WorkTicket, error)

	// List returns every ticket, newest first (created_at descending,
	// ties broken by id so the order is total).
	List(
		ctx context.Context,
	) ([]models.WorkTicket, error)

	Update(
		ctx context.Context,
		t *models.WorkTicket,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error
}
