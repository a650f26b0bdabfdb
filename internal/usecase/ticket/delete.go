package ticket

import (
	"context"

	"github.com/mondaynail/salon-api/internal/audit"
	domain "github.com/mondaynail/salon-api/internal/domain/ticket"
)

type DeleteWorkTicket struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteWorkTicket(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteWorkTicket {
	return &DeleteWorkTicket{
		repo:  repo,
		audit: audit,
	}
}

// Execute permanently removes a ticket. Already-hosted images are not cleaned
// up on the media host; the record is the only thing deleted.
func (uc *DeleteWorkTicket) Execute(
	ctx context.Context,
	id string,
	actorRole string,
	actorID *uint,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserRole: actorRole,
		UserID:   actorID,
		Action:   "work_ticket_deleted",
		Entity:   "work_ticket",
		EntityID: id,
	})

	return nil
}
