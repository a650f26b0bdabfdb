package ticket

import (
	"context"

	"github.com/mondaynail/salon-api/internal/audit"
	domain "github.com/mondaynail/salon-api/internal/domain/ticket"
	"github.com/mondaynail/salon-api/internal/models"
	"github.com/mondaynail/salon-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Only supplied fields are changed. Images are immutable after creation, so
// they are deliberately absent here.
type UpdateWorkTicketInput struct {
	Status      *string
	Price       *float64
	WorkerName  *string
	Description *string
	OccurredAt  *string

	ActorRole string
	ActorID   *uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateWorkTicket struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewUpdateWorkTicket(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *UpdateWorkTicket {
	return &UpdateWorkTicket{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateWorkTicket) Execute(
	ctx context.Context,
	id string,
	in UpdateWorkTicketInput,
) (*models.WorkTicket, error) {

	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validate every supplied field before touching the record so a bad
	// request leaves it unchanged.
	if in.Status != nil {
		status, err := domain.ValidateStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		t.Status = string(status)
	}

	if in.Price != nil {
		if err := domain.ValidatePrice(*in.Price); err != nil {
			return nil, err
		}
		t.Price = *in.Price
	}

	if in.WorkerName != nil {
		workerName, err := domain.NormalizeWorkerName(*in.WorkerName)
		if err != nil {
			return nil, err
		}
		t.WorkerName = workerName
	}

	if in.Description != nil {
		t.Description = domain.NormalizeDescription(*in.Description)
	}

	if in.OccurredAt != nil {
		occurredAt, err := domain.ParseOccurredAt(
			*in.OccurredAt,
			timezone.Location(uc.tz),
		)
		if err != nil {
			return nil, err
		}
		t.OccurredAt = occurredAt
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserRole: in.ActorRole,
		UserID:   in.ActorID,
		Action:   "work_ticket_updated",
		Entity:   "work_ticket",
		EntityID: t.ID,
	})

	return t, nil
}
