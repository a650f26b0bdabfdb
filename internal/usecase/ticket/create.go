package ticket

import (
	"context"

	"github.com/google/uuid"

	"github.com/mondaynail/salon-api/internal/audit"
	domain "github.com/mondaynail/salon-api/internal/domain/ticket"
	"github.com/mondaynail/salon-api/internal/models"
	"github.com/mondaynail/salon-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateWorkTicketInput struct {
	Price       float64
	WorkerName  string
	Description string
	OccurredAt  string
	ImageURLs   []string

	ActorRole string
	ActorID   *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateWorkTicket struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateWorkTicket(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateWorkTicket {
	return &CreateWorkTicket{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateWorkTicket) Execute(
	ctx context.Context,
	in CreateWorkTicketInput,
) (*models.WorkTicket, error) {

	if err := domain.ValidatePrice(in.Price); err != nil {
		return nil, err
	}

	workerName, err := domain.NormalizeWorkerName(in.WorkerName)
	if err != nil {
		return nil, err
	}

	imageURLs, err := domain.NormalizeImageURLs(in.ImageURLs)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)

	occurredAt := now
	if in.OccurredAt != "" {
		occurredAt, err = domain.ParseOccurredAt(
			in.OccurredAt,
			timezone.Location(uc.tz),
		)
		if err != nil {
			return nil, err
		}
	}

	t := &models.WorkTicket{
		ID:          uuid.NewString(),
		Price:       in.Price,
		WorkerName:  workerName,
		Description: domain.NormalizeDescription(in.Description),
		ImageURLs:   imageURLs,
		Status:      string(domain.InitialStatus()),
		OccurredAt:  occurredAt,
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserRole: in.ActorRole,
		UserID:   in.ActorID,
		Action:   "work_ticket_created",
		Entity:   "work_ticket",
		EntityID: t.ID,
	})

	return t, nil
}
