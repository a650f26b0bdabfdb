package ticket

import (
	"context"

	domain "github.com/mondaynail/salon-api/internal/domain/ticket"
	"github.com/mondaynail/salon-api/internal/models"
)

type ListWorkTickets struct {
	repo domain.Repository
}

func NewListWorkTickets(repo domain.Repository) *ListWorkTickets {
	return &ListWorkTickets{repo: repo}
}

func (uc *ListWorkTickets) Execute(
	ctx context.Context,
) ([]models.WorkTicket, error) {
	return uc.repo.List(ctx)
}

type GetWorkTicket struct {
	repo domain.Repository
}

func NewGetWorkTicket(repo domain.Repository) *GetWorkTicket {
	return &GetWorkTicket{repo: repo}
}

func (uc *GetWorkTicket) Execute(
	ctx context.Context,
	id string,
) (*models.WorkTicket, error) {
	return uc.repo.GetByID(ctx, id)
}
