package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/mondaynail/salon-api/internal/domain/ticket"
	"github.com/mondaynail/salon-api/internal/httperr"
	"github.com/mondaynail/salon-api/internal/models"
)

type WorkTicketGormRepository struct {
	db *gorm.DB
}

func NewWorkTicketGormRepository(db *gorm.DB) *WorkTicketGormRepository {
	return &WorkTicketGormRepository{db: db}
}

func (r *WorkTicketGormRepository) Create(
	ctx context.Context,
	t *models.WorkTicket,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *WorkTicketGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.WorkTicket, error) {

	var t models.WorkTicket
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&t).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("ticket_not_found")
		}
		return nil, err
	}
	return &t, nil
}

func (r *WorkTicketGormRepository) List(
	ctx context.Context,
) ([]models.WorkTicket, error) {

	var tickets []models.WorkTicket
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *WorkTicketGormRepository) Update(
	ctx context.Context,
	t *models.WorkTicket,
) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *WorkTicketGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.WorkTicket{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("ticket_not_found")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*WorkTicketGormRepository)(nil)
