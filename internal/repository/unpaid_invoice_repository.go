package repository

import (
	"context"

	"github.com/csa-rae/gantt-api/internal/domain"
	"gorm.io/gorm"
)

type UnpaidInvoiceRepository struct {
	db *gorm.DB
}

func NewUnpaidInvoiceRepository(db *gorm.DB) *UnpaidInvoiceRepository {
	return &UnpaidInvoiceRepository{db: db}
}

// ListAll returns every unpaid invoice row in source order
func (r *UnpaidInvoiceRepository) ListAll(ctx context.Context) ([]domain.UnpaidInvoiceRow, error) {
	var rows []domain.UnpaidInvoiceRow
	err := r.db.WithContext(ctx).
		Select("project_id", "invoice_no", "comments", "invoice_date",
			"booked_date", "received_date", "amount").
		Find(&rows).Error
	return rows, err
}
