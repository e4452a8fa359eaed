package repository

import (
	"context"

	"github.com/csa-rae/gantt-api/internal/domain"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// ListAll returns every invoiced row in source order
func (r *InvoiceRepository) ListAll(ctx context.Context) ([]domain.InvoiceRow, error) {
	var rows []domain.InvoiceRow
	err := r.db.WithContext(ctx).
		Select("project_id", "invoice_number", "service_date", "due_date",
			"payment_status", "amount", "comment").
		Find(&rows).Error
	return rows, err
}
