package repository

import (
	"context"

	"github.com/csa-rae/gantt-api/internal/domain"
	"gorm.io/gorm"
)

type ReadyInvoiceRepository struct {
	db *gorm.DB
}

func NewReadyInvoiceRepository(db *gorm.DB) *ReadyInvoiceRepository {
	return &ReadyInvoiceRepository{db: db}
}

// ListAll returns every ready-to-be-invoiced row in source order
func (r *ReadyInvoiceRepository) ListAll(ctx context.Context) ([]domain.ReadyInvoiceRow, error) {
	var rows []domain.ReadyInvoiceRow
	err := r.db.WithContext(ctx).
		Select("project_id", "invoice_number", "service_date", "due_date",
			"project_status", "price", "comments").
		Find(&rows).Error
	return rows, err
}
