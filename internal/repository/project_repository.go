// Package repository provides read-only access to the five legacy tables
// the Gantt aggregation is built from. Each repository selects the exact
// column set its row model declares and preserves source row order; no
// repository performs writes.
package repository

import (
	"context"

	"github.com/csa-rae/gantt-api/internal/domain"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListAll returns every project row in source order
func (r *ProjectRepository) ListAll(ctx context.Context) ([]domain.ProjectRow, error) {
	var rows []domain.ProjectRow
	err := r.db.WithContext(ctx).
		Select("project_id", "project_name", "urgency", "start_date", "end_date",
			"state", "project_manager", "project_details", "p_team", "assign_to", "reopen_status").
		Find(&rows).Error
	return rows, err
}
