package repository

import (
	"context"

	"github.com/csa-rae/gantt-api/internal/domain"
	"gorm.io/gorm"
)

type SubprojectRepository struct {
	db *gorm.DB
}

func NewSubprojectRepository(db *gorm.DB) *SubprojectRepository {
	return &SubprojectRepository{db: db}
}

// ListAll returns every subproject row in source order
func (r *SubprojectRepository) ListAll(ctx context.Context) ([]domain.SubprojectRow, error) {
	var rows []domain.SubprojectRow
	err := r.db.WithContext(ctx).
		Select("project_id", "subproject_name", "urgency", "start_date", "sub_end_date",
			"subproject_status", "subproject_details", "assign_to", "p_team", "reopen_status").
		Find(&rows).Error
	return rows, err
}
