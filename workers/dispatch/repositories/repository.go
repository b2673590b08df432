package repositories

import (
	"gorm.io/gorm"

	"shipx-dispatch-service/workers/dispatch/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the workflow_runs table when it does not exist yet.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&models.WorkflowRun{})
}

// SaveRun creates or updates a workflow run record
func (r *Repository) SaveRun(run *models.WorkflowRun) error {
	return r.db.Save(run).Error
}

// GetRecentRuns returns the latest runs, newest first
func (r *Repository) GetRecentRuns(limit int) ([]models.WorkflowRun, error) {
	var runs []models.WorkflowRun
	err := r.db.Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
