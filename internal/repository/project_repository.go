package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/domain"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID loads a project with all its line collections
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).
		Preload("Materials", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Labor", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Extras", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Materials", "Labor", "Extras").
		Delete(&domain.Project{BaseModel: domain.BaseModel{ID: id}}).Error
}

// List returns projects with their line collections preloaded so the
// service can compute summary totals without extra round trips.
// Archived projects are excluded unless the status filter asks for
// them explicitly.
func (r *ProjectRepository) List(ctx context.Context, page, pageSize int, search string, status domain.ProjectStatus) ([]domain.Project, int64, error) {
	var projects []domain.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Project{})

	if status != "" {
		query = query.Where("status = ?", status)
	} else {
		query = query.Where("status <> ?", domain.ProjectStatusArchived)
	}

	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(client_name) LIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Materials").
		Preload("Labor").
		Preload("Extras").
		Offset(offset).Limit(pageSize).
		Order("updated_at DESC").
		Find(&projects).Error

	return projects, total, err
}

// ListAll returns every non-archived project with lines preloaded,
// for dashboard aggregation and the margin watch job.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.ProjectStatusArchived).
		Preload("Materials").
		Preload("Labor").
		Preload("Extras").
		Order("updated_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) CountByStatus(ctx context.Context) (map[domain.ProjectStatus]int, error) {
	type row struct {
		Status domain.ProjectStatus
		Count  int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&domain.Project{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.ProjectStatus]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// ReplaceMaterials swaps a project's material collection in one
// transaction so a failed write never leaves a half-replaced set.
func (r *ProjectRepository) ReplaceMaterials(ctx context.Context, projectID uuid.UUID, lines []domain.MaterialLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&domain.MaterialLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return touchProject(tx, projectID)
		}
		for i := range lines {
			lines[i].ProjectID = projectID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		return touchProject(tx, projectID)
	})
}

// ReplaceLabor swaps a project's labor collection in one transaction
func (r *ProjectRepository) ReplaceLabor(ctx context.Context, projectID uuid.UUID, lines []domain.LaborLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&domain.LaborLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return touchProject(tx, projectID)
		}
		for i := range lines {
			lines[i].ProjectID = projectID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		return touchProject(tx, projectID)
	})
}

// ReplaceExtras swaps a project's extras collection in one transaction
func (r *ProjectRepository) ReplaceExtras(ctx context.Context, projectID uuid.UUID, lines []domain.ExtraCostLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&domain.ExtraCostLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return touchProject(tx, projectID)
		}
		for i := range lines {
			lines[i].ProjectID = projectID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		return touchProject(tx, projectID)
	})
}

// touchProject bumps the parent's updated_at when a line collection
// changes, so list ordering reflects line edits too.
func touchProject(tx *gorm.DB, projectID uuid.UUID) error {
	return tx.Model(&domain.Project{}).Where("id = ?", projectID).
		Update("updated_at", time.Now().UTC()).Error
}
