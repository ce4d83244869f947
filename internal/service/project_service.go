package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/mapper"
	"github.com/meubelwerk/offerte-api/internal/repository"
)

// defaultMarginPct is the project-wide margin a fresh quote starts
// with; the maker tunes it per project afterwards.
const defaultMarginPct = 20

type ProjectService struct {
	projectRepo    *repository.ProjectRepository
	settingsRepo   *repository.SettingsRepository
	libraryRepo    *repository.LibraryRepository
	docNumbers     *DocumentNumberService
	documentPrefix string
	logger         *zap.Logger
}

func NewProjectService(
	projectRepo *repository.ProjectRepository,
	settingsRepo *repository.SettingsRepository,
	libraryRepo *repository.LibraryRepository,
	docNumbers *DocumentNumberService,
	documentPrefix string,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:    projectRepo,
		settingsRepo:   settingsRepo,
		libraryRepo:    libraryRepo,
		docNumbers:     docNumbers,
		documentPrefix: documentPrefix,
		logger:         logger,
	}
}

// Create creates a new draft project. VAT rate and the initial
// production labor line come from the settings singleton; both margins
// start enabled at the standard percentage.
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDTO, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	number, err := s.docNumbers.Next(ctx)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		DocumentNumber:        number,
		Title:                 req.Title,
		ClientName:            req.ClientName,
		Status:                domain.ProjectStatusDraft,
		Currency:              "EUR",
		VatRate:               settings.DefaultVatRate,
		Notes:                 req.Notes,
		MaterialMarginEnabled: true,
		MaterialMarginPct:     defaultMarginPct,
		LaborMarginEnabled:    true,
		LaborMarginPct:        defaultMarginPct,
		Labor: []domain.LaborLine{
			{
				Type:           domain.LaborTypeProduction,
				Hours:          0,
				CostRate:       settings.DefaultLaborCostRate,
				TravelBillable: true,
			},
		},
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		s.logger.Error("failed to create project", zap.Error(err))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created",
		zap.String("id", project.ID.String()),
		zap.Int("documentNumber", project.DocumentNumber),
		zap.String("title", project.Title))

	return mapper.ToProjectDTO(project, s.documentPrefix), nil
}

// GetByID returns a project with all lines and computed totals
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return mapper.ToProjectDTO(project, s.documentPrefix), nil
}

// GetTotals recomputes the money breakdown of a project
func (s *ProjectService) GetTotals(ctx context.Context, id uuid.UUID) (*domain.ProjectTotals, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	totals := mapper.ToProjectDTO(project, s.documentPrefix).Totals
	return &totals, nil
}

// List returns a page of project summaries
func (s *ProjectService) List(ctx context.Context, page, pageSize int, search string, status domain.ProjectStatus) (*domain.PaginatedResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	projects, total, err := s.projectRepo.List(ctx, page, pageSize, search, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	summaries := make([]domain.ProjectSummaryDTO, len(projects))
	for i := range projects {
		summaries[i] = mapper.ToProjectSummaryDTO(&projects[i], s.documentPrefix)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &domain.PaginatedResponse{
		Data:       summaries,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Update applies partial updates to project header fields and margin
// settings. Line collections are managed through the replace calls.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProjectRequest) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		project.Status = *req.Status
	}
	if req.VatRate != nil {
		project.VatRate = *req.VatRate
	}
	if req.Notes != nil {
		project.Notes = *req.Notes
	}
	if req.MaterialMarginEnabled != nil {
		project.MaterialMarginEnabled = *req.MaterialMarginEnabled
	}
	if req.MaterialMarginPct != nil {
		project.MaterialMarginPct = *req.MaterialMarginPct
	}
	if req.LaborMarginEnabled != nil {
		project.LaborMarginEnabled = *req.LaborMarginEnabled
	}
	if req.LaborMarginPct != nil {
		project.LaborMarginPct = *req.LaborMarginPct
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		s.logger.Error("failed to update project", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return mapper.ToProjectDTO(project, s.documentPrefix), nil
}

// Delete removes a project with all its lines
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete project", zap.String("id", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Info("project deleted", zap.String("id", id.String()))
	return nil
}

// Archive moves a project out of the working set without deleting it
func (s *ProjectService) Archive(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	status := domain.ProjectStatusArchived
	return s.Update(ctx, id, &domain.UpdateProjectRequest{Status: &status})
}

// Duplicate copies a project under a fresh document number. All lines
// are copied; the clone starts as a draft so the maker can rework the
// quote without touching the original.
func (s *ProjectService) Duplicate(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	source, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	number, err := s.docNumbers.Next(ctx)
	if err != nil {
		return nil, err
	}

	clone := &domain.Project{
		DocumentNumber:        number,
		Title:                 source.Title + " (kopie)",
		ClientName:            source.ClientName,
		Status:                domain.ProjectStatusDraft,
		Currency:              source.Currency,
		VatRate:               source.VatRate,
		Notes:                 source.Notes,
		MaterialMarginEnabled: source.MaterialMarginEnabled,
		MaterialMarginPct:     source.MaterialMarginPct,
		LaborMarginEnabled:    source.LaborMarginEnabled,
		LaborMarginPct:        source.LaborMarginPct,
	}

	clone.Materials = make([]domain.MaterialLine, len(source.Materials))
	for i, line := range source.Materials {
		line.BaseModel = domain.BaseModel{}
		line.ProjectID = uuid.Nil
		clone.Materials[i] = line
	}
	clone.Labor = make([]domain.LaborLine, len(source.Labor))
	for i, line := range source.Labor {
		line.BaseModel = domain.BaseModel{}
		line.ProjectID = uuid.Nil
		clone.Labor[i] = line
	}
	clone.Extras = make([]domain.ExtraCostLine, len(source.Extras))
	for i, line := range source.Extras {
		line.BaseModel = domain.BaseModel{}
		line.ProjectID = uuid.Nil
		clone.Extras[i] = line
	}

	if err := s.projectRepo.Create(ctx, clone); err != nil {
		s.logger.Error("failed to duplicate project", zap.String("sourceId", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to duplicate project: %w", err)
	}

	s.logger.Info("project duplicated",
		zap.String("sourceId", id.String()),
		zap.String("copyId", clone.ID.String()),
		zap.Int("documentNumber", clone.DocumentNumber))

	return mapper.ToProjectDTO(clone, s.documentPrefix), nil
}

// ReplaceMaterials swaps the full material collection of a project.
// Lines picked from the catalog keep the unit cost sent by the client;
// the reference to the catalog entry is validated but the price is a
// snapshot taken at pick time.
func (s *ProjectService) ReplaceMaterials(ctx context.Context, id uuid.UUID, req *domain.ReplaceMaterialLinesRequest) (*domain.ProjectDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	lines := make([]domain.MaterialLine, len(req.Materials))
	for i := range req.Materials {
		if libID := req.Materials[i].LibraryItemID; libID != nil {
			if _, err := s.libraryRepo.GetByID(ctx, *libID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("%w: %s", ErrLibraryItemNotFound, libID)
				}
				return nil, fmt.Errorf("failed to verify library material: %w", err)
			}
		}
		lines[i] = mapper.MaterialLineFromRequest(&req.Materials[i])
	}

	if err := s.projectRepo.ReplaceMaterials(ctx, id, lines); err != nil {
		s.logger.Error("failed to replace materials", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to replace materials: %w", err)
	}

	return s.GetByID(ctx, id)
}

// ReplaceLabor swaps the full labor collection of a project
func (s *ProjectService) ReplaceLabor(ctx context.Context, id uuid.UUID, req *domain.ReplaceLaborLinesRequest) (*domain.ProjectDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	lines := make([]domain.LaborLine, len(req.Labor))
	for i := range req.Labor {
		lines[i] = mapper.LaborLineFromRequest(&req.Labor[i])
	}

	if err := s.projectRepo.ReplaceLabor(ctx, id, lines); err != nil {
		s.logger.Error("failed to replace labor", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to replace labor: %w", err)
	}

	return s.GetByID(ctx, id)
}

// ReplaceExtras swaps the full extras collection of a project
func (s *ProjectService) ReplaceExtras(ctx context.Context, id uuid.UUID, req *domain.ReplaceExtraLinesRequest) (*domain.ProjectDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	lines := make([]domain.ExtraCostLine, len(req.Extras))
	for i := range req.Extras {
		lines[i] = mapper.ExtraCostLineFromRequest(&req.Extras[i])
	}

	if err := s.projectRepo.ReplaceExtras(ctx, id, lines); err != nil {
		s.logger.Error("failed to replace extras", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to replace extras: %w", err)
	}

	return s.GetByID(ctx, id)
}
