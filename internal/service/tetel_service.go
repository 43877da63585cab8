package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DraymeM/tiomi/internal/dto"
	"github.com/DraymeM/tiomi/internal/model"
	"github.com/DraymeM/tiomi/internal/repository"
	"github.com/DraymeM/tiomi/pkg/markdown"
)

var ErrTetelNotFound = errors.New("tétel not found")

// TetelService handles the study-item catalog and detail composition.
type TetelService interface {
	List(ctx context.Context) ([]dto.TetelSummary, error)
	GetDetails(ctx context.Context, id int64) (*dto.TetelDetailsResponse, error)
	Create(ctx context.Context, req *dto.CreateTetelRequest) (*dto.TetelRef, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTetelRequest) error
	Delete(ctx context.Context, id int64) error
}

type tetelService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTetelService creates the TetelService.
func NewTetelService(repo *repository.Repository, logger *zap.Logger) TetelService {
	return &tetelService{repo: repo, logger: logger}
}

func (s *tetelService) List(ctx context.Context) ([]dto.TetelSummary, error) {
	rows, err := s.repo.Tetel.List(ctx)
	if err != nil {
		s.logger.Error("listing tételek failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TetelSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.TetelSummary{
			ID:           row.ID,
			Name:         row.Name,
			SectionCount: row.SectionCount,
		})
	}
	return result, nil
}

func (s *tetelService) GetDetails(ctx context.Context, id int64) (*dto.TetelDetailsResponse, error) {
	tetel, err := s.repo.Tetel.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTetelNotFound
		}
		s.logger.Error("loading tétel failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	sections := make([]dto.SectionResponse, 0, len(tetel.Sections))
	derived := make([]markdown.Section, 0, len(tetel.Sections))
	for _, section := range tetel.Sections {
		sr := dto.SectionResponse{
			ID:      section.ID,
			Content: section.Content,
		}
		ds := markdown.Section{Content: section.Content}
		for _, sub := range section.Subsections {
			sr.Subsections = append(sr.Subsections, dto.SubsectionResponse{
				ID:          sub.ID,
				Title:       sub.Title,
				Description: sub.Description,
			})
			ds.Subsections = append(ds.Subsections, markdown.Subsection{
				Title:       sub.Title,
				Description: sub.Description,
			})
		}
		sections = append(sections, sr)
		derived = append(derived, ds)
	}

	var osszegzes *dto.OsszegzesResponse
	var summary string
	if tetel.Osszegzes != nil {
		osszegzes = &dto.OsszegzesResponse{Content: tetel.Osszegzes.Content}
		summary = tetel.Osszegzes.Content
	}

	return &dto.TetelDetailsResponse{
		Tetel:          dto.TetelRef{ID: tetel.ID, Name: tetel.Name},
		Sections:       sections,
		Osszegzes:      osszegzes,
		ReadingMinutes: markdown.ReadingMinutes(derived, summary),
	}, nil
}

func (s *tetelService) Create(ctx context.Context, req *dto.CreateTetelRequest) (*dto.TetelRef, error) {
	tetel := buildTetelTree(0, req.Name, req.Sections, req.Osszegzes)

	if err := s.repo.Tetel.Create(ctx, tetel); err != nil {
		s.logger.Error("creating tétel failed", zap.Error(err))
		return nil, err
	}

	return &dto.TetelRef{ID: tetel.ID, Name: tetel.Name}, nil
}

func (s *tetelService) Update(ctx context.Context, id int64, req *dto.UpdateTetelRequest) error {
	if _, err := s.repo.Tetel.GetDetails(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTetelNotFound
		}
		s.logger.Error("loading tétel failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	tetel := buildTetelTree(id, req.Name, req.Sections, req.Osszegzes)

	if err := s.repo.Tetel.Replace(ctx, tetel); err != nil {
		s.logger.Error("updating tétel failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *tetelService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Tetel.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTetelNotFound
		}
		s.logger.Error("deleting tétel failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// buildTetelTree maps a request payload onto the model tree; slice order
// becomes the stored position.
func buildTetelTree(id int64, name string, sections []dto.SectionInput, osszegzes string) *model.Tetel {
	tetel := &model.Tetel{ID: id, Name: name}

	for i, section := range sections {
		ms := model.Section{
			Content:  section.Content,
			Position: i,
		}
		for j, sub := range section.Subsections {
			ms.Subsections = append(ms.Subsections, model.Subsection{
				Title:       sub.Title,
				Description: sub.Description,
				Position:    j,
			})
		}
		tetel.Sections = append(tetel.Sections, ms)
	}

	if osszegzes != "" {
		tetel.Osszegzes = &model.Osszegzes{Content: osszegzes}
	}

	return tetel
}
