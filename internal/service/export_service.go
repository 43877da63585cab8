package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/DraymeM/tiomi/internal/repository"
	"github.com/DraymeM/tiomi/pkg/markdown"
)

var ErrExportNoTetelek = errors.New("no tételek to export")

// ExportService renders the catalog as a downloadable Excel workbook.
// The buffer is returned to the handler, which sets the download headers.
type ExportService interface {
	ExportTetelek(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportTetelek(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.repo.Tetel.List(ctx)
	if err != nil {
		s.logger.Error("listing tételek failed", zap.Error(err))
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNoTetelek
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tételek"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	headers := []string{"ID", "Name", "Sections", "Reading minutes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	for i, row := range rows {
		minutes := 0
		details, err := s.repo.Tetel.GetDetails(ctx, row.ID)
		if err != nil {
			s.logger.Warn("skipping reading estimate", zap.Int64("id", row.ID), zap.Error(err))
		} else {
			sections := make([]markdown.Section, 0, len(details.Sections))
			for _, section := range details.Sections {
				ms := markdown.Section{Content: section.Content}
				for _, sub := range section.Subsections {
					ms.Subsections = append(ms.Subsections, markdown.Subsection{
						Title:       sub.Title,
						Description: sub.Description,
					})
				}
				sections = append(sections, ms)
			}
			summary := ""
			if details.Osszegzes != nil {
				summary = details.Osszegzes.Content
			}
			minutes = markdown.ReadingMinutes(sections, summary)
		}

		values := []interface{}{row.ID, row.Name, row.SectionCount, minutes}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("writing workbook failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("tetelek_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}
