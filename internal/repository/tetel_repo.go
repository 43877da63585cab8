package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DraymeM/tiomi/internal/model"
)

// TetelListRow is one row of the catalog listing.
type TetelListRow struct {
	ID           int64
	Name         string
	SectionCount int
}

// TetelRepository is the study-item data-access contract.
type TetelRepository interface {
	List(ctx context.Context) ([]TetelListRow, error)
	// GetDetails loads a tétel with its sections, subsections and summary.
	// Sections and subsections come back ordered by position.
	GetDetails(ctx context.Context, id int64) (*model.Tetel, error)
	Create(ctx context.Context, tetel *model.Tetel) error
	// Replace swaps a tétel's name and content tree atomically.
	Replace(ctx context.Context, tetel *model.Tetel) error
	Delete(ctx context.Context, id int64) error
}

type tetelRepo struct {
	db *gorm.DB
}

// NewTetelRepo creates the GORM-backed TetelRepository.
func NewTetelRepo(db *gorm.DB) TetelRepository {
	return &tetelRepo{db: db}
}

func (r *tetelRepo) List(ctx context.Context) ([]TetelListRow, error) {
	var rows []TetelListRow
	err := r.db.WithContext(ctx).
		Model(&model.Tetel{}).
		Select("tetelek.id, tetelek.name, COUNT(sections.id) AS section_count").
		Joins("LEFT JOIN sections ON sections.tetel_id = tetelek.id").
		Group("tetelek.id, tetelek.name").
		Order("tetelek.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tetelRepo) GetDetails(ctx context.Context, id int64) (*model.Tetel, error) {
	var tetel model.Tetel
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.position ASC")
		}).
		Preload("Sections.Subsections", func(db *gorm.DB) *gorm.DB {
			return db.Order("subsections.position ASC")
		}).
		Preload("Osszegzes").
		Where("id = ?", id).
		First(&tetel).Error
	if err != nil {
		return nil, err
	}
	return &tetel, nil
}

func (r *tetelRepo) Create(ctx context.Context, tetel *model.Tetel) error {
	return r.db.WithContext(ctx).Create(tetel).Error
}

func (r *tetelRepo) Replace(ctx context.Context, tetel *model.Tetel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Tetel{}).
			Where("id = ?", tetel.ID).
			Update("name", tetel.Name).Error; err != nil {
			return err
		}

		// Content is replaced wholesale: the payload carries the full tree.
		var sectionIDs []int64
		if err := tx.Model(&model.Section{}).
			Where("tetel_id = ?", tetel.ID).
			Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}
		if len(sectionIDs) > 0 {
			if err := tx.Where("section_id IN ?", sectionIDs).
				Delete(&model.Subsection{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("tetel_id = ?", tetel.ID).
			Delete(&model.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tetel_id = ?", tetel.ID).
			Delete(&model.Osszegzes{}).Error; err != nil {
			return err
		}

		for i := range tetel.Sections {
			tetel.Sections[i].ID = 0
			tetel.Sections[i].TetelID = tetel.ID
			for j := range tetel.Sections[i].Subsections {
				tetel.Sections[i].Subsections[j].ID = 0
			}
			if err := tx.Create(&tetel.Sections[i]).Error; err != nil {
				return err
			}
		}
		if tetel.Osszegzes != nil {
			tetel.Osszegzes.ID = 0
			tetel.Osszegzes.TetelID = tetel.ID
			if err := tx.Create(tetel.Osszegzes).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *tetelRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Tetel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
