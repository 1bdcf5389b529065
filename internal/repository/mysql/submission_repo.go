package mysql

import (
	"minbar/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func (r *SubmissionRepository) Create(sub *model.Submission) error {
	return r.DB.Create(sub).Error
}

func (r *SubmissionRepository) Get(section model.Section, id string) (*model.Submission, error) {
	var sub model.Submission
	err := r.DB.Where("section = ? AND id = ?", section, id).First(&sub).Error
	return &sub, err
}

// GetByID looks a submission up regardless of section, for flows that
// only hold the id.
func (r *SubmissionRepository) GetByID(id string) (*model.Submission, error) {
	var sub model.Submission
	err := r.DB.Where("id = ?", id).First(&sub).Error
	return &sub, err
}

func (r *SubmissionRepository) ListBySection(section model.Section, offset, limit int) ([]model.Submission, error) {
	var list []model.Submission
	err := r.DB.
		Where("section = ?", section).
		Order("submitted_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *SubmissionRepository) ListByAuthor(authorID string, offset, limit int) ([]model.Submission, error) {
	var list []model.Submission
	err := r.DB.
		Where("author_id = ?", authorID).
		Order("submitted_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *SubmissionRepository) ListByAuthorInSection(section model.Section, authorID string, offset, limit int) ([]model.Submission, error) {
	var list []model.Submission
	err := r.DB.
		Where("section = ? AND author_id = ?", section, authorID).
		Order("submitted_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// Remove deletes at most one row and reports how many it hit. Zero
// means the submission was already gone; callers use that to
// short-circuit concurrent double-resolution.
func (r *SubmissionRepository) Remove(section model.Section, id string) (int64, error) {
	tx := r.DB.Where("section = ? AND id = ?", section, id).Delete(&model.Submission{})
	return tx.RowsAffected, tx.Error
}
