package mysql

import (
	"minbar/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) Get(section model.Section, id string) (*model.Post, error) {
	var post model.Post
	err := r.DB.Where("section = ? AND id = ?", section, id).First(&post).Error
	return &post, err
}

func (r *PostRepository) ListBySection(section model.Section, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("section = ?", section).
		Order("submitted_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByAuthor(authorID string, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("author_id = ?", authorID).
		Order("submitted_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByAuthorInSection(section model.Section, authorID string, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("section = ? AND author_id = ?", section, authorID).
		Order("submitted_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// Remove is the admin-initiated deletion, independent of moderation.
func (r *PostRepository) Remove(section model.Section, id string) (int64, error) {
	tx := r.DB.Where("section = ? AND id = ?", section, id).Delete(&model.Post{})
	return tx.RowsAffected, tx.Error
}
