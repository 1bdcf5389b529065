package service

import (
	"errors"

	"minbar/internal/model"
	"minbar/internal/pkg"
	"minbar/internal/repository/mysql"

	"gorm.io/gorm"
)

type PostService struct {
	repo *mysql.PostRepository
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		repo: &mysql.PostRepository{DB: db},
	}
}

func (s *PostService) Get(section model.Section, id string) (*model.Post, error) {
	post, err := s.repo.Get(section, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return post, err
}

func (s *PostService) ListBySection(section model.Section, p pkg.Pagination) ([]model.Post, error) {
	return s.repo.ListBySection(section, p.Offset(), p.Limit())
}

func (s *PostService) ListByAuthor(authorID string, p pkg.Pagination) ([]model.Post, error) {
	return s.repo.ListByAuthor(authorID, p.Offset(), p.Limit())
}

func (s *PostService) ListByAuthorInSection(section model.Section, authorID string, p pkg.Pagination) ([]model.Post, error) {
	return s.repo.ListByAuthorInSection(section, authorID, p.Offset(), p.Limit())
}

// Delete removes a published post; independent of moderation.
func (s *PostService) Delete(section model.Section, id string) error {
	affected, err := s.repo.Remove(section, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
