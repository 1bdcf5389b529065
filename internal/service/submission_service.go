package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"minbar/internal/model"
	"minbar/internal/pkg"
	"minbar/internal/repository/mysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ExcerptMinLen  = 10
	ExcerptMaxLen  = 1500
	CitationMinLen = 10
	CitationMaxLen = 200
)

type SubmissionService struct {
	repo *mysql.SubmissionRepository
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{
		repo: &mysql.SubmissionRepository{DB: db},
	}
}

// validateLengths checks the bounds on the author's raw input, before
// rendering adds markup around it. Length is measured in characters,
// not bytes.
func validateLengths(excerpt, citation string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(excerpt)); n < ExcerptMinLen || n > ExcerptMaxLen {
		return fmt.Errorf("%w: excerpt length must be %d-%d characters", ErrValidation, ExcerptMinLen, ExcerptMaxLen)
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(citation)); n < CitationMinLen || n > CitationMaxLen {
		return fmt.Errorf("%w: citation length must be %d-%d characters", ErrValidation, CitationMinLen, CitationMaxLen)
	}
	return nil
}

// Submit validates, sanitizes and stores a new pending post. Nothing
// touches the store until validation passes; input that survives the
// bounds but sanitizes away entirely is rejected too. A UUID collision
// on insert is retried once with a fresh id before giving up.
func (s *SubmissionService) Submit(section model.Section, authorID, excerpt, citation string) (*model.Submission, error) {
	if err := validateLengths(excerpt, citation); err != nil {
		return nil, err
	}

	excerpt = pkg.Sanitize(excerpt)
	citation = pkg.Sanitize(citation)
	if excerpt == "" || citation == "" {
		return nil, fmt.Errorf("%w: content empty after sanitization", ErrValidation)
	}

	sub := &model.Submission{
		ID:       uuid.NewString(),
		AuthorID: authorID,
		Section:  section,
		Excerpt:  excerpt,
		Citation: citation,
	}

	err := s.repo.Create(sub)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		sub.ID = uuid.NewString()
		err = s.repo.Create(sub)
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) Get(section model.Section, id string) (*model.Submission, error) {
	sub, err := s.repo.Get(section, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return sub, err
}

func (s *SubmissionService) GetByID(id string) (*model.Submission, error) {
	sub, err := s.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return sub, err
}

func (s *SubmissionService) ListBySection(section model.Section, p pkg.Pagination) ([]model.Submission, error) {
	return s.repo.ListBySection(section, p.Offset(), p.Limit())
}

func (s *SubmissionService) ListByAuthor(authorID string, p pkg.Pagination) ([]model.Submission, error) {
	return s.repo.ListByAuthor(authorID, p.Offset(), p.Limit())
}

func (s *SubmissionService) ListByAuthorInSection(section model.Section, authorID string, p pkg.Pagination) ([]model.Submission, error) {
	return s.repo.ListByAuthorInSection(section, authorID, p.Offset(), p.Limit())
}
