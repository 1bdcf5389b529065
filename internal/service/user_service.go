package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"minbar/internal/model"
	"minbar/internal/pkg"
	"minbar/internal/repository/mysql"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
)

type UserService struct {
	repo *mysql.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo: &mysql.UserRepository{DB: db},
	}
}

// normalizeUsername lowercases and trims; usernames are stored
// case-normalized so lookups are case-insensitive.
func normalizeUsername(username string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if strings.ContainsFunc(username, unicode.IsSpace) {
		return "", fmt.Errorf("%w: username must not contain whitespace", ErrValidation)
	}
	if n := utf8.RuneCountInString(username); n < usernameMinLen || n > usernameMaxLen {
		return "", fmt.Errorf("%w: username length must be %d-%d characters", ErrValidation, usernameMinLen, usernameMaxLen)
	}
	return username, nil
}

// SignUp creates the user and signs them straight in.
func (s *UserService) SignUp(username, password string) (*model.User, string, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, "", err
	}
	if password == "" {
		return nil, "", fmt.Errorf("%w: password required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: string(hash),
		Role:     model.RoleUser,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", fmt.Errorf("%w: username taken", ErrConflict)
		}
		return nil, "", err
	}

	token, err := pkg.GenerateToken(user.ID, user.IsAdmin())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignIn verifies the credential pair and issues a token carrying the
// admin flag from the stored role.
func (s *UserService) SignIn(username, password string) (string, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return "", err
	}

	user, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return pkg.GenerateToken(user.ID, user.IsAdmin())
}
