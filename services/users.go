package services

import (
	"context"
	"errors"
	"sync"

	"car-marketplace-api/apperror"
	"car-marketplace-api/auth"
	"car-marketplace-api/models"
	"car-marketplace-api/repository"
)

const invalidCredentials = "Invalid email and/or password"

// fallbackPlaceholderHash is a well-formed cost 10 bcrypt hash, compared
// against when the hasher cannot produce a placeholder of its own.
const fallbackPlaceholderHash = "$2a$10$.vGA1O9wmRjrwAVXD98HNOgsNpDczlqm3Jq7KnEd1rVAGv3Fykk1a"

// TokenIssuer signs identity tokens for authenticated users
type TokenIssuer interface {
	Issue(subject uint) (string, error)
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type UserService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
	tokens TokenIssuer

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(users repository.UserRepository, hasher auth.PasswordHasher, tokens TokenIssuer) *UserService {
	return &UserService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a REGULAR user. The email and username lookups both run
// before any conflict is reported; the unique indexes still decide races.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.create(ctx, in, models.RoleRegular)
}

func (s *UserService) create(ctx context.Context, in RegisterInput, role models.UserRole) (*models.User, error) {
	emailTaken, err := found(s.users.FindByEmail(ctx, in.Email))
	if err != nil {
		return nil, err
	}
	usernameTaken, err := found(s.users.FindByUsername(ctx, in.Username))
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperror.Conflict("User with email %s already exists", in.Email)
	}
	if usernameTaken {
		return nil, apperror.Conflict("User with username %s already exists", in.Username)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("User with email %s or username %s already exists", in.Email, in.Username)
		}
		return nil, err
	}
	return user, nil
}

func found(_ *models.User, err error) (bool, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Login returns a token for valid credentials. Unknown emails and wrong
// passwords fail identically, including the cost of a hash comparison.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		s.hasher.Verify(password, s.placeholderHash())
		return "", apperror.Unauthenticated(invalidCredentials)
	}
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperror.Unauthenticated(invalidCredentials)
	}
	return s.tokens.Issue(user.ID)
}

func (s *UserService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("placeholder-password")
		if err != nil || hash == "" {
			hash = fallbackPlaceholderHash
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// Me returns the profile of the authenticated caller
func (s *UserService) Me(ctx context.Context, callerID uint) (*models.CurrentUser, error) {
	user, err := s.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("User with id %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// EnsureAdmin creates the configured administrator unless a user with that
// email already exists. It reports whether a user was created.
func (s *UserService) EnsureAdmin(ctx context.Context, in RegisterInput) (bool, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	if _, err := s.create(ctx, in, models.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}
