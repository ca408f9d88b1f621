package service

import (
	"context"
	"time"

	"user-microservice/internal/api/models"
	"user-microservice/internal/api/repository"
	"user-microservice/internal/pagination"
	"user-microservice/internal/validator"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	List(ctx context.Context, params pagination.Params) (*pagination.Page[models.User], error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
}

type userService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, jwtSecret []byte) UserService {
	return &userService{userRepo: userRepo, jwtSecret: jwtSecret}
}

// List returns one page of the full user listing.
func (s *userService) List(ctx context.Context, params pagination.Params) (*pagination.Page[models.User], error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return pagination.Paginate(users, params), nil
}

// Get returns the user for id, or ErrUserNotFound.
func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create persists a new user and returns it with its assigned id.
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	return s.userRepo.Create(ctx, req.ToUser())
}

// Update merges the patch onto the stored user. Absence surfaces as
// ErrUserNotFound.
func (s *userService) Update(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	user, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes the user for id. Absence surfaces as ErrUserNotFound.
func (s *userService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// Register creates a user from bare credentials. The email must not already
// be registered; the stored password is bcrypt-hashed and the returned token
// is a signed JWT minted for the new user.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if err := validator.GetValidator().StructCtx(ctx, req); err != nil {
		return nil, ErrMissingCredentials
	}

	// Check if the email is already registered
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Email,
		"iat": time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Token:    tokenString,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return &models.RegisterResponse{ID: created.ID, Token: created.Token}, nil
}
