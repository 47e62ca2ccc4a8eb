package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "roundup/internal/errors"
	"roundup/internal/logger"
	"roundup/internal/models"
	"roundup/internal/store"
)

// userService handles registration, login and profile updates.
type userService struct {
	store store.Store
}

// NewUserService creates a new UserServicer.
func NewUserService(st store.Store) UserServicer {
	return &userService{store: st}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with a bcrypt-hashed password.
func (s *userService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name, email and password are required")
	}

	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	// Check if user with email exists
	if _, err := s.store.Users().FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.ForUser(user.ID).Info("user registered")
	return user, nil
}

// Login checks credentials. Unknown emails and wrong passwords fail the same way.
func (s *userService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	user, err := s.store.Users().FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of update.
func (s *userService) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name cannot be empty")
		}
		user.Name = name
	}

	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		if email == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email cannot be empty")
		}
		if email != user.Email {
			existing, err := s.store.Users().FindByEmail(ctx, email)
			switch {
			case err == nil && existing.ID != user.ID:
				return nil, apperrors.ErrDuplicateEmail
			case err != nil && !errors.Is(err, store.ErrNotFound):
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			user.Email = email
		}
	}

	setIfPresent(&user.FirstName, update.FirstName)
	setIfPresent(&user.LastName, update.LastName)
	setIfPresent(&user.Phone, update.Phone)
	setIfPresent(&user.Address, update.Address)
	setIfPresent(&user.City, update.City)
	setIfPresent(&user.Zip, update.Zip)
	if update.DOB != nil {
		dob := *update.DOB
		user.DOB = &dob
	}

	if err := s.store.Users().Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
