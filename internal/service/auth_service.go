package service

import (
	"errors"

	"go-stock-api/internal/model"
	"go-stock-api/internal/repository"
	"go-stock-api/pkg/validator"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *model.RegisterRequest) (*model.UserResponse, error)
	Login(username, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token       string   `json:"token"`
	Email       string   `json:"email"`
	Created     bool     `json:"created"`
	Permissions []string `json:"permissions"`
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

func (s *authService) Register(req *model.RegisterRequest) (*model.UserResponse, error) {
	// 1. Validate the request fields
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, errs
	}

	// 2. Reject duplicate usernames
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, validator.FieldErrors{"username": "A user with that username already exists."}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 3. Hash the password and persist
	user := &model.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(user); err != nil {
		// The unique index rejects a register that raced past the duplicate
		// check; report it like any other taken username.
		if _, ferr := s.userRepo.FindByUsername(req.Username); ferr == nil {
			return nil, validator.FieldErrors{"username": "A user with that username already exists."}
		}
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	invalid := validator.FieldErrors{"non_field_errors": "Unable to log in with provided credentials."}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, invalid
	}

	// The token is created on first login and reused afterwards.
	token, created, err := s.tokenRepo.GetOrCreate(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:       token.Key,
		Email:       user.Email,
		Created:     created,
		Permissions: []string{},
	}, nil
}
