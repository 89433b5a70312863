package service

import (
	"errors"
	"testing"

	"go-stock-api/internal/model"
	"go-stock-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubUserRepo simulates a register losing the uniqueness race: the username
// is free at check time but taken by the time the insert runs.
type stubUserRepo struct {
	checks int
}

func (r *stubUserRepo) Create(user *model.User) error {
	return errors.New(`duplicate key value violates unique constraint "idx_users_username"`)
}

func (r *stubUserRepo) FindByUsername(username string) (*model.User, error) {
	r.checks++
	if r.checks == 1 {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.User{Username: username}, nil
}

func (r *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

type stubTokenRepo struct{}

func (r *stubTokenRepo) GetOrCreate(userID uuid.UUID) (*model.Token, bool, error) {
	return &model.Token{UserID: userID}, true, nil
}

func (r *stubTokenRepo) FindByKey(key string) (*model.Token, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestRegisterRaceOnUsernameReportsFieldError(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, &stubTokenRepo{})

	_, err := svc.Register(&model.RegisterRequest{Username: "alice", Password: "pw123"})
	require.Error(t, err)

	var fieldErrs validator.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Contains(t, fieldErrs, "username")
}
