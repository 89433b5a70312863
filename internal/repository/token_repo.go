package repository

import (
	"errors"

	"go-stock-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenRepository interface {
	// GetOrCreate returns the user's token, creating it on first login. The
	// bool reports whether this call created the token.
	GetOrCreate(userID uuid.UUID) (*model.Token, bool, error)
	FindByKey(key string) (*model.Token, error)
}

type tokenRepo struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) TokenRepository {
	return &tokenRepo{db}
}

func (r *tokenRepo) GetOrCreate(userID uuid.UUID) (*model.Token, bool, error) {
	var token model.Token
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	key, err := model.GenerateTokenKey()
	if err != nil {
		return nil, false, err
	}
	token = model.Token{Key: key, UserID: userID}
	if err := r.db.Create(&token).Error; err != nil {
		// The unique index on user_id lost a race: fetch the winner.
		var existing model.Token
		if ferr := r.db.Where("user_id = ?", userID).First(&existing).Error; ferr == nil {
			return &existing, false, nil
		}
		return nil, false, err
	}
	return &token, true, nil
}

func (r *tokenRepo) FindByKey(key string) (*model.Token, error) {
	var token model.Token
	if err := r.db.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
