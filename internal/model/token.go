package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Token is the opaque bearer credential issued on login. One row per user,
// created lazily and reused on every subsequent login.
type Token struct {
	Key       string    `gorm:"type:varchar(40);primaryKey" json:"key"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// GenerateTokenKey returns a 40 character hex key from 20 random bytes.
func GenerateTokenKey() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
