package db

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

// SeedUser is one account created by Seed.
type SeedUser struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      dto.Role
}

var ErrSeedPassword = errors.New("seed user needs a password")

// Seed creates users only when the users table is empty. It reports how
// many users were created.
func Seed(ctx context.Context, db *gorm.DB, users []SeedUser) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	rows := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Password == "" {
			return 0, ErrSeedPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}
		rows = append(rows, models.User{
			Username:     u.Username,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			PasswordHash: string(hash),
			Role:         string(u.Role),
		})
	}

	if len(rows) == 0 {
		return 0, nil
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}
