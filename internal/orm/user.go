package orm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("orm user not found")
	ErrDuplicate = errors.New("orm user already exists")
)

// User is the ORM-side user. Its shape differs from the bot's users table:
// surrogate id, float balance, spins_left.
type User struct {
	ID            uint    `gorm:"primaryKey"`
	TelegramID    int64   `gorm:"uniqueIndex"`
	FirstName     string
	LastName      string
	Phone         string
	WalletAddress string
	Balance       float64 `gorm:"default:0"`
	SpinsLeft     int     `gorm:"default:3"`
	ReferralCode  string
}

func (User) TableName() string {
	return "users"
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return Store{db: db}
}

func (s Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("error AutoMigrate: %w", err)
	}
	return nil
}

func (s Store) Create(ctx context.Context, user *User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("error Create user: %w", err)
	}
	return nil
}

func (s Store) FindByTelegramID(ctx context.Context, telegramID int64) (User, error) {
	var user User
	err := s.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("error FindByTelegramID: %w", err)
	}
	return user, nil
}
