package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/entoni-coder/telegrambot/internal/repo"
	"github.com/entoni-coder/telegrambot/internal/repo/errs"
	"github.com/entoni-coder/telegrambot/model"
)

const (
	referralCodeLength   = 8
	referralCodeAttempts = 3
	maxWalletLength      = 128
)

var (
	ErrInvalidWallet  = errors.New("invalid wallet address")
	ErrUnknownPackage = errors.New("unknown spin package")
)

var newReferralCode = generateCode

type Service struct {
	repo repo.Repository
}

func New(repo repo.Repository) Service {
	return Service{
		repo: repo,
	}
}

type RegisterParams struct {
	UserID    int64
	FirstName string
	LastName  string
	Username  string
	Wallet    string
}

func (s *Service) GetUser(ctx context.Context, userID int64) (model.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("error repo.GetUser: %w", err)
	}
	return user, nil
}

// RegisterUser stores a new user with a fresh referral code. A code collision
// is retried with a new code.
func (s *Service) RegisterUser(ctx context.Context, p RegisterParams) (model.User, error) {
	wallet, err := normalizeWallet(p.Wallet)
	if err != nil {
		return model.User{}, err
	}

	newUser := model.NewUser{
		ID:        p.UserID,
		FirstName: p.FirstName,
		LastName:  optional(p.LastName),
		Wallet:    wallet,
		Username:  optional(p.Username),
	}

	for attempt := 0; ; attempt++ {
		newUser.ReferralCode, err = newReferralCode(referralCodeLength)
		if err != nil {
			return model.User{}, err
		}

		err = s.repo.CreateUser(ctx, newUser)
		if errors.Is(err, errs.ErrReferralCodeTaken) && attempt+1 < referralCodeAttempts {
			continue
		}
		if err != nil {
			return model.User{}, fmt.Errorf("error repo.CreateUser: %w", err)
		}
		break
	}

	return s.GetUser(ctx, p.UserID)
}

func (s *Service) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	err := s.repo.UpdateUser(ctx, userID, model.UserUpdate{Phone: &phone})
	if err != nil {
		return fmt.Errorf("error repo.UpdateUser: %w", err)
	}

	return nil
}

// ResetUser removes the user row unconditionally.
func (s *Service) ResetUser(ctx context.Context, userID int64) error {
	err := s.repo.DeleteUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("error repo.DeleteUser: %w", err)
	}

	return nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error repo.ListUsers: %w", err)
	}

	return users, nil
}

// RequestSpinPurchase records a pending purchase of the package. Neither the
// balance nor the spin count is changed here; settlement happens elsewhere.
func (s *Service) RequestSpinPurchase(ctx context.Context, userID int64, packageKey string) (model.SpinPackage, int64, error) {
	pkg, ok := model.FindSpinPackage(packageKey)
	if !ok {
		return model.SpinPackage{}, 0, fmt.Errorf("%w: %q", ErrUnknownPackage, packageKey)
	}

	if _, err := s.GetUser(ctx, userID); err != nil {
		return model.SpinPackage{}, 0, err
	}

	txID, err := s.repo.CreateTransaction(ctx, userID, pkg.Price, "buy_"+pkg.Key)
	if err != nil {
		return model.SpinPackage{}, 0, fmt.Errorf("error repo.CreateTransaction: %w", err)
	}

	return pkg, txID, nil
}

func (s *Service) Prizes() []model.WheelPrize {
	return model.WheelPrizes()
}

func (s *Service) Packages() []model.SpinPackage {
	return model.SpinPackages()
}

func normalizeWallet(wallet string) (string, error) {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" || len(wallet) > maxWalletLength {
		return "", ErrInvalidWallet
	}
	for _, r := range wallet {
		// a backtick would close the code span the wallet is rendered in
		if unicode.IsSpace(r) || !unicode.IsPrint(r) || r == '`' {
			return "", ErrInvalidWallet
		}
	}
	return wallet, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
