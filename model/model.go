package model

import "time"

type User struct {
	ID           int64     `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     *string   `json:"last_name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Wallet       string    `json:"wallet"`
	Balance      int64     `json:"balance"`
	Spins        int       `json:"spins"`
	ReferralCode string    `json:"referral_code"`
	Username     *string   `json:"username,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewUser is the field set written on registration. Balance, spins and
// registered_at are left to the column defaults.
type NewUser struct {
	ID           int64
	FirstName    string
	LastName     *string
	Phone        *string
	Wallet       string
	ReferralCode string
	Username     *string
}

// UserUpdate names the columns to change. Nil fields are left untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Wallet    *string
	Balance   *int64
	Spins     *int
	Username  *string
}

func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Phone == nil && u.Wallet == nil &&
		u.Balance == nil && u.Spins == nil && u.Username == nil
}

type Transaction struct {
	ID        int64     `json:"tx_id"`
	UserID    int64     `json:"user_id"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"tx_type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

const TransactionStatusPending = "pending"
