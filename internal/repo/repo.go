package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/entoni-coder/telegrambot/internal/repo/errs"
	"github.com/entoni-coder/telegrambot/model"

	"github.com/mattn/go-sqlite3"
)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) Repository {
	return Repository{
		db: db,
	}
}

const userColumns = `user_id, first_name, last_name, phone, wallet, balance, spins, referral_code, username, registered_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (model.User, error) {
	var (
		user      model.User
		firstName sql.NullString
		referral  sql.NullString
	)
	err := row.Scan(
		&user.ID,
		&firstName,
		&user.LastName,
		&user.Phone,
		&user.Wallet,
		&user.Balance,
		&user.Spins,
		&referral,
		&user.Username,
		&user.RegisteredAt,
	)
	if err != nil {
		return model.User{}, err
	}
	user.FirstName = firstName.String
	user.ReferralCode = referral.String
	return user, nil
}

func (r *Repository) GetUser(ctx context.Context, userID int64) (model.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE user_id = ?`, userID)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, errs.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("error GetUser: %w", err)
	}
	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user model.NewUser) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, first_name, last_name, phone, wallet, referral_code, username)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.FirstName, user.LastName, user.Phone, user.Wallet, user.ReferralCode, user.Username,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) {
			switch sqliteErr.ExtendedCode {
			case sqlite3.ErrConstraintPrimaryKey:
				return errs.ErrUserAlreadyExists
			case sqlite3.ErrConstraintUnique:
				if strings.Contains(sqliteErr.Error(), "users.user_id") {
					return errs.ErrUserAlreadyExists
				}
				return errs.ErrReferralCodeTaken
			}
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUser writes only the fields set in upd.
func (r *Repository) UpdateUser(ctx context.Context, userID int64, upd model.UserUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Wallet != nil {
		add("wallet", *upd.Wallet)
	}
	if upd.Balance != nil {
		add("balance", *upd.Balance)
	}
	if upd.Spins != nil {
		add("spins", *upd.Spins)
	}
	if upd.Username != nil {
		add("username", *upd.Username)
	}
	args = append(args, userID)

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE user_id = ?`, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error RowsAffected - UpdateUser: %w", err)
	}
	if n == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("error DeleteUser: %w", err)
	}
	return nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY registered_at, user_id`)
	if err != nil {
		return nil, fmt.Errorf("error query ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scan ListUsers: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error rows.Err - ListUsers: %w", err)
	}

	return users, nil
}

// CreateTransaction appends a ledger row and returns its id. The user's
// balance is not touched.
func (r *Repository) CreateTransaction(ctx context.Context, userID, amount int64, txType string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (user_id, amount, tx_type)
		VALUES (?, ?, ?)`,
		userID, amount, txType,
	)
	if err != nil {
		return 0, fmt.Errorf("error CreateTransaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error LastInsertId - CreateTransaction: %w", err)
	}
	return id, nil
}
