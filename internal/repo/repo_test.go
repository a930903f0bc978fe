package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/entoni-coder/telegrambot/internal/repo/errs"
	"github.com/entoni-coder/telegrambot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := New(db)
	require.NoError(t, r.Migrate(ctx))
	return r
}

func strPtr(s string) *string { return &s }

func testUser(id int64, referral string) model.NewUser {
	return model.NewUser{
		ID:           id,
		FirstName:    "Gianky",
		LastName:     strPtr("Rossi"),
		Wallet:       "0xabc123",
		ReferralCode: referral,
		Username:     strPtr("gianky"),
	}
}

func TestGetUser_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestCreateUser_Defaults(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateUser(ctx, testUser(1, "REF00001")))

	user, err := r.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Gianky", user.FirstName)
	require.NotNil(t, user.LastName)
	assert.Equal(t, "Rossi", *user.LastName)
	assert.Nil(t, user.Phone)
	assert.Equal(t, "0xabc123", user.Wallet)
	assert.Equal(t, "REF00001", user.ReferralCode)
	require.NotNil(t, user.Username)
	assert.Equal(t, "gianky", *user.Username)
	assert.Equal(t, int64(100), user.Balance)
	assert.Equal(t, 3, user.Spins)
	assert.False(t, user.RegisteredAt.IsZero())
}

func TestCreateUser_Duplicates(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateUser(ctx, testUser(1, "REF00001")))

	err := r.CreateUser(ctx, testUser(1, "REF00002"))
	assert.ErrorIs(t, err, errs.ErrUserAlreadyExists)

	err = r.CreateUser(ctx, testUser(2, "REF00001"))
	assert.ErrorIs(t, err, errs.ErrReferralCodeTaken)

	_, err = r.GetUser(ctx, 2)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUpdateUser_OnlyNamedFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateUser(ctx, testUser(1, "REF00001")))
	before, err := r.GetUser(ctx, 1)
	require.NoError(t, err)

	spins := 7
	require.NoError(t, r.UpdateUser(ctx, 1, model.UserUpdate{
		Phone: strPtr("+390000000"),
		Spins: &spins,
	}))

	after, err := r.GetUser(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, after.Phone)
	assert.Equal(t, "+390000000", *after.Phone)
	assert.Equal(t, 7, after.Spins)

	after.Phone = before.Phone
	after.Spins = before.Spins
	assert.Equal(t, before, after)
}

func TestUpdateUser_EmptyAndMissing(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	assert.NoError(t, r.UpdateUser(ctx, 99, model.UserUpdate{}))

	balance := int64(5)
	err := r.UpdateUser(ctx, 99, model.UserUpdate{Balance: &balance})
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateUser(ctx, testUser(1, "REF00001")))
	require.NoError(t, r.DeleteUser(ctx, 1))
	require.NoError(t, r.DeleteUser(ctx, 1))

	_, err := r.GetUser(ctx, 1)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	// the referral code is free again once the row is gone
	require.NoError(t, r.CreateUser(ctx, testUser(1, "REF00001")))
}

func TestListUsers(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	users, err := r.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, r.CreateUser(ctx, testUser(2, "REF00002")))
	require.NoError(t, r.CreateUser(ctx, testUser(1, "REF00001")))

	users, err = r.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.ElementsMatch(t, []int64{1, 2}, []int64{users[0].ID, users[1].ID})
}

func TestCreateTransaction_DoesNotTouchBalance(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateUser(ctx, testUser(1, "REF00001")))

	id1, err := r.CreateTransaction(ctx, 1, 300, "buy_3_spins")
	require.NoError(t, err)
	id2, err := r.CreateTransaction(ctx, 1, -50, "adjustment")
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	user, err := r.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), user.Balance)

	var tx model.Transaction
	err = r.db.QueryRowContext(ctx,
		`SELECT tx_id, user_id, amount, tx_type, status, created_at FROM transactions WHERE tx_id = ?`, id1).
		Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Status, &tx.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, model.Transaction{
		ID:        id1,
		UserID:    1,
		Amount:    300,
		Type:      "buy_3_spins",
		Status:    model.TransactionStatusPending,
		CreatedAt: tx.CreatedAt,
	}, tx)
	assert.False(t, tx.CreatedAt.IsZero())
}

func TestCreateTransaction_UnknownUser(t *testing.T) {
	r := newTestRepo(t)

	// foreign keys are not enforced, the ledger accepts orphan rows
	_, err := r.CreateTransaction(context.Background(), 404, 10, "bonus")
	assert.NoError(t, err)
}
