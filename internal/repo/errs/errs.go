package errs

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrReferralCodeTaken = errors.New("referral code already taken")
)
