package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailInvalid       = errors.New("the email address must not be empty")
	ErrPasswordTooShort   = errors.New("the password must have at least 8 characters")
	ErrCredentialsInvalid = errors.New("email or password is incorrect")
)

// Account is one authenticated user of the backend.
type Account struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Nickname     string `json:"nickname"`
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if a.Email == "" {
		return ErrEmailInvalid
	}

	return nil
}

// SetPassword hashes and stores a new password.
func (a *Account) SetPassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a password against the stored hash.
func (a *Account) CheckPassword(password string) error {
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return ErrCredentialsInvalid
	}

	return nil
}

// AuthSession is a bearer token for one signed-in account. The token is
// the session ID.
type AuthSession struct {
	DefaultModel
	AccountID uuid.UUID `json:"accountId"`
	Account   Account   `json:"-"`
}

// AccountForToken resolves a bearer token to the account it belongs to.
func AccountForToken(token string) (Account, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return Account{}, ErrCredentialsInvalid
	}

	var session AuthSession
	err = DB.Preload("Account").First(&session, "id = ?", id).Error
	if err != nil {
		return Account{}, ErrCredentialsInvalid
	}

	return session.Account, nil
}

// SignIn verifies the credentials and creates a new session for the
// account.
func SignIn(email, password string) (AuthSession, error) {
	var account Account
	err := DB.First(&account, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		// Same error as for a wrong password so that account existence
		// cannot be probed
		return AuthSession{}, ErrCredentialsInvalid
	}

	if err := account.CheckPassword(password); err != nil {
		return AuthSession{}, err
	}

	session := AuthSession{AccountID: account.ID, Account: account}
	if err := DB.Create(&session).Error; err != nil {
		return AuthSession{}, err
	}

	return session, nil
}

// SignOut deletes the session for the token. Deleting an unknown token is
// not an error.
func SignOut(token string) error {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil
	}

	return DB.Delete(&AuthSession{}, "id = ?", id).Error
}
