// Package auth is the credential service: signup with a duplicate
// email guard, login with bcrypt verification, and profile updates.
package auth

import (
	"errors"
	"time"

	"recipe-service/models"
	"recipe-service/store"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken rejects signup for an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password; callers never learn which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoFields rejects a profile update that changes nothing.
	ErrNoFields = errors.New("no fields to update")
)

const (
	usersTable = "users"
	bcryptCost = 12
)

// Store is the slice of the persistence gateway this service needs.
type Store interface {
	Insert(table, idColumn string, record map[string]interface{}) (int64, error)
	Select(dest interface{}, table string, f store.Filters) error
	Update(table string, f store.Filters, patch map[string]interface{}) (int64, error)
	Delete(table string, f store.Filters) (int64, error)
}

type Service struct {
	store Store
}

func NewService(s Store) *Service {
	return &Service{store: s}
}

func byEmail(email string) store.Filters {
	return store.Filters{Eq: map[string]interface{}{"email": email}}
}

func byUser(userID int64) store.Filters {
	return store.Filters{Eq: map[string]interface{}{"user_id": userID}}
}

// Signup registers a new account. The password is stored as a bcrypt
// hash; the returned user never carries it.
func (s *Service) Signup(firstName, lastName, email, mobile, password string) (*models.User, error) {
	var existing []models.User
	if err := s.store.Select(&existing, usersTable, byEmail(email)); err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	id, err := s.store.Insert(usersTable, "user_id", map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"mobile":     mobile,
		"password":   string(hash),
		"created_at": now,
		"updated_at": now,
	})
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Mobile:    mobile,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Login verifies email and password and returns the sanitized user.
// Unknown email and wrong password produce the same outcome.
func (s *Service) Login(email, password string) (*models.User, error) {
	var users []models.User
	if err := s.store.Select(&users, usersTable, byEmail(email)); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrInvalidCredentials
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	return &user, nil
}

// UpdateProfile applies any subset of profile fields; a provided
// password is re-hashed. Returns the count of rows updated.
func (s *Service) UpdateProfile(userID int64, req models.UpdateProfileRequest) (int64, error) {
	patch := map[string]interface{}{}
	if req.FirstName != "" {
		patch["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		patch["last_name"] = req.LastName
	}
	if req.Email != "" {
		patch["email"] = req.Email
	}
	if req.Mobile != "" {
		patch["mobile"] = req.Mobile
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return 0, err
		}
		patch["password"] = string(hash)
	}
	if len(patch) == 0 {
		return 0, ErrNoFields
	}
	patch["updated_at"] = time.Now()
	return s.store.Update(usersTable, byUser(userID), patch)
}

// DeleteAccount removes the user row. Bookmark and recipe cleanup is
// the store's cascading concern.
func (s *Service) DeleteAccount(userID int64) (int64, error) {
	return s.store.Delete(usersTable, byUser(userID))
}
