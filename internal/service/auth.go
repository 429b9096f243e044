package service

import (
	"context"
	"errors"
	"fmt"

	"citizen-services/internal/config"
	"citizen-services/internal/model"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type account struct {
	citizen model.Citizen
	hash    []byte
}

// AuthService checks demo citizen credentials held in configuration.
type AuthService struct {
	accounts map[string]account
}

// NewAuthService hashes plain passwords of users that carry no PasswordHash.
func NewAuthService(users []config.DemoUser) (*AuthService, error) {
	s := &AuthService{accounts: make(map[string]account, len(users))}
	for _, u := range users {
		hash := []byte(u.PasswordHash)
		if len(hash) == 0 {
			h, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash password for %s: %w", u.Username, err)
			}
			hash = h
		}
		s.accounts[u.Username] = account{
			citizen: model.Citizen{ID: u.ID, Username: u.Username, Name: u.Name, CitizenID: u.CitizenID},
			hash:    hash,
		}
	}
	return s, nil
}

func (s *AuthService) Login(_ context.Context, username, password string) (*model.Citizen, error) {
	a, ok := s.accounts[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrInvalidCredentials)
	}
	c := a.citizen
	return &c, nil
}

// Lookup returns the citizen for a token subject.
func (s *AuthService) Lookup(uid int) (*model.Citizen, bool) {
	for _, a := range s.accounts {
		if a.citizen.ID == uid {
			c := a.citizen
			return &c, true
		}
	}
	return nil, false
}
