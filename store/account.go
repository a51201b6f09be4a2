package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bloodlink/bloodlink-api/schema"
)

var (
	ErrAccountNotFound = fmt.Errorf("account not found")
	ErrAccountTaken    = fmt.Errorf("user already exists")
)

// CreateAccount is to register an account into bloodlink system
func (s *BloodLinkStore) CreateAccount(email, passwordHash, role string) (*schema.Account, error) {
	a := schema.Account{
		ID:           uuid.New(),
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// DeleteAccount removes an account. Deleting an unknown id is not an error.
func (s *BloodLinkStore) DeleteAccount(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	return s.ormDB.Where("id = ?", id).Delete(&schema.Account{}).Error
}

// GetAccount returns an account instance of a given id
func (s *BloodLinkStore) GetAccount(id string) (*schema.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAccountNotFound
	}

	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetAccountByEmail returns the account registered with an email
func (s *BloodLinkStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", normalizeEmail(email)).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetAccounts loads several accounts keyed by id. Unknown ids are skipped.
func (s *BloodLinkStore) GetAccounts(ids []string) (map[string]schema.Account, error) {
	accounts := make(map[string]schema.Account, len(ids))

	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return accounts, nil
	}

	var results []schema.Account
	if err := s.ormDB.Where("id IN (?)", valid).Find(&results).Error; err != nil {
		return nil, err
	}

	for _, a := range results {
		accounts[a.ID.String()] = a
	}
	return accounts, nil
}

// ListAccountsByRole returns the accounts of a role, newest first
func (s *BloodLinkStore) ListAccountsByRole(role string) ([]schema.Account, error) {
	accounts := []schema.Account{}
	if err := s.ormDB.Where("role = ?", role).Order("created_at desc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
