package store

import (
	"github.com/jinzhu/gorm"

	"github.com/bloodlink/bloodlink-api/schema"
)

// BloodLinkCore is the relational datastore holding accounts and credentials
type BloodLinkCore interface {
	Ping() error

	// Account
	CreateAccount(email, passwordHash, role string) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	GetAccounts(ids []string) (map[string]schema.Account, error)
	ListAccountsByRole(role string) ([]schema.Account, error)
	DeleteAccount(id string) error
}

// BloodLinkStore is an implementation of BloodLinkCore
type BloodLinkStore struct {
	ormDB *gorm.DB
}

func NewBloodLinkStore(ormDB *gorm.DB) *BloodLinkStore {
	return &BloodLinkStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *BloodLinkStore) Ping() error {
	return s.ormDB.DB().Ping()
}
