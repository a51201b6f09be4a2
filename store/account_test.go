package store

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"

	"github.com/bloodlink/bloodlink-api/schema"
)

// AccountTestSuite runs against the postgres named by BLOODLINK_TEST_ORM_CONN
type AccountTestSuite struct {
	suite.Suite
	conn  string
	ormDB *gorm.DB
	store *BloodLinkStore
}

func (s *AccountTestSuite) SetupSuite() {
	db, err := gorm.Open("postgres", s.conn)
	if err != nil {
		s.T().Fatalf("open postgres with error: %s", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		s.T().Fatal(err)
	}
	if err := db.AutoMigrate(&schema.Account{}).Error; err != nil {
		s.T().Fatal(err)
	}

	s.ormDB = db
	s.store = NewBloodLinkStore(db)
}

func (s *AccountTestSuite) SetupTest() {
	s.NoError(s.ormDB.Delete(&schema.Account{}).Error)
}

func (s *AccountTestSuite) TearDownSuite() {
	_ = s.ormDB.Close()
}

func (s *AccountTestSuite) TestCreateAndGetAccount() {
	s.NoError(s.store.Ping())

	a, err := s.store.CreateAccount(" Donor@Example.com ", "hash", schema.RoleDonor)
	s.NoError(err)
	s.Equal("donor@example.com", a.Email)

	got, err := s.store.GetAccount(a.ID.String())
	s.NoError(err)
	s.Equal(schema.RoleDonor, got.Role)

	got, err = s.store.GetAccountByEmail("DONOR@example.com")
	s.NoError(err)
	s.Equal(a.ID, got.ID)

	_, err = s.store.CreateAccount("donor@example.com", "other", schema.RoleHospital)
	s.Equal(ErrAccountTaken, err)

	_, err = s.store.GetAccount(uuid.New().String())
	s.Equal(ErrAccountNotFound, err)

	_, err = s.store.GetAccount("not-a-uuid")
	s.Equal(ErrAccountNotFound, err)

	_, err = s.store.GetAccountByEmail("nobody@example.com")
	s.Equal(ErrAccountNotFound, err)

	s.NoError(s.store.DeleteAccount(a.ID.String()))
	_, err = s.store.GetAccount(a.ID.String())
	s.Equal(ErrAccountNotFound, err)
	s.NoError(s.store.DeleteAccount("not-a-uuid"))

	_, err = s.store.CreateAccount("donor@example.com", "again", schema.RoleDonor)
	s.NoError(err, "email is free again after delete")
}

func (s *AccountTestSuite) TestGetAccountsAndListByRole() {
	first, err := s.store.CreateAccount("a@example.com", "hash", schema.RoleDonor)
	s.NoError(err)
	time.Sleep(10 * time.Millisecond)
	second, err := s.store.CreateAccount("b@example.com", "hash", schema.RoleDonor)
	s.NoError(err)
	_, err = s.store.CreateAccount("h@example.com", "hash", schema.RoleHospital)
	s.NoError(err)

	accounts, err := s.store.GetAccounts([]string{first.ID.String(), "garbage", uuid.New().String()})
	s.NoError(err)
	s.Len(accounts, 1)
	s.Equal("a@example.com", accounts[first.ID.String()].Email)

	donors, err := s.store.ListAccountsByRole(schema.RoleDonor)
	s.NoError(err)
	if s.Len(donors, 2) {
		s.Equal(second.ID, donors[0].ID, "newest first")
	}
}

func TestAccountTestSuite(t *testing.T) {
	conn := os.Getenv("BLOODLINK_TEST_ORM_CONN")
	if conn == "" {
		t.Skip("BLOODLINK_TEST_ORM_CONN is not set")
	}
	suite.Run(t, &AccountTestSuite{conn: conn})
}
