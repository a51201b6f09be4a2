package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloodlink/bloodlink-api/schema"
	"github.com/bloodlink/bloodlink-api/store"
)

type accountUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}

func newAccountUser(a *schema.Account, p *schema.Profile) accountUser {
	u := accountUser{
		ID:    a.ID.String(),
		Email: a.Email,
		Role:  a.Role,
	}

	if p != nil && p.Name != "" {
		u.Name = p.Name
	} else {
		u.Name = strings.SplitN(a.Email, "@", 2)[0]
	}
	return u
}

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role" binding:"required,oneof=donor hospital bloodbank"`
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		City     string `json:"city" binding:"required"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorBinding(err), err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if shouldInterupt(err, c) {
		return
	}

	a, err := s.store.CreateAccount(params.Email, string(hash), params.Role)
	if err == store.ErrAccountTaken {
		abortWithEncoding(c, http.StatusBadRequest, errorAccountTaken, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	now := s.clock.Now()
	profile := &schema.Profile{
		UserID:      a.ID.String(),
		Name:        strings.TrimSpace(params.Name),
		Phone:       strings.TrimSpace(params.Phone),
		Address:     schema.Address{City: strings.TrimSpace(params.City)},
		IsEligible:  true,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.mongoStore.CreateProfile(profile); err != nil && err != store.ErrProfileExists {
		// an account without a profile is invisible to donor listings, so undo it
		if derr := s.store.DeleteAccount(a.ID.String()); derr != nil {
			logger.WithError(derr).WithField("account", a.ID.String()).Error("fail to remove account without profile")
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	token, err := s.issueToken(a)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    newAccountUser(a, profile),
	})
}

// accountLogin exchanges credentials for a token
func (s *Server) accountLogin(c *gin.Context) {
	var params struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorBinding(err), err)
		return
	}

	a, err := s.store.GetAccountByEmail(params.Email)
	if err == store.ErrAccountNotFound {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCredentials)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(params.Password)); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCredentials)
		return
	}

	profile, err := s.mongoStore.GetProfile(a.ID.String())
	if err != nil && err != store.ErrProfileNotFound {
		shouldInterupt(err, c)
		return
	}

	token, err := s.issueToken(a)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    newAccountUser(a, profile),
	})
}

// accountDetail is the API to query the caller's account and profile
func (s *Server) accountDetail(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	profile, err := s.mongoStore.GetProfile(account.ID.String())
	if err != nil && err != store.ErrProfileNotFound {
		shouldInterupt(err, c)
		return
	}

	var body interface{} = gin.H{}
	if profile != nil {
		body = profile
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    newAccountUser(account, profile),
		"profile": body,
	})
}

// accountUpdateProfile is the API to update the caller's profile
func (s *Server) accountUpdateProfile(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var fields schema.ProfileFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorBinding(err), err)
		return
	}

	if err := fields.Validate(); err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	profile, err := s.mongoStore.UpdateProfile(account.ID.String(), fields, s.clock.Now())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// listDonors returns every donor that completed a profile, newest first
func (s *Server) listDonors(c *gin.Context) {
	accounts, err := s.store.ListAccountsByRole(schema.RoleDonor)
	if shouldInterupt(err, c) {
		return
	}

	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID.String())
	}

	profiles, err := s.mongoStore.GetProfiles(ids)
	if shouldInterupt(err, c) {
		return
	}

	now := s.clock.Now()
	donors := make([]*schema.DonorDetail, 0, len(accounts))
	for i := range accounts {
		p, ok := profiles[accounts[i].ID.String()]
		if !ok {
			continue
		}
		donors = append(donors, schema.NewDonorDetail(accounts[i].ID.String(), &accounts[i], &p, now))
	}

	c.JSON(http.StatusOK, donors)
}
