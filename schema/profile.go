package schema

import (
	"strings"
	"time"
)

const (
	ProfileCollection = "profile"
)

// DonationCooldown is the minimum gap between two donations.
const DonationCooldown = 90 * 24 * time.Hour

var Genders = []string{"male", "female", "other"}

type Address struct {
	Street      string       `json:"street,omitempty" bson:"street,omitempty"`
	City        string       `json:"city" bson:"city"`
	State       string       `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode     string       `json:"zipCode,omitempty" bson:"zip_code,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

// Profile - display and eligibility data of an account
type Profile struct {
	UserID           string     `json:"userId" bson:"user_id"`
	Name             string     `json:"name" bson:"name"`
	Phone            string     `json:"phone" bson:"phone"`
	Address          Address    `json:"address" bson:"address"`
	ProfileImage     string     `json:"profileImage" bson:"profile_image"`
	BloodGroup       string     `json:"bloodGroup,omitempty" bson:"blood_group,omitempty"`
	Age              int        `json:"age,omitempty" bson:"age,omitempty"`
	Gender           string     `json:"gender,omitempty" bson:"gender,omitempty"`
	Weight           float64    `json:"weight,omitempty" bson:"weight,omitempty"`
	LastDonationDate *time.Time `json:"lastDonationDate,omitempty" bson:"last_donation_date,omitempty"`
	IsEligible       bool       `json:"isEligible" bson:"is_eligible"`
	IsAvailable      bool       `json:"isAvailable" bson:"is_available"`

	OrganizationName string   `json:"organizationName,omitempty" bson:"organization_name,omitempty"`
	LicenseNumber    string   `json:"licenseNumber,omitempty" bson:"license_number,omitempty"`
	OrganizationType string   `json:"organizationType,omitempty" bson:"organization_type,omitempty"`
	Capacity         int      `json:"capacity,omitempty" bson:"capacity,omitempty"`
	ServicesOffered  []string `json:"servicesOffered,omitempty" bson:"services_offered,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// CanDonate applies the static donation cooldown.
func (p *Profile) CanDonate(now time.Time) bool {
	if p.LastDonationDate == nil {
		return true
	}
	return now.Sub(*p.LastDonationDate) >= DonationCooldown
}

// DonorDetail is the donor identity joined onto a response or a donor listing.
type DonorDetail struct {
	ID          string     `json:"id"`
	Email       string     `json:"email,omitempty"`
	Role        string     `json:"role,omitempty"`
	Name        string     `json:"name,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	BloodGroup  string     `json:"bloodGroup,omitempty"`
	City        string     `json:"city,omitempty"`
	Age         int        `json:"age,omitempty"`
	Weight      float64    `json:"weight,omitempty"`
	IsAvailable bool       `json:"isAvailable"`
	CanDonate   bool       `json:"canDonate"`
	JoinedDate  *time.Time `json:"joinedDate,omitempty"`
}

// NewDonorDetail merges an account and its profile. Either may be nil.
func NewDonorDetail(userID string, account *Account, profile *Profile, now time.Time) *DonorDetail {
	d := &DonorDetail{ID: userID, CanDonate: true}
	if account != nil {
		d.Email = account.Email
		d.Role = account.Role
		joined := account.CreatedAt
		d.JoinedDate = &joined
	}
	if profile != nil {
		d.Name = profile.Name
		d.Phone = profile.Phone
		d.BloodGroup = profile.BloodGroup
		d.City = profile.Address.City
		d.Age = profile.Age
		d.Weight = profile.Weight
		d.IsAvailable = profile.IsAvailable
		d.CanDonate = profile.CanDonate(now)
	}
	return d
}

// ProfileFields is the editable part of a profile. Nil pointers and unset
// numbers leave the stored value untouched.
type ProfileFields struct {
	Name             *string    `json:"name"`
	Phone            *string    `json:"phone"`
	City             *string    `json:"city"`
	Street           *string    `json:"street"`
	State            *string    `json:"state"`
	ZipCode          *string    `json:"zipCode"`
	BloodGroup       *string    `json:"bloodGroup"`
	Age              Number     `json:"age"`
	Gender           *string    `json:"gender"`
	Weight           Number     `json:"weight"`
	LastDonationDate *Timestamp `json:"lastDonationDate"`
	IsAvailable      *bool      `json:"isAvailable"`
	OrganizationName *string    `json:"organizationName"`
	LicenseNumber    *string    `json:"licenseNumber"`
	OrganizationType *string    `json:"organizationType"`
	Capacity         Number     `json:"capacity"`
	ServicesOffered  []string   `json:"servicesOffered"`
}

func (f *ProfileFields) Validate() error {
	if f.Name != nil && strings.TrimSpace(*f.Name) == "" {
		return required("name")
	}
	if f.Phone != nil && strings.TrimSpace(*f.Phone) == "" {
		return required("phone")
	}
	if f.City != nil && strings.TrimSpace(*f.City) == "" {
		return required("city")
	}
	if f.BloodGroup != nil && *f.BloodGroup != "" && !contains(BloodGroups, *f.BloodGroup) {
		return oneOf("bloodGroup", BloodGroups)
	}
	if err := f.Age.check("age", true); err != nil {
		return err
	}
	if f.Age.Set && (f.Age.Value < 18 || f.Age.Value > 65) {
		return invalid("age", "must be between 18 and 65")
	}
	if f.Gender != nil && *f.Gender != "" && !contains(Genders, *f.Gender) {
		return oneOf("gender", Genders)
	}
	if err := f.Weight.check("weight", false); err != nil {
		return err
	}
	if f.Weight.Value < 0 {
		return invalid("weight", "must not be negative")
	}
	if err := f.Capacity.check("capacity", true); err != nil {
		return err
	}
	if f.Capacity.Value < 0 {
		return invalid("capacity", "must not be negative")
	}
	if f.OrganizationType != nil && *f.OrganizationType != "" &&
		!contains([]string{RoleHospital, RoleBloodBank, "ngo"}, *f.OrganizationType) {
		return oneOf("organizationType", []string{RoleHospital, RoleBloodBank, "ngo"})
	}
	return nil
}

// Apply copies the set fields onto a profile.
func (f *ProfileFields) Apply(p *Profile) {
	if f.Name != nil {
		p.Name = strings.TrimSpace(*f.Name)
	}
	if f.Phone != nil {
		p.Phone = strings.TrimSpace(*f.Phone)
	}
	if f.City != nil {
		p.Address.City = strings.TrimSpace(*f.City)
	}
	if f.Street != nil {
		p.Address.Street = *f.Street
	}
	if f.State != nil {
		p.Address.State = *f.State
	}
	if f.ZipCode != nil {
		p.Address.ZipCode = *f.ZipCode
	}
	if f.BloodGroup != nil && *f.BloodGroup != "" {
		p.BloodGroup = *f.BloodGroup
	}
	if f.Age.Set {
		p.Age = f.Age.Int()
	}
	if f.Gender != nil {
		p.Gender = *f.Gender
	}
	if f.Weight.Set {
		p.Weight = f.Weight.Value
	}
	if f.LastDonationDate != nil {
		if f.LastDonationDate.IsZero() {
			p.LastDonationDate = nil
		} else {
			t := f.LastDonationDate.Time.UTC()
			p.LastDonationDate = &t
		}
	}
	if f.IsAvailable != nil {
		p.IsAvailable = *f.IsAvailable
	}
	if f.OrganizationName != nil {
		p.OrganizationName = *f.OrganizationName
	}
	if f.LicenseNumber != nil {
		p.LicenseNumber = *f.LicenseNumber
	}
	if f.OrganizationType != nil {
		p.OrganizationType = *f.OrganizationType
	}
	if f.Capacity.Set {
		p.Capacity = f.Capacity.Int()
	}
	if f.ServicesOffered != nil {
		p.ServicesOffered = f.ServicesOffered
	}
}
