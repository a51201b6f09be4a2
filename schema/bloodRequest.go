package schema

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BloodRequestCollection = "blood_request"
)

// BloodGroups are the ABO/Rh groups a request or a donor may carry.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

const (
	UrgencyNormal    = "normal"
	UrgencyUrgent    = "urgent"
	UrgencyEmergency = "emergency"
)

var Urgencies = []string{UrgencyNormal, UrgencyUrgent, UrgencyEmergency}

// UrgencySeverity ranks urgencies for sorting, higher is more severe.
var UrgencySeverity = map[string]int{
	UrgencyNormal:    0,
	UrgencyUrgent:    1,
	UrgencyEmergency: 2,
}

const (
	RequestActive    = "active"
	RequestFulfilled = "fulfilled"
	RequestExpired   = "expired"
	RequestCancelled = "cancelled"
)

var RequestStatuses = []string{RequestActive, RequestFulfilled, RequestExpired, RequestCancelled}

const (
	ResponseInterested = "interested"
	ResponseAccepted   = "accepted"
	ResponseDenied     = "denied"
	ResponseCompleted  = "completed"
	ResponseCancelled  = "cancelled"
)

var ResponseStatuses = []string{ResponseInterested, ResponseAccepted, ResponseDenied, ResponseCompleted, ResponseCancelled}

const (
	ActionAccept = "accept"
	ActionDeny   = "deny"
)

var ResponseActions = []string{ActionAccept, ActionDeny}

// DefaultListLimit caps the number of requests returned by a filtered listing.
const DefaultListLimit = 50

// EmergencyListLimit caps the emergency ticker listing.
const EmergencyListLimit = 10

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

type RequestLocation struct {
	Address     string       `json:"address,omitempty" bson:"address,omitempty"`
	City        string       `json:"city" bson:"city"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

type ContactPerson struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// DonorResponse is a donor's answer to one blood request. It lives only inside
// the request that owns it.
type DonorResponse struct {
	DonorID     string     `json:"donorId" bson:"donor_id"`
	Status      string     `json:"status" bson:"status"`
	RespondedAt time.Time  `json:"respondedAt" bson:"responded_at"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty" bson:"accepted_at,omitempty"`
	DeniedAt    *time.Time `json:"deniedAt,omitempty" bson:"denied_at,omitempty"`

	// Donor is joined in for the requester's own listing and is never stored.
	Donor *DonorDetail `json:"donor,omitempty" bson:"-"`
}

type BloodRequest struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RequesterID      string             `json:"requesterId" bson:"requester_id"`
	BloodGroup       string             `json:"bloodGroup" bson:"blood_group"`
	UnitsNeeded      int                `json:"unitsNeeded" bson:"units_needed"`
	Urgency          string             `json:"urgency" bson:"urgency"`
	PatientName      string             `json:"patientName" bson:"patient_name"`
	PatientAge       int                `json:"patientAge,omitempty" bson:"patient_age,omitempty"`
	MedicalCondition string             `json:"medicalCondition,omitempty" bson:"medical_condition,omitempty"`
	HospitalName     string             `json:"hospitalName" bson:"hospital_name"`
	ContactPerson    *ContactPerson     `json:"contactPerson,omitempty" bson:"contact_person,omitempty"`
	Location         RequestLocation    `json:"location" bson:"location"`
	RequiredBy       time.Time          `json:"requiredBy" bson:"required_by"`
	Status           string             `json:"status" bson:"status"`
	Responses        []DonorResponse    `json:"responses" bson:"responses"`
	Notes            string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Response returns the response a donor left on this request, if any.
func (r *BloodRequest) Response(donorID string) *DonorResponse {
	for i := range r.Responses {
		if r.Responses[i].DonorID == donorID {
			return &r.Responses[i]
		}
	}
	return nil
}

// IsOverdue reports whether an active request has passed its deadline.
func (r *BloodRequest) IsOverdue(now time.Time) bool {
	return r.Status == RequestActive && r.RequiredBy.Before(now)
}

// BloodRequestFields is the payload a requester submits to open a request.
type BloodRequestFields struct {
	BloodGroup       string          `json:"bloodGroup"`
	UnitsNeeded      Number          `json:"unitsNeeded"`
	Urgency          string          `json:"urgency"`
	Status           string          `json:"status"`
	PatientName      string          `json:"patientName"`
	PatientAge       Number          `json:"patientAge"`
	MedicalCondition string          `json:"medicalCondition"`
	HospitalName     string          `json:"hospitalName"`
	ContactPerson    *ContactPerson  `json:"contactPerson"`
	Location         RequestLocation `json:"location"`
	RequiredBy       Timestamp       `json:"requiredBy"`
	Notes            string          `json:"notes"`
}

// Validate checks required fields and enumerations. Empty urgency and status
// are accepted and fall back to their defaults.
func (f *BloodRequestFields) Validate() error {
	if f.BloodGroup == "" {
		return required("bloodGroup")
	}
	if !contains(BloodGroups, f.BloodGroup) {
		return oneOf("bloodGroup", BloodGroups)
	}
	if err := f.UnitsNeeded.check("unitsNeeded", true); err != nil {
		return err
	}
	if !f.UnitsNeeded.Set || f.UnitsNeeded.Value < 1 {
		return invalid("unitsNeeded", "must be at least 1")
	}
	if f.Urgency != "" && !contains(Urgencies, f.Urgency) {
		return oneOf("urgency", Urgencies)
	}
	if f.Status != "" && !contains(RequestStatuses, f.Status) {
		return oneOf("status", RequestStatuses)
	}
	if strings.TrimSpace(f.PatientName) == "" {
		return required("patientName")
	}
	if err := f.PatientAge.check("patientAge", true); err != nil {
		return err
	}
	if f.PatientAge.Value < 0 {
		return invalid("patientAge", "must not be negative")
	}
	if strings.TrimSpace(f.HospitalName) == "" {
		return required("hospitalName")
	}
	if strings.TrimSpace(f.Location.City) == "" {
		return required("location.city")
	}
	if f.RequiredBy.IsZero() {
		return required("requiredBy")
	}
	return nil
}

// NewBloodRequest builds a fresh active request owned by requesterID. Any
// status in the payload is ignored; new requests always start active.
func (f *BloodRequestFields) NewBloodRequest(requesterID string, now time.Time) *BloodRequest {
	urgency := f.Urgency
	if urgency == "" {
		urgency = UrgencyNormal
	}

	location := f.Location
	location.City = strings.TrimSpace(location.City)

	return &BloodRequest{
		RequesterID:      requesterID,
		BloodGroup:       f.BloodGroup,
		UnitsNeeded:      f.UnitsNeeded.Int(),
		Urgency:          urgency,
		PatientName:      strings.TrimSpace(f.PatientName),
		PatientAge:       f.PatientAge.Int(),
		MedicalCondition: f.MedicalCondition,
		HospitalName:     strings.TrimSpace(f.HospitalName),
		ContactPerson:    f.ContactPerson,
		Location:         location,
		RequiredBy:       f.RequiredBy.Time.UTC(),
		Status:           RequestActive,
		Responses:        []DonorResponse{},
		Notes:            f.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// BloodRequestFilter narrows a public listing. Empty fields do not filter,
// except Status which defaults to active.
type BloodRequestFilter struct {
	BloodGroup string `form:"bloodGroup"`
	City       string `form:"city"`
	Urgency    string `form:"urgency"`
	Status     string `form:"status"`
	Limit      int64  `form:"-"`
}

// Normalize validates the filter and fills in defaults.
func (f *BloodRequestFilter) Normalize() error {
	if f.Status == "" {
		f.Status = RequestActive
	}
	if !contains(RequestStatuses, f.Status) {
		return oneOf("status", RequestStatuses)
	}
	if f.BloodGroup != "" && !contains(BloodGroups, f.BloodGroup) {
		return oneOf("bloodGroup", BloodGroups)
	}
	if f.Urgency != "" && !contains(Urgencies, f.Urgency) {
		return oneOf("urgency", Urgencies)
	}
	f.City = strings.TrimSpace(f.City)
	if f.Limit <= 0 || f.Limit > DefaultListLimit {
		f.Limit = DefaultListLimit
	}
	return nil
}

// ValidateRequestStatus checks a requester-submitted status.
func ValidateRequestStatus(status string) error {
	if status == "" {
		return required("status")
	}
	if !contains(RequestStatuses, status) {
		return oneOf("status", RequestStatuses)
	}
	return nil
}

// ValidateResponseAction checks the action a requester applies to a response.
func ValidateResponseAction(action string) error {
	if action == "" {
		return required("action")
	}
	if !contains(ResponseActions, action) {
		return oneOf("action", ResponseActions)
	}
	return nil
}

// ValidateDonorSubmission checks the status a donor submits with a response.
// Donors may only express interest; an empty status means interested.
func ValidateDonorSubmission(status string) error {
	if status != "" && status != ResponseInterested {
		return oneOf("status", []string{ResponseInterested})
	}
	return nil
}
