package lifecycle

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloodlink/bloodlink-api/schema"
	"github.com/bloodlink/bloodlink-api/store"
	"github.com/bloodlink/bloodlink-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "lifecycle")
}

// ErrRoleNotAllowed is returned when the caller's role may not perform an operation.
var ErrRoleNotAllowed = fmt.Errorf("role not allowed for this operation")

// AccountDirectory resolves account identities for joins.
type AccountDirectory interface {
	GetAccounts(ids []string) (map[string]schema.Account, error)
}

// ExpiryScheduler arranges for a request to be expired once it is overdue.
type ExpiryScheduler interface {
	ScheduleExpiry(requestID string, requiredBy time.Time) error
}

// Engine applies the blood request and donor response state machines on top
// of the request store.
type Engine struct {
	requests  store.BloodRequestStore
	profiles  store.ProfileStore
	accounts  AccountDirectory
	clock     utils.Clock
	scheduler ExpiryScheduler
}

func NewEngine(requests store.BloodRequestStore, profiles store.ProfileStore, accounts AccountDirectory, clock utils.Clock) *Engine {
	if clock == nil {
		clock = utils.SystemClock
	}

	return &Engine{
		requests: requests,
		profiles: profiles,
		accounts: accounts,
		clock:    clock,
	}
}

// SetExpiryScheduler enables scheduled expiry of newly created requests.
func (e *Engine) SetExpiryScheduler(scheduler ExpiryScheduler) {
	e.scheduler = scheduler
}

// CreateRequest opens a new active request owned by the caller
func (e *Engine) CreateRequest(caller schema.Identity, fields schema.BloodRequestFields) (*schema.BloodRequest, error) {
	if !schema.IsRequesterRole(caller.Role) {
		return nil, ErrRoleNotAllowed
	}

	if err := fields.Validate(); err != nil {
		return nil, err
	}

	req, err := e.requests.CreateBloodRequest(fields.NewBloodRequest(caller.UserID, e.clock.Now()))
	if err != nil {
		return nil, err
	}
	observe(opCreate, nil)

	if e.scheduler != nil {
		if err := e.scheduler.ScheduleExpiry(req.ID.Hex(), req.RequiredBy); err != nil {
			// the lazy expiry on reads still covers this request
			log.WithError(err).WithField("request_id", req.ID.Hex()).Warn("fail to schedule request expiry")
		}
	}

	return req, nil
}

// ListRequests returns the public listing for a filter
func (e *Engine) ListRequests(filter schema.BloodRequestFilter) ([]schema.BloodRequest, error) {
	if err := filter.Normalize(); err != nil {
		return nil, err
	}

	if _, err := e.SweepExpired(); err != nil {
		return nil, err
	}

	return e.requests.ListBloodRequests(filter)
}

// ListEmergencyRequests returns the newest active emergency requests
func (e *Engine) ListEmergencyRequests() ([]schema.BloodRequest, error) {
	if _, err := e.SweepExpired(); err != nil {
		return nil, err
	}

	return e.requests.ListEmergencyBloodRequests(schema.EmergencyListLimit)
}

// MyRequests returns the caller's own requests with donor identities and
// profiles joined onto every response
func (e *Engine) MyRequests(caller schema.Identity) ([]schema.BloodRequest, error) {
	if _, err := e.SweepExpired(); err != nil {
		return nil, err
	}

	requests, err := e.requests.ListBloodRequestsByRequester(caller.UserID)
	if err != nil {
		return nil, err
	}

	donorIDs := make([]string, 0)
	seen := map[string]bool{}
	for _, r := range requests {
		for _, resp := range r.Responses {
			if !seen[resp.DonorID] {
				seen[resp.DonorID] = true
				donorIDs = append(donorIDs, resp.DonorID)
			}
		}
	}

	if len(donorIDs) == 0 {
		return requests, nil
	}

	accounts, err := e.accounts.GetAccounts(donorIDs)
	if err != nil {
		return nil, err
	}

	profiles, err := e.profiles.GetProfiles(donorIDs)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	for i := range requests {
		for j := range requests[i].Responses {
			donorID := requests[i].Responses[j].DonorID

			var account *schema.Account
			if a, ok := accounts[donorID]; ok {
				account = &a
			}

			var profile *schema.Profile
			if p, ok := profiles[donorID]; ok {
				profile = &p
			}

			requests[i].Responses[j].Donor = schema.NewDonorDetail(donorID, account, profile, now)
		}
	}

	return requests, nil
}

// Respond records the calling donor's interest in a request. Responding again
// resets the donor's existing entry to interested instead of adding another.
func (e *Engine) Respond(caller schema.Identity, requestID, status string) (*schema.BloodRequest, error) {
	if caller.Role != schema.RoleDonor {
		return nil, ErrRoleNotAllowed
	}

	if err := schema.ValidateDonorSubmission(status); err != nil {
		return nil, err
	}

	id, err := parseRequestID(requestID)
	if err != nil {
		return nil, err
	}

	req, err := e.requests.UpsertDonorResponse(id, caller.UserID, e.clock.Now())
	observe(opRespond, err)
	if err != nil {
		return nil, err
	}

	return e.CheckExpiry(req)
}

// ManageDonorResponse lets the request owner accept or deny a donor's response.
// Decided responses may be decided again; the opposite timestamp is cleared
// so acceptedAt and deniedAt are never both set.
func (e *Engine) ManageDonorResponse(caller schema.Identity, requestID, donorID, action string) (*schema.BloodRequest, error) {
	if !schema.IsRequesterRole(caller.Role) {
		return nil, ErrRoleNotAllowed
	}

	if err := schema.ValidateResponseAction(action); err != nil {
		return nil, err
	}

	id, err := parseRequestID(requestID)
	if err != nil {
		return nil, err
	}

	req, err := e.requests.DecideDonorResponse(id, caller.UserID, donorID, action, e.clock.Now())
	observe(opManage+"_"+action, err)
	if err != nil {
		return nil, err
	}

	return e.CheckExpiry(req)
}

// UpdateStatus sets the overall status of a request owned by the caller. Any
// status may follow any other; responses are left as they are.
func (e *Engine) UpdateStatus(caller schema.Identity, requestID, status string) (*schema.BloodRequest, error) {
	if !schema.IsRequesterRole(caller.Role) {
		return nil, ErrRoleNotAllowed
	}

	if err := schema.ValidateRequestStatus(status); err != nil {
		return nil, err
	}

	id, err := parseRequestID(requestID)
	if err != nil {
		return nil, err
	}

	req, err := e.requests.UpdateBloodRequestStatus(id, caller.UserID, status, e.clock.Now())
	observe(opUpdateStatus, err)
	return req, err
}

// CheckExpiry flips an overdue active request to expired and persists it.
// When the conditional write loses to a concurrent status change the stored
// document is reloaded instead.
func (e *Engine) CheckExpiry(req *schema.BloodRequest) (*schema.BloodRequest, error) {
	now := e.clock.Now()
	if !req.IsOverdue(now) {
		return req, nil
	}

	expired, err := e.requests.ExpireBloodRequest(req.ID, now)
	if err != nil {
		return nil, err
	}

	if !expired {
		return e.requests.GetBloodRequest(req.ID)
	}

	expiredTotal.Add(1)
	req.Status = schema.RequestExpired
	req.UpdatedAt = now
	return req, nil
}

// ExpireRequest expires one request if it is overdue. It reports whether the
// request changed.
func (e *Engine) ExpireRequest(requestID string) (bool, error) {
	id, err := parseRequestID(requestID)
	if err != nil {
		return false, err
	}

	expired, err := e.requests.ExpireBloodRequest(id, e.clock.Now())
	if err != nil {
		return false, err
	}

	if expired {
		expiredTotal.Add(1)
	}
	return expired, nil
}

// SweepExpired expires every overdue active request
func (e *Engine) SweepExpired() (int64, error) {
	count, err := e.requests.ExpireOverdueBloodRequests(e.clock.Now())
	if err != nil {
		return 0, err
	}

	expiredTotal.Add(float64(count))
	return count, nil
}

func parseRequestID(requestID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return primitive.NilObjectID, store.ErrBloodRequestNotFound
	}
	return id, nil
}
