package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloodlink/bloodlink-api/schema"
	"github.com/bloodlink/bloodlink-api/store"
)

type requestEnvelope struct {
	Message string              `json:"message"`
	Request schema.BloodRequest `json:"request"`
}

func decodeRequest(t *testing.T, body []byte) schema.BloodRequest {
	var resp requestEnvelope
	assert.NoError(t, json.Unmarshal(body, &resp), "wrong json unmarshal")
	return resp.Request
}

func decodeList(t *testing.T, body []byte) []schema.BloodRequest {
	var resp []schema.BloodRequest
	assert.NoError(t, json.Unmarshal(body, &resp), "wrong json unmarshal")
	return resp
}

func scenarioPayload(requiredBy time.Time) map[string]interface{} {
	return map[string]interface{}{
		"bloodGroup":   "O-",
		"unitsNeeded":  2,
		"urgency":      "emergency",
		"patientName":  "X",
		"hospitalName": "Y",
		"location":     map[string]interface{}{"city": "Metropolis"},
		"requiredBy":   requiredBy.Format(time.RFC3339),
	}
}

// create, then find the request in both the filtered and the emergency listing
func TestCreateAndListEmergencyRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	h := uuid.New()
	hospitalToken := ts.token(t, h, schema.RoleHospital)

	var stored *schema.BloodRequest
	ts.mongo.EXPECT().CreateBloodRequest(gomock.Any()).DoAndReturn(func(r *schema.BloodRequest) (*schema.BloodRequest, error) {
		r.ID = primitive.NewObjectID()
		stored = r
		return r, nil
	})

	w := ts.do("POST", "/api/blood-requests", hospitalToken, scenarioPayload(ts.now.Add(24*time.Hour)))
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeRequest(t, w.Body.Bytes())
	assert.Equal(t, schema.RequestActive, created.Status)
	assert.Equal(t, []schema.DonorResponse{}, created.Responses)
	assert.Equal(t, h.String(), created.RequesterID)
	assert.Equal(t, "Metropolis", created.Location.City)

	ts.mongo.EXPECT().ExpireOverdueBloodRequests(ts.now).Return(int64(0), nil).Times(2)
	ts.mongo.EXPECT().ListBloodRequests(schema.BloodRequestFilter{
		Urgency: schema.UrgencyEmergency,
		Status:  schema.RequestActive,
		Limit:   schema.DefaultListLimit,
	}).Return([]schema.BloodRequest{*stored}, nil)
	ts.mongo.EXPECT().ListEmergencyBloodRequests(int64(schema.EmergencyListLimit)).Return([]schema.BloodRequest{*stored}, nil)

	w = ts.do("GET", "/api/blood-requests?urgency=emergency", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w.Body.Bytes())
	if assert.Len(t, list, 1) {
		assert.Equal(t, created.ID, list[0].ID)
	}

	w = ts.do("GET", "/api/blood-requests/emergency", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list = decodeList(t, w.Body.Bytes())
	if assert.Len(t, list, 1) {
		assert.Equal(t, created.ID, list[0].ID)
	}
}

func TestCreateRequestValidationErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	token := ts.token(t, uuid.New(), schema.RoleBloodBank)

	payload := scenarioPayload(ts.now.Add(time.Hour))
	delete(payload, "unitsNeeded")
	w := ts.do("POST", "/api/blood-requests", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, int64(errorValidationCode), resp.Code)
	assert.Equal(t, "unitsNeeded", resp.Field)

	payload = scenarioPayload(ts.now.Add(time.Hour))
	payload["unitsNeeded"] = "two"
	w = ts.do("POST", "/api/blood-requests", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unitsNeeded", decodeError(t, w).Field)

	payload = scenarioPayload(ts.now.Add(time.Hour))
	payload["unitsNeeded"] = ""
	w = ts.do("POST", "/api/blood-requests", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unitsNeeded", decodeError(t, w).Field)

	payload = scenarioPayload(ts.now.Add(time.Hour))
	payload["bloodGroup"] = "Z+"
	w = ts.do("POST", "/api/blood-requests", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bloodGroup", decodeError(t, w).Field)

	w = ts.do("POST", "/api/blood-requests", token, "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1011), decodeError(t, w).Code)
}

// number inputs from web forms arrive as strings
func TestCreateRequestFromFormStrings(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	token := ts.token(t, uuid.New(), schema.RoleHospital)

	var stored *schema.BloodRequest
	ts.mongo.EXPECT().CreateBloodRequest(gomock.Any()).DoAndReturn(func(r *schema.BloodRequest) (*schema.BloodRequest, error) {
		r.ID = primitive.NewObjectID()
		stored = r
		return r, nil
	})

	payload := scenarioPayload(ts.now.Add(time.Hour))
	payload["unitsNeeded"] = "2"
	payload["patientAge"] = ""
	w := ts.do("POST", "/api/blood-requests", token, payload)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, stored.UnitsNeeded)
	assert.Equal(t, 0, stored.PatientAge)
}

func TestCreateRequestForbiddenForDonor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)

	w := ts.do("POST", "/api/blood-requests", ts.token(t, uuid.New(), schema.RoleDonor), scenarioPayload(ts.now.Add(time.Hour)))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1103), decodeError(t, w).Code)
}

func TestListRequestsRejectsUnknownStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)

	w := ts.do("GET", "/api/blood-requests?status=pending", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "status", decodeError(t, w).Field)
}

// respond, accept, then fulfil without touching the accepted response
func TestRespondAcceptFulfil(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	h := uuid.New()
	d1 := uuid.New()
	id := primitive.NewObjectID()

	base := schema.BloodRequest{
		ID:          id,
		RequesterID: h.String(),
		BloodGroup:  "O-",
		UnitsNeeded: 2,
		Urgency:     schema.UrgencyEmergency,
		RequiredBy:  ts.now.Add(24 * time.Hour),
		Status:      schema.RequestActive,
	}

	interested := base
	interested.Responses = []schema.DonorResponse{
		{DonorID: d1.String(), Status: schema.ResponseInterested, RespondedAt: ts.now},
	}
	ts.mongo.EXPECT().UpsertDonorResponse(id, d1.String(), ts.now).Return(&interested, nil)

	w := ts.do("POST", "/api/blood-requests/"+id.Hex()+"/respond", ts.token(t, d1, schema.RoleDonor),
		map[string]string{"status": "interested"})
	assert.Equal(t, http.StatusOK, w.Code)
	got := decodeRequest(t, w.Body.Bytes())
	if assert.Len(t, got.Responses, 1) {
		assert.Equal(t, d1.String(), got.Responses[0].DonorID)
		assert.Equal(t, schema.ResponseInterested, got.Responses[0].Status)
	}

	acceptedAt := ts.now
	accepted := base
	accepted.Responses = []schema.DonorResponse{
		{DonorID: d1.String(), Status: schema.ResponseAccepted, RespondedAt: ts.now, AcceptedAt: &acceptedAt},
	}
	ts.mongo.EXPECT().DecideDonorResponse(id, h.String(), d1.String(), schema.ActionAccept, ts.now).Return(&accepted, nil)

	hospitalToken := ts.token(t, h, schema.RoleHospital)
	w = ts.do("POST", "/api/blood-requests/"+id.Hex()+"/donor/"+d1.String()+"/manage", hospitalToken,
		map[string]string{"action": "accept"})
	assert.Equal(t, http.StatusOK, w.Code)
	got = decodeRequest(t, w.Body.Bytes())
	resp := got.Response(d1.String())
	if assert.NotNil(t, resp) {
		assert.Equal(t, schema.ResponseAccepted, resp.Status)
		assert.NotNil(t, resp.AcceptedAt)
		assert.Nil(t, resp.DeniedAt)
	}

	fulfilled := accepted
	fulfilled.Status = schema.RequestFulfilled
	ts.mongo.EXPECT().UpdateBloodRequestStatus(id, h.String(), schema.RequestFulfilled, ts.now).Return(&fulfilled, nil)

	w = ts.do("PATCH", "/api/blood-requests/"+id.Hex()+"/status", hospitalToken,
		map[string]string{"status": "fulfilled"})
	assert.Equal(t, http.StatusOK, w.Code)
	got = decodeRequest(t, w.Body.Bytes())
	assert.Equal(t, schema.RequestFulfilled, got.Status)
	assert.Equal(t, schema.ResponseAccepted, got.Response(d1.String()).Status)
}

func TestRespondWithoutBody(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	d := uuid.New()
	id := primitive.NewObjectID()

	ts.mongo.EXPECT().UpsertDonorResponse(id, d.String(), ts.now).Return(&schema.BloodRequest{
		ID:         id,
		Status:     schema.RequestActive,
		RequiredBy: ts.now.Add(time.Hour),
		Responses:  []schema.DonorResponse{{DonorID: d.String(), Status: schema.ResponseInterested}},
	}, nil)

	w := ts.do("POST", "/api/blood-requests/"+id.Hex()+"/respond", ts.token(t, d, schema.RoleDonor), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRespondErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	d := uuid.New()
	donorToken := ts.token(t, d, schema.RoleDonor)
	id := primitive.NewObjectID()

	ts.mongo.EXPECT().UpsertDonorResponse(id, d.String(), ts.now).Return(nil, store.ErrBloodRequestNotFound)
	w := ts.do("POST", "/api/blood-requests/"+id.Hex()+"/respond", donorToken, map[string]string{"status": "interested"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1300), decodeError(t, w).Code)

	w = ts.do("POST", "/api/blood-requests/not-an-object-id/respond", donorToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do("POST", "/api/blood-requests/"+id.Hex()+"/respond", donorToken, map[string]string{"status": "accepted"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "status", decodeError(t, w).Field)

	w = ts.do("POST", "/api/blood-requests/"+id.Hex()+"/respond", ts.token(t, uuid.New(), schema.RoleHospital), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// a donor who does not own the request cannot decide responses and nothing is written
func TestManageByDonorIsForbidden(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	id := primitive.NewObjectID()
	d1 := uuid.New()

	w := ts.do("POST", "/api/blood-requests/"+id.Hex()+"/donor/"+d1.String()+"/manage",
		ts.token(t, uuid.New(), schema.RoleDonor), map[string]string{"action": "accept"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestManageErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	id := primitive.NewObjectID()
	other := uuid.New()
	owner := uuid.New()
	d1 := uuid.New()
	path := "/api/blood-requests/" + id.Hex() + "/donor/" + d1.String() + "/manage"

	ts.mongo.EXPECT().DecideDonorResponse(id, other.String(), d1.String(), schema.ActionAccept, ts.now).Return(nil, store.ErrNotRequester)
	w := ts.do("POST", path, ts.token(t, other, schema.RoleBloodBank), map[string]string{"action": "accept"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1302), decodeError(t, w).Code)

	ownerToken := ts.token(t, owner, schema.RoleHospital)

	ts.mongo.EXPECT().DecideDonorResponse(id, owner.String(), d1.String(), schema.ActionDeny, ts.now).Return(nil, store.ErrDonorResponseNotFound)
	w = ts.do("POST", path, ownerToken, map[string]string{"action": "deny"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1301), decodeError(t, w).Code)

	ts.mongo.EXPECT().DecideDonorResponse(id, owner.String(), d1.String(), schema.ActionDeny, ts.now).Return(nil, store.ErrBloodRequestNotFound)
	w = ts.do("POST", path, ownerToken, map[string]string{"action": "deny"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1300), decodeError(t, w).Code)

	w = ts.do("POST", path, ownerToken, map[string]string{"action": "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "action", decodeError(t, w).Field)

	w = ts.do("POST", path, ownerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "action", decodeError(t, w).Field)
}

func TestUpdateStatusErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	id := primitive.NewObjectID()
	other := uuid.New()
	path := "/api/blood-requests/" + id.Hex() + "/status"

	ts.mongo.EXPECT().UpdateBloodRequestStatus(id, other.String(), schema.RequestCancelled, ts.now).Return(nil, store.ErrNotRequester)
	w := ts.do("PATCH", path, ts.token(t, other, schema.RoleHospital), map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do("PATCH", path, ts.token(t, other, schema.RoleHospital), map[string]string{"status": "closed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "status", decodeError(t, w).Field)

	w = ts.do("PATCH", path, ts.token(t, uuid.New(), schema.RoleDonor), map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMyRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	h := uuid.New()
	d := uuid.New()

	ts.mongo.EXPECT().ExpireOverdueBloodRequests(ts.now).Return(int64(0), nil)
	ts.mongo.EXPECT().ListBloodRequestsByRequester(h.String()).Return([]schema.BloodRequest{
		{ID: primitive.NewObjectID(), RequesterID: h.String(), Responses: []schema.DonorResponse{{DonorID: d.String(), Status: schema.ResponseInterested}}},
	}, nil)
	ts.core.EXPECT().GetAccounts([]string{d.String()}).Return(map[string]schema.Account{
		d.String(): {ID: d, Email: "d@example.com", Role: schema.RoleDonor},
	}, nil)
	ts.mongo.EXPECT().GetProfiles([]string{d.String()}).Return(map[string]schema.Profile{
		d.String(): {UserID: d.String(), Name: "Dee", Phone: "555", BloodGroup: "A+", Address: schema.Address{City: "Gotham"}},
	}, nil)

	w := ts.do("GET", "/api/blood-requests/my-requests", ts.token(t, h, schema.RoleHospital), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w.Body.Bytes())
	if assert.Len(t, list, 1) && assert.NotNil(t, list[0].Responses[0].Donor) {
		donor := list[0].Responses[0].Donor
		assert.Equal(t, "Dee", donor.Name)
		assert.Equal(t, "Gotham", donor.City)
		assert.Equal(t, "d@example.com", donor.Email)
	}
}
