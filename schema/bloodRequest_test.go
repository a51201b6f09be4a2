package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validRequestFields() BloodRequestFields {
	return BloodRequestFields{
		BloodGroup:   "A+",
		UnitsNeeded:  NewNumber(1),
		PatientName:  "Jane",
		HospitalName: "General",
		Location:     RequestLocation{City: "Springfield"},
		RequiredBy:   Timestamp{Time: testNow.Add(24 * time.Hour)},
	}
}

func TestBloodRequestFieldsValidate(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(f *BloodRequestFields)
	}{
		{"bloodGroup", func(f *BloodRequestFields) { f.BloodGroup = "" }},
		{"bloodGroup", func(f *BloodRequestFields) { f.BloodGroup = "C+" }},
		{"unitsNeeded", func(f *BloodRequestFields) { f.UnitsNeeded = NewNumber(0) }},
		{"urgency", func(f *BloodRequestFields) { f.Urgency = "critical" }},
		{"status", func(f *BloodRequestFields) { f.Status = "open" }},
		{"patientName", func(f *BloodRequestFields) { f.PatientName = "  " }},
		{"unitsNeeded", func(f *BloodRequestFields) { f.UnitsNeeded = Number{} }},
		{"unitsNeeded", func(f *BloodRequestFields) { f.UnitsNeeded = NewNumber(1.5) }},
		{"patientAge", func(f *BloodRequestFields) { f.PatientAge = NewNumber(-1) }},
		{"hospitalName", func(f *BloodRequestFields) { f.HospitalName = "" }},
		{"location.city", func(f *BloodRequestFields) { f.Location.City = "" }},
		{"requiredBy", func(f *BloodRequestFields) { f.RequiredBy = Timestamp{} }},
	}

	for _, c := range cases {
		f := validRequestFields()
		c.mutate(&f)

		err := f.Validate()
		if assert.Error(t, err, c.field) {
			assert.Equal(t, c.field, err.(*ValidationError).Field)
		}
	}

	f := validRequestFields()
	assert.NoError(t, f.Validate())
}

func TestNewBloodRequestDefaults(t *testing.T) {
	f := validRequestFields()
	f.Status = RequestCancelled
	f.PatientName = "  Jane "
	f.Location.City = " Springfield "

	req := f.NewBloodRequest("h1", testNow)
	assert.Equal(t, "h1", req.RequesterID)
	assert.Equal(t, UrgencyNormal, req.Urgency)
	assert.Equal(t, RequestActive, req.Status)
	assert.Equal(t, "Jane", req.PatientName)
	assert.Equal(t, "Springfield", req.Location.City)
	assert.NotNil(t, req.Responses)
	assert.Empty(t, req.Responses)
	assert.Equal(t, testNow, req.CreatedAt)
	assert.Equal(t, testNow, req.UpdatedAt)
}

func TestBloodRequestIsOverdue(t *testing.T) {
	req := &BloodRequest{Status: RequestActive, RequiredBy: testNow.Add(-time.Second)}
	assert.True(t, req.IsOverdue(testNow))

	req.RequiredBy = testNow
	assert.False(t, req.IsOverdue(testNow), "the deadline itself is not overdue")

	req.RequiredBy = testNow.Add(-time.Hour)
	req.Status = RequestFulfilled
	assert.False(t, req.IsOverdue(testNow))
}

func TestBloodRequestResponse(t *testing.T) {
	req := &BloodRequest{Responses: []DonorResponse{
		{DonorID: "d1", Status: ResponseInterested},
		{DonorID: "d2", Status: ResponseAccepted},
	}}

	r := req.Response("d2")
	if assert.NotNil(t, r) {
		assert.Equal(t, ResponseAccepted, r.Status)
	}
	assert.Nil(t, req.Response("d3"))
}

func TestBloodRequestFilterNormalize(t *testing.T) {
	f := BloodRequestFilter{City: " Metro ", Limit: 500}
	assert.NoError(t, f.Normalize())
	assert.Equal(t, RequestActive, f.Status)
	assert.Equal(t, "Metro", f.City)
	assert.Equal(t, int64(DefaultListLimit), f.Limit)

	f = BloodRequestFilter{Status: "open"}
	assert.Error(t, f.Normalize())

	f = BloodRequestFilter{BloodGroup: "Z"}
	assert.Error(t, f.Normalize())

	f = BloodRequestFilter{Urgency: "later"}
	assert.Error(t, f.Normalize())
}

func TestUrgencySeverityOrder(t *testing.T) {
	assert.True(t, UrgencySeverity[UrgencyEmergency] > UrgencySeverity[UrgencyUrgent])
	assert.True(t, UrgencySeverity[UrgencyUrgent] > UrgencySeverity[UrgencyNormal])
}

func TestActionAndStatusValidators(t *testing.T) {
	assert.NoError(t, ValidateRequestStatus(RequestExpired))
	assert.Error(t, ValidateRequestStatus(""))
	assert.Error(t, ValidateRequestStatus("done"))

	assert.NoError(t, ValidateResponseAction(ActionDeny))
	assert.Error(t, ValidateResponseAction(""))
	assert.Error(t, ValidateResponseAction("approve"))

	assert.NoError(t, ValidateDonorSubmission(""))
	assert.NoError(t, ValidateDonorSubmission(ResponseInterested))
	assert.Error(t, ValidateDonorSubmission(ResponseAccepted))
}

func TestTimestampLayouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2026-03-02T10:30:00Z"`: time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		`"2026-03-02T10:30:15"`:  time.Date(2026, 3, 2, 10, 30, 15, 0, time.UTC),
		`"2026-03-02T10:30"`:     time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		`"2026-03-02"`:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	for input, expected := range cases {
		var ts Timestamp
		assert.NoError(t, json.Unmarshal([]byte(input), &ts), input)
		assert.True(t, expected.Equal(ts.Time), input)
	}

	var ts Timestamp
	assert.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"tomorrow"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12`), &ts))
}
