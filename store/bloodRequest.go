package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodlink/bloodlink-api/schema"
)

var (
	ErrBloodRequestNotFound  = fmt.Errorf("blood request not found")
	ErrDonorResponseNotFound = fmt.Errorf("donor response not found")
	ErrNotRequester          = fmt.Errorf("not authorized to manage this request")
)

// maxRespondAttempts bounds the retry loop when two submissions from the same
// donor race between the update and the push.
const maxRespondAttempts = 3

type BloodRequestStore interface {
	CreateBloodRequest(req *schema.BloodRequest) (*schema.BloodRequest, error)
	GetBloodRequest(id primitive.ObjectID) (*schema.BloodRequest, error)
	ListBloodRequests(filter schema.BloodRequestFilter) ([]schema.BloodRequest, error)
	ListEmergencyBloodRequests(limit int64) ([]schema.BloodRequest, error)
	ListBloodRequestsByRequester(requesterID string) ([]schema.BloodRequest, error)

	UpsertDonorResponse(id primitive.ObjectID, donorID string, now time.Time) (*schema.BloodRequest, error)
	DecideDonorResponse(id primitive.ObjectID, requesterID, donorID, action string, now time.Time) (*schema.BloodRequest, error)
	UpdateBloodRequestStatus(id primitive.ObjectID, requesterID, status string, now time.Time) (*schema.BloodRequest, error)

	ExpireBloodRequest(id primitive.ObjectID, now time.Time) (bool, error)
	ExpireOverdueBloodRequests(now time.Time) (int64, error)
}

// CreateBloodRequest inserts a new request and returns it with its id
func (m *mongoDB) CreateBloodRequest(req *schema.BloodRequest) (*schema.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if req.Responses == nil {
		req.Responses = []schema.DonorResponse{}
	}

	result, err := m.collection(schema.BloodRequestCollection).InsertOne(ctx, req)
	if err != nil {
		return nil, err
	}
	req.ID = result.InsertedID.(primitive.ObjectID)

	return req, nil
}

// GetBloodRequest finds a request by id
func (m *mongoDB) GetBloodRequest(id primitive.ObjectID) (*schema.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var req schema.BloodRequest
	if err := m.collection(schema.BloodRequestCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBloodRequestNotFound
		}
		return nil, err
	}

	return normalize(&req), nil
}

// ListBloodRequests returns requests matching the filter, most severe first and
// newest first within the same urgency.
func (m *mongoDB) ListBloodRequests(filter schema.BloodRequestFilter) ([]schema.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := filter.Normalize(); err != nil {
		return nil, err
	}

	match := bson.M{"status": filter.Status}
	if filter.BloodGroup != "" {
		match["blood_group"] = filter.BloodGroup
	}
	if filter.Urgency != "" {
		match["urgency"] = filter.Urgency
	}
	if filter.City != "" {
		match["location.city"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.City), Options: "i"}
	}

	// urgency is stored as text, map it to its severity so it sorts by rank
	severityBranches := bson.A{}
	for urgency, rank := range schema.UrgencySeverity {
		severityBranches = append(severityBranches,
			bson.M{"case": bson.M{"$eq": bson.A{"$urgency", urgency}}, "then": rank})
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$addFields", Value: bson.M{"__severity": bson.M{"$switch": bson.M{
			"branches": severityBranches,
			"default":  0,
		}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "__severity", Value: -1}, {Key: "created_at", Value: -1}}}},
		{{Key: "$limit", Value: filter.Limit}},
		{{Key: "$project", Value: bson.M{"__severity": 0}}},
	}

	cursor, err := m.collection(schema.BloodRequestCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	return decodeBloodRequests(ctx, cursor)
}

// ListEmergencyBloodRequests returns the newest active emergency requests
func (m *mongoDB) ListEmergencyBloodRequests(limit int64) ([]schema.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"urgency": schema.UrgencyEmergency,
		"status":  schema.RequestActive,
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)

	cursor, err := m.collection(schema.BloodRequestCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	return decodeBloodRequests(ctx, cursor)
}

// ListBloodRequestsByRequester returns every request a requester owns, newest first
func (m *mongoDB) ListBloodRequestsByRequester(requesterID string) ([]schema.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := m.collection(schema.BloodRequestCollection).Find(ctx, bson.M{"requester_id": requesterID}, opts)
	if err != nil {
		return nil, err
	}

	return decodeBloodRequests(ctx, cursor)
}

// UpsertDonorResponse records a donor's interest. An existing response from
// the same donor is reset to interested in place; otherwise a new response is
// appended. Both branches are single-document atomic updates so concurrent
// donors never overwrite each other's entries.
func (m *mongoDB) UpsertDonorResponse(id primitive.ObjectID, donorID string, now time.Time) (*schema.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.collection(schema.BloodRequestCollection)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	for attempt := 0; attempt < maxRespondAttempts; attempt++ {
		var req schema.BloodRequest

		query, update := repeatResponseWrite(id, donorID, now)
		err := c.FindOneAndUpdate(ctx, query, update, opts).Decode(&req)
		if err == nil {
			return normalize(&req), nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}

		query, update = firstResponseWrite(id, donorID, now)
		err = c.FindOneAndUpdate(ctx, query, update, opts).Decode(&req)
		if err == nil {
			return normalize(&req), nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}

		// neither matched: the request is gone, or the same donor was pushed
		// concurrently and the next round will hit the update branch
		if _, err := m.GetBloodRequest(id); err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": id.Hex(),
			"donor_id":   donorID,
			"attempt":    attempt,
		}).Warn("concurrent donor response, retrying")
	}

	return nil, fmt.Errorf("donor response for %s kept conflicting", id.Hex())
}

// repeatResponseWrite resets an existing response to interested. Stale
// accepted_at, denied_at and responded_at are left in place.
func repeatResponseWrite(id primitive.ObjectID, donorID string, now time.Time) (bson.M, bson.M) {
	return bson.M{"_id": id, "responses.donor_id": donorID},
		bson.M{"$set": bson.M{
			"responses.$.status": schema.ResponseInterested,
			"updated_at":         now,
		}}
}

// firstResponseWrite appends a response only when the donor has none yet.
func firstResponseWrite(id primitive.ObjectID, donorID string, now time.Time) (bson.M, bson.M) {
	response := schema.DonorResponse{
		DonorID:     donorID,
		Status:      schema.ResponseInterested,
		RespondedAt: now,
	}
	return bson.M{"_id": id, "responses.donor_id": bson.M{"$ne": donorID}},
		bson.M{
			"$push": bson.M{"responses": response},
			"$set":  bson.M{"updated_at": now},
		}
}

// decisionWrite matches the response only on a request the requester owns and
// clears the timestamp of the opposite decision.
func decisionWrite(id primitive.ObjectID, requesterID, donorID, action string, now time.Time) (bson.M, bson.M, error) {
	var status, stamp, cleared string
	switch action {
	case schema.ActionAccept:
		status, stamp, cleared = schema.ResponseAccepted, "responses.$.accepted_at", "responses.$.denied_at"
	case schema.ActionDeny:
		status, stamp, cleared = schema.ResponseDenied, "responses.$.denied_at", "responses.$.accepted_at"
	default:
		return nil, nil, fmt.Errorf("unknown response action: %s", action)
	}

	query := bson.M{
		"_id":                id,
		"requester_id":       requesterID,
		"responses.donor_id": donorID,
	}
	update := bson.M{
		"$set": bson.M{
			"responses.$.status": status,
			stamp:                now,
			"updated_at":         now,
		},
		"$unset": bson.M{cleared: ""},
	}
	return query, update, nil
}

func statusWrite(id primitive.ObjectID, requesterID, status string, now time.Time) (bson.M, bson.M) {
	return bson.M{
			"_id":          id,
			"requester_id": requesterID,
			"status":       bson.M{"$ne": status},
		},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": now,
		}}
}

// DecideDonorResponse accepts or denies a donor's response on behalf of the
// request owner. The ownership check and the element update happen in the
// same write.
func (m *mongoDB) DecideDonorResponse(id primitive.ObjectID, requesterID, donorID, action string, now time.Time) (*schema.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query, update, err := decisionWrite(id, requesterID, donorID, action, now)
	if err != nil {
		return nil, err
	}

	var req schema.BloodRequest
	err = m.collection(schema.BloodRequestCollection).FindOneAndUpdate(ctx,
		query,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&req)
	if err == nil {
		return normalize(&req), nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	current, err := m.GetBloodRequest(id)
	if err != nil {
		return nil, err
	}
	if current.RequesterID != requesterID {
		return nil, ErrNotRequester
	}
	return nil, ErrDonorResponseNotFound
}

// UpdateBloodRequestStatus sets the overall status of a request. Setting the
// status it already has is a no-op and leaves updated_at untouched.
func (m *mongoDB) UpdateBloodRequestStatus(id primitive.ObjectID, requesterID, status string, now time.Time) (*schema.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query, update := statusWrite(id, requesterID, status, now)

	var req schema.BloodRequest
	err := m.collection(schema.BloodRequestCollection).FindOneAndUpdate(ctx,
		query,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&req)
	if err == nil {
		return normalize(&req), nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	current, err := m.GetBloodRequest(id)
	if err != nil {
		return nil, err
	}
	if current.RequesterID != requesterID {
		return nil, ErrNotRequester
	}
	return current, nil
}

// ExpireBloodRequest flips a single overdue request to expired. The status is
// re-checked in the write so a request the owner just closed stays closed.
func (m *mongoDB) ExpireBloodRequest(id primitive.ObjectID, now time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := expiryQuery(now)
	query["_id"] = id

	result, err := m.collection(schema.BloodRequestCollection).UpdateOne(ctx, query, expiryUpdate(now))
	if err != nil {
		return false, err
	}

	return result.ModifiedCount == 1, nil
}

// ExpireOverdueBloodRequests flips every overdue active request to expired
func (m *mongoDB) ExpireOverdueBloodRequests(now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.BloodRequestCollection).UpdateMany(ctx, expiryQuery(now), expiryUpdate(now))
	if err != nil {
		return 0, err
	}

	if result.ModifiedCount > 0 {
		log.WithField("prefix", mongoLogPrefix).Infof("expired %d overdue blood requests", result.ModifiedCount)
	}

	return result.ModifiedCount, nil
}

func expiryQuery(now time.Time) bson.M {
	return bson.M{
		"status":      schema.RequestActive,
		"required_by": bson.M{"$lt": now},
	}
}

func expiryUpdate(now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"status":     schema.RequestExpired,
		"updated_at": now,
	}}
}

func decodeBloodRequests(ctx context.Context, cursor *mongo.Cursor) ([]schema.BloodRequest, error) {
	requests := make([]schema.BloodRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	for i := range requests {
		normalize(&requests[i])
	}

	return requests, nil
}

// normalize makes sure responses encode as an empty list rather than null
func normalize(req *schema.BloodRequest) *schema.BloodRequest {
	if req.Responses == nil {
		req.Responses = []schema.DonorResponse{}
	}
	return req
}
