package expiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-api/external/cadence"
)

type ExpiryWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env           *testsuite.TestWorkflowEnvironment
	worker        *ExpiryWorker
	testRequestID string
}

func (ts *ExpiryWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.testRequestID = "5f1e0c3a9d1b2c3d4e5f6a7b"
	ts.worker = expiryWorker
}

func (ts *ExpiryWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

func (ts *ExpiryWorkflowTestSuite) TestExpiresAfterDeadline() {
	requiredBy := ts.env.Now().Add(48 * time.Hour)

	ts.env.OnActivity(ts.worker.ExpireBloodRequestActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, requestID string) (bool, error) {
			ts.Equal(ts.testRequestID, requestID)
			ts.True(ts.env.Now().After(requiredBy), "activity ran before the deadline")
			return true, nil
		}).Once()

	ts.env.ExecuteWorkflow(ts.worker.BloodRequestExpiryWorkflow, ts.testRequestID, requiredBy.UnixNano())

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
	ts.env.AssertExpectations(ts.T())
}

func (ts *ExpiryWorkflowTestSuite) TestPastDeadlineExpiresImmediately() {
	start := ts.env.Now()
	requiredBy := start.Add(-time.Hour)

	ts.env.OnActivity(ts.worker.ExpireBloodRequestActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, requestID string) (bool, error) {
			ts.True(ts.env.Now().Sub(start) < time.Minute)
			return true, nil
		}).Once()

	ts.env.ExecuteWorkflow(ts.worker.BloodRequestExpiryWorkflow, ts.testRequestID, requiredBy.UnixNano())

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
}

func (ts *ExpiryWorkflowTestSuite) TestAlreadyClosedRequestIsLeftAlone() {
	ts.env.OnActivity(ts.worker.ExpireBloodRequestActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, requestID string) (bool, error) {
			return false, nil
		}).Once()

	ts.env.ExecuteWorkflow(ts.worker.BloodRequestExpiryWorkflow, ts.testRequestID, ts.env.Now().Add(time.Hour).UnixNano())

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
}

func (ts *ExpiryWorkflowTestSuite) TestActivityFailureFailsWorkflow() {
	ts.env.OnActivity(ts.worker.ExpireBloodRequestActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, requestID string) (bool, error) {
			return false, errors.New("mongo down")
		})

	ts.env.ExecuteWorkflow(ts.worker.BloodRequestExpiryWorkflow, ts.testRequestID, ts.env.Now().UnixNano())

	ts.True(ts.env.IsWorkflowCompleted())
	ts.Error(ts.env.GetWorkflowError())
}

func TestExpiryWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(ExpiryWorkflowTestSuite))
}
