package expiry

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

// expiryGrace keeps the activity strictly past the deadline so the
// overdue check in the store always matches.
const expiryGrace = time.Second

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// BloodRequestExpiryWorkflow waits until a request's requiredBy deadline has
// passed and then expires it if it is still active.
func (w *ExpiryWorker) BloodRequestExpiryWorkflow(ctx workflow.Context, requestID string, requiredBy int64) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	logger := workflow.GetLogger(ctx)

	deadline := time.Unix(0, requiredBy).Add(expiryGrace)
	if wait := deadline.Sub(workflow.Now(ctx)); wait > 0 {
		if err := workflow.NewTimer(ctx, wait).Get(ctx, nil); err != nil {
			return err
		}
	}

	var expired bool
	if err := workflow.ExecuteActivity(ctx, w.ExpireBloodRequestActivity, requestID).Get(ctx, &expired); err != nil {
		logger.Error("Fail to expire blood request", zap.Error(err), zap.String("requestID", requestID))
		sentry.CaptureException(err)
		return err
	}

	logger.Info("Blood request deadline reached", zap.String("requestID", requestID), zap.Bool("expired", expired))
	return nil
}
