package expiry

import (
	"context"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"
)

// ExpireBloodRequestActivity expires the request when it is still active and
// overdue. A request that was fulfilled or cancelled in the meantime is left
// untouched.
func (w *ExpiryWorker) ExpireBloodRequestActivity(ctx context.Context, requestID string) (bool, error) {
	logger := activity.GetLogger(ctx)

	expired, err := w.engine.ExpireRequest(requestID)
	if err != nil {
		logger.Error("expire blood request", zap.Error(err), zap.String("requestID", requestID))
		return false, err
	}

	return expired, nil
}
