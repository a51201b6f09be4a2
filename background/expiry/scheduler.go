package expiry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
)

const scheduleTimeout = 5 * time.Second

// workflowRunTail bounds how long a workflow may run past its deadline.
const workflowRunTail = time.Hour

// scheduleHorizon is the furthest deadline a workflow is started for. Cadence
// carries the run timeout as int32 seconds; later deadlines are left to the
// periodic sweep.
const scheduleHorizon = 365 * 24 * time.Hour

type WorkflowStarter interface {
	StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error)
}

// Scheduler starts one expiry workflow per blood request.
type Scheduler struct {
	client WorkflowStarter
	now    func() time.Time
}

func NewScheduler(c WorkflowStarter) *Scheduler {
	return &Scheduler{client: c, now: time.Now}
}

func WorkflowID(requestID string) string {
	return fmt.Sprintf("blood-request-expiry-%s", requestID)
}

// ScheduleExpiry starts the expiry workflow of a request. Deadlines beyond
// scheduleHorizon are skipped without error.
func (s *Scheduler) ScheduleExpiry(requestID string, requiredBy time.Time) error {
	timeout := requiredBy.Sub(s.now())
	if timeout < 0 {
		timeout = 0
	}
	if timeout > scheduleHorizon {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), scheduleTimeout)
	defer cancel()

	_, err := s.client.StartWorkflow(ctx, client.StartWorkflowOptions{
		ID:                           WorkflowID(requestID),
		TaskList:                     TaskListName,
		ExecutionStartToCloseTimeout: timeout + workflowRunTail,
		WorkflowIDReusePolicy:        client.WorkflowIDReusePolicyAllowDuplicate,
	}, WorkflowName, requestID, requiredBy.UnixNano())
	return err
}
