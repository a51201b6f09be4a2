package expiry

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-api/lifecycle"
)

const (
	TaskListName = "bloodlink-expiry-tasks"

	WorkflowName = "BloodRequestExpiryWorkflow"
	ActivityName = "ExpireBloodRequestActivity"
)

type ExpiryWorker struct {
	domain string
	engine *lifecycle.Engine
}

func NewExpiryWorker(domain string, engine *lifecycle.Engine) *ExpiryWorker {
	return &ExpiryWorker{
		domain: domain,
		engine: engine,
	}
}

func (w *ExpiryWorker) Register() {
	workflow.RegisterWithOptions(w.BloodRequestExpiryWorkflow, workflow.RegisterOptions{Name: WorkflowName})

	activity.RegisterWithOptions(w.ExpireBloodRequestActivity, activity.RegisterOptions{Name: ActivityName})
}

func (w *ExpiryWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		w.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
