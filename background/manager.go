package background

import (
	"context"
	"errors"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/sirupsen/logrus"

	"github.com/bloodlink/bloodlink-api/lifecycle"
)

const ExpireBloodRequestsTask = "expire_blood_requests"

// DefaultExpiryInterval is used when no positive sweep interval is configured.
const DefaultExpiryInterval = 5 * time.Minute

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

type taskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// BackgroundManager is a struct for bloodlink background manager
type BackgroundManager struct {
	engine *lifecycle.Engine

	taskServer *machinery.Server
	sender     taskSender

	worker *machinery.Worker
}

func New(engine *lifecycle.Engine, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		engine:     engine,
		taskServer: taskServer,
		sender:     taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("bloodlink-worker", 5)
	return m.worker.Launch()
}

// ExpireBloodRequests flips every overdue active request to expired
func (m *BackgroundManager) ExpireBloodRequests() error {
	count, err := m.engine.SweepExpired()
	if err != nil {
		log.WithError(err).Error("fail to expire overdue blood requests")
		return err
	}

	if count > 0 {
		log.WithField("count", count).Info("expired overdue blood requests")
	}
	return nil
}

// ScheduleExpirySweep enqueues the expiry task every interval until ctx is done
func (m *BackgroundManager) ScheduleExpirySweep(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.WithField("interval", interval).Warn("invalid expiry interval, using default")
		interval = DefaultExpiryInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.sender.SendTask(&tasks.Signature{Name: ExpireBloodRequestsTask}); err != nil {
				log.WithError(err).Error("fail to enqueue expiry sweep")
			}
		}
	}
}
