package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/bloodlink/bloodlink-api/background"
)

// TaskSender enqueues background tasks
type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// adminExpireRequests is an internal only api to trigger the sweep of
// overdue blood requests. Without a task queue the sweep runs inline.
func (s *Server) adminExpireRequests(c *gin.Context) {
	if s.background == nil {
		count, err := s.engine.SweepExpired()
		if shouldInterupt(err, c) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"result": "OK", "expired": count})
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: background.ExpireBloodRequestsTask,
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"result": "OK"})
}
