package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink/bloodlink-api/schema"
)

// createBloodRequest opens a new request for the calling hospital or blood bank
func (s *Server) createBloodRequest(c *gin.Context) {
	var fields schema.BloodRequestFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorBinding(err), err)
		return
	}

	req, err := s.engine.CreateRequest(identity(c), fields)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Blood request created successfully",
		"request": req,
	})
}

// listBloodRequests is the public listing filtered by query parameters
func (s *Server) listBloodRequests(c *gin.Context) {
	var filter schema.BloodRequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorBinding(err), err)
		return
	}

	requests, err := s.engine.ListRequests(filter)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (s *Server) listEmergencyBloodRequests(c *gin.Context) {
	requests, err := s.engine.ListEmergencyRequests()
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// myBloodRequests lists the caller's requests with donor details joined
func (s *Server) myBloodRequests(c *gin.Context) {
	requests, err := s.engine.MyRequests(identity(c))
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// respondBloodRequest records the calling donor's interest
func (s *Server) respondBloodRequest(c *gin.Context) {
	var params struct {
		Status string `json:"status"`
	}

	// the body is optional
	if err := c.ShouldBindJSON(&params); err != nil && err != io.EOF {
		abortWithEncoding(c, http.StatusBadRequest, errorBinding(err), err)
		return
	}

	req, err := s.engine.Respond(identity(c), c.Param("requestID"), params.Status)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Response recorded successfully",
		"request": req,
	})
}

// manageDonorResponse accepts or denies a donor's response
func (s *Server) manageDonorResponse(c *gin.Context) {
	var params struct {
		Action string `json:"action"`
	}

	if err := c.ShouldBindJSON(&params); err != nil && err != io.EOF {
		abortWithEncoding(c, http.StatusBadRequest, errorBinding(err), err)
		return
	}

	req, err := s.engine.ManageDonorResponse(identity(c), c.Param("requestID"), c.Param("donorID"), params.Action)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	message := "Donor response accepted successfully"
	if params.Action == schema.ActionDeny {
		message = "Donor response denied successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"request": req,
	})
}

// updateBloodRequestStatus sets the overall status of the caller's request
func (s *Server) updateBloodRequestStatus(c *gin.Context) {
	var params struct {
		Status string `json:"status"`
	}

	if err := c.ShouldBindJSON(&params); err != nil && err != io.EOF {
		abortWithEncoding(c, http.StatusBadRequest, errorBinding(err), err)
		return
	}

	req, err := s.engine.UpdateStatus(identity(c), c.Param("requestID"), params.Status)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Request status updated successfully",
		"request": req,
	})
}
