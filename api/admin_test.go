package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bloodlink/bloodlink-api/background"
)

type fakeTaskSender struct {
	sent []string
	err  error
}

func (f *fakeTaskSender) SendTask(signature *tasks.Signature) (*result.AsyncResult, error) {
	f.sent = append(f.sent, signature.Name)
	return nil, f.err
}

func (ts *testServer) admin(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, nil)
	req.Header.Set("Api-Token", "admin-key")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestAdminExpireRequestsEnqueuesTask(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	viper.Set("server.apikey.admin", "admin-key")
	defer viper.Set("server.apikey.admin", "")

	sender := &fakeTaskSender{}
	ts := newTestServer(t, ctl)
	ts.background = sender
	ts.router = ts.setupRouter()

	w := ts.do("POST", "/api/admin/expire-requests", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, sender.sent)

	w = ts.admin("/api/admin/expire-requests")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{background.ExpireBloodRequestsTask}, sender.sent)

	sender.err = errors.New("redis down")
	w = ts.admin("/api/admin/expire-requests")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, int64(999), decodeError(t, w).Code)
}

func TestAdminExpireRequestsInline(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	viper.Set("server.apikey.admin", "admin-key")
	defer viper.Set("server.apikey.admin", "")

	ts := newTestServer(t, ctl)
	ts.mongo.EXPECT().ExpireOverdueBloodRequests(ts.now).Return(int64(2), nil)

	w := ts.admin("/api/admin/expire-requests")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":"OK","expired":2}`, w.Body.String())
}
