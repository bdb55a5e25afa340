// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_UnknownRoutesReturn404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	for _, target := range []string{"/", "/api", "/api/user/login", "/api/records/a/b/c"} {
		rec := doRequest(t, router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/version"},
		{http.MethodPatch, "/api/records"},
		{http.MethodPost, "/api/records/rec-1"},
		{http.MethodGet, "/api/records/rec-1/wrapped-key"},
		{http.MethodPut, "/api/blobs/blob-1"},
	}

	for _, tt := range tests {
		rec := doRequest(t, router, tt.method, tt.target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tt.method, tt.target)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rec := doRequest(t, router, http.MethodGet, "/api/version", nil)

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}
