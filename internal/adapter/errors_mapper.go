// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrServerUnavailable,
	http.StatusServiceUnavailable:    ErrServerUnavailable,
	http.StatusGatewayTimeout:        ErrServerUnavailable,
}

// mapHTTPError turns a non-2xx response into an adapter sentinel. The
// response body follows the sentinel after ": " so the service layer can
// tell apart the server's messages.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, body)
}

// retryableResponse reports whether a request should be attempted again.
// Idempotent requests are retried on transport errors and gateway failures;
// application errors are not. A POST is never replayed: the server may have
// stored the upload before the response was lost.
func retryableResponse(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || !idempotentMethod(resp.Request.Method) {
		return false
	}
	if err != nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func idempotentMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	default:
		return false
	}
}
