// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-platform/internal/utils"
)

// Response statuses used in every envelope.
const (
	statusSuccess = "success"
	statusError   = "error"
)

// Envelope builds the uniform response body `{status, message?, data?}`
// every endpoint writes.
//
// A fresh envelope reports success with HTTP 200, no message and no body.
// All setters are chainable and idempotent; calling one again simply
// overwrites the previous value. The body is tracked separately from its
// value: `data` is omitted from the output only when SetBody was never
// called, so an explicit nil or zero body still serializes as `data`.
//
// An envelope is single use. Send writes the response exactly once and
// rejects any further Send call.
type Envelope struct {
	httpCode int
	status   string
	message  string
	body     any
	bodySet  bool
	sent     bool
}

// NewEnvelope returns a fresh success envelope.
func NewEnvelope() *Envelope {
	return &Envelope{
		httpCode: http.StatusOK,
		status:   statusSuccess,
	}
}

// SetHTTPCode records the HTTP status code Send will write.
func (e *Envelope) SetHTTPCode(code int) *Envelope {
	e.httpCode = code
	return e
}

// SetStatus records the envelope status ("success" or "error").
func (e *Envelope) SetStatus(status string) *Envelope {
	e.status = status
	return e
}

// SetMessage records the optional human-readable message.
func (e *Envelope) SetMessage(message string) *Envelope {
	e.message = message
	return e
}

// SetBody records the response body. Once set, `data` is always present in
// the output, even for a nil body.
func (e *Envelope) SetBody(body any) *Envelope {
	e.body = body
	e.bodySet = true
	return e
}

// Send serializes the envelope to w with the recorded HTTP status code.
// It returns ErrEnvelopeAlreadySent when called a second time.
func (e *Envelope) Send(w http.ResponseWriter) error {
	if e.sent {
		return ErrEnvelopeAlreadySent
	}
	e.sent = true

	payload := struct {
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
		Data    *any   `json:"data,omitempty"`
	}{
		Status:  e.status,
		Message: e.message,
	}
	if e.bodySet {
		payload.Data = &e.body
	}

	if _, err := utils.WriteJSON(w, payload, e.httpCode); err != nil {
		return err
	}

	return nil
}

// errorEnvelope is a shorthand for the common error framing.
func errorEnvelope(code int, message string) *Envelope {
	return NewEnvelope().
		SetHTTPCode(code).
		SetStatus(statusError).
		SetMessage(message)
}
