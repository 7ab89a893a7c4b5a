/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
)

type healthStatus struct {
	Status     health.AvailabilityStatus `json:"status"`
	Components map[string]checkResult    `json:"components,omitempty"`
}

type checkResult struct {
	Status              health.AvailabilityStatus `json:"status"`
	Error               string                    `json:"error,omitempty"`
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

// JSONResultWriter writes the checker result with per component response times.
type JSONResultWriter struct {
	responseTimes *ResponseTimes
}

func NewJSONResultWriter(rt *ResponseTimes) *JSONResultWriter {
	return &JSONResultWriter{
		responseTimes: rt,
	}
}

func (rw *JSONResultWriter) Write(
	result *health.CheckerResult,
	status int,
	w http.ResponseWriter,
	_ *http.Request,
) error {
	r := &healthStatus{Status: result.Status}

	if len(result.Details) > 0 {
		r.Components = make(map[string]checkResult, len(result.Details))

		for name, cr := range result.Details {
			c := checkResult{Status: cr.Status}

			if cr.Error != nil {
				c.Error = cr.Error.Error()
			}

			if t, ok := rw.responseTimes.Get(name); ok {
				c.LastResponseTime = t.LastResponseTime.String()
				c.AverageResponseTime = t.AverageResponseTime.String()
			}

			r.Components[name] = c
		}
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cannot marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
