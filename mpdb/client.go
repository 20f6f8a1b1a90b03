/*
Copyright © 2026 the redoxthermo authors.
This file is part of redoxthermo.

redoxthermo is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

redoxthermo is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with redoxthermo.  If not, see <http://www.gnu.org/licenses/>.
*/

package mpdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
)

// Client is a Database backed by a REST API that serves entries at
//
//	GET <BaseURL>/materials/<chemical system>/entries
//
// as a JSON object of the form {"response": [entries...]}.
type Client struct {
	// BaseURL is the root of the API, e.g. "https://example.org/rest/v2".
	BaseURL string

	// APIKey is sent in the X-API-KEY header if it is not empty.
	APIKey string

	// HTTPClient is used for requests. http.DefaultClient is used if nil.
	HTTPClient *http.Client

	// NewBackOff returns the retry policy of a request. An exponential
	// back off with a maximum elapsed time of one minute is used if nil.
	NewBackOff func() backoff.BackOff

	// Log receives progress messages. logrus.StandardLogger() is used if nil.
	Log logrus.FieldLogger
}

type clientResponse struct {
	Response []Entry `json:"response"`
}

// statusError is a non-success HTTP response.
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("mpdb: %s: %s", e.url, http.StatusText(e.code))
}

func (c *Client) log() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

func (c *Client) backOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff
	if c.NewBackOff != nil {
		b = c.NewBackOff()
	} else {
		eb := backoff.NewExponentialBackOff()
		eb.MaxElapsedTime = time.Minute
		b = eb
	}
	return backoff.WithContext(b, ctx)
}

// EntriesInChemicalSystem implements Database. Network errors and server
// errors are retried; other unsuccessful responses are returned
// immediately.
func (c *Client) EntriesInChemicalSystem(ctx context.Context, elements []string) ([]Entry, error) {
	system := ChemicalSystem(elements)
	u := fmt.Sprintf("%s/materials/%s/entries", c.BaseURL, url.PathEscape(system))
	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	var entries []Entry
	err := backoff.RetryNotify(
		func() error {
			req, err := http.NewRequest(http.MethodGet, u, nil)
			if err != nil {
				return backoff.Permanent(fmt.Errorf("mpdb: %w", err))
			}
			req = req.WithContext(ctx)
			if c.APIKey != "" {
				req.Header.Set("X-API-KEY", c.APIKey)
			}
			resp, err := hc.Do(req)
			if err != nil {
				return fmt.Errorf("mpdb: %w", err)
			}
			defer resp.Body.Close()
			switch {
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				return &statusError{code: resp.StatusCode, url: u}
			case resp.StatusCode != http.StatusOK:
				return backoff.Permanent(&statusError{code: resp.StatusCode, url: u})
			}
			var r clientResponse
			if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
				return backoff.Permanent(fmt.Errorf("mpdb: decoding %s: %w", u, err))
			}
			entries = r.Response
			return nil
		},
		c.backOff(ctx),
		func(err error, d time.Duration) {
			c.log().WithFields(logrus.Fields{
				"system": system,
				"retry":  d,
			}).Warn(err)
		},
	)
	if err != nil {
		return nil, err
	}
	c.log().WithFields(logrus.Fields{
		"system":  system,
		"entries": len(entries),
	}).Debug("retrieved entries")
	return entries, nil
}
