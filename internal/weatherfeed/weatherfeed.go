/*
Copyright © 2013 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package weatherfeed is the boundary adapter that turns an hourly weather
// forecast HTTP API into a sequence of wildfire.WeatherRecord values. It is
// the "weather retrieval" collaborator the core spec treats as external
// (spec §1): the core only ever sees a []wildfire.WeatherRecord.
package weatherfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"

	"github.com/cenkalti/backoff"
	"github.com/ctessum/requestcache"
	"github.com/ctessum/wildfire"
)

// record is the wire shape of one forecast hour as the upstream API returns
// it. WindDirectionDeg here is in meteorological convention (the direction
// the wind blows from, 0 = north, clockwise); toWeatherRecord performs the conversion to the core's
// standard mathematical convention (spec §9, "heterogeneous wind-direction
// convention").
type record struct {
	WindSpeedMph      float64 `json:"wind_speed_mph"`
	WindDirectionDeg  float64 `json:"wind_direction_deg"`
	TemperatureF      float64 `json:"temperature_f"`
	WindGustMph       float64 `json:"wind_gust_mph"`
	CloudCoverPercent float64 `json:"cloud_cover_percent"`
	PrecipitationIn   float64 `json:"precipitation_in"`
}

// toWeatherRecord converts a meteorological-convention wire record to the
// core's standard mathematical convention: the direction the wind blows
// toward, 0 deg = +x (east), increasing counter-clockwise, whereas the
// upstream API gives the direction the wind blows from, 0 deg = north,
// increasing clockwise.
func (r record) toWeatherRecord() wildfire.WeatherRecord {
	mathDeg := 270 - r.WindDirectionDeg
	for mathDeg < 0 {
		mathDeg += 360
	}
	return wildfire.WeatherRecord{
		WindSpeedMph:      r.WindSpeedMph,
		WindDirectionDeg:  mathDeg,
		TemperatureF:      r.TemperatureF,
		WindGustMph:       r.WindGustMph,
		CloudCoverPercent: r.CloudCoverPercent,
		PrecipitationIn:   r.PrecipitationIn,
	}
}

type forecastResponse struct {
	Hours []record `json:"hours"`
}

// Feed fetches hourly forecasts from a weather API and caches responses in
// memory, retrying transient failures with exponential backoff — the same
// requestcache + backoff combination the teacher uses for its own
// network-backed readers.
type Feed struct {
	// BaseURL is the forecast endpoint, e.g. "https://example.com/forecast".
	BaseURL string
	// Client is the HTTP client used for requests. If nil, http.DefaultClient is used.
	Client *http.Client

	cache *requestcache.Cache
}

func (f *Feed) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Feed) ensureCache() {
	if f.cache != nil {
		return
	}
	f.cache = requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
		loc := request.(string)
		return f.fetch(ctx, loc)
	}, runtime.GOMAXPROCS(-1), requestcache.Deduplicate(), requestcache.Memory(24))
}

// Hours returns the hourly forecast for loc (an upstream-defined location
// key, e.g. "lat,lon"), retrying transient HTTP failures with exponential
// backoff and caching the result in memory for subsequent calls.
func (f *Feed) Hours(ctx context.Context, loc string) ([]wildfire.WeatherRecord, error) {
	f.ensureCache()
	req := f.cache.NewRequest(ctx, loc, loc)
	result, err := req.Result()
	if err != nil {
		return nil, err
	}
	return result.([]wildfire.WeatherRecord), nil
}

func (f *Feed) fetch(ctx context.Context, loc string) ([]wildfire.WeatherRecord, error) {
	var resp forecastResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"?loc="+loc, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		httpResp, err := f.client().Do(req)
		if err != nil {
			return err // network errors are retried
		}
		defer httpResp.Body.Close()
		if httpResp.StatusCode >= 500 {
			return fmt.Errorf("weatherfeed: server error %d", httpResp.StatusCode)
		}
		if httpResp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("weatherfeed: unexpected status %d", httpResp.StatusCode))
		}
		body, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, &resp)
	}

	if err := backoff.Retry(operation, backoff.NewExponentialBackOff()); err != nil {
		return nil, fmt.Errorf("weatherfeed: fetching forecast for %q: %w", loc, err)
	}

	out := make([]wildfire.WeatherRecord, len(resp.Hours))
	for i, r := range resp.Hours {
		out[i] = r.toWeatherRecord()
	}
	return out, nil
}
