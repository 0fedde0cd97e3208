package eia

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/specialistvlad/gridcarbon/internal/attribution"
	"github.com/specialistvlad/gridcarbon/internal/ctxlog"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"
)

const (
	fuelTypeRoute    = "electricity/rto/fuel-type-data/data"
	interchangeRoute = "electricity/rto/interchange-data/data"
	regionRoute      = "electricity/rto/region-data/data"
)

// Client is a paginating EIA v2 client. It is safe for concurrent use.
type Client struct {
	http     *resty.Client
	apiKey   string
	pageSize int
}

// New returns a client for cfg. An empty API key is rejected.
func New(cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc, apiKey: cfg.APIKey, pageSize: cfg.PageSize}, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

// Window holds every record collection for a time range.
type Window struct {
	Generation  []attribution.GenerationRecord
	Interchange []attribution.InterchangeRecord
	Region      []attribution.RegionRecord
}

// FetchWindow retrieves the three series for [start, end] concurrently. The
// window fails as a unit if any series fails.
func (c *Client) FetchWindow(ctx context.Context, start, end time.Time) (*Window, error) {
	var w Window
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := c.FetchFuelTypeData(gctx, start, end)
		w.Generation = recs
		return err
	})
	g.Go(func() error {
		recs, err := c.FetchInterchangeData(gctx, start, end)
		w.Interchange = recs
		return err
	})
	g.Go(func() error {
		recs, err := c.FetchRegionData(gctx, start, end)
		w.Region = recs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &w, nil
}

// FetchFuelTypeData returns hourly net generation by authority and energy
// source for [start, end].
func (c *Client) FetchFuelTypeData(ctx context.Context, start, end time.Time) ([]attribution.GenerationRecord, error) {
	params := c.baseParams(start, end)
	params["sort[1][column]"] = "respondent"
	params["sort[1][direction]"] = "asc"
	return fetchAll[attribution.GenerationRecord](ctx, c, fuelTypeRoute, params)
}

// FetchInterchangeData returns hourly interchange between neighboring
// authorities for [start, end].
func (c *Client) FetchInterchangeData(ctx context.Context, start, end time.Time) ([]attribution.InterchangeRecord, error) {
	params := c.baseParams(start, end)
	params["sort[1][column]"] = "fromba"
	params["sort[1][direction]"] = "asc"
	params["sort[2][column]"] = "toba"
	params["sort[2][direction]"] = "asc"
	return fetchAll[attribution.InterchangeRecord](ctx, c, interchangeRoute, params)
}

// FetchRegionData returns hourly demand (D), net generation (NG) and total
// interchange (TI) by authority for [start, end].
func (c *Client) FetchRegionData(ctx context.Context, start, end time.Time) ([]attribution.RegionRecord, error) {
	params := c.baseParams(start, end)
	params["sort[1][column]"] = "respondent"
	params["sort[1][direction]"] = "asc"
	params["sort[2][column]"] = "type"
	params["sort[2][direction]"] = "asc"
	params["facets[type][0]"] = "D"
	params["facets[type][1]"] = "NG"
	params["facets[type][2]"] = "TI"
	return fetchAll[attribution.RegionRecord](ctx, c, regionRoute, params)
}

// FormatTimestamp renders t the way the hourly routes expect, in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15")
}

func (c *Client) baseParams(start, end time.Time) map[string]string {
	return map[string]string{
		"start":              FormatTimestamp(start),
		"end":                FormatTimestamp(end),
		"frequency":          "hourly",
		"data[0]":            "value",
		"sort[0][column]":    "period",
		"sort[0][direction]": "asc",
		"length":             strconv.Itoa(c.pageSize),
		"api_key":            c.apiKey,
	}
}

type page[T any] struct {
	Response struct {
		Data   []T      `json:"data"`
		Errors []string `json:"errors"`
	} `json:"response"`
	Error string `json:"error"`
}

// fetchAll reads route page by page until a page holds fewer than pageSize
// rows.
func fetchAll[T any](ctx context.Context, c *Client, route string, params map[string]string) ([]T, error) {
	ctx = ctxlog.With(ctx, "route", route)
	logger := ctxlog.FromContext(ctx)
	var all []T
	for offset := 0; ; offset += c.pageSize {
		var p page[T]
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetQueryParam("offset", strconv.Itoa(offset)).
			SetResult(&p).
			Get(route)
		if err != nil {
			return nil, &APIRequestError{Route: route, Err: err}
		}
		if resp.IsError() {
			return nil, &APIRequestError{Route: route, Status: resp.StatusCode(), Err: errors.New(resp.Status())}
		}
		if p.Error != "" {
			return nil, &APIRequestError{Route: route, Status: resp.StatusCode(), Err: errors.New(p.Error)}
		}
		if len(p.Response.Errors) > 0 {
			return nil, &APIRequestError{
				Route:  route,
				Status: resp.StatusCode(),
				Err:    fmt.Errorf("response errors: %s", strings.Join(p.Response.Errors, "; ")),
			}
		}

		all = append(all, p.Response.Data...)
		logger.Debug("Fetched page.", "offset", offset, "rows", len(p.Response.Data))
		if len(p.Response.Data) < c.pageSize {
			return all, nil
		}
	}
}
