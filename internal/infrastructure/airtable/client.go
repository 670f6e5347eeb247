package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds credentials and table names for the record store.
//
// Supported env vars (table names can be customized per deployment):
//   - AIRTABLE_API_KEY (required; personal access token)
//   - AIRTABLE_BASE_ID (required)
//   - AIRTABLE_BASE_URL (optional; override for tests/proxies)
type Config struct {
	APIKey             string        `envconfig:"AIRTABLE_API_KEY"`
	BaseID             string        `envconfig:"AIRTABLE_BASE_ID"`
	BaseURL            string        `envconfig:"AIRTABLE_BASE_URL" default:"https://api.airtable.com/v0"`
	Timeout            time.Duration `envconfig:"AIRTABLE_TIMEOUT" default:"30s"`
	ProjectsTable      string        `envconfig:"PROJECTS_TABLE" default:"PROJECTS"`
	PhotosTable        string        `envconfig:"PHOTOS_TABLE" default:"PHOTOS"`
	QuotesTable        string        `envconfig:"QUOTES_TABLE" default:"QUOTES"`
	CompanyConfigTable string        `envconfig:"COMPANY_CONFIG_TABLE" default:"COMPANY_CONFIG"`
	VehicleSpecsTable  string        `envconfig:"EV_SPECS_TABLE" default:"EV_CHARGING_SPECS"`
}

func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("airtable: loading config from environment: %w", err)
	}
	return cfg, nil
}

// ErrRecordNotFound is returned when a record id does not exist in a table.
var ErrRecordNotFound = errors.New("airtable: record not found")

// Record is a raw row: an opaque id plus the table's named fields.
type Record struct {
	ID          string         `json:"id"`
	Fields      map[string]any `json:"fields"`
	CreatedTime string         `json:"createdTime,omitempty"`
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// SortField orders list results; Direction is "asc" or "desc".
type SortField struct {
	Field     string
	Direction string
}

// ListOptions are the query parameters supported by list calls.
type ListOptions struct {
	FilterByFormula string
	MaxRecords      int
	View            string
	Sort            []SortField
}

// Client is the typed HTTP gateway to the record store.
type Client struct {
	httpClient *http.Client
	cfg        Config
	logger     zerolog.Logger
}

// New validates credentials up front so a misconfigured deployment fails at
// startup with a diagnostic naming the missing value, not on the first call.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("airtable: AIRTABLE_API_KEY is not set; add a personal access token to the environment")
	}
	if cfg.BaseID == "" {
		return nil, errors.New("airtable: AIRTABLE_BASE_ID is not set")
	}

	logger.Info().
		Str("base_id", cfg.BaseID).
		Str("api_key", maskKey(cfg.APIKey)).
		Strs("tables", []string{cfg.ProjectsTable, cfg.PhotosTable, cfg.QuotesTable, cfg.CompanyConfigTable, cfg.VehicleSpecsTable}).
		Msg("airtable configured")

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}, nil
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "***"
	}
	return "***" + key[len(key)-4:]
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, table, id string) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodGet, table+"/"+url.PathEscape(id), nil, nil, &rec)
	return rec, err
}

// List fetches all records matching opts, following offset pagination.
func (c *Client) List(ctx context.Context, table string, opts ListOptions) ([]Record, error) {
	query := url.Values{}
	if opts.FilterByFormula != "" {
		query.Set("filterByFormula", opts.FilterByFormula)
	}
	if opts.MaxRecords > 0 {
		query.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}
	if opts.View != "" {
		query.Set("view", opts.View)
	}
	for i, s := range opts.Sort {
		query.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		query.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
	}

	var records []Record
	for {
		var page listResponse
		if err := c.do(ctx, http.MethodGet, table, query, nil, &page); err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.Offset == "" || (opts.MaxRecords > 0 && len(records) >= opts.MaxRecords) {
			return records, nil
		}
		query.Set("offset", page.Offset)
	}
}

// Create inserts a record and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, table string, fields map[string]any) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodPost, table, nil, map[string]any{"fields": fields}, &rec)
	return rec, err
}

// Update patches the named fields of an existing record.
func (c *Client) Update(ctx context.Context, table, id string, fields map[string]any) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodPatch, table+"/"+url.PathEscape(id), nil, map[string]any{"fields": fields}, &rec)
	return rec, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.cfg.BaseURL + "/" + c.cfg.BaseID + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("airtable: encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("airtable: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("airtable: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrRecordNotFound, method, path)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf(
			"airtable: authentication failed (status %d). Check that the API key is valid, has access to base %s, and that the table names are correct (%s, %s, %s, %s, %s): %s",
			resp.StatusCode, c.cfg.BaseID,
			c.cfg.ProjectsTable, c.cfg.PhotosTable, c.cfg.QuotesTable, c.cfg.CompanyConfigTable, c.cfg.VehicleSpecsTable,
			detail,
		)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("airtable: API error: %d - %s", resp.StatusCode, detail)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("airtable: decoding response: %w", err)
	}
	return nil
}
