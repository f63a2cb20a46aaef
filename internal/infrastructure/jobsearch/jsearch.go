// Package jobsearch queries the JSearch API on RapidAPI.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

const (
	DefaultBaseURL = "https://jsearch.p.rapidapi.com"
	DefaultHost    = "jsearch.p.rapidapi.com"
	DefaultCountry = "in"

	defaultTimeout = 30 * time.Second
	snippetLength  = 700
)

// Config captures the RapidAPI credentials and query defaults.
type Config struct {
	BaseURL string
	APIKey  string
	Host    string
	Country string
	Timeout time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Country == "" {
		cfg.Country = DefaultCountry
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

type searchResponse struct {
	Data []struct {
		JobID          string `json:"job_id"`
		JobTitle       string `json:"job_title"`
		EmployerName   string `json:"employer_name"`
		JobCity        string `json:"job_city"`
		JobCountry     string `json:"job_country"`
		EmploymentType string `json:"job_employment_type"`
		ApplyLink      string `json:"job_apply_link"`
		Publisher      string `json:"job_publisher"`
		Description    string `json:"job_description"`
	} `json:"data"`
}

// Search fetches one page for "<keyword> in <location>". Any non-200 answer
// is reported as domain.ErrUpstreamService with the status and body.
func (c *Client) Search(ctx context.Context, q domain.JobQuery) ([]domain.JobListing, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("%s in %s", q.Keyword, q.Location))
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("num_pages", "1")
	params.Set("country", c.cfg.Country)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch: build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.Host)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamService, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrUpstreamService, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d %s", domain.ErrUpstreamService, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var body searchResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamService, err)
	}

	jobs := make([]domain.JobListing, 0, len(body.Data))
	for _, d := range body.Data {
		location := d.JobCity
		if location == "" {
			location = d.JobCountry
		}
		jobs = append(jobs, domain.JobListing{
			JobID:          d.JobID,
			Title:          d.JobTitle,
			Company:        d.EmployerName,
			Location:       location,
			EmploymentType: d.EmploymentType,
			ApplyLink:      d.ApplyLink,
			Publisher:      d.Publisher,
			Snippet:        truncate(d.Description, snippetLength),
		})
	}
	return jobs, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
