package jobsearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

func TestClient_Search(t *testing.T) {
	long := strings.Repeat("é", 800)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "golang in Pune", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "1", r.URL.Query().Get("num_pages"))
		assert.Equal(t, "in", r.URL.Query().Get("country"))
		assert.Equal(t, "secret", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, DefaultHost, r.Header.Get("X-RapidAPI-Host"))

		_, _ = w.Write([]byte(`{"status":"OK","data":[
			{"job_id":"a1","job_title":"Go Dev","employer_name":"Acme","job_city":"Pune","job_country":"IN",
			 "job_employment_type":"FULLTIME","job_apply_link":"https://x/apply","job_publisher":"LinkedIn",
			 "job_description":"` + long + `"},
			{"job_id":"b2","job_title":"SRE","employer_name":"Beta","job_city":"","job_country":"IN"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	jobs, err := c.Search(context.Background(), domain.JobQuery{Keyword: "golang", Location: "Pune", Page: 2})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Go Dev", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "Pune", jobs[0].Location)
	assert.Equal(t, "FULLTIME", jobs[0].EmploymentType)
	assert.Equal(t, 700, len([]rune(jobs[0].Snippet)))
	assert.Equal(t, "IN", jobs[1].Location, "falls back to country when city is empty")
}

func TestClient_SearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"quota exceeded"}`))
	}))
	defer srv.Close()

	_, err := NewClient(Config{BaseURL: srv.URL}).Search(context.Background(), domain.JobQuery{Keyword: "go", Location: "India", Page: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamService))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClient_SearchEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	jobs, err := NewClient(Config{BaseURL: srv.URL}).Search(context.Background(), domain.JobQuery{Keyword: "go", Location: "India", Page: 1})
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.NotNil(t, jobs)
}
