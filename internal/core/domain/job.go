package domain

// JobListing is a single posting returned by the job-search collaborator.
type JobListing struct {
	JobID          string `json:"job_id"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	ApplyLink      string `json:"apply_link"`
	Publisher      string `json:"publisher"`
	Snippet        string `json:"snippet"`
}

// JobQuery identifies one page of job-search results. It is also the cache key.
type JobQuery struct {
	Keyword  string
	Location string
	Page     int
}
