package models

// Citations holds the metrics table of a scholar profile. The backend
// scrapes them as text, so they stay strings.
type Citations struct {
	Total    string `json:"total,omitempty"`
	HIndex   string `json:"h_index,omitempty"`
	I10Index string `json:"i10_index,omitempty"`
}

type Publication struct {
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Year      string `json:"year"`
	Citations string `json:"citations"`
}

// ScholarProfile is the scraped Google Scholar snapshot attached to a
// faculty identity. Error is set when scraping failed on the backend.
type ScholarProfile struct {
	Name         string        `json:"name,omitempty"`
	Affiliation  string        `json:"affiliation,omitempty"`
	Citations    *Citations    `json:"citations,omitempty"`
	Publications []Publication `json:"publications,omitempty"`
	ProfileURL   string        `json:"profile_url,omitempty"`
	ScrapedAt    string        `json:"scraped_at,omitempty"`
	Error        string        `json:"error,omitempty"`
}

type ScholarUpdateRequest struct {
	GoogleScholarURL string `json:"google_scholar_url"`
}

type ScholarUpdateResponse struct {
	Message string          `json:"message,omitempty"`
	Data    *ScholarProfile `json:"data"`
}
