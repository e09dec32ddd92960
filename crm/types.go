package crm

// Contact is one record from the upstream contact store. The upstream
// carries more fields than these; only the ones the dashboard needs are
// decoded.
type Contact struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	PhoneNumber          string `json:"phoneNumber"`
	PhoneNumberFormatted string `json:"phoneNumberFormatted"`
	Email                string `json:"email"`
	// Some upstream exports emit this key as "updatedat". encoding/json
	// matches keys case-insensitively, so both spellings land here.
	UpdatedAt    string         `json:"updatedAt"`
	CustomFields map[string]any `json:"customFields"`
}

type SearchRequest struct {
	IncludeDetails []string          `json:"includeDetails"`
	CustomFields   map[string]string `json:"customFields"`
	PageNumber     int               `json:"pageNumber"`
	PageSize       int               `json:"pageSize"`
}

// SearchResponse is the paginated envelope returned by the contact
// search endpoint. HasMorePages drives the pagination loop; TotalItems
// and TotalPages are informational only.
type SearchResponse struct {
	Items        []Contact `json:"items"`
	HasMorePages bool      `json:"hasMorePages"`
	TotalItems   int       `json:"totalItems"`
	TotalPages   int       `json:"totalPages"`
}
