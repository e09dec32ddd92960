package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// searchPageSize is the fixed page size for upstream contact searches.
const searchPageSize = 100

// SearchContactsPage fetches one page of contacts whose nps custom
// field equals score. The upstream only supports equality filtering on
// custom fields, so callers query one score value at a time.
func (c *Client) SearchContactsPage(ctx context.Context, score, page int) (*SearchResponse, error) {
	body := SearchRequest{
		IncludeDetails: []string{"CustomFields"},
		CustomFields:   map[string]string{"nps": strconv.Itoa(score)},
		PageNumber:     page,
		PageSize:       searchPageSize,
	}

	respBody, err := c.sendRequest(ctx, http.MethodPost, c.config.BaseURL+"/contacts/search", body)
	if err != nil {
		return nil, err
	}

	var searchResponse SearchResponse
	if err := json.Unmarshal(respBody, &searchResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search response: %w", err)
	}

	return &searchResponse, nil
}
