package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchContactsPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contacts/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"CustomFields"}, body.IncludeDetails)
		assert.Equal(t, map[string]string{"nps": "3"}, body.CustomFields)
		assert.Equal(t, 2, body.PageNumber)
		assert.Equal(t, 100, body.PageSize)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"id": "c1",
					"name": "Ana Souza",
					"phoneNumber": "+5511999990000",
					"phoneNumberFormatted": "(11) 99999-0000",
					"email": "ana@example.com",
					"updatedAt": "2024-05-10T12:00:00Z",
					"customFields": {"nps": "3"}
				},
				{
					"id": "c2",
					"name": "Bruno Lima",
					"updatedat": "2024-05-11T08:30:00Z"
				}
			],
			"hasMorePages": true,
			"totalItems": 120,
			"totalPages": 2
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", http.Client{})

	resp, err := client.SearchContactsPage(context.Background(), 3, 2)
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "c1", resp.Items[0].ID)
	assert.Equal(t, "(11) 99999-0000", resp.Items[0].PhoneNumberFormatted)
	assert.Equal(t, "3", resp.Items[0].CustomFields["nps"])
	// The lowercase updatedat variant must land in UpdatedAt as well.
	assert.Equal(t, "2024-05-11T08:30:00Z", resp.Items[1].UpdatedAt)
	assert.True(t, resp.HasMorePages)
	assert.Equal(t, 120, resp.TotalItems)
	assert.Equal(t, 2, resp.TotalPages)
}

func TestSearchContactsPageStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", http.Client{})

	resp, err := client.SearchContactsPage(context.Background(), 4, 1)
	require.Error(t, err)
	assert.Nil(t, resp)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "upstream exploded")
}

func TestSearchContactsPageNotConfigured(t *testing.T) {
	client := NewClient("https://crm.example.com", "", http.Client{})

	_, err := client.SearchContactsPage(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrNotConfigured)

	client = NewClient("", "test-key", http.Client{})

	_, err = client.SearchContactsPage(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrNotConfigured)
}
