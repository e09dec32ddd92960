package crm

import (
	"net/http"
)

type Config struct {
	BaseURL string
	APIKey  string
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient http.Client) Client {
	client := Client{
		config: Config{
			BaseURL: baseURL,
			APIKey:  apiKey,
		},
		httpClient: &httpClient,
	}

	return client
}
