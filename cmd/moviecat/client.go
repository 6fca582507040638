package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vmunix/moviecat/internal/catalog"
	"github.com/vmunix/moviecat/internal/stats"
)

// Client wraps HTTP calls to the moviecat server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new moviecat API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(bytes.TrimSpace(body)))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body []byte, result any) error {
	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(bytes.TrimSpace(respBody)))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(bytes.TrimSpace(body)))
	}

	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Statistics bool   `json:"statistics"`
}

type MovieDetailResponse struct {
	Movie  catalog.Movie   `json:"movie"`
	Others []catalog.Movie `json:"others"`
}

type SearchResponse struct {
	Query       string          `json:"query"`
	Movies      []catalog.Movie `json:"movies"`
	Suggestions []catalog.Movie `json:"suggestions"`
}

type StatisticsResponse struct {
	Statistics []stats.Statistic `json:"statistics"`
	Source     stats.Source      `json:"source"`
	FetchedAt  *time.Time        `json:"fetched_at,omitempty"`
}

type AddMovieResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Movie   json.RawMessage `json:"movie"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Movies() ([]catalog.Movie, error) {
	var movies []catalog.Movie
	if err := c.get("/api/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *Client) Movie(id string) (*MovieDetailResponse, error) {
	var resp MovieDetailResponse
	if err := c.get("/api/movies/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(query string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)

	var resp SearchResponse
	if err := c.get("/api/movies/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddMovie(body []byte) (*AddMovieResponse, error) {
	var resp AddMovieResponse
	if err := c.post("/api/movies", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Statistics(category string) (*StatisticsResponse, error) {
	path := "/api/statistics"
	if category != "" {
		params := url.Values{}
		params.Set("category", category)
		path += "?" + params.Encode()
	}

	var resp StatisticsResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Statistic(id string) (*stats.Statistic, error) {
	var st stats.Statistic
	if err := c.get("/api/statistics/"+url.PathEscape(id), &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Client) ClearStatistics() error {
	return c.delete("/api/statistics/cache")
}
