package registrar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.princeton.edu/student-app/1.0.3"

// Client is a thin wrapper over the registrar course-offerings API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("registrar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registrar returned %s for %s", resp.Status, endpoint)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetTermCourses fetches every subject's course list for a term.
func (c *Client) GetTermCourses(ctx context.Context, term int) ([]Subject, error) {
	params := url.Values{}
	params.Set("fmt", "json")
	params.Set("term", fmt.Sprintf("%d", term))

	var resp coursesResponse
	if err := c.get(ctx, "/courses/courses?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Term) == 0 {
		return nil, fmt.Errorf("registrar returned no data for term %d", term)
	}
	return resp.Term[0].Subjects, nil
}
