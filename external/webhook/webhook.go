package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const (
	statusOK       = "ok"
	defaultTimeout = 10 * time.Second
)

var (
	errResponseStatus = fmt.Errorf("response status no ok")
	errEmptyURL       = fmt.Errorf("empty url")
)

// Target selects who receives a notification. Exactly one of the fields
// is expected to be set.
type Target struct {
	Identities []string `json:"identities,omitempty"`
	Location   string   `json:"location,omitempty"`
}

type Notification struct {
	Target   Target                 `json:"target"`
	Headings map[string]string      `json:"headings"`
	Contents map[string]string      `json:"contents"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

// Client pushes notifications to a delivery gateway
type Client interface {
	Send(ctx context.Context, n Notification) error
}

type client struct {
	url        string
	token      string
	httpClient *http.Client
}

type jsonResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c client) Send(ctx context.Context, n Notification) error {
	if c.url == "" {
		return errEmptyURL
	}

	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: http %d", errResponseStatus, resp.StatusCode)
	}

	var r jsonResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return err
	}

	if r.Status != statusOK {
		return fmt.Errorf("%w: %s", errResponseStatus, r.Message)
	}

	return nil
}

func New(url, token string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &client{
		url:        url,
		token:      token,
		httpClient: httpClient,
	}
}
