package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mkochanov/listkeeper/internal/common"
	"github.com/mkochanov/listkeeper/internal/models"
)

type messageResponse struct {
	Message string `json:"message"`
}

type listCollectionResponse struct {
	List []*models.List `json:"list"`
}

type itemCollectionResponse struct {
	Items []*models.Item `json:"items"`
}

// HTTPClient is the concrete Client speaking HTTP/JSON. It is not safe for
// concurrent use: the CLI drives exactly one call at a time.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// call issues one request and decodes the response body into out (when out
// is non-nil). Network failures and unparseable bodies map to
// ErrUnavailable; non-2xx statuses map to *ServerError.
func (c *HTTPClient) call(ctx context.Context, method, path string, body any, out any) error {

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: common.SessionCookieName, Value: c.token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg messageResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return newServerError(resp.StatusCode, msg.Message)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == common.SessionCookieName {
			c.token = cookie.Value
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	return nil
}

func (c *HTTPClient) postMessage(ctx context.Context, path string, body any) (string, error) {
	var msg messageResponse
	if err := c.call(ctx, http.MethodPost, path, body, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, username, password, confirm string) (string, error) {
	body := map[string]string{"name": name, "username": username, "password": password, "confirm": confirm}
	msg, err := c.postMessage(ctx, "/register", body)
	if err != nil {
		return "", asCredentialsError(err)
	}
	return msg, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	msg, err := c.postMessage(ctx, "/login", body)
	if err != nil {
		return "", asCredentialsError(err)
	}
	return msg, nil
}

// Logout terminates the server-side session. The local credential is
// discarded even when the call fails: the session is gone either way.
func (c *HTTPClient) Logout(ctx context.Context) (string, error) {
	msg, err := c.postMessage(ctx, "/logout", struct{}{})
	c.token = ""
	if err != nil {
		return "", err
	}
	return msg, nil
}

func (c *HTTPClient) GetLists(ctx context.Context) ([]*models.List, error) {
	var resp listCollectionResponse
	if err := c.call(ctx, http.MethodGet, "/get-list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.List, nil
}

func (c *HTTPClient) CreateList(ctx context.Context, title string, status models.ListStatus) (string, error) {
	body := map[string]any{"title": title, "status": status}
	return c.postMessage(ctx, "/add-list", body)
}

func (c *HTTPClient) EditList(ctx context.Context, id, title string, status models.ListStatus) (string, error) {
	body := map[string]any{"id": id, "title": title, "status": status}
	return c.postMessage(ctx, "/edit-list", body)
}

func (c *HTTPClient) DeleteList(ctx context.Context, id string) (string, error) {
	return c.postMessage(ctx, "/delete-list", map[string]string{"id": id})
}

func (c *HTTPClient) GetItems(ctx context.Context, listID string) ([]*models.Item, error) {
	var resp itemCollectionResponse
	if err := c.call(ctx, http.MethodPost, "/get-items", map[string]string{"listId": listID}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) AddItem(ctx context.Context, listID, desc string, status models.ItemStatus) (string, error) {
	body := map[string]any{"listId": listID, "desc": desc, "status": status}
	return c.postMessage(ctx, "/add-items", body)
}

func (c *HTTPClient) EditItem(ctx context.Context, id, desc string) (string, error) {
	return c.postMessage(ctx, "/edit-items", map[string]string{"id": id, "desc": desc})
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id string) (string, error) {
	return c.postMessage(ctx, "/delete-items", map[string]string{"id": id})
}
