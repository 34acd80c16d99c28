// FILE: internal/client/client.go
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chesscheck/internal/core"
)

// APIError is a non-2xx response from the server
type APIError struct {
	Status int
	core.ErrorResponse
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.ErrorResponse.Error)
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	return msg
}

// Client talks to a chesscheck API server
type Client struct {
	BaseURL    string
	AuthToken  string
	HTTPClient *http.Client
	Trace      io.Writer // request/response log, nil to disable
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second, // above the server's long-poll limit
		},
	}
}

func (c *Client) SetToken(token string) {
	c.AuthToken = token
}

func (c *Client) doRequest(method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonData)
		c.trace("> %s %s %s", method, path, jsonData)
	} else {
		c.trace("> %s %s", method, path)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	c.trace("< %d %s", resp.StatusCode, respBody)

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(respBody, &apiErr.ErrorResponse); err != nil {
			apiErr.ErrorResponse.Error = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) trace(format string, args ...interface{}) {
	if c.Trace != nil {
		fmt.Fprintf(c.Trace, format+"\n", args...)
	}
}

// API Methods

func (c *Client) Health() (map[string]any, error) {
	resp := map[string]any{}
	err := c.doRequest("GET", "/health", nil, &resp)
	return resp, err
}

// CheckGame validates a game text remotely. classic selects the space-blank board rendering.
func (c *Client) CheckGame(text, placement string, classic bool) (*core.CheckResponse, error) {
	path := "/api/v1/check"
	if classic {
		path += "?classic=true"
	}
	var resp core.CheckResponse
	err := c.doRequest("POST", path, &core.CheckGameRequest{Game: text, Board: placement}, &resp)
	return &resp, err
}

func (c *Client) CreateGame(placement string) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest("POST", "/api/v1/games", &core.CreateGameRequest{Board: placement}, &resp)
	return &resp, err
}

func (c *Client) GetGame(gameID string) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest("GET", "/api/v1/games/"+url.PathEscape(gameID), nil, &resp)
	return &resp, err
}

// WaitGame long-polls until the game's move count differs from moveCount
func (c *Client) WaitGame(gameID string, moveCount int) (*core.GameResponse, error) {
	var resp core.GameResponse
	path := fmt.Sprintf("/api/v1/games/%s/wait?moveCount=%d", url.PathEscape(gameID), moveCount)
	err := c.doRequest("GET", path, nil, &resp)
	return &resp, err
}

func (c *Client) DeleteGame(gameID string) error {
	return c.doRequest("DELETE", "/api/v1/games/"+url.PathEscape(gameID), nil, nil)
}

func (c *Client) MakeMove(gameID, move string) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest("POST", "/api/v1/games/"+url.PathEscape(gameID)+"/moves", &core.MoveRequest{Move: move}, &resp)
	return &resp, err
}

func (c *Client) UndoMoves(gameID string, count int) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest("POST", "/api/v1/games/"+url.PathEscape(gameID)+"/undo", &core.UndoRequest{Count: count}, &resp)
	return &resp, err
}

func (c *Client) GetBoard(gameID string) (*core.BoardResponse, error) {
	var resp core.BoardResponse
	err := c.doRequest("GET", "/api/v1/games/"+url.PathEscape(gameID)+"/board", nil, &resp)
	return &resp, err
}
