// Package client calls the player service on behalf of the game service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/avvvet/playhub-services/internal/comm"
	"github.com/google/uuid"
)

const gamesSegment = "games"

// Settings locates the player service. It is read once at startup.
type Settings struct {
	Scheme     string `env:"SCHEME" envDefault:"http"`
	Host       string `env:"HOST" envDefault:"localhost"`
	Port       string `env:"PORT" envDefault:"8081"`
	EntryPoint string `env:"ENTRY_POINT" envDefault:"player"`
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportError reports a failed call, either at the network level or with
// a non-2xx status.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("player service %s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("player service %s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// PlayerClient is a plain request/response client: no retries and the
// default http.Client timeouts.
type PlayerClient struct {
	settings   Settings
	httpClient httpDoer
	newName    func() string
}

// New builds a client. A nil httpClient falls back to http.DefaultClient.
func New(settings Settings, httpClient *http.Client) *PlayerClient {
	var doer httpDoer = http.DefaultClient
	if httpClient != nil {
		doer = httpClient
	}
	return &PlayerClient{
		settings:   settings,
		httpClient: doer,
		newName:    uuid.NewString,
	}
}

// RegisterPlayer registers an anonymous player for gameID.
func (c *PlayerClient) RegisterPlayer(ctx context.Context, gameID int64) error {
	name := c.newName()
	body := comm.RegisterPlayerRequest{Name: &name, GameID: &gameID}
	return c.do(ctx, http.MethodPost, c.buildRequestURI("register"), body, nil)
}

// UpdatePlayerGame points playerID at gameID.
func (c *PlayerClient) UpdatePlayerGame(ctx context.Context, playerID, gameID int64) error {
	body := comm.UpdatePlayerGameRequest{GameID: &gameID}
	return c.do(ctx, http.MethodPatch, c.buildRequestURI(formatID(playerID)), body, nil)
}

// GetGamesByPlayerName returns the game ids of every player called name.
func (c *PlayerClient) GetGamesByPlayerName(ctx context.Context, name string) ([]int64, error) {
	var rsp comm.GameSearchResponse
	if err := c.do(ctx, http.MethodGet, c.buildRequestURI(name, gamesSegment), nil, &rsp); err != nil {
		return nil, err
	}
	if rsp.Games == nil {
		return []int64{}, nil
	}
	return rsp.Games, nil
}

// RemoveGame tells the player service that gameID no longer exists.
func (c *PlayerClient) RemoveGame(ctx context.Context, gameID int64) error {
	return c.do(ctx, http.MethodPut, c.buildRequestURI(gamesSegment, formatID(gameID)), nil, nil)
}

func (c *PlayerClient) do(ctx context.Context, method, target string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, target, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &TransportError{Method: method, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return &TransportError{Method: method, URL: target, StatusCode: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Method: method, URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *PlayerClient) buildRequestURI(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	for _, p := range strings.Split(c.settings.EntryPoint, "/") {
		if p != "" {
			parts = append(parts, url.PathEscape(p))
		}
	}
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}

	host := c.settings.Host
	if c.settings.Port != "" {
		host = net.JoinHostPort(host, c.settings.Port)
	}
	u := url.URL{
		Scheme:  c.settings.Scheme,
		Host:    host,
		RawPath: "/" + strings.Join(parts, "/"),
	}
	u.Path, _ = url.PathUnescape(u.RawPath)
	return u.String()
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
