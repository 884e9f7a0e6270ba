// Package wsclient talks to the spreadsheet REST endpoints and exposes them
// as a contracts.SpreadsheetService.
package wsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	json "github.com/bytedance/sonic"
)

const DefaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithToken sends `Authorization: Bearer <token>` with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// NewClient expects the API base URL including the base path,
// e.g. http://localhost:8080/api/v1.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelopeResponse[T any] struct {
	IsOk   bool                    `json:"isOk"`
	Status int                     `json:"status"`
	Result T                       `json:"result"`
	Errors []contracts.DomainError `json:"errors"`
}

func (c *Client) Load(ctx context.Context, ssName string, cells []contracts.CellExpression) error {
	if cells == nil {
		cells = []contracts.CellExpression{}
	}
	body, err := json.Marshal(cells)
	if err != nil {
		return contracts.Errorf(contracts.CodeInternal, err.Error())
	}

	_, err = do[any](ctx, c, http.MethodPut, sheetPath(ssName), nil, body)
	return err
}

func (c *Client) Query(ctx context.Context, ssName string, cellId string) (*contracts.Cell, error) {
	cell, err := do[contracts.Cell](ctx, c, http.MethodGet, cellPath(ssName, cellId), nil, nil)
	if err != nil {
		return nil, err
	}
	return &cell, nil
}

func (c *Client) Evaluate(ctx context.Context, ssName string, cellId string, expr string) (contracts.ValueMap, error) {
	query := url.Values{}
	query.Set("expr", expr)
	return do[contracts.ValueMap](ctx, c, http.MethodPatch, cellPath(ssName, cellId), query, nil)
}

func (c *Client) Copy(ctx context.Context, ssName string, destCellId string, srcCellId string) (contracts.ValueMap, error) {
	query := url.Values{}
	query.Set("srcCellId", srcCellId)
	return do[contracts.ValueMap](ctx, c, http.MethodPatch, cellPath(ssName, destCellId), query, nil)
}

func (c *Client) Remove(ctx context.Context, ssName string, cellId string) (contracts.ValueMap, error) {
	return do[contracts.ValueMap](ctx, c, http.MethodDelete, cellPath(ssName, cellId), nil, nil)
}

func (c *Client) Dump(ctx context.Context, ssName string, withValues bool) ([]contracts.Cell, error) {
	var query url.Values
	if withValues {
		query = url.Values{}
		query.Set("withValues", strconv.FormatBool(withValues))
	}
	return do[[]contracts.Cell](ctx, c, http.MethodGet, sheetPath(ssName), query, nil)
}

func (c *Client) Clear(ctx context.Context, ssName string) error {
	_, err := do[any](ctx, c, http.MethodDelete, sheetPath(ssName), nil, nil)
	return err
}

// do performs one request and unwraps the envelope. Every failure, transport
// included, is returned as contracts.DomainErrors.
func do[T any](ctx context.Context, c *Client, method string, path string, query url.Values, body []byte) (result T, err error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return result, contracts.Errorf(contracts.CodeInternal, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, contracts.Errorf(contracts.CodeInternal, err.Error())
	}
	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return result, contracts.Errorf(contracts.CodeInternal, err.Error())
	}

	envelope := envelopeResponse[T]{}
	if err = json.Unmarshal(respBody, &envelope); err != nil {
		return result, contracts.Errorf(contracts.CodeInternal,
			fmt.Sprintf("%s %s: unexpected response (status %d)", method, path, resp.StatusCode))
	}

	if !envelope.IsOk {
		if len(envelope.Errors) == 0 {
			return result, contracts.Errorf(contracts.CodeInternal,
				fmt.Sprintf("%s %s: failed with status %d", method, path, resp.StatusCode))
		}
		return result, contracts.DomainErrors(envelope.Errors)
	}

	return envelope.Result, nil
}

func sheetPath(ssName string) string {
	return "/" + url.PathEscape(ssName)
}

func cellPath(ssName string, cellId string) string {
	return sheetPath(ssName) + "/" + url.PathEscape(cellId)
}
