// Package transport performs single HTTP calls against the farm backend and
// turns every outcome into either a decoded value or an *Error. It never
// panics on odd bodies: empty text is nil, unparsable text is returned raw.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

const (
	contentJSON = "application/json"
	contentForm = "application/x-www-form-urlencoded"
)

// Doer is what the prober and feature services depend on.
type Doer interface {
	Get(ctx context.Context, path string) (any, error)
	Post(ctx context.Context, path string, body any) (any, error)
}

// Error is a failed call. Status is 0 for network level failures. Page is
// the <title> of an HTML error page, when the server sent one.
type Error struct {
	Status  int
	Message string
	Page    string
}

func (e *Error) Error() string { return e.Message }

// Message extracts a human readable message from any error the client
// returned, falling back to fallback when there is nothing useful.
func Message(err error, fallback string) string {
	var te *Error
	if errors.As(err, &te) && strings.TrimSpace(te.Message) != "" {
		return te.Message
	}
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		return err.Error()
	}
	return fallback
}

// Detail is Message followed by the title of the HTML error page, if any.
func Detail(err error, fallback string) string {
	msg := Message(err, fallback)
	var te *Error
	if errors.As(err, &te) && te.Page != "" && te.Page != msg {
		return msg + ": " + te.Page
	}
	return msg
}

type Client struct {
	base  string
	httpc *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying client, keeping its own timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		base:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpc: &http.Client{Timeout: timeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.base }

func (c *Client) url(path string) string {
	return c.base + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

// Post sends body as JSON. A 405 or 415 answer is retried exactly once as a
// form post built from the body's top level keys.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	v, err := c.do(ctx, http.MethodPost, path, b, contentJSON)
	var te *Error
	if !errors.As(err, &te) || (te.Status != http.StatusMethodNotAllowed && te.Status != http.StatusUnsupportedMediaType) {
		return v, err
	}
	log.Debugf("[http] POST %s got %d, retrying as form", path, te.Status)
	form, ferr := FormValues(body)
	if ferr != nil {
		return nil, &Error{Message: ferr.Error()}
	}
	return c.do(ctx, http.MethodPost, path, []byte(form.Encode()), contentForm)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string) (any, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rd)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	rid := uuid.NewString()
	req.Header.Set("Accept", contentJSON)
	req.Header.Set("X-Request-ID", rid)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Warnf("[http] %s %s (%s) failed: %v", method, path, rid, err)
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: err.Error()}
	}
	text := strings.TrimSpace(string(raw))
	log.Debugf("[http] %s %s (%s) -> %d in %s", method, path, rid, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &Error{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, text)}
		if looksHTML(text) {
			e.Page = pageTitle(text)
		}
		return nil, e
	}
	return Decode(text), nil
}

// Decode interprets a trimmed response body: empty is nil, a JSON string is
// unwrapped, JSON is decoded keeping numbers as json.Number, anything else
// comes back as the raw text.
func Decode(text string) any {
	if text == "" {
		return nil
	}
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		var s string
		if err := json.Unmarshal([]byte(text), &s); err == nil {
			return s
		}
	}
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return text
	}
	if _, err := dec.Token(); err != io.EOF {
		return text
	}
	return v
}

func statusLine(code int) string {
	return fmt.Sprintf("Request failed (%d %s)", code, http.StatusText(code))
}

func looksHTML(text string) bool {
	head := strings.ToLower(text)
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

func errorMessage(code int, text string) string {
	if text == "" {
		return statusLine(code)
	}
	if looksHTML(text) {
		return statusLine(code)
	}
	return text
}

func pageTitle(text string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
}

// FormValues flattens the top level of body into form values. Nil values
// are skipped; nested values are sent as their JSON text.
func FormValues(body any) (url.Values, error) {
	m, ok := body.(map[string]any)
	if !ok {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("form body must be an object: %w", err)
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := url.Values{}
	for _, k := range keys {
		v := m[k]
		if v == nil {
			continue
		}
		out.Set(k, stringify(v))
	}
	return out, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case fmt.Stringer:
		return t.String()
	case bool, int, int64, float64, float32, int32, uint, uint64:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
