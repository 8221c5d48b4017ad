// Package probe walks an ordered list of candidate endpoints for a logical
// resource and returns the first one that answers.
package probe

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/gommon/log"

	"farmconnect/pkg/transport"
)

var (
	// ErrNoSession means no farmer id was available; nothing was sent.
	ErrNoSession    = errors.New("no active session")
	ErrNoCandidates = errors.New("no endpoint candidates configured")
)

const farmerPlaceholder = "{farmer_id}"

type Candidate struct {
	Method string `yaml:"method" json:"method"`
	Path   string `yaml:"path" json:"path"`
}

// Resolve substitutes the farmer id into the path, encoded as a URI component.
func (c Candidate) Resolve(farmerID string) string {
	enc := strings.ReplaceAll(url.QueryEscape(farmerID), "+", "%20")
	return strings.ReplaceAll(c.Path, farmerPlaceholder, enc)
}

func (c Candidate) String() string { return strings.ToUpper(c.Method) + " " + c.Path }

// Probe evaluates candidates strictly in order, one call each. POST
// candidates carry {"farmer_id": id}. When all fail, the last error wins.
func Probe(ctx context.Context, d transport.Doer, farmerID string, cands []Candidate) (any, error) {
	if strings.TrimSpace(farmerID) == "" {
		return nil, ErrNoSession
	}
	if len(cands) == 0 {
		return nil, ErrNoCandidates
	}
	var last error
	for _, c := range cands {
		path := c.Resolve(farmerID)
		var (
			v   any
			err error
		)
		if strings.EqualFold(c.Method, http.MethodPost) {
			v, err = d.Post(ctx, path, map[string]any{"farmer_id": farmerID})
		} else {
			v, err = d.Get(ctx, path)
		}
		if err == nil {
			return v, nil
		}
		log.Debugf("[probe] %s failed: %v", c, err)
		last = err
	}
	return nil, last
}
