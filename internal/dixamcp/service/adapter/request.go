package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	jsonx "github.com/kiosk404/dixa-mcp/pkg/utils/json"
)

var placeholder = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// BodyField maps an argument into the JSON request body. Key renames the
// argument on the wire and defaults to Field.
type BodyField struct {
	Field string
	Key   string
}

func (b BodyField) key() string {
	if b.Key != "" {
		return b.Key
	}
	return b.Field
}

// Endpoint is the fixed remote contract of an HTTP-backed tool.
type Endpoint struct {
	// Action describes the call in error messages. (e.g. "fetch agents")
	Action string
	Method string
	// Path is relative to the base URL and may contain {field} placeholders.
	Path  string
	Query []string
	Body  []BodyField
	// NoContent is the acknowledgment returned when the remote answers 204.
	NoContent string
}

// PathParams returns the placeholder names in Path, in order.
func (e Endpoint) PathParams() []string {
	matches := placeholder.FindAllStringSubmatch(e.Path, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// Validate checks that every field referenced by the endpoint exists in
// params, that path fields are required, and that no field is sent twice.
func (e Endpoint) Validate(params Schema) error {
	if e.Method == "" {
		return fmt.Errorf("endpoint %q: method is empty", e.Path)
	}
	seen := make(map[string]string)
	use := func(name, where string) error {
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("endpoint %s %s: field %q used in both %s and %s", e.Method, e.Path, name, prev, where)
		}
		seen[name] = where
		if _, ok := params.Lookup(name); !ok {
			return fmt.Errorf("endpoint %s %s: field %q is not declared", e.Method, e.Path, name)
		}
		return nil
	}
	for _, name := range e.PathParams() {
		if err := use(name, "path"); err != nil {
			return err
		}
		if f, _ := params.Lookup(name); !f.Required {
			return fmt.Errorf("endpoint %s %s: path field %q must be required", e.Method, e.Path, name)
		}
	}
	for _, name := range e.Query {
		if err := use(name, "query"); err != nil {
			return err
		}
	}
	for _, b := range e.Body {
		if err := use(b.Field, "body"); err != nil {
			return err
		}
	}
	return nil
}

// RemoteRequest is a fully resolved outbound call.
type RemoteRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Build resolves the endpoint against validated args.
func (e Endpoint) Build(baseURL, credential string, args Args) (*RemoteRequest, error) {
	// An empty segment would address a different route, e.g. /agents/.
	var bad *ValidationError
	path := placeholder.ReplaceAllStringFunc(e.Path, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := args[name]
		s := fmt.Sprint(v)
		switch {
		case bad != nil:
		case !ok:
			bad = &ValidationError{Field: name, Reason: "required field is missing"}
		case s == "":
			bad = &ValidationError{Field: name, Reason: "must not be empty"}
		}
		return url.PathEscape(s)
	})
	if bad != nil {
		return nil, bad
	}

	u := strings.TrimRight(baseURL, "/") + path
	query := url.Values{}
	for _, name := range e.Query {
		v, ok := args[name]
		if !ok {
			continue
		}
		for _, s := range queryValues(v) {
			query.Add(name, s)
		}
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req := &RemoteRequest{
		Method: e.Method,
		URL:    u,
		Header: http.Header{},
	}
	req.Header.Set("Authorization", credential)
	req.Header.Set("Content-Type", "application/json")

	if len(e.Body) > 0 {
		body := make(map[string]any, len(e.Body))
		for _, b := range e.Body {
			if v, ok := args[b.Field]; ok {
				body[b.key()] = v
			}
		}
		data, err := jsonx.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		req.Body = data
	}
	return req, nil
}

// HTTPRequest converts the request into an *http.Request bound to ctx.
func (r *RemoteRequest) HTTPRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, err
	}
	req.Header = r.Header.Clone()
	return req, nil
}

func queryValues(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case bool:
		return []string{strconv.FormatBool(t)}
	case int64:
		return []string{strconv.FormatInt(t, 10)}
	case int:
		return []string{strconv.Itoa(t)}
	case float64:
		return []string{formatNumber(t)}
	case []string:
		return t
	}
	return []string{fmt.Sprint(v)}
}
