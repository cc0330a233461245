package adapter

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	jsonx "github.com/kiosk404/dixa-mcp/pkg/utils/json"
)

// Normalize turns a remote response into a Result or a typed error. ack is
// the acknowledgment used for 204 responses; when empty, a 204 is decoded
// like any other body.
func Normalize(resp *http.Response, ack string) (*Result, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Status: statusText(resp), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Body:       string(data),
		}
	}

	if resp.StatusCode == http.StatusNoContent && ack != "" {
		return Acknowledge(ack)
	}

	pretty, err := jsonx.Pretty(data)
	if err != nil {
		return nil, &DecodeError{Body: string(data), Err: err}
	}
	return TextResult(string(pretty)), nil
}

// Acknowledge builds the success Result for an operation with no response
// body.
func Acknowledge(message string) (*Result, error) {
	text, err := jsonx.PrettyValue(map[string]any{
		"success": true,
		"message": message,
	})
	if err != nil {
		return nil, err
	}
	return TextResult(string(text)), nil
}

func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
