package options

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/dixa"
)

const (
	// APIKeyConfigKey is the configuration key holding the Dixa API key.
	APIKeyConfigKey = "dixa.api-key"
	// APIKeyEnv is the environment variable holding the Dixa API key.
	APIKeyEnv = "DIXA_API_KEY"
)

// DixaOptions holds the connection settings for the Dixa REST API.
type DixaOptions struct {
	// BaseURL is the API root. (default: https://dev.dixa.io/v1)
	BaseURL string `json:"base-url" mapstructure:"base-url"`
	// APIKey is sent verbatim as the Authorization header. It is usually
	// supplied through DIXA_API_KEY rather than a flag.
	APIKey string `json:"-" mapstructure:"api-key"`
	// Timeout bounds each remote call.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// NewDixaOptions returns a new instance of DixaOptions.
func NewDixaOptions() *DixaOptions {
	return &DixaOptions{
		BaseURL: dixa.DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// Validate checks DixaOptions fields. A missing API key is not an error
// here; it is reported per invocation so discovery keeps working.
func (o *DixaOptions) Validate() []error {
	var errs []error
	if u, err := url.Parse(o.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("dixa.base-url %q is not an absolute URL", o.BaseURL))
	}
	if o.Timeout < 0 {
		errs = append(errs, fmt.Errorf("dixa.timeout must not be negative"))
	}
	return errs
}

// AddFlags adds flags for the Dixa options.
func (o *DixaOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BaseURL, "dixa.base-url", o.BaseURL, "Root URL of the Dixa REST API.")
	fs.StringVar(&o.APIKey, "dixa.api-key", o.APIKey, "Dixa API key. Prefer the "+APIKeyEnv+" environment variable.")
	fs.DurationVar(&o.Timeout, "dixa.timeout", o.Timeout, "Timeout for each Dixa API request.")

	_ = viper.BindEnv(APIKeyConfigKey, APIKeyEnv)
}

// Credential returns a source that resolves the API key at call time, so
// a rotated key in the environment or config file is picked up without a
// restart.
func (o *DixaOptions) Credential() adapter.CredentialSource {
	return func() string {
		if key := viper.GetString(APIKeyConfigKey); key != "" {
			return key
		}
		return o.APIKey
	}
}

// Environment builds the invocation environment for these options.
func (o *DixaOptions) Environment() *adapter.Environment {
	return &adapter.Environment{
		Credential:    o.Credential(),
		CredentialKey: APIKeyEnv,
		BaseURL:       o.BaseURL,
		Client:        &http.Client{Timeout: o.Timeout},
	}
}
