package options

import (
	genericoptions "github.com/kiosk404/dixa-mcp/internal/pkg/options"
	"github.com/kiosk404/dixa-mcp/pkg/utils/cliflag"
	"github.com/kiosk404/dixa-mcp/pkg/utils/json"
)

type Options struct {
	DixaOptions    *genericoptions.DixaOptions `json:"dixa"     mapstructure:"dixa"`
	MCPOptions     *MCPOptions                 `json:"mcp"      mapstructure:"mcp"`
	GatewayOptions *GatewayOptions             `json:"gateway"  mapstructure:"gateway"`
	LogOptions     *genericoptions.LogOptions  `json:"log"      mapstructure:"log"`
}

func (o *Options) Flags() (fss cliflag.NamedFlagSets) {
	o.DixaOptions.AddFlags(fss.FlagSet("dixa"))
	o.MCPOptions.AddFlags(fss.FlagSet("mcp"))
	o.GatewayOptions.AddFlags(fss.FlagSet("gateway"))
	o.LogOptions.AddFlags(fss.FlagSet("log"))
	return fss
}

func NewOptions() *Options {
	return &Options{
		DixaOptions:    genericoptions.NewDixaOptions(),
		MCPOptions:     NewMCPOptions(),
		GatewayOptions: NewGatewayOptions(),
		LogOptions:     genericoptions.NewLogOptions(),
	}
}

// Validate collects the errors of every option group.
func (o *Options) Validate() []error {
	var errs []error
	errs = append(errs, o.DixaOptions.Validate()...)
	errs = append(errs, o.MCPOptions.Validate()...)
	errs = append(errs, o.GatewayOptions.Validate()...)
	errs = append(errs, o.LogOptions.Validate()...)
	return errs
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}

// Complete set default Options.
func (o *Options) Complete() error {
	if o.MCPOptions.Transport == "" {
		o.MCPOptions.Transport = "stdio"
	}
	return nil
}
