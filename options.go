package ethtrading

import (
	"io"
	"log/slog"
)

// Options configures a demonstration run.
// Zero values fall back to environment overrides and then to the defaults
// declared in launch.go.
type Options struct {
	// Logger is the slog logger for operation tracking.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// RPCURL is the Ethereum JSON-RPC endpoint handed to the server.
	RPCURL string

	// PrivateKey is the hex-encoded private key handed to the server.
	PrivateKey string

	// ChainID identifies the network; zero means unset.
	ChainID uint64

	// ServerPath is the explicit path to the trading server binary.
	// If empty, the binary is searched in PATH and common locations.
	ServerPath string

	// Output receives the printed results. Defaults to os.Stdout.
	Output io.Writer

	// Connector overrides how the session is established.
	// If nil, the server is launched as a subprocess over stdio.
	Connector Connector
}

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for operation tracking.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithRPCURL sets the Ethereum JSON-RPC endpoint handed to the server.
func WithRPCURL(url string) Option {
	return func(o *Options) {
		o.RPCURL = url
	}
}

// WithPrivateKey sets the hex-encoded private key handed to the server.
func WithPrivateKey(key string) Option {
	return func(o *Options) {
		o.PrivateKey = key
	}
}

// WithChainID sets the chain identifier handed to the server.
func WithChainID(id uint64) Option {
	return func(o *Options) {
		o.ChainID = id
	}
}

// WithServerPath sets the explicit path to the trading server binary.
// If not set, the binary will be searched in PATH.
func WithServerPath(path string) Option {
	return func(o *Options) {
		o.ServerPath = path
	}
}

// WithOutput redirects the printed results, e.g. for capturing in tests.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithConnector overrides how the session is established.
// Use this to connect over a custom transport instead of a subprocess.
func WithConnector(c Connector) Option {
	return func(o *Options) {
		o.Connector = c
	}
}
