package ethtrading

import (
	"os"
	"strconv"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/launch"
)

// Defaults for the server's connection settings. The private key default is
// a throwaway; the server only derives an address from it and never signs.
const (
	DefaultRPCURL     = "https://eth.llamarpc.com"
	DefaultPrivateKey = "0000000000000000000000000000000000000000000000000000000000000001"
	DefaultChainID    = uint64(1)
)

// Environment variables consulted when the corresponding option is unset.
const (
	envRPCURL     = "ETH_RPC_URL"
	envPrivateKey = "PRIVATE_KEY"
	envChainID    = "CHAIN_ID"
)

// LaunchConfig describes how the trading server subprocess is started.
type LaunchConfig = launch.Config

// newLaunchConfig resolves the connection settings (option, then environment,
// then default) into the environment triple embedded in the launch
// configuration.
func newLaunchConfig(options *Options) *LaunchConfig {
	rpcURL := options.RPCURL
	if rpcURL == "" {
		rpcURL = envOr(envRPCURL, DefaultRPCURL)
	}

	privateKey := options.PrivateKey
	if privateKey == "" {
		privateKey = envOr(envPrivateKey, DefaultPrivateKey)
	}

	chainID := strconv.FormatUint(DefaultChainID, 10)
	if options.ChainID != 0 {
		chainID = strconv.FormatUint(options.ChainID, 10)
	} else if v := os.Getenv(envChainID); v != "" {
		chainID = v
	}

	return &LaunchConfig{
		Command: options.ServerPath,
		Env: map[string]string{
			envRPCURL:     rpcURL,
			envPrivateKey: privateKey,
			envChainID:    chainID,
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
