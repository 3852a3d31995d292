// Package config loads the trading server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Environment variable names read by FromEnv. The same variables are set by
// the client driver when it launches the server subprocess.
const (
	EnvRPCURL     = "ETH_RPC_URL"
	EnvPrivateKey = "PRIVATE_KEY"
	EnvChainID    = "CHAIN_ID"
)

// DefaultChainID is Ethereum mainnet.
const DefaultChainID uint64 = 1

// Config holds the settings the server needs to talk to an Ethereum node.
type Config struct {
	// RPCURL is the HTTP endpoint of the Ethereum JSON-RPC node.
	RPCURL string

	// PrivateKey is the hex-encoded private key used to derive the wallet
	// address for swap simulations. No transactions are ever signed or sent.
	PrivateKey string

	// ChainID identifies the network.
	ChainID uint64
}

// FromEnv builds a Config from environment variables.
// ETH_RPC_URL and PRIVATE_KEY are required; CHAIN_ID defaults to mainnet.
func FromEnv() (*Config, error) {
	rpcURL := os.Getenv(EnvRPCURL)
	if rpcURL == "" {
		return nil, errors.New("ETH_RPC_URL not set in environment")
	}

	privateKey := os.Getenv(EnvPrivateKey)
	if privateKey == "" {
		return nil, errors.New("PRIVATE_KEY not set in environment")
	}

	chainID := DefaultChainID

	if v := os.Getenv(EnvChainID); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CHAIN_ID %q: %w", v, err)
		}

		chainID = id
	}

	return &Config{
		RPCURL:     rpcURL,
		PrivateKey: privateKey,
		ChainID:    chainID,
	}, nil
}
