// Package eth provides read-only access to an Ethereum node: native and
// ERC20 balances, token metadata, and Uniswap V2 price queries and swap
// simulations.
package eth

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ethDecimals is the decimal scale of the native currency (wei per ETH).
const ethDecimals = 18

// Client reads balances and token metadata from an Ethereum node.
type Client interface {
	// ETHBalance returns the native balance of addr in ETH.
	ETHBalance(ctx context.Context, addr common.Address) (decimal.Decimal, error)

	// TokenBalance returns the ERC20 balance of owner for the given token,
	// scaled by the token's decimals, along with the decimals value.
	TokenBalance(ctx context.Context, token, owner common.Address) (decimal.Decimal, uint8, error)

	// TokenSymbol returns the ERC20 symbol of the given token.
	TokenSymbol(ctx context.Context, token common.Address) (string, error)

	// WalletAddress returns the address derived from the configured private key.
	WalletAddress() common.Address
}

// RPCClient implements Client over a JSON-RPC connection.
type RPCClient struct {
	ec      *ethclient.Client
	wallet  common.Address
	chainID uint64
	log     *slog.Logger
}

// Compile-time verification that RPCClient implements Client.
var _ Client = (*RPCClient)(nil)

// NewRPCClient connects to the given JSON-RPC endpoint and derives the wallet
// address from the hex-encoded private key. The key is never used to sign
// anything; only its address is needed for swap simulations.
func NewRPCClient(ctx context.Context, rpcURL, privateKey string, chainID uint64, log *slog.Logger) (*RPCClient, error) {
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("connect to Ethereum RPC: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return &RPCClient{
		ec:      ec,
		wallet:  crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		log:     log.With("component", "eth_client"),
	}, nil
}

// Backend exposes the underlying ethclient connection for collaborators that
// need raw contract access, such as the Uniswap router.
func (c *RPCClient) Backend() *ethclient.Client {
	return c.ec
}

// WalletAddress implements Client.
func (c *RPCClient) WalletAddress() common.Address {
	return c.wallet
}

// ChainID returns the configured chain identifier.
func (c *RPCClient) ChainID() uint64 {
	return c.chainID
}

// ETHBalance implements Client.
func (c *RPCClient) ETHBalance(ctx context.Context, addr common.Address) (decimal.Decimal, error) {
	wei, err := c.ec.BalanceAt(ctx, addr, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get ETH balance: %w", err)
	}

	return decimal.NewFromBigInt(wei, -ethDecimals), nil
}

// TokenBalance implements Client. The balanceOf and decimals calls are
// independent reads and run concurrently.
func (c *RPCClient) TokenBalance(ctx context.Context, token, owner common.Address) (decimal.Decimal, uint8, error) {
	var (
		raw      *big.Int
		decimals uint8
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		raw, err = c.erc20BalanceOf(gctx, token, owner)

		return err
	})

	g.Go(func() error {
		var err error

		decimals, err = c.erc20Decimals(gctx, token)

		return err
	})

	if err := g.Wait(); err != nil {
		return decimal.Zero, 0, err
	}

	return decimal.NewFromBigInt(raw, -int32(decimals)), decimals, nil
}

// TokenSymbol implements Client.
func (c *RPCClient) TokenSymbol(ctx context.Context, token common.Address) (string, error) {
	return c.erc20Symbol(ctx, token)
}
