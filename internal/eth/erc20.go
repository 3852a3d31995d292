package eth

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Minimal ERC20 ABI: just the read methods the tools need.
const erc20ABIJSON = `[
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"decimals","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"name":"symbol","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]}
]`

var erc20ABI = mustParseABI(erc20ABIJSON)

func mustParseABI(src string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("parse ABI: %v", err))
	}

	return parsed
}

// callERC20 packs a read-only ERC20 method call, executes it via eth_call,
// and unpacks the outputs.
func (c *RPCClient) callERC20(ctx context.Context, token common.Address, method string, args ...any) ([]any, error) {
	data, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	out, err := c.ec.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", method, token.Hex(), err)
	}

	results, err := erc20ABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	return results, nil
}

func (c *RPCClient) erc20BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	results, err := c.callERC20(ctx, token, "balanceOf", owner)
	if err != nil {
		return nil, err
	}

	balance, ok := results[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf result type %T", results[0])
	}

	return balance, nil
}

func (c *RPCClient) erc20Decimals(ctx context.Context, token common.Address) (uint8, error) {
	results, err := c.callERC20(ctx, token, "decimals")
	if err != nil {
		return 0, err
	}

	decimals, ok := results[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("unexpected decimals result type %T", results[0])
	}

	return decimals, nil
}

func (c *RPCClient) erc20Symbol(ctx context.Context, token common.Address) (string, error) {
	results, err := c.callERC20(ctx, token, "symbol")
	if err != nil {
		return "", err
	}

	symbol, ok := results[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected symbol result type %T", results[0])
	}

	return symbol, nil
}
