package tools

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/eth"
)

func seededSwapRouter() *eth.MockRouter {
	oneToken := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	amountOut := new(big.Int).Mul(big.NewInt(1800), oneToken)
	gasPrice := big.NewInt(30_000_000_000) // 30 gwei

	return eth.NewMockRouter().WithSimulation(
		common.HexToAddress(WETHAddress),
		common.HexToAddress(USDCAddress),
		&eth.Simulation{
			AmountIn:    oneToken,
			AmountOut:   amountOut,
			GasEstimate: 150000,
			GasPrice:    gasPrice,
			GasCost:     new(big.Int).Mul(big.NewInt(150000), gasPrice),
		},
	)
}

func TestSwapTokens(t *testing.T) {
	tool := NewSwapTokens(eth.NewMockClient(), seededSwapRouter())

	res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
		"from_token":         WETHAddress,
		"to_token":           USDCAddress,
		"amount":             "1.0",
		"slippage_tolerance": 0.5,
	}))
	require.NoError(t, err)

	result := resultJSON(t, res)
	require.Equal(t, "1.0", result["amount_in"])
	require.Equal(t, "1800", result["estimated_amount_out"])
	require.Equal(t, "1791", result["minimum_amount_out"])
	require.Equal(t, "150000", result["gas_estimate"])
	require.Equal(t, "30", result["gas_price_gwei"])
	require.Equal(t, "0.0045", result["estimated_gas_cost_eth"])
	require.Equal(t, 0.5, result["slippage_tolerance"])
}

func TestSwapTokensDefaultSlippage(t *testing.T) {
	tool := NewSwapTokens(eth.NewMockClient(), seededSwapRouter())

	res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
		"from_token": WETHAddress,
		"to_token":   USDCAddress,
		"amount":     "1.0",
	}))
	require.NoError(t, err)

	result := resultJSON(t, res)
	require.Equal(t, 0.5, result["slippage_tolerance"])
	require.Equal(t, "1791", result["minimum_amount_out"])
}

func TestSwapTokensZeroSlippage(t *testing.T) {
	tool := NewSwapTokens(eth.NewMockClient(), seededSwapRouter())

	res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
		"from_token":         WETHAddress,
		"to_token":           USDCAddress,
		"amount":             "1.0",
		"slippage_tolerance": 0,
	}))
	require.NoError(t, err)

	// An explicit zero must not be replaced by the default.
	result := resultJSON(t, res)
	require.Equal(t, float64(0), result["slippage_tolerance"])
	require.Equal(t, "1800", result["minimum_amount_out"])
}

func TestSwapTokensInvalidInput(t *testing.T) {
	tool := NewSwapTokens(eth.NewMockClient(), eth.NewMockRouter())

	t.Run("bad from_token", func(t *testing.T) {
		res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
			"from_token": "bogus",
			"to_token":   USDCAddress,
			"amount":     "1.0",
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		require.Contains(t, resultText(t, res), "invalid from_token")
	})

	t.Run("bad amount", func(t *testing.T) {
		res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
			"from_token": WETHAddress,
			"to_token":   USDCAddress,
			"amount":     "one",
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		require.Contains(t, resultText(t, res), "invalid amount")
	})

	t.Run("no liquidity", func(t *testing.T) {
		res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
			"from_token": WETHAddress,
			"to_token":   USDCAddress,
			"amount":     "1.0",
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		require.Contains(t, resultText(t, res), "failed to simulate swap")
	})
}
