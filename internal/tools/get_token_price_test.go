package tools

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/eth"
)

func TestGetTokenPriceUSD(t *testing.T) {
	// Raw pair ratio for UNI -> USDC; the USD price applies the 10^12
	// decimal adjustment on top.
	router := eth.NewMockRouter().WithPrice(
		common.HexToAddress(testToken),
		common.HexToAddress(USDCAddress),
		decimal.RequireFromString("0.00000000000723"),
	)
	tool := NewGetTokenPrice(router)

	res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
		"token_address":  testToken,
		"quote_currency": "USD",
	}))
	require.NoError(t, err)

	result := resultJSON(t, res)
	require.Equal(t, testToken, result["token_address"])
	require.Equal(t, "7.23", result["price"])
	require.Equal(t, "USD", result["quote_currency"])
}

func TestGetTokenPriceETH(t *testing.T) {
	router := eth.NewMockRouter().WithPrice(
		common.HexToAddress(testToken),
		common.HexToAddress(WETHAddress),
		decimal.RequireFromString("0.0025"),
	)
	tool := NewGetTokenPrice(router)

	res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
		"token_address":  testToken,
		"quote_currency": "ETH",
	}))
	require.NoError(t, err)

	// ETH quotes use the WETH pair directly, no decimal adjustment.
	result := resultJSON(t, res)
	require.Equal(t, "0.0025", result["price"])
	require.Equal(t, "ETH", result["quote_currency"])
}

func TestGetTokenPriceDefaultsToUSD(t *testing.T) {
	router := eth.NewMockRouter().WithPrice(
		common.HexToAddress(testToken),
		common.HexToAddress(USDCAddress),
		decimal.RequireFromString("0.000000000001"),
	)
	tool := NewGetTokenPrice(router)

	res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
		"token_address": testToken,
	}))
	require.NoError(t, err)

	result := resultJSON(t, res)
	require.Equal(t, "USD", result["quote_currency"])
	require.Equal(t, "1", result["price"])
}

func TestGetTokenPriceBySymbol(t *testing.T) {
	router := eth.NewMockRouter().WithPrice(
		common.HexToAddress(testToken),
		common.HexToAddress(USDCAddress),
		decimal.RequireFromString("0.00000000000723"),
	)
	tool := NewGetTokenPrice(router)

	res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
		"token_symbol": "uni",
	}))
	require.NoError(t, err)

	// Symbol lookup is case-insensitive and resolves to the contract address.
	result := resultJSON(t, res)
	require.Equal(t, testToken, result["token_address"])
	require.Equal(t, "7.23", result["price"])
}

func TestGetTokenPriceInvalidInput(t *testing.T) {
	tool := NewGetTokenPrice(eth.NewMockRouter())

	t.Run("no token given", func(t *testing.T) {
		res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		require.Contains(t, resultText(t, res), "either token_address or token_symbol")
	})

	t.Run("unknown symbol", func(t *testing.T) {
		res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
			"token_symbol": "DOGE",
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		require.Contains(t, resultText(t, res), "unknown token symbol")
	})

	t.Run("bad address", func(t *testing.T) {
		res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
			"token_address": "12345",
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		require.Contains(t, resultText(t, res), "invalid token address")
	})

	t.Run("no liquidity", func(t *testing.T) {
		res, err := tool.Call(context.Background(), callReq(t, tool.Name(), map[string]any{
			"token_address": testToken,
		}))
		require.NoError(t, err)
		require.True(t, res.IsError)
		require.Contains(t, resultText(t, res), "failed to get price")
	})
}
