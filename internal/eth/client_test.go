package eth

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMockClientBalances(t *testing.T) {
	ctx := context.Background()
	wallet := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	usdc := common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")

	client := NewMockClient().
		WithWallet(wallet).
		WithETHBalance(wallet, decimal.RequireFromString("1.5")).
		WithTokenBalance(usdc, wallet, decimal.RequireFromString("250.75"), 6).
		WithTokenSymbol(usdc, "USDC")

	t.Run("seeded ETH balance", func(t *testing.T) {
		balance, err := client.ETHBalance(ctx, wallet)
		require.NoError(t, err)
		require.Equal(t, "1.5", balance.String())
	})

	t.Run("unseeded ETH balance is zero", func(t *testing.T) {
		balance, err := client.ETHBalance(ctx, common.HexToAddress("0x01"))
		require.NoError(t, err)
		require.True(t, balance.IsZero())
	})

	t.Run("seeded token balance", func(t *testing.T) {
		balance, decimals, err := client.TokenBalance(ctx, usdc, wallet)
		require.NoError(t, err)
		require.Equal(t, "250.75", balance.String())
		require.Equal(t, uint8(6), decimals)
	})

	t.Run("unseeded token reports 18 decimals", func(t *testing.T) {
		balance, decimals, err := client.TokenBalance(ctx, common.HexToAddress("0x02"), wallet)
		require.NoError(t, err)
		require.True(t, balance.IsZero())
		require.Equal(t, uint8(18), decimals)
	})

	t.Run("symbol falls back to UNKNOWN", func(t *testing.T) {
		symbol, err := client.TokenSymbol(ctx, usdc)
		require.NoError(t, err)
		require.Equal(t, "USDC", symbol)

		symbol, err = client.TokenSymbol(ctx, common.HexToAddress("0x03"))
		require.NoError(t, err)
		require.Equal(t, "UNKNOWN", symbol)
	})

	t.Run("wallet address", func(t *testing.T) {
		require.Equal(t, wallet, client.WalletAddress())
	})
}
