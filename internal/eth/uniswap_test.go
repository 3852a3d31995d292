package eth

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPriceRatio(t *testing.T) {
	oneToken := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	t.Run("simple ratio", func(t *testing.T) {
		out := new(big.Int).Mul(oneToken, big.NewInt(3))

		require.True(t, PriceRatio(oneToken, out).Equal(decimal.NewFromInt(3)))
	})

	t.Run("fractional ratio", func(t *testing.T) {
		half := new(big.Int).Div(oneToken, big.NewInt(2))

		require.True(t, PriceRatio(oneToken, half).Equal(decimal.RequireFromString("0.5")))
	})

	t.Run("zero amount in", func(t *testing.T) {
		require.True(t, PriceRatio(new(big.Int), oneToken).IsZero())
		require.True(t, PriceRatio(nil, oneToken).IsZero())
	})
}

func TestMockRouter(t *testing.T) {
	ctx := context.Background()
	uni := common.HexToAddress("0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984")
	weth := common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")

	t.Run("seeded price", func(t *testing.T) {
		router := NewMockRouter().WithPrice(uni, weth, decimal.RequireFromString("0.0025"))

		price, err := router.Price(ctx, uni, weth, big.NewInt(1))
		require.NoError(t, err)
		require.Equal(t, "0.0025", price.String())
	})

	t.Run("unseeded pair errors", func(t *testing.T) {
		router := NewMockRouter()

		_, err := router.Price(ctx, uni, weth, big.NewInt(1))
		require.ErrorContains(t, err, "no price for pair")

		_, err = router.SimulateSwap(ctx, uni, weth, big.NewInt(1), common.Address{})
		require.ErrorContains(t, err, "no simulation for pair")
	})
}
