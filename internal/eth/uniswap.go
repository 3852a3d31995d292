package eth

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
)

// RouterAddress is the Uniswap V2 Router02 deployment on Ethereum mainnet.
const RouterAddress = "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"

// Fallbacks used when the node refuses to estimate a swap, e.g. because the
// simulated wallet holds no tokens.
const (
	defaultGasEstimate        = 200000
	defaultGasPriceWei uint64 = 50_000_000_000 // 50 gwei
)

const routerABIJSON = `[
	{"name":"getAmountsOut","type":"function","stateMutability":"view","inputs":[{"name":"amountIn","type":"uint256"},{"name":"path","type":"address[]"}],"outputs":[{"name":"amounts","type":"uint256[]"}]},
	{"name":"swapExactTokensForTokens","type":"function","stateMutability":"nonpayable","inputs":[{"name":"amountIn","type":"uint256"},{"name":"amountOutMin","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"},{"name":"deadline","type":"uint256"}],"outputs":[{"name":"amounts","type":"uint256[]"}]}
]`

var routerABI = mustParseABI(routerABIJSON)

// Simulation is the outcome of a simulated swap: the quoted output amount and
// the gas economics of executing it. Amounts are in the tokens' smallest
// units, gas price and cost in wei.
type Simulation struct {
	AmountIn    *big.Int
	AmountOut   *big.Int
	GasEstimate uint64
	GasPrice    *big.Int
	GasCost     *big.Int
}

// Router quotes prices and simulates swaps on a DEX.
type Router interface {
	// Price returns the amountOut/amountIn ratio for swapping amountIn of
	// from into to.
	Price(ctx context.Context, from, to common.Address, amountIn *big.Int) (decimal.Decimal, error)

	// SimulateSwap quotes a swap and estimates its gas cost without sending
	// a transaction.
	SimulateSwap(ctx context.Context, from, to common.Address, amountIn *big.Int, wallet common.Address) (*Simulation, error)
}

// UniswapV2Router implements Router against the mainnet Uniswap V2 router.
type UniswapV2Router struct {
	ec     *ethclient.Client
	router common.Address
	log    *slog.Logger
}

// Compile-time verification that UniswapV2Router implements Router.
var _ Router = (*UniswapV2Router)(nil)

// NewUniswapV2Router creates a router bound to the mainnet deployment.
func NewUniswapV2Router(ec *ethclient.Client, log *slog.Logger) *UniswapV2Router {
	return &UniswapV2Router{
		ec:     ec,
		router: common.HexToAddress(RouterAddress),
		log:    log.With("component", "uniswap"),
	}
}

// amountOut asks the router for the output of swapping amountIn along path.
func (r *UniswapV2Router) amountOut(ctx context.Context, amountIn *big.Int, path []common.Address) (*big.Int, error) {
	data, err := routerABI.Pack("getAmountsOut", amountIn, path)
	if err != nil {
		return nil, fmt.Errorf("pack getAmountsOut: %w", err)
	}

	out, err := r.ec.CallContract(ctx, ethereum.CallMsg{To: &r.router, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("get amounts out from Uniswap: %w", err)
	}

	results, err := routerABI.Unpack("getAmountsOut", out)
	if err != nil {
		return nil, fmt.Errorf("unpack getAmountsOut: %w", err)
	}

	amounts, ok := results[0].([]*big.Int)
	if !ok || len(amounts) < 2 {
		return new(big.Int), nil
	}

	return amounts[len(amounts)-1], nil
}

// Price implements Router.
func (r *UniswapV2Router) Price(ctx context.Context, from, to common.Address, amountIn *big.Int) (decimal.Decimal, error) {
	out, err := r.amountOut(ctx, amountIn, []common.Address{from, to})
	if err != nil {
		return decimal.Zero, err
	}

	return PriceRatio(amountIn, out), nil
}

// PriceRatio returns amountOut/amountIn as a decimal, or zero when amountIn
// is zero.
func PriceRatio(amountIn, amountOut *big.Int) decimal.Decimal {
	if amountIn == nil || amountIn.Sign() == 0 {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(amountOut, 0).Div(decimal.NewFromBigInt(amountIn, 0))
}

// SimulateSwap implements Router.
//
// The quoted output comes from getAmountsOut. Gas is estimated against a
// packed swapExactTokensForTokens call with no slippage protection and a far
// deadline; estimation failures fall back to defaults rather than failing the
// simulation.
func (r *UniswapV2Router) SimulateSwap(ctx context.Context, from, to common.Address, amountIn *big.Int, wallet common.Address) (*Simulation, error) {
	path := []common.Address{from, to}

	out, err := r.amountOut(ctx, amountIn, path)
	if err != nil {
		return nil, err
	}

	deadline := new(big.Int).SetUint64(math.MaxUint64)

	data, err := routerABI.Pack("swapExactTokensForTokens", amountIn, new(big.Int), path, wallet, deadline)
	if err != nil {
		return nil, fmt.Errorf("pack swapExactTokensForTokens: %w", err)
	}

	gasEstimate, err := r.ec.EstimateGas(ctx, ethereum.CallMsg{From: wallet, To: &r.router, Data: data})
	if err != nil {
		r.log.Debug("Gas estimation failed, using default", "error", err, "default", defaultGasEstimate)

		gasEstimate = defaultGasEstimate
	}

	gasPrice, err := r.ec.SuggestGasPrice(ctx)
	if err != nil {
		r.log.Debug("Gas price query failed, using default", "error", err, "default_wei", defaultGasPriceWei)

		gasPrice = new(big.Int).SetUint64(defaultGasPriceWei)
	}

	return &Simulation{
		AmountIn:    amountIn,
		AmountOut:   out,
		GasEstimate: gasEstimate,
		GasPrice:    gasPrice,
		GasCost:     new(big.Int).Mul(new(big.Int).SetUint64(gasEstimate), gasPrice),
	}, nil
}
