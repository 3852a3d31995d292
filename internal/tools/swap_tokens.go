package tools

import (
	"context"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/eth"
)

// defaultSlippagePct applies when the caller omits slippage_tolerance.
const defaultSlippagePct = 0.5

// tokenDecimals is assumed for swap amounts. Querying each token's actual
// decimals would need two extra contract reads per call.
// TODO: read decimals from the from_token contract instead of assuming 18.
const tokenDecimals = 18

// SwapTokens simulates a Uniswap V2 swap and reports the expected output and
// gas costs without executing a transaction.
type SwapTokens struct {
	client eth.Client
	router eth.Router
}

// Compile-time verification that SwapTokens implements Tool.
var _ Tool = (*SwapTokens)(nil)

// NewSwapTokens creates the swap_tokens tool.
func NewSwapTokens(client eth.Client, router eth.Router) *SwapTokens {
	return &SwapTokens{client: client, router: router}
}

type swapTokensParams struct {
	FromToken string `json:"from_token"`
	ToToken   string `json:"to_token"`
	Amount    string `json:"amount"`
	// Pointer so an explicit zero survives the default.
	SlippageTolerance *float64 `json:"slippage_tolerance,omitempty"`
}

type swapTokensResult struct {
	FromToken           string  `json:"from_token"`
	ToToken             string  `json:"to_token"`
	AmountIn            string  `json:"amount_in"`
	EstimatedAmountOut  string  `json:"estimated_amount_out"`
	MinimumAmountOut    string  `json:"minimum_amount_out"`
	GasEstimate         string  `json:"gas_estimate"`
	GasPriceGwei        string  `json:"gas_price_gwei"`
	EstimatedGasCostETH string  `json:"estimated_gas_cost_eth"`
	SlippageTolerance   float64 `json:"slippage_tolerance"`
}

// Name implements Tool.
func (t *SwapTokens) Name() string { return "swap_tokens" }

// Description implements Tool.
func (t *SwapTokens) Description() string {
	return "Simulate a token swap on Uniswap V2. Returns estimated output and gas costs without executing the transaction."
}

// InputSchema implements Tool.
func (t *SwapTokens) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"from_token": {
				Type:        "string",
				Description: "Address of the token to swap from",
			},
			"to_token": {
				Type:        "string",
				Description: "Address of the token to swap to",
			},
			"amount": {
				Type:        "string",
				Description: "Amount to swap in human-readable form, e.g. \"1.5\"",
			},
			"slippage_tolerance": {
				Type:        "number",
				Description: "Slippage tolerance in percent (default: 0.5)",
			},
		},
		Required: []string{"from_token", "to_token", "amount"},
	}
}

// Call implements Tool.
func (t *SwapTokens) Call(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params swapTokensParams
	if err := decodeParams(req, &params); err != nil {
		return ErrorResult("invalid parameters: " + err.Error()), nil
	}

	if !common.IsHexAddress(params.FromToken) {
		return ErrorResult("invalid from_token address: " + params.FromToken), nil
	}

	if !common.IsHexAddress(params.ToToken) {
		return ErrorResult("invalid to_token address: " + params.ToToken), nil
	}

	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		return ErrorResult("invalid amount: " + err.Error()), nil
	}

	amountIn := amount.Shift(tokenDecimals).Round(0).BigInt()

	sim, err := t.router.SimulateSwap(ctx,
		common.HexToAddress(params.FromToken),
		common.HexToAddress(params.ToToken),
		amountIn,
		t.client.WalletAddress(),
	)
	if err != nil {
		return ErrorResult("failed to simulate swap: " + err.Error()), nil
	}

	slippage := defaultSlippagePct
	if params.SlippageTolerance != nil {
		slippage = *params.SlippageTolerance
	}

	amountOut := decimal.NewFromBigInt(sim.AmountOut, 0)
	minOut := amountOut.Mul(decimal.NewFromFloat(1 - slippage/100))

	return jsonResult(swapTokensResult{
		FromToken:           params.FromToken,
		ToToken:             params.ToToken,
		AmountIn:            params.Amount,
		EstimatedAmountOut:  amountOut.Shift(-tokenDecimals).String(),
		MinimumAmountOut:    minOut.Shift(-tokenDecimals).String(),
		GasEstimate:         strconv.FormatUint(sim.GasEstimate, 10),
		GasPriceGwei:        decimal.NewFromBigInt(sim.GasPrice, -9).String(),
		EstimatedGasCostETH: decimal.NewFromBigInt(sim.GasCost, -18).String(),
		SlippageTolerance:   slippage,
	})
}
