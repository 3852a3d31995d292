package tools

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/eth"
)

// usdcDecimalGap bridges the 18-decimal quote amount and USDC's 6 decimals
// when converting a raw pair ratio into a USD price.
const usdcDecimalGap = 12

// oneTokenWei is the probe amount used for price quotes: one token at 18
// decimals.
var oneTokenWei = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// GetTokenPrice quotes a token's price in USD or ETH via Uniswap V2.
type GetTokenPrice struct {
	router eth.Router
}

// Compile-time verification that GetTokenPrice implements Tool.
var _ Tool = (*GetTokenPrice)(nil)

// NewGetTokenPrice creates the get_token_price tool.
func NewGetTokenPrice(router eth.Router) *GetTokenPrice {
	return &GetTokenPrice{router: router}
}

type getTokenPriceParams struct {
	TokenAddress  string `json:"token_address,omitempty"`
	TokenSymbol   string `json:"token_symbol,omitempty"`
	QuoteCurrency string `json:"quote_currency,omitempty"`
}

type getTokenPriceResult struct {
	TokenAddress  string `json:"token_address"`
	Price         string `json:"price"`
	QuoteCurrency string `json:"quote_currency"`
}

// Name implements Tool.
func (t *GetTokenPrice) Name() string { return "get_token_price" }

// Description implements Tool.
func (t *GetTokenPrice) Description() string {
	return "Get the current price of a token in USD or ETH using Uniswap V2. " +
		"You can specify the token by address or by symbol (e.g., WETH, USDC, DAI, USDT, UNI, LINK, WBTC, AAVE, MKR, SNX)."
}

// InputSchema implements Tool.
func (t *GetTokenPrice) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"token_address": {
				Type:        "string",
				Description: "The token contract address",
			},
			"token_symbol": {
				Type:        "string",
				Description: "A well-known token symbol, used when token_address is omitted",
			},
			"quote_currency": {
				Type:        "string",
				Description: "Quote currency, \"USD\" or \"ETH\" (default: USD)",
			},
		},
	}
}

// Call implements Tool.
func (t *GetTokenPrice) Call(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params getTokenPriceParams
	if err := decodeParams(req, &params); err != nil {
		return ErrorResult("invalid parameters: " + err.Error()), nil
	}

	tokenHex, errResult := resolveToken(params)
	if errResult != nil {
		return errResult, nil
	}

	token := common.HexToAddress(tokenHex)

	quote := params.QuoteCurrency
	if quote == "" {
		quote = "USD"
	}

	var price decimal.Decimal

	if strings.EqualFold(quote, "ETH") {
		ratio, err := t.router.Price(ctx, token, common.HexToAddress(WETHAddress), oneTokenWei)
		if err != nil {
			return ErrorResult("failed to get price: " + err.Error()), nil
		}

		price = ratio
	} else {
		ratio, err := t.router.Price(ctx, token, common.HexToAddress(USDCAddress), oneTokenWei)
		if err != nil {
			return ErrorResult("failed to get price: " + err.Error()), nil
		}

		price = ratio.Mul(decimal.New(1, usdcDecimalGap))
	}

	return jsonResult(getTokenPriceResult{
		TokenAddress:  tokenHex,
		Price:         price.String(),
		QuoteCurrency: quote,
	})
}

// resolveToken picks the token address from the explicit address or the
// symbol table. Returns an error result when neither resolves.
func resolveToken(params getTokenPriceParams) (string, *mcp.CallToolResult) {
	if params.TokenAddress != "" {
		if !common.IsHexAddress(params.TokenAddress) {
			return "", ErrorResult("invalid token address: " + params.TokenAddress)
		}

		return params.TokenAddress, nil
	}

	if params.TokenSymbol != "" {
		addr, ok := tokenAddressBySymbol[strings.ToUpper(params.TokenSymbol)]
		if !ok {
			return "", ErrorResult("unknown token symbol: " + params.TokenSymbol)
		}

		return addr, nil
	}

	return "", ErrorResult("either token_address or token_symbol must be provided")
}
