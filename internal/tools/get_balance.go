package tools

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/eth"
)

// GetBalance queries ETH or ERC20 balances for a wallet address.
type GetBalance struct {
	client eth.Client
}

// Compile-time verification that GetBalance implements Tool.
var _ Tool = (*GetBalance)(nil)

// NewGetBalance creates the get_balance tool.
func NewGetBalance(client eth.Client) *GetBalance {
	return &GetBalance{client: client}
}

type getBalanceParams struct {
	Address      string `json:"address"`
	TokenAddress string `json:"token_address,omitempty"`
}

type getBalanceResult struct {
	Address  string `json:"address"`
	Balance  string `json:"balance"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Name implements Tool.
func (t *GetBalance) Name() string { return "get_balance" }

// Description implements Tool.
func (t *GetBalance) Description() string {
	return "Query ETH or ERC20 token balance for a given wallet address"
}

// InputSchema implements Tool.
func (t *GetBalance) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"address": {
				Type:        "string",
				Description: "The wallet address to query",
			},
			"token_address": {
				Type:        "string",
				Description: "Optional ERC20 token contract address. If omitted, returns the ETH balance",
			},
		},
		Required: []string{"address"},
	}
}

// Call implements Tool.
func (t *GetBalance) Call(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params getBalanceParams
	if err := decodeParams(req, &params); err != nil {
		return ErrorResult("invalid parameters: " + err.Error()), nil
	}

	if !common.IsHexAddress(params.Address) {
		return ErrorResult("invalid wallet address: " + params.Address), nil
	}

	address := common.HexToAddress(params.Address)

	if params.TokenAddress == "" {
		balance, err := t.client.ETHBalance(ctx, address)
		if err != nil {
			return ErrorResult("failed to get ETH balance: " + err.Error()), nil
		}

		return jsonResult(getBalanceResult{
			Address:  params.Address,
			Balance:  balance.String(),
			Symbol:   "ETH",
			Decimals: 18,
		})
	}

	if !common.IsHexAddress(params.TokenAddress) {
		return ErrorResult("invalid token address: " + params.TokenAddress), nil
	}

	token := common.HexToAddress(params.TokenAddress)

	balance, decimals, err := t.client.TokenBalance(ctx, token, address)
	if err != nil {
		return ErrorResult("failed to get token balance: " + err.Error()), nil
	}

	symbol, err := t.client.TokenSymbol(ctx, token)
	if err != nil {
		symbol = "UNKNOWN"
	}

	return jsonResult(getBalanceResult{
		Address:  params.Address,
		Balance:  balance.String(),
		Symbol:   symbol,
		Decimals: decimals,
	})
}
