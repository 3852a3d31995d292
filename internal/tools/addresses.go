package tools

// Quoting anchors on Ethereum mainnet.
const (
	// WETHAddress is wrapped ETH, used for ETH-denominated quotes.
	WETHAddress = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"

	// USDCAddress is used for USD-denominated quotes.
	USDCAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

// tokenAddressBySymbol maps well-known mainnet token symbols to their
// contract addresses.
var tokenAddressBySymbol = map[string]string{
	"WETH": WETHAddress,
	"USDC": USDCAddress,
	"DAI":  "0x6B175474E89094C44Da98b954EedeAC495271d0F",
	"USDT": "0xdAC17F958D2ee523a2206206994597C13D831ec7",
	"UNI":  "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
	"LINK": "0x514910771AF9Ca656af840dff83E8264EcF986CA",
	"WBTC": "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599",
	"AAVE": "0x7Fc66500c84A76Ad7e9c93437bFc5Ac33E2DDaE9",
	"MKR":  "0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2",
	"SNX":  "0xC011a73ee8576Fb46F5E1c5751cA3B9Fe0af2a6F",
}
