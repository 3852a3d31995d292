package eth

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Mock implementations backed by seeded maps, for tests that exercise the
// tools and the server without a node.

type holding struct {
	balance  decimal.Decimal
	decimals uint8
}

type pair struct {
	from common.Address
	to   common.Address
}

// MockClient implements Client with seeded balances and symbols.
// Unseeded lookups return zero values rather than errors, matching how an
// empty account looks on a real node.
type MockClient struct {
	wallet        common.Address
	ethBalances   map[common.Address]decimal.Decimal
	tokenBalances map[pair]holding
	symbols       map[common.Address]string
}

// Compile-time verification that MockClient implements Client.
var _ Client = (*MockClient)(nil)

// NewMockClient creates an empty mock client.
func NewMockClient() *MockClient {
	return &MockClient{
		ethBalances:   make(map[common.Address]decimal.Decimal),
		tokenBalances: make(map[pair]holding),
		symbols:       make(map[common.Address]string),
	}
}

// WithWallet sets the wallet address reported by WalletAddress.
func (m *MockClient) WithWallet(addr common.Address) *MockClient {
	m.wallet = addr

	return m
}

// WithETHBalance seeds a native balance.
func (m *MockClient) WithETHBalance(addr common.Address, balance decimal.Decimal) *MockClient {
	m.ethBalances[addr] = balance

	return m
}

// WithTokenBalance seeds an ERC20 balance for owner.
func (m *MockClient) WithTokenBalance(token, owner common.Address, balance decimal.Decimal, decimals uint8) *MockClient {
	m.tokenBalances[pair{token, owner}] = holding{balance: balance, decimals: decimals}

	return m
}

// WithTokenSymbol seeds a token symbol.
func (m *MockClient) WithTokenSymbol(token common.Address, symbol string) *MockClient {
	m.symbols[token] = symbol

	return m
}

// ETHBalance implements Client.
func (m *MockClient) ETHBalance(_ context.Context, addr common.Address) (decimal.Decimal, error) {
	return m.ethBalances[addr], nil
}

// TokenBalance implements Client. Unseeded tokens report 18 decimals.
func (m *MockClient) TokenBalance(_ context.Context, token, owner common.Address) (decimal.Decimal, uint8, error) {
	h, ok := m.tokenBalances[pair{token, owner}]
	if !ok {
		return decimal.Zero, 18, nil
	}

	return h.balance, h.decimals, nil
}

// TokenSymbol implements Client.
func (m *MockClient) TokenSymbol(_ context.Context, token common.Address) (string, error) {
	if symbol, ok := m.symbols[token]; ok {
		return symbol, nil
	}

	return "UNKNOWN", nil
}

// WalletAddress implements Client.
func (m *MockClient) WalletAddress() common.Address {
	return m.wallet
}

// MockRouter implements Router with seeded prices and simulations.
// Unseeded pairs return errors, matching a pair with no liquidity.
type MockRouter struct {
	prices      map[pair]decimal.Decimal
	simulations map[pair]*Simulation
}

// Compile-time verification that MockRouter implements Router.
var _ Router = (*MockRouter)(nil)

// NewMockRouter creates an empty mock router.
func NewMockRouter() *MockRouter {
	return &MockRouter{
		prices:      make(map[pair]decimal.Decimal),
		simulations: make(map[pair]*Simulation),
	}
}

// WithPrice seeds the price for a token pair.
func (m *MockRouter) WithPrice(from, to common.Address, price decimal.Decimal) *MockRouter {
	m.prices[pair{from, to}] = price

	return m
}

// WithSimulation seeds the simulation result for a token pair.
func (m *MockRouter) WithSimulation(from, to common.Address, sim *Simulation) *MockRouter {
	m.simulations[pair{from, to}] = sim

	return m
}

// Price implements Router.
func (m *MockRouter) Price(_ context.Context, from, to common.Address, _ *big.Int) (decimal.Decimal, error) {
	price, ok := m.prices[pair{from, to}]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price for pair %s -> %s", from.Hex(), to.Hex())
	}

	return price, nil
}

// SimulateSwap implements Router.
func (m *MockRouter) SimulateSwap(_ context.Context, from, to common.Address, _ *big.Int, _ common.Address) (*Simulation, error) {
	sim, ok := m.simulations[pair{from, to}]
	if !ok {
		return nil, fmt.Errorf("no simulation for pair %s -> %s", from.Hex(), to.Hex())
	}

	return sim, nil
}
