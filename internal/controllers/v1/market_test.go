package v1_test

import (
	"net/http"

	"github.com/dugout-app/backend/internal/career"
	v1 "github.com/dugout-app/backend/internal/controllers/v1"
	"github.com/dugout-app/backend/internal/test"
	dugout_uuid "github.com/dugout-app/backend/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBuyPlayer() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/market/buy", v1.BuyEditable{
		Player: testPlayer("Jan Kowalski"),
		Fee:    30_000_000,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CareerResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), int64(70_000_000), response.Data.TransferBudget)
	assert.Len(suite.T(), response.Data.Players, 1)
	assert.Len(suite.T(), response.Data.Transactions, 1)
	assert.Equal(suite.T(), career.TransactionBuy, response.Data.Transactions[0].Type)
	assert.Equal(suite.T(), int64(30_000_000), response.Data.Transactions[0].Amount)
}

func (suite *TestSuiteStandard) TestBuyPlayerInsufficientFunds() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/market/buy", v1.BuyEditable{
		Player: testPlayer("Jan Kowalski"),
		Fee:    100_000_001,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	// The roster and the ledger are untouched after a failed transfer
	get := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career", "", headers)

	var response v1.CareerResponse
	test.DecodeResponse(suite.T(), &get, &response)
	assert.Empty(suite.T(), response.Data.Players)
	assert.Empty(suite.T(), response.Data.Transactions)
}

func (suite *TestSuiteStandard) TestBuyPlayerNegativeFee() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	// A negative fee would grow the budget instead of shrinking it
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/market/buy", v1.BuyEditable{
		Player: testPlayer("Jan Kowalski"),
		Fee:    -30_000_000,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	get := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career", "", headers)

	var response v1.CareerResponse
	test.DecodeResponse(suite.T(), &get, &response)
	assert.Equal(suite.T(), int64(100_000_000), response.Data.TransferBudget)
	assert.Empty(suite.T(), response.Data.Players)
}

func (suite *TestSuiteStandard) TestSellPlayer() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())
	added := suite.addTestPlayers(headers, testPlayer("Jan Kowalski"))

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/market/sell", v1.SellEditable{
		ID:  dugout_uuid.UUID{UUID: added.Data.Players[0].ID},
		Fee: 10_000_000,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CareerResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), int64(110_000_000), response.Data.TransferBudget)
	assert.Empty(suite.T(), response.Data.Players)
	assert.Len(suite.T(), response.Data.Transactions, 1)
	assert.Equal(suite.T(), career.TransactionSell, response.Data.Transactions[0].Type)
	assert.Equal(suite.T(), "Jan Kowalski", response.Data.Transactions[0].PlayerName)
}

func (suite *TestSuiteStandard) TestSellUnknownPlayer() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/market/sell", v1.SellEditable{
		ID:  dugout_uuid.New(),
		Fee: 10_000_000,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}
