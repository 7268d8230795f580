package v1_test

import (
	"net/http"

	"github.com/dugout-app/backend/internal/career"
	v1 "github.com/dugout-app/backend/internal/controllers/v1"
	"github.com/dugout-app/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAdvanceSeason() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	player := testPlayer("Jan Kowalski")
	player.Age = 24
	_ = suite.addTestPlayers(headers, player)

	// A transfer fills the ledger before the season advance
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/market/buy", v1.BuyEditable{
		Player: testPlayer("Marco Rossi"),
		Fee:    10_000_000,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/advance-season", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CareerResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "2027/2028", response.Data.Season)
	assert.Empty(suite.T(), response.Data.Transactions)

	// Everyone is one year older
	assert.Equal(suite.T(), 25, response.Data.Players[0].Age)

	// The history restarts with the budgets the season starts with
	assert.Len(suite.T(), response.Data.BudgetHistory, 1)
	assert.Equal(suite.T(), int64(90_000_000), response.Data.BudgetHistory[0].TransferBudget)
}

func (suite *TestSuiteStandard) TestUpdateBudgets() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	transfer := "€120,000,000"
	r := test.Request(suite.controller, suite.T(), http.MethodPatch, "http://example.com/v1/career/budgets", v1.BudgetsEditable{
		TransferBudget: &transfer,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CareerResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), int64(120_000_000), response.Data.TransferBudget)

	// The wage budget is untouched by a transfer budget update
	assert.Equal(suite.T(), int64(1_000_000), response.Data.WageBudget)
}

func (suite *TestSuiteStandard) TestUpdateWageBudgetYearly() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	wage := "5,200,000"
	unit := career.WageYearly
	r := test.Request(suite.controller, suite.T(), http.MethodPatch, "http://example.com/v1/career/budgets", v1.BudgetsEditable{
		WageBudget: &wage,
		WageUnit:   &unit,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CareerResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The canonical figure is weekly, the yearly input is divided by 52
	assert.Equal(suite.T(), int64(100_000), response.Data.WageBudget)
	assert.Equal(suite.T(), career.WageYearly, response.Data.WageDisplayMode)
}

func (suite *TestSuiteStandard) TestUpdateBudgetsInvalidInput() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	empty := "no digits here"
	r := test.Request(suite.controller, suite.T(), http.MethodPatch, "http://example.com/v1/career/budgets", v1.BudgetsEditable{
		TransferBudget: &empty,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
