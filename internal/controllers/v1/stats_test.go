package v1_test

import (
	"net/http"
	"time"

	"github.com/dugout-app/backend/internal/career"
	v1 "github.com/dugout-app/backend/internal/controllers/v1"
	"github.com/dugout-app/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestStats() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	young := testPlayer("Junior")
	young.Age = 19
	young.Overall = 70
	young.IsHomegrown = true

	veteran := testPlayer("Veteran")
	veteran.Age = 33
	veteran.Overall = 80
	veteran.IsNonEU = true

	loaned := testPlayer("Loaned Out")
	loaned.Age = 25
	loaned.IsOnLoan = true

	_ = suite.addTestPlayers(headers, young, veteran, loaned)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career/stats", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The loaned player is not part of the active squad
	assert.Equal(suite.T(), 2, response.Data.Squad.SquadSize)
	assert.Equal(suite.T(), 26.0, response.Data.Squad.AverageAge)
	assert.Equal(suite.T(), 75.0, response.Data.Squad.AverageOverall)
	assert.Equal(suite.T(), 1, response.Data.Squad.Homegrown)
	assert.Equal(suite.T(), 1, response.Data.Squad.NonEU)
	assert.Equal(suite.T(), 1, response.Data.Squad.Over22)

	assert.Equal(suite.T(), "€100.0M", response.Data.TransferBudget)
	assert.Equal(suite.T(), "€1.0M", response.Data.WageBudget)
	assert.Nil(suite.T(), response.Data.LatestTransaction)
}

func (suite *TestSuiteStandard) TestStatsLatestTransaction() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/market/buy", v1.BuyEditable{
		Player: testPlayer("Jan Kowalski"),
		Fee:    30_000_000,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career/stats", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.NotNil(suite.T(), response.Data.LatestTransaction)
	assert.Equal(suite.T(), "Jan Kowalski", response.Data.LatestTransaction.PlayerName)
}

func (suite *TestSuiteStandard) TestStatsEmptySquad() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career/stats", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 0, response.Data.Squad.SquadSize)
	assert.Equal(suite.T(), 0.0, response.Data.Squad.AverageAge)
}

func (suite *TestSuiteStandard) TestBudgetHistory() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	// One point is not a trend
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career/budget-history", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	// History points are part of the career value, views submit complete
	// replacement objects
	get := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career", "", headers)
	var current v1.CareerResponse
	test.DecodeResponse(suite.T(), &get, &current)

	next := *current.Data
	next.BudgetHistory = append(next.BudgetHistory, career.BudgetPoint{
		Date:           time.Now().In(time.UTC),
		TransferBudget: 80_000_000,
		WageBudget:     next.WageBudget,
	})

	r = test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/career", next, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career/budget-history", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BudgetHistoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), int64(100_000_000), response.Data[0].TransferBudget)
	assert.Equal(suite.T(), int64(80_000_000), response.Data[1].TransferBudget)
}
