package v1_test

import (
	"net/http"

	v1 "github.com/dugout-app/backend/internal/controllers/v1"
	"github.com/dugout-app/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetCareerNotCreated() {
	headers := suite.register("gaffer@example.com")

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestCreateCareer() {
	headers := suite.register("gaffer@example.com")

	response := suite.createTestCareer(headers, defaultSetup())
	assert.Equal(suite.T(), "Alex Hunter", response.Data.ManagerName)
	assert.Equal(suite.T(), "2026/2027", response.Data.Season)
	assert.Empty(suite.T(), response.Data.Players)
	assert.Empty(suite.T(), response.Data.Transactions)

	// The history starts with the initial budgets
	assert.Len(suite.T(), response.Data.BudgetHistory, 1)
	assert.Equal(suite.T(), int64(100_000_000), response.Data.BudgetHistory[0].TransferBudget)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
}

func (suite *TestSuiteStandard) TestCreateCareerTwice() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career", defaultSetup(), headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestCreateCareerInvalidSeason() {
	headers := suite.register("gaffer@example.com")

	tests := []struct {
		name   string
		season string
	}{
		{"No separator", "2026"},
		{"Wrong second year", "2026/2028"},
		{"Not a number", "twenty/six"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			setup := defaultSetup()
			setup.Season = tt.season

			r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career", setup, headers)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestReplaceCareer() {
	headers := suite.register("gaffer@example.com")
	response := suite.createTestCareer(headers, defaultSetup())

	next := *response.Data
	next.TeamName = "Another FC"

	r := test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/career", next, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var replaced v1.CareerResponse
	test.DecodeResponse(suite.T(), &r, &replaced)
	assert.Equal(suite.T(), "Another FC", replaced.Data.TeamName)
}

func (suite *TestSuiteStandard) TestDeleteCareer() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	// Without confirmation nothing happens
	r := test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1/career", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1/career?confirm=yes-i-am-sure", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestOptionsCareer() {
	headers := suite.register("gaffer@example.com")

	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/career", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "OPTIONS, GET, POST, PUT, DELETE", r.Header().Get("allow"))
}
