package v1_test

import (
	"net/http"

	"github.com/dugout-app/backend/internal/ai"
	"github.com/dugout-app/backend/internal/career"
	v1 "github.com/dugout-app/backend/internal/controllers/v1"
	"github.com/dugout-app/backend/internal/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestImportPlayers() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	suite.useExtractor(fakeExtractor{players: []career.Player{
		{ID: uuid.New(), Name: "Jan Kowalski", Position: "GK", Age: 27, Overall: 82, Nationality: "Poland", Value: 12_000_000, Wage: 45_000},
	}}, nil)

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/import/players", v1.ImportEditable{
		Text:  "1 GK Jan Kowalski 82 27 Poland",
		Merge: true,
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)

	// With merge set the players end up on the roster
	get := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career", "", headers)
	var c v1.CareerResponse
	test.DecodeResponse(suite.T(), &get, &c)
	assert.Len(suite.T(), c.Data.Players, 1)
	assert.Equal(suite.T(), "Jan Kowalski", c.Data.Players[0].Name)
}

func (suite *TestSuiteStandard) TestImportPlayersPreview() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	suite.useExtractor(fakeExtractor{players: []career.Player{
		{ID: uuid.New(), Name: "Jan Kowalski", Position: "GK"},
	}}, nil)

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/import/players", v1.ImportEditable{
		Text: "1 GK Jan Kowalski 82 27 Poland",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	// Without merge the roster stays empty
	get := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/career", "", headers)
	var c v1.CareerResponse
	test.DecodeResponse(suite.T(), &get, &c)
	assert.Empty(suite.T(), c.Data.Players)
}

func (suite *TestSuiteStandard) TestImportPlayersNothingFound() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	suite.useExtractor(fakeExtractor{players: []career.Player{}}, nil)

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/import/players", v1.ImportEditable{
		Text:  "no roster in here",
		Merge: true,
	}, headers)

	// Nothing recognizable is not an error
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestImportPlayersNoCredential() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	suite.useExtractor(nil, ai.ErrNoCredential)

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/import/players", v1.ImportEditable{
		Text: "1 GK Jan Kowalski 82 27 Poland",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusPreconditionFailed, &r)
}

func (suite *TestSuiteStandard) TestImportPlayersServiceDown() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	suite.useExtractor(fakeExtractor{err: ai.ErrService}, nil)

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/import/players", v1.ImportEditable{
		Text: "1 GK Jan Kowalski 82 27 Poland",
	}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadGateway, &r)
}

func (suite *TestSuiteStandard) TestImportPlayersNoInput() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/import/players", v1.ImportEditable{Merge: true}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
