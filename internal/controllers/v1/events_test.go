package v1_test

import (
	"net/http"

	v1 "github.com/dugout-app/backend/internal/controllers/v1"
	"github.com/dugout-app/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSeasonalEventCap() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	for _, text := range []string{"Derby week", "Injury crisis", "Winter break"} {
		r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/events/seasonal", v1.EventEditable{Text: text}, headers)
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
	}

	// The fourth event does not fit on the board
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/events/seasonal", v1.EventEditable{Text: "One too many"}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	// Removing one frees a slot
	r = test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1/career/events/seasonal/1", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CareerResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"Derby week", "Winter break"}, response.Data.SeasonalEvents)

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/career/events/seasonal", v1.EventEditable{Text: "Cup final"}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
}

func (suite *TestSuiteStandard) TestPreMatchEvent() {
	headers := suite.register("gaffer@example.com")
	_ = suite.createTestCareer(headers, defaultSetup())

	r := test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/career/events/prematch", v1.EventEditable{Text: "Captain suspended"}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	// Setting again replaces, there is only ever one pre-match note
	r = test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/career/events/prematch", v1.EventEditable{Text: "Keeper is back"}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CareerResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"Keeper is back"}, response.Data.PreMatchEvents)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1/career/events/prematch", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data.PreMatchEvents)

	// Clearing an empty board is fine
	r = test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1/career/events/prematch", "", headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
}
