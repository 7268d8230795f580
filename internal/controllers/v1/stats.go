package v1

import (
	"net/http"

	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/httputil"
	"github.com/dugout-app/backend/internal/money"
	"github.com/gin-gonic/gin"
)

// All figures are displayed in Euro, matching the save data.
const currencySymbol = "€"

// RegisterStatsRoutes registers the read-only statistics routes with the
// RouterGroup that is passed.
func (co Controller) RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/stats", httputil.OptionsGet)
	r.GET("/stats", co.GetStats)

	r.OPTIONS("/budget-history", httputil.OptionsGet)
	r.GET("/budget-history", co.GetBudgetHistory)
}

// StatsResponse is the aggregate view of the active squad together with
// the most recent transfer and ready-to-display budget figures.
type StatsResponse struct {
	Data Stats `json:"data"`
}

type Stats struct {
	Squad             career.SquadStats   `json:"squad"`
	LatestTransaction *career.Transaction `json:"latestTransaction"`
	TransferBudget    string              `json:"transferBudget" example:"€100.0M"`
	WageBudget        string              `json:"wageBudget" example:"€1.0M"`
}

// BudgetHistoryResponse is the list of budget snapshots for the current
// season, in chronological order.
type BudgetHistoryResponse struct {
	Data []career.BudgetPoint `json:"data"`
}

// @Summary		Squad statistics
// @Description	Returns aggregates over the active squad. Loaned out players are excluded from every figure.
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/career/stats [get]
func (co Controller) GetStats(c *gin.Context) {
	s, err := co.session(c)
	if err != nil {
		careerError(c, err)
		return
	}

	current := s.Career()
	if current == nil {
		careerError(c, errNoCareer)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Data: Stats{
		Squad:             current.Stats(),
		LatestTransaction: current.LatestTransaction(),
		TransferBudget:    money.Format(current.TransferBudget, currencySymbol),
		WageBudget:        money.Format(current.WageBudget, currencySymbol),
	}})
}

// @Summary		Budget history
// @Description	Returns the budget snapshots recorded since the season started. A trend needs at least two points.
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	BudgetHistoryResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/career/budget-history [get]
func (co Controller) GetBudgetHistory(c *gin.Context) {
	s, err := co.session(c)
	if err != nil {
		careerError(c, err)
		return
	}

	current := s.Career()
	if current == nil {
		careerError(c, errNoCareer)
		return
	}

	points, err := current.TrendPoints()
	if err != nil {
		careerError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetHistoryResponse{Data: points})
}
