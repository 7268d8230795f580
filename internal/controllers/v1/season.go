package v1

import (
	"strconv"
	"time"

	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/httputil"
	"github.com/dugout-app/backend/internal/money"
	"github.com/gin-gonic/gin"
)

// RegisterSeasonRoutes registers the season advance and budget edit routes
// with the RouterGroup that is passed.
func (co Controller) RegisterSeasonRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/advance-season", httputil.OptionsPost)
	r.POST("/advance-season", co.AdvanceSeason)

	r.OPTIONS("/budgets", httputil.OptionsPatch)
	r.PATCH("/budgets", co.UpdateBudgets)
}

// withCareer runs fn against the current career and replaces it with the
// result. Requests without a career get a 404.
func (co Controller) withCareer(c *gin.Context, fn func(career.Career) (career.Career, error)) {
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

	next, err := fn(*current)
	if err != nil {
		careerError(c, err)
		return
	}

	s.Replace(&next)
	careerOK(c, next)
}

// @Summary		Advance season
// @Description	Moves the career into the next season: players age by one year, the transfer ledger is emptied and the budget history restarts.
// @Tags			Career
// @Produce		json
// @Success		200	{object}	CareerResponse
// @Failure		400	{object}	CareerResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	CareerResponse
// @Router			/v1/career/advance-season [post]
func (co Controller) AdvanceSeason(c *gin.Context) {
	co.withCareer(c, func(current career.Career) (career.Career, error) {
		return current.AdvanceSeason(time.Now().In(time.UTC))
	})
}

// BudgetsEditable updates one or both budgets. Amounts are raw user input,
// all non-digits are stripped before parsing.
type BudgetsEditable struct {
	TransferBudget *string                 `json:"transferBudget,omitempty" example:"50,000,000"`
	WageBudget     *string                 `json:"wageBudget,omitempty" example:"520,000"`
	WageUnit       *career.WageDisplayMode `json:"wageUnit,omitempty" example:"yearly"` // Unit the wage budget was entered in
}

// @Summary		Update budgets
// @Description	Updates the transfer and/or wage budget. A yearly wage input is converted to the canonical weekly figure.
// @Tags			Career
// @Accept			json
// @Produce		json
// @Success		200		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CareerResponse
// @Param			budgets	body		BudgetsEditable	true	"Budgets"
// @Router			/v1/career/budgets [patch]
func (co Controller) UpdateBudgets(c *gin.Context) {
	var editable BudgetsEditable
	if err := httputil.BindData(c, &editable); err != nil {
		careerError(c, err)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		if editable.TransferBudget != nil {
			amount, err := parseAmount(*editable.TransferBudget)
			if err != nil {
				return career.Career{}, err
			}
			current = current.SetTransferBudget(amount)
		}

		if editable.WageBudget != nil {
			amount, err := parseAmount(*editable.WageBudget)
			if err != nil {
				return career.Career{}, err
			}

			unit := career.WageWeekly
			if editable.WageUnit != nil {
				unit = *editable.WageUnit
			}

			current = current.SetWageBudget(amount, unit)
		}

		return current, nil
	})
}

// parseAmount turns grouped or decorated user input into an integer
// amount.
func parseAmount(input string) (int64, error) {
	cleaned := money.CleanNumberInput(input)
	if cleaned == "" {
		return 0, httputil.ErrInvalidBody
	}

	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, httputil.ErrInvalidBody
	}

	return amount, nil
}
