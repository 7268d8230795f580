package v1

import (
	"net/http"
	"time"

	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterCareerRoutes registers the routes for the career document with
// the RouterGroup that is passed.
func (co Controller) RegisterCareerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPostPutDelete)
	r.GET("", co.GetCareer)
	r.POST("", co.CreateCareer)
	r.PUT("", co.ReplaceCareer)
	r.DELETE("", co.DeleteCareer)
}

// CareerSetup is the setup wizard payload that creates a career.
type CareerSetup struct {
	ManagerName    string `json:"managerName" example:"Alex Hunter"`
	TeamName       string `json:"teamName" example:"FC Example"`
	TeamLogo       string `json:"teamLogo,omitempty"`                // Optional logo data URL
	TransferBudget int64  `json:"transferBudget" example:"50000000"` // In whole currency units
	WageBudget     int64  `json:"wageBudget" example:"850000"`       // Weekly
	Season         string `json:"season" example:"2024/2025"`        // Starting season
}

type CareerResponse struct {
	Data  *career.Career `json:"data"`
	Error *string        `json:"error" example:"there is no career for this account yet"`
}

// ok responds with the career value.
func careerOK(c *gin.Context, value career.Career) {
	c.JSON(http.StatusOK, CareerResponse{Data: &value})
}

// careerError responds with the error for the career endpoints.
func careerError(c *gin.Context, err error) {
	e := err.Error()
	c.JSON(status(err), CareerResponse{Error: &e})
}

// @Summary		Get career
// @Description	Returns the career of the authenticated account
// @Tags			Career
// @Produce		json
// @Success		200	{object}	CareerResponse
// @Failure		404	{object}	CareerResponse
// @Failure		401	{object}	httpError
// @Router			/v1/career [get]
func (co Controller) GetCareer(c *gin.Context) {
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

	careerOK(c, *current)
}

// @Summary		Create career
// @Description	Creates the career from the setup wizard data. Fails when a career already exists.
// @Tags			Career
// @Accept			json
// @Produce		json
// @Success		201		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Param			setup	body		CareerSetup	true	"Setup"
// @Router			/v1/career [post]
func (co Controller) CreateCareer(c *gin.Context) {
	var setup CareerSetup
	if err := httputil.BindData(c, &setup); err != nil {
		careerError(c, err)
		return
	}

	s, err := co.session(c)
	if err != nil {
		careerError(c, err)
		return
	}

	if s.Career() != nil {
		careerError(c, errCareerExists)
		return
	}

	created, err := career.New(setup.ManagerName, setup.TeamName, setup.TeamLogo, setup.TransferBudget, setup.WageBudget, setup.Season, time.Now().In(time.UTC))
	if err != nil {
		careerError(c, err)
		return
	}

	s.Replace(&created)
	c.JSON(http.StatusCreated, CareerResponse{Data: &created})
}

// @Summary		Replace career
// @Description	Replaces the whole career value. Views always send complete replacement objects.
// @Tags			Career
// @Accept			json
// @Produce		json
// @Success		200		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Param			career	body		career.Career	true	"Career"
// @Router			/v1/career [put]
func (co Controller) ReplaceCareer(c *gin.Context) {
	var next career.Career
	if err := httputil.BindData(c, &next); err != nil {
		careerError(c, err)
		return
	}

	if _, err := career.ParseSeason(next.Season); err != nil {
		careerError(c, err)
		return
	}

	s, err := co.session(c)
	if err != nil {
		careerError(c, err)
		return
	}

	s.Replace(&next)
	careerOK(c, next)
}

// @Summary		Delete career
// @Description	Deletes the career. Must be confirmed with the confirm parameter.
// @Tags			Career
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation, must be 'yes-i-am-sure'"
// @Router			/v1/career [delete]
func (co Controller) DeleteCareer(c *gin.Context) {
	if c.Query("confirm") != confirmValue {
		c.JSON(http.StatusBadRequest, httpError{Error: errConfirmation.Error()})
		return
	}

	s, err := co.session(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	s.Replace(nil)
	c.Status(http.StatusNoContent)
}
