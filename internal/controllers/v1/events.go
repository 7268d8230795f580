package v1

import (
	"strconv"

	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterEventRoutes registers the event board routes with the RouterGroup
// that is passed.
func (co Controller) RegisterEventRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/seasonal", httputil.OptionsPost)
	r.POST("/seasonal", co.AddSeasonalEvent)

	r.OPTIONS("/seasonal/:index", httputil.OptionsDelete)
	r.DELETE("/seasonal/:index", co.RemoveSeasonalEvent)

	r.OPTIONS("/prematch", httputil.OptionsPutDelete)
	r.PUT("/prematch", co.SetPreMatchEvent)
	r.DELETE("/prematch", co.ClearPreMatchEvent)
}

// EventEditable represents an event note.
type EventEditable struct {
	Text string `json:"text" example:"Board expects a top four finish"`
}

// @Summary		Add seasonal event
// @Description	Appends a seasonal event note. At most three notes can be active at once, adding a fourth fails.
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		200		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CareerResponse
// @Param			event	body		EventEditable	true	"Event"
// @Router			/v1/career/events/seasonal [post]
func (co Controller) AddSeasonalEvent(c *gin.Context) {
	var editable EventEditable
	if err := httputil.BindData(c, &editable); err != nil {
		careerError(c, err)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		return current.AddSeasonalEvent(editable.Text)
	})
}

// @Summary		Remove seasonal event
// @Description	Removes the seasonal event note at the index.
// @Tags			Events
// @Produce		json
// @Success		200		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CareerResponse
// @Param			index	path		int	true	"Index of the event"
// @Router			/v1/career/events/seasonal/{index} [delete]
func (co Controller) RemoveSeasonalEvent(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		careerError(c, career.ErrIndexOutOfRange)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		return current.RemoveSeasonalEvent(index)
	})
}

// @Summary		Set pre-match event
// @Description	Sets the pre-match event note. An existing note is replaced, there is only ever one.
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		200		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CareerResponse
// @Param			event	body		EventEditable	true	"Event"
// @Router			/v1/career/events/prematch [put]
func (co Controller) SetPreMatchEvent(c *gin.Context) {
	var editable EventEditable
	if err := httputil.BindData(c, &editable); err != nil {
		careerError(c, err)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		return current.SetPreMatchEvent(editable.Text), nil
	})
}

// @Summary		Clear pre-match event
// @Description	Clears the pre-match event note. Clearing when no note is set is not an error.
// @Tags			Events
// @Produce		json
// @Success		200	{object}	CareerResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	CareerResponse
// @Router			/v1/career/events/prematch [delete]
func (co Controller) ClearPreMatchEvent(c *gin.Context) {
	co.withCareer(c, func(current career.Career) (career.Career, error) {
		return current.ClearPreMatchEvent(), nil
	})
}
