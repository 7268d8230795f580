package v1

import (
	"strconv"

	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterTrophyRoutes registers the trophy cabinet routes with the
// RouterGroup that is passed.
func (co Controller) RegisterTrophyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.AddTrophy)

	r.OPTIONS("/:index", httputil.OptionsDelete)
	r.DELETE("/:index", co.RemoveTrophy)
}

// TrophyEditable represents a trophy to add to the cabinet.
type TrophyEditable struct {
	Name string `json:"name" example:"Champions League 2026/2027"`
}

// @Summary		Add trophy
// @Description	Appends a trophy to the cabinet.
// @Tags			Trophies
// @Accept			json
// @Produce		json
// @Success		200		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CareerResponse
// @Param			trophy	body		TrophyEditable	true	"Trophy"
// @Router			/v1/career/trophies [post]
func (co Controller) AddTrophy(c *gin.Context) {
	var editable TrophyEditable
	if err := httputil.BindData(c, &editable); err != nil {
		careerError(c, err)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		return current.AddTrophy(editable.Name), nil
	})
}

// @Summary		Remove trophy
// @Description	Removes the trophy at the index from the cabinet.
// @Tags			Trophies
// @Produce		json
// @Success		200		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CareerResponse
// @Param			index	path		int	true	"Index of the trophy"
// @Router			/v1/career/trophies/{index} [delete]
func (co Controller) RemoveTrophy(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		careerError(c, career.ErrIndexOutOfRange)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		return current.RemoveTrophy(index)
	})
}
