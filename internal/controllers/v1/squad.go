package v1

import (
	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/httputil"
	dugout_uuid "github.com/dugout-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterSquadRoutes registers the roster routes with the RouterGroup
// that is passed.
func (co Controller) RegisterSquadRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.AddPlayers)

	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", co.RemovePlayer)
}

// PlayerEditable represents all user configurable parameters of a player.
// The ID is always generated server-side.
type PlayerEditable struct {
	Name        string `json:"name" example:"Jan Kowalski"`
	Position    string `json:"position" example:"GK"`
	Age         int    `json:"age" example:"27"`
	Overall     int    `json:"overall" example:"82"`
	Nationality string `json:"nationality" example:"Poland"`
	Value       int64  `json:"value" example:"12000000"`
	Wage        int64  `json:"wage" example:"45000"`
	IsHomegrown bool   `json:"isHomegrown" example:"false"`
	IsNonEU     bool   `json:"isNonEU" example:"false"`
	IsOnLoan    bool   `json:"isOnLoan" example:"false"`
}

func (editable PlayerEditable) model() (career.Player, error) {
	if !career.ValidPosition(editable.Position) {
		return career.Player{}, career.ErrInvalidPosition
	}

	return career.Player{
		ID:          uuid.New(),
		Name:        editable.Name,
		Position:    editable.Position,
		Age:         editable.Age,
		Overall:     editable.Overall,
		Nationality: editable.Nationality,
		Value:       editable.Value,
		Wage:        editable.Wage,
		IsHomegrown: editable.IsHomegrown,
		IsNonEU:     editable.IsNonEU,
		IsOnLoan:    editable.IsOnLoan,
	}, nil
}

// @Summary		Add players
// @Description	Appends players to the roster. Duplicate names are allowed, the generated ID is the unique key.
// @Tags			Squad
// @Accept			json
// @Produce		json
// @Success		200		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CareerResponse
// @Param			players	body		[]PlayerEditable	true	"Players"
// @Router			/v1/career/players [post]
func (co Controller) AddPlayers(c *gin.Context) {
	var editables []PlayerEditable
	if err := httputil.BindData(c, &editables); err != nil {
		careerError(c, err)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		players := make([]career.Player, 0, len(editables))
		for _, editable := range editables {
			player, err := editable.model()
			if err != nil {
				return career.Career{}, err
			}
			players = append(players, player)
		}

		return current.AddPlayers(players...), nil
	})
}

// @Summary		Remove player
// @Description	Releases the player with the ID from the roster. Must be confirmed with the confirm parameter.
// @Tags			Squad
// @Produce		json
// @Success		200		{object}	CareerResponse
// @Failure		400		{object}	CareerResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CareerResponse
// @Param			id		path		string	true	"ID of the player"
// @Param			confirm	query		string	false	"Confirmation, must be 'yes-i-am-sure'"
// @Router			/v1/career/players/{id} [delete]
func (co Controller) RemovePlayer(c *gin.Context) {
	var uri struct {
		ID dugout_uuid.UUID `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		careerError(c, httputil.ErrInvalidUUID)
		return
	}

	if c.Query("confirm") != confirmValue {
		careerError(c, errConfirmation)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		return current.RemovePlayer(uri.ID.UUID)
	})
}
