package v1

import (
	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/httputil"
	dugout_uuid "github.com/dugout-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterMarketRoutes registers the transfer market routes with the
// RouterGroup that is passed.
func (co Controller) RegisterMarketRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/buy", httputil.OptionsPost)
	r.POST("/buy", co.BuyPlayer)

	r.OPTIONS("/sell", httputil.OptionsPost)
	r.POST("/sell", co.SellPlayer)
}

// BuyEditable represents an incoming transfer.
type BuyEditable struct {
	Player PlayerEditable `json:"player"`
	Fee    int64          `json:"fee" example:"25000000"`
}

// SellEditable represents an outgoing transfer.
type SellEditable struct {
	ID  dugout_uuid.UUID `json:"id"`
	Fee int64            `json:"fee" example:"8000000"`
}

// @Summary		Buy player
// @Description	Signs a player. The fee is deducted from the transfer budget and a buy transaction is appended to the ledger.
// @Tags			Market
// @Accept			json
// @Produce		json
// @Success		200			{object}	CareerResponse
// @Failure		400			{object}	CareerResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	CareerResponse
// @Param			transfer	body		BuyEditable	true	"Transfer"
// @Router			/v1/career/market/buy [post]
func (co Controller) BuyPlayer(c *gin.Context) {
	var editable BuyEditable
	if err := httputil.BindData(c, &editable); err != nil {
		careerError(c, err)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		player, err := editable.Player.model()
		if err != nil {
			return career.Career{}, err
		}

		return current.Buy(player, editable.Fee)
	})
}

// @Summary		Sell player
// @Description	Releases a player for a fee. The fee is added to the transfer budget and a sell transaction is appended to the ledger.
// @Tags			Market
// @Accept			json
// @Produce		json
// @Success		200			{object}	CareerResponse
// @Failure		400			{object}	CareerResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	CareerResponse
// @Param			transfer	body		SellEditable	true	"Transfer"
// @Router			/v1/career/market/sell [post]
func (co Controller) SellPlayer(c *gin.Context) {
	var editable SellEditable
	if err := httputil.BindData(c, &editable); err != nil {
		careerError(c, err)
		return
	}

	co.withCareer(c, func(current career.Career) (career.Career, error) {
		return current.Sell(editable.ID.UUID, editable.Fee)
	})
}
