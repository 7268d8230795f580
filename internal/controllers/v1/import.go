package v1

import (
	"net/http"

	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterImportRoutes registers the AI import routes with the RouterGroup
// that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/players", httputil.OptionsPost)
	r.POST("/players", co.ImportPlayers)
}

// ImportEditable is the input for a squad import. Exactly one of Text and
// Image must be set. Image is base64 encoded JSON-side.
type ImportEditable struct {
	Text     string `json:"text,omitempty" example:"1 GK Jan Kowalski 82 27 Poland"`
	Image    []byte `json:"image,omitempty" swaggertype:"string" format:"base64"`
	MimeType string `json:"mimeType,omitempty" example:"image/png"`
	Merge    bool   `json:"merge" example:"true"`
}

// ImportResponse returns the extracted players. An empty list with no error
// means the model found no recognizable squad data in the input.
type ImportResponse struct {
	Data []career.Player `json:"data"`
}

// @Summary		Import players
// @Description	Extracts a squad roster from pasted text or a screenshot via the AI model. With merge set, the extracted players are appended to the roster, otherwise they are only returned for review.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		200		{object}	ImportResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CareerResponse
// @Failure		412		{object}	httpError	"No AI credential is configured"
// @Failure		502		{object}	httpError
// @Param			import	body		ImportEditable	true	"Import input"
// @Router			/v1/import/players [post]
func (co Controller) ImportPlayers(c *gin.Context) {
	var editable ImportEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.Text == "" && len(editable.Image) == 0 {
		c.JSON(status(errNoImportInput), httpError{Error: errNoImportInput.Error()})
		return
	}

	extractor, err := co.NewExtractor(c.Request.Context())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var players []career.Player
	if editable.Text != "" {
		players, err = extractor.FromText(c.Request.Context(), editable.Text)
	} else {
		players, err = extractor.FromImage(c.Request.Context(), editable.Image, editable.MimeType)
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.Merge && len(players) > 0 {
		s, err := co.session(c)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		current := s.Career()
		if current == nil {
			careerError(c, errNoCareer)
			return
		}

		next := current.AddPlayers(players...)
		s.Replace(&next)
	}

	c.JSON(http.StatusOK, ImportResponse{Data: players})
}
