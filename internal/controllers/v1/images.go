package v1

import (
	"net/http"

	"github.com/dugout-app/backend/internal/httputil"
	"github.com/dugout-app/backend/internal/images"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterImageRoutes registers the image upload routes with the
// RouterGroup that is passed.
func (co Controller) RegisterImageRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.UploadImage)
}

// ImageResponse returns the normalized image as a data URL, ready to embed.
type ImageResponse struct {
	Data string `json:"data" example:"data:image/jpeg;base64,..."`
}

// @Summary		Upload image
// @Description	Normalizes an uploaded image. Avatars and logos are bounded thumbnails, scans keep enough resolution for the AI importer. Avatar uploads are also stored on the account document.
// @Tags			Images
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImageResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Param			file	formData	file	true	"Image file"
// @Param			kind	query		string	true	"avatar, logo or scan"
// @Router			/v1/images [post]
func (co Controller) UploadImage(c *gin.Context) {
	var opts images.Options
	switch c.Query("kind") {
	case "avatar":
		opts = images.Thumbnail(images.JPEG)
	case "logo":
		opts = images.Thumbnail(images.PNG)
	case "scan":
		opts = images.Scan()
	default:
		c.JSON(status(errUnknownImageKind), httpError{Error: errUnknownImageKind.Error()})
		return
	}

	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		c.JSON(status(errNoFilePost), httpError{Error: errNoFilePost.Error()})
		return
	}

	if !glob.Glob("image/*", formFile.Header.Get("Content-Type")) {
		c.JSON(status(errWrongFileType), httpError{Error: errWrongFileType.Error()})
		return
	}

	f, err := formFile.Open()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}
	defer f.Close()

	dataURL, err := images.Normalize(f, opts)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if c.Query("kind") == "avatar" {
		s, err := co.session(c)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
		s.SetAvatar(&dataURL)
	}

	c.JSON(http.StatusCreated, ImageResponse{Data: dataURL})
}
