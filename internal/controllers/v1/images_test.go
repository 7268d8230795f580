package v1_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	v1 "github.com/dugout-app/backend/internal/controllers/v1"
	"github.com/dugout-app/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

// imageUpload builds a multipart body holding a generated PNG.
func imageUpload(suite *TestSuiteStandard, width, height int, contentType string) (*bytes.Buffer, map[string]string) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var file bytes.Buffer
	if err := png.Encode(&file, img); err != nil {
		assert.FailNow(suite.T(), err.Error())
	}

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="upload.png"`)
	header.Set("Content-Type", contentType)

	w, err := mw.CreatePart(header)
	if err != nil {
		assert.FailNow(suite.T(), err.Error())
	}
	if _, err := w.Write(file.Bytes()); err != nil {
		assert.FailNow(suite.T(), err.Error())
	}
	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

func (suite *TestSuiteStandard) TestUploadAvatar() {
	headers := suite.register("gaffer@example.com")

	body, fileHeaders := imageUpload(suite, 600, 400, "image/png")
	for k, v := range headers {
		fileHeaders[k] = v
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/images?kind=avatar", body, fileHeaders)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.ImageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), strings.HasPrefix(response.Data, "data:image/jpeg;base64,"))
}

func (suite *TestSuiteStandard) TestUploadLogoKeepsPNG() {
	headers := suite.register("gaffer@example.com")

	body, fileHeaders := imageUpload(suite, 100, 100, "image/png")
	for k, v := range headers {
		fileHeaders[k] = v
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/images?kind=logo", body, fileHeaders)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.ImageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), strings.HasPrefix(response.Data, "data:image/png;base64,"))
}

func (suite *TestSuiteStandard) TestUploadImageErrors() {
	headers := suite.register("gaffer@example.com")

	suite.Run("Unknown kind", func() {
		body, fileHeaders := imageUpload(suite, 10, 10, "image/png")
		for k, v := range headers {
			fileHeaders[k] = v
		}

		r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/images?kind=banner", body, fileHeaders)
		test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	})

	suite.Run("Wrong content type", func() {
		body, fileHeaders := imageUpload(suite, 10, 10, "application/pdf")
		for k, v := range headers {
			fileHeaders[k] = v
		}

		r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/images?kind=avatar", body, fileHeaders)
		test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	})

	suite.Run("No file", func() {
		r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/images?kind=avatar", "", headers)
		test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
	})
}
