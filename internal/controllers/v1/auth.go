package v1

import (
	"net/http"
	"strings"

	"github.com/dugout-app/backend/internal/httputil"
	"github.com/dugout-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)

	r.OPTIONS("/logout", httputil.OptionsPost)
	r.POST("/logout", co.RequireAuth(), co.Logout)

	r.OPTIONS("/nickname", httputil.OptionsPatch)
	r.PATCH("/nickname", co.RequireAuth(), co.UpdateNickname)
}

// CredentialsEditable are the sign-up and sign-in parameters.
type CredentialsEditable struct {
	Email    string `json:"email" example:"manager@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
	Nickname string `json:"nickname" example:"The Gaffer"` // Only used on registration
}

type TokenResponse struct {
	Data  *Token  `json:"data"`
	Error *string `json:"error" example:"email or password is incorrect"`
}

type Token struct {
	Token    string `json:"token" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Nickname string `json:"nickname" example:"The Gaffer"`
}

// @Summary		Register account
// @Description	Creates a new account and signs it in
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		500			{object}	TokenResponse
// @Param			credentials	body		CredentialsEditable	true	"Credentials"
// @Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var credentials CredentialsEditable
	if err := httputil.BindData(c, &credentials); err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{Error: &e})
		return
	}

	a := models.Account{Email: credentials.Email, Nickname: credentials.Nickname}
	if err := a.SetPassword(credentials.Password); err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{Error: &e})
		return
	}

	if err := models.DB.Create(&a).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{Error: &e})
		return
	}

	authSession, err := models.SignIn(credentials.Email, credentials.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{Error: &e})
		return
	}

	if _, err := co.Sessions.Start(a.ID); err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Data: &Token{
		Token:    authSession.ID.String(),
		Nickname: a.Nickname,
	}})
}

// @Summary		Sign in
// @Description	Verifies the credentials and returns a bearer token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		401			{object}	TokenResponse
// @Param			credentials	body		CredentialsEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var credentials CredentialsEditable
	if err := httputil.BindData(c, &credentials); err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{Error: &e})
		return
	}

	authSession, err := models.SignIn(credentials.Email, credentials.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{Error: &e})
		return
	}

	if _, err := co.Sessions.Start(authSession.AccountID); err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Data: &Token{
		Token:    authSession.ID.String(),
		Nickname: authSession.Account.Nickname,
	}})
}

// @Summary		Sign out
// @Description	Invalidates the bearer token and clears the live session. The stored document is untouched.
// @Tags			Auth
// @Success		204
// @Failure		401	{object}	httpError
// @Router			/v1/auth/logout [post]
func (co Controller) Logout(c *gin.Context) {
	a := account(c)

	token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := models.SignOut(token); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	co.Sessions.End(a.ID)
	c.Status(http.StatusNoContent)
}

// NicknameEditable is the display name update payload.
type NicknameEditable struct {
	Nickname string `json:"nickname" example:"The Gaffer"`
}

// @Summary		Update nickname
// @Description	Updates the display name of the account and its document
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		401			{object}	TokenResponse
// @Param			nickname	body		NicknameEditable	true	"Nickname"
// @Router			/v1/auth/nickname [patch]
func (co Controller) UpdateNickname(c *gin.Context) {
	var editable NicknameEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	a := account(c)
	if err := models.DB.Model(&a).Update("nickname", editable.Nickname).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	s, err := co.session(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}
	s.SetNickname(editable.Nickname)

	c.JSON(http.StatusOK, TokenResponse{Data: &Token{Nickname: editable.Nickname}})
}
