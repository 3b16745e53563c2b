// Package controller provides the HTTP handlers for the quote-hunt API and
// the admin panel endpoints.
package controller

import (
	"net/http"
	"strings"

	"quote-hunt/logger"
	"quote-hunt/web/service"
	"quote-hunt/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the admin gate check shared by gated controllers.
type BaseController struct {
	adminService service.AdminService
}

// checkAdmin is a middleware that validates the admin session token and
// rejects the request otherwise. Missing, malformed, and tampered tokens all
// fail closed.
func (a *BaseController) checkAdmin(c *gin.Context) {
	token := session.GetAdminToken(c)
	if !a.adminService.Validate(token) {
		pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "admin.loginAgain"))
		c.Abort()
		return
	}
	c.Next()
}

// I18nWeb retrieves a localized message for the current request.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	anyfunc, funcExists := c.Get("I18n")
	if !funcExists {
		logger.Warning("I18n function not exists in gin context!")
		return name
	}
	i18nFunc, _ := anyfunc.(func(key string, keyParams ...string) string)
	return i18nFunc(name, params...)
}

// clientLang returns the request language from the "lang" cookie, falling
// back to the primary Accept-Language subtag.
func clientLang(c *gin.Context) string {
	if cookie, err := c.Request.Cookie("lang"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	accept := c.GetHeader("Accept-Language")
	if accept == "" {
		return ""
	}
	lang := strings.SplitN(accept, ",", 2)[0]
	lang = strings.SplitN(lang, ";", 2)[0]
	lang = strings.SplitN(lang, "-", 2)[0]
	return strings.ToLower(strings.TrimSpace(lang))
}
