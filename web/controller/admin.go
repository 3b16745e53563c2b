package controller

import (
	"errors"
	"net/http"
	"strconv"

	"quote-hunt/catalog"
	"quote-hunt/logger"
	"quote-hunt/web/service"
	"quote-hunt/web/session"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// LoginForm is the admin login request body.
type LoginForm struct {
	Password string `json:"password" form:"password"`
}

// AdminController handles admin authentication and the gated aggregate,
// reset, QR and status endpoints.
type AdminController struct {
	BaseController

	settingService    service.SettingService
	collectionService service.CollectionService
	serverService     service.ServerService

	catalog *catalog.Catalog
}

// NewAdminController creates a new AdminController and initializes its routes.
func NewAdminController(g *gin.RouterGroup, cat *catalog.Catalog) *AdminController {
	a := &AdminController{catalog: cat}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
	g.GET("/session", a.session)

	gated := g.Group("")
	gated.Use(a.checkAdmin)
	gated.GET("/stats", a.stats)
	gated.GET("/collections", a.collections)
	gated.DELETE("/collections", a.reset)
	gated.GET("/qrcode", a.qrcode)
	gated.GET("/server/status", a.status)
	gated.GET("/server/logs", a.logs)
}

// login checks the admin password and stores a freshly minted token in the
// session cookie.
func (a *AdminController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "admin.login.invalidFormData"))
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "admin.login.emptyPassword"))
		return
	}

	token, err := a.adminService.Login(form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordNotSet):
			pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "admin.login.notConfigured"))
		case errors.Is(err, service.ErrInvalidPassword):
			logger.Warningf("wrong admin password, IP: %q", getRemoteIp(c))
			pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "admin.login.wrongPassword"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("Unable to get session's max age from DB")
	}
	if err := session.SetAdminToken(c, token, sessionMaxAge*60); err != nil {
		logger.Warning("Unable to save session: ", err)
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}

	logger.Infof("admin logged in successfully, IP: %s", getRemoteIp(c))
	jsonMsgObj(c, I18nWeb(c, "admin.login.success"), gin.H{"authenticated": true}, nil)
}

// logout clears the admin session.
func (a *AdminController) logout(c *gin.Context) {
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	jsonObj(c, gin.H{"authenticated": false}, nil)
}

// session reports whether the current session token is still valid.
func (a *AdminController) session(c *gin.Context) {
	token := session.GetAdminToken(c)
	jsonObj(c, gin.H{"authenticated": a.adminService.Validate(token)}, nil)
}

// stats returns the ledger-derived aggregate counters.
func (a *AdminController) stats(c *gin.Context) {
	statistics, err := a.collectionService.Statistics()
	if err != nil {
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}
	jsonObj(c, statistics, nil)
}

// collections returns all entries grouped per user, ranked by count.
func (a *AdminController) collections(c *gin.Context) {
	summaries, err := a.collectionService.GroupedByUser()
	if err != nil {
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}
	jsonObj(c, summaries, nil)
}

// reset wipes the ledger and all users. Irreversible.
func (a *AdminController) reset(c *gin.Context) {
	err := a.collectionService.Clear()
	jsonMsg(c, I18nWeb(c, "admin.resetDone"), err)
}

// qrcode renders a printable QR code PNG pointing at the public location URL.
func (a *AdminController) qrcode(c *gin.Context) {
	locationId := c.Query("locationId")
	if _, ok := a.catalog.Get(locationId); !ok {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "collection.unknownLocation"))
		return
	}

	size := 256
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v >= 64 && v <= 1024 {
		size = v
	}

	publicURL, err := a.settingService.GetPublicURL()
	if err != nil {
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}

	png, err := qrcode.Encode(publicURL+"/location?id="+locationId, qrcode.Medium, size)
	if err != nil {
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// status returns process and host health.
func (a *AdminController) status(c *gin.Context) {
	jsonObj(c, a.serverService.GetStatus(), nil)
}

// logs returns recent log entries for the panel log viewer, newest first.
func (a *AdminController) logs(c *gin.Context) {
	count := 50
	if v, err := strconv.Atoi(c.Query("count")); err == nil && v > 0 && v <= 500 {
		count = v
	}
	level := c.DefaultQuery("level", "info")
	jsonObj(c, a.serverService.GetLogs(count, level), nil)
}
