package controller

import (
	"net/http"

	"quote-hunt/catalog"
	"quote-hunt/web/service"

	"github.com/gin-gonic/gin"
)

// RegisterForm is the registration request body.
type RegisterForm struct {
	Username string `json:"username" form:"username"`
}

// CollectForm is the record-collection request body. The catalog snapshot is
// resolved server-side from the location id; clients cannot supply their own
// quote text.
type CollectForm struct {
	Username   string `json:"username" form:"username"`
	LocationId string `json:"locationId" form:"locationId"`
}

// HuntController handles the public visitor API: registration, collection
// listing, the reveal existence probe, and recording a collection.
type HuntController struct {
	userService       service.UserService
	collectionService service.CollectionService

	catalog *catalog.Catalog
}

// NewHuntController creates a new HuntController and initializes its routes.
func NewHuntController(g *gin.RouterGroup, cat *catalog.Catalog) *HuntController {
	a := &HuntController{catalog: cat}
	a.initRouter(g)
	return a
}

func (a *HuntController) initRouter(g *gin.RouterGroup) {
	g.POST("/users/register", a.register)
	g.GET("/collection", a.list)
	g.POST("/collection", a.collect)
	g.GET("/collection/exists", a.exists)
	g.GET("/locations", a.locations)
}

// register performs the idempotent username registration. Re-registering an
// existing name returns the original record.
func (a *HuntController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "register.invalidFormData"))
		return
	}

	user, err := a.userService.Register(form.Username)
	if err != nil {
		if service.IsValidationError(err) {
			pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "register.usernameTooShort"))
			return
		}
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}

	jsonObj(c, gin.H{
		"username":     user.Username,
		"registeredAt": user.RegisteredAt,
	}, nil)
}

// collect records a collection for (username, locationId). A repeat scan
// returns created=false, which is the expected outcome, not a failure.
func (a *HuntController) collect(c *gin.Context) {
	var form CollectForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "collection.missingFields"))
		return
	}

	snap, ok := a.catalog.Snapshot(form.LocationId, clientLang(c))
	if !ok {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "collection.unknownLocation"))
		return
	}

	result, err := a.collectionService.Record(form.Username, form.LocationId, snap)
	if err != nil {
		if service.IsValidationError(err) {
			pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "collection.missingFields"))
			return
		}
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}

	msg := I18nWeb(c, "collection.collected")
	if !result.Created {
		msg = I18nWeb(c, "collection.alreadyCollected")
	}
	jsonMsgObj(c, msg, result, nil)
}

// exists is the pure existence probe used before the reveal animation.
func (a *HuntController) exists(c *gin.Context) {
	username := c.Query("username")
	locationId := c.Query("locationId")
	if len(username) < 2 || locationId == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "collection.missingFields"))
		return
	}

	exists, err := a.collectionService.Exists(username, locationId)
	if err != nil {
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}
	jsonObj(c, gin.H{"exists": exists}, nil)
}

// list returns the user's collection ordered by collection time.
func (a *HuntController) list(c *gin.Context) {
	username := c.Query("username")
	if len(username) < 2 {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "register.usernameTooShort"))
		return
	}

	items, err := a.collectionService.ListByUser(username)
	if err != nil {
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}
	jsonObj(c, items, nil)
}

// locations returns the localized catalog listing.
func (a *HuntController) locations(c *gin.Context) {
	lang := clientLang(c)
	jsonObj(c, gin.H{
		"gameTitle":       a.catalog.GameTitle.Get(lang),
		"gameDescription": a.catalog.GameDescription.Get(lang),
		"locations":       a.catalog.Summaries(lang),
		"total":           a.catalog.Count(),
	}, nil)
}
