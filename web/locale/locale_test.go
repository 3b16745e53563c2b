package locale

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var testTranslations = fstest.MapFS{
	"translation/en-US.toml": &fstest.MapFile{Data: []byte(`"fail" = "Failed"`)},
	"translation/hu-HU.toml": &fstest.MapFile{Data: []byte(`"fail" = "Sikertelen"`)},
}

func newLocaleRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	assert.NoError(t, InitLocalizer(testTranslations))

	engine := gin.New()
	engine.Use(LocalizerMiddleware())
	engine.GET("/msg", func(c *gin.Context) {
		anyfunc, _ := c.Get("I18n")
		i18nFunc, _ := anyfunc.(func(key string, params ...string) string)
		c.String(http.StatusOK, i18nFunc("fail"))
	})
	return engine
}

func localizedMsg(engine *gin.Engine, lang string) string {
	req := httptest.NewRequest(http.MethodGet, "/msg", nil)
	req.Header.Set("Accept-Language", lang)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Body.String()
}

func TestLocalizedMessage(t *testing.T) {
	engine := newLocaleRouter(t)

	assert.Equal(t, "Failed", localizedMsg(engine, "en-US"))
	assert.Equal(t, "Sikertelen", localizedMsg(engine, "hu-HU"))
	// Unknown languages resolve to the bundle default.
	assert.Equal(t, "Failed", localizedMsg(engine, "de-DE"))
}

func TestConcurrentRequestsKeepTheirLanguage(t *testing.T) {
	engine := newLocaleRouter(t)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		lang, want := "en-US", "Failed"
		if i%2 == 1 {
			lang, want = "hu-HU", "Sikertelen"
		}
		wg.Add(1)
		go func(lang, want string) {
			defer wg.Done()
			assert.Equal(t, want, localizedMsg(engine, lang))
		}(lang, want)
	}
	wg.Wait()
}
