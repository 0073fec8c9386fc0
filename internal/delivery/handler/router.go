package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure"
)

// Handlers bundles every route handler the server mounts.
type Handlers struct {
	Auth       *AuthHandler
	Users      *UserHandler
	Articles   *ArticleHandler
	Books      *BookHandler
	Sitemaps   *SitemapHandler
	Keywords   *KeywordHandler
	Generation *GenerationHandler
	Billing    *BillingHandler
}

// NewRouter wires the full route table onto a fresh echo instance. Session
// resolution runs on every request; RequireAuth guards the protected groups.
// The payment webhook stays outside the auth wall, it authenticates by
// signature instead.
func NewRouter(
	h Handlers,
	sessions *infrastructure.SessionService,
	redis *infrastructure.RedisService,
	log *zap.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(RequestLogger(log))
	e.Use(ResolveSession(sessions, redis))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/session", h.Auth.Session)

	user := api.Group("/user", RequireAuth())
	user.GET("/me", h.Users.Me)
	user.PUT("/keywords", h.Users.UpdateKeywords)
	user.GET("/credits", h.Users.GetCredits)
	user.POST("/credits", h.Users.AdjustCredits)

	articles := api.Group("/articles", RequireAuth())
	articles.GET("", h.Articles.List)
	articles.POST("", h.Articles.Create)
	articles.GET("/:id", h.Articles.Get)
	articles.PUT("/:id", h.Articles.Update)
	articles.DELETE("/:id", h.Articles.Delete)

	books := api.Group("/books", RequireAuth())
	books.GET("", h.Books.List)
	books.POST("", h.Books.Create)
	books.GET("/:id", h.Books.Get)
	books.PUT("/:id", h.Books.Update)
	books.DELETE("/:id", h.Books.Delete)

	books.GET("/:id/chapters", h.Books.ListChapters)
	books.POST("/:id/chapters", h.Books.CreateChapter)
	books.PUT("/:id/chapters/:chapterId", h.Books.UpdateChapter)
	books.DELETE("/:id/chapters/:chapterId", h.Books.DeleteChapter)

	books.GET("/:id/characters", h.Books.ListCharacters)
	books.POST("/:id/characters", h.Books.CreateCharacter)
	books.PUT("/:id/characters/:characterId", h.Books.UpdateCharacter)
	books.DELETE("/:id/characters/:characterId", h.Books.DeleteCharacter)

	books.GET("/:id/world-items", h.Books.ListWorldItems)
	books.POST("/:id/world-items", h.Books.CreateWorldItem)
	books.PUT("/:id/world-items/:itemId", h.Books.UpdateWorldItem)
	books.DELETE("/:id/world-items/:itemId", h.Books.DeleteWorldItem)

	books.POST("/:id/generate-chapters", h.Generation.GenerateOutlines)
	books.POST("/:id/chapters/:chapterId/generate", h.Generation.GenerateChapter)
	books.POST("/:id/chapters/:chapterId/polish", h.Generation.PolishChapter)

	sitemap := api.Group("/sitemap", RequireAuth())
	sitemap.GET("", h.Sitemaps.Get)
	sitemap.POST("", h.Sitemaps.Create)
	sitemap.PUT("", h.Sitemaps.Update)
	sitemap.DELETE("", h.Sitemaps.Delete)
	sitemap.POST("/scrape", h.Sitemaps.Scrape)

	keywords := api.Group("/keywords", RequireAuth())
	keywords.POST("/suggest", h.Keywords.Suggest)

	generate := api.Group("/generate", RequireAuth())
	generate.POST("", h.Generation.GenerateArticle)
	generate.POST("/refine", h.Generation.RefineBlock)

	billing := api.Group("/billing", RequireAuth())
	billing.POST("/checkout", h.Billing.CreateCheckout)

	api.POST("/webhooks/stripe", h.Billing.Webhook)

	return e
}
