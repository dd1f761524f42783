package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
	"github.com/digipants/quicksquad-api/internal/handler/http/middleware"
	"github.com/digipants/quicksquad-api/internal/infrastructure/config"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// Router wires handlers and middleware onto the gin engine.
type Router struct {
	blogHandler      *BlogHandler
	adminBlogHandler *AdminBlogHandler
	authHandler      *AuthHandler
	contactHandler   *ContactHandler
	chatHandler      *ChatHandler
	pageHandler      *PageHandler
	geoRouter        *middleware.GeoRouter
	adminGate        *middleware.AdminGate
}

func NewRouter(cfg *config.Config, blogUsecase usecasecontract.IBlogUseCase, contactUsecase usecasecontract.IContactUseCase, chatUsecase usecasecontract.IChatUseCase, logger usecasecontract.IAppLogger) *Router {
	return &Router{
		blogHandler:      NewBlogHandler(blogUsecase),
		adminBlogHandler: NewAdminBlogHandler(blogUsecase),
		authHandler:      NewAuthHandler(cfg.AdminSecret, cfg.Production, int(cfg.SessionMaxAge.Seconds()), logger),
		contactHandler:   NewContactHandler(contactUsecase),
		chatHandler:      NewChatHandler(chatUsecase),
		pageHandler:      NewPageHandler(cfg.DefaultCountry),
		geoRouter:        middleware.NewGeoRouter(cfg.DefaultCountry, cfg.GeoRewrite),
		adminGate:        middleware.NewAdminGate(cfg.AdminSecret),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", middleware.CountryHeaderName},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.Use(middleware.Metrics())
	router.Use(r.geoRouter.Handler(router))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) { c.String(200, "OK") })

	// Country landing pages; "/" is the rewrite source
	router.GET("/", r.pageHandler.HomeHandler)
	router.GET("/au", r.pageHandler.CountryLandingHandler(entity.CountryAU))
	router.GET("/us", r.pageHandler.CountryLandingHandler(entity.CountryUS))

	api := router.Group("/api")

	// Public blog routes
	blogs := api.Group("/blogs")
	{
		blogs.GET("", r.blogHandler.ListBlogsHandler)
		blogs.GET("/search", r.blogHandler.SearchBlogsHandler)
		blogs.GET("/slug/:slug", r.blogHandler.GetBlogBySlugHandler)
	}

	// Widget and form endpoints
	api.POST("/send-email", r.contactHandler.SendContactHandler)
	api.POST("/subscribe", r.contactHandler.SubscribeHandler)
	api.POST("/chat", r.chatHandler.ChatHandler)
	api.GET("/geo", r.pageHandler.GeoDebugHandler)

	// Admin session endpoints stay outside the gate; the login endpoint
	// gets a tighter limiter against password guessing.
	loginLmt := tollbooth.NewLimiter(1, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	loginLmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	loginLmt.SetMessage("Too many login attempts, please try again later.")
	api.POST("/admin/login", middleware.RateLimiter(loginLmt), r.authHandler.Login)
	api.POST("/admin/logout", r.authHandler.Logout)

	// Gated admin API
	adminAPI := api.Group("/admin")
	adminAPI.Use(r.adminGate.Handler())
	{
		adminAPI.GET("/blogs", r.adminBlogHandler.ListBlogsHandler)
		adminAPI.POST("/blogs", r.adminBlogHandler.CreateBlogHandler)
		adminAPI.GET("/blogs/:id", r.adminBlogHandler.GetBlogByIDHandler)
		adminAPI.PUT("/blogs/:id", r.adminBlogHandler.UpdateBlogHandler)
		adminAPI.DELETE("/blogs/:id", r.adminBlogHandler.DeleteBlogHandler)
	}

	// Admin UI: login page is public, the dashboard redirects through the
	// gate when no session is present.
	router.GET(middleware.LoginPath, func(c *gin.Context) {
		MessageHandler(c, 200, "QuickSquad admin login")
	})
	adminUI := router.Group("/admin")
	adminUI.Use(r.adminGate.Handler())
	{
		adminUI.GET("", r.adminBlogHandler.ListBlogsHandler)
	}
}
