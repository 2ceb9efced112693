package http

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/acmartinr/liveup/internal/adapters/signal"
	"github.com/acmartinr/liveup/internal/app"
	"github.com/acmartinr/liveup/internal/config"
	"github.com/acmartinr/liveup/internal/upload"
)

// PublicFilesPath is where stored uploads are served from.
const PublicFilesPath = "/files"

func genClientToken() string {
	return uuid.NewString()
}

// ClientTokenMiddleware pins a long-lived opaque token on the browser so a
// returning client is recognizable across connections.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = genClientToken()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, coord *app.Coordinator, sessionsReg *app.Registry, store *upload.Store) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	cookieStore := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("LiveUpSessions", cookieStore))
	r.Use(ClientTokenMiddleware())

	r.Static("/static", cfg.StaticPath)
	r.Static(PublicFilesPath, cfg.UploadDir)
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Str("uploads", cfg.UploadDir).Msg("router setup")

	ctrl := signal.NewController(coord, sessionsReg, cfg)
	iceServers := cfg.ICEServers()

	api := r.Group("/api")

	api.GET("/ws/signal", func(c *gin.Context) {
		ctrl.HandleSignal(ctx, c)
	})

	api.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, coord.Rooms())
	})

	api.GET("/ice", func(c *gin.Context) {
		c.JSON(http.StatusOK, iceServers)
	})

	api.POST("/upload", handleUpload(store))

	return r
}
