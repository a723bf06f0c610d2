// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package server

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/vbhvn08/premier-inn/internal/booking"
	"github.com/vbhvn08/premier-inn/internal/db"
	"github.com/vbhvn08/premier-inn/internal/server/api"
	"github.com/vbhvn08/premier-inn/internal/server/templates"
	"github.com/vbhvn08/premier-inn/internal/wizard"
)

//go:embed all:static
var staticFS embed.FS

// defaultLocale is where the bare root redirects.
const defaultLocale = "en"

func NewServer(
	serviceName string,
	staticDir string,
	hStore db.HotelStore,
	cStore db.CountryStore,
	tStore db.TranslationStore,
) *Server {
	service := booking.NewService()
	directory := booking.NewDirectory(hStore, cStore)
	sessions := templates.NewSessionStore(func() *wizard.Controller {
		return wizard.NewController(service, wizard.NewHotelSearch(directory))
	})
	return &Server{
		logger:      slog.Default().WithGroup("http"),
		serviceName: serviceName,
		staticDir:   staticDir,
		tStore:      tStore,
		api:         api.NewHandler(service, directory, tStore),
		booking:     templates.NewBookingHandler(tStore, sessions),
	}
}

type Server struct {
	serviceName string
	staticDir   string
	logger      *slog.Logger
	tStore      db.TranslationStore
	api         *api.Handler
	booking     *templates.BookingHandler
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := gin.New()
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	middlewares := []gin.HandlerFunc{
		sloggin.NewWithConfig(s.logger,
			sloggin.Config{
				DefaultLevel:     slog.LevelInfo,
				ClientErrorLevel: slog.LevelWarn,
				ServerErrorLevel: slog.LevelError,
			},
		),
		gin.Recovery(), otelgin.Middleware(s.serviceName), slogAddTraceAttributes,
	}

	var staticDir fs.FS
	var err error
	switch {
	case s.staticDir != "":
		staticDir = os.DirFS(s.staticDir)
	default:
		staticDir, err = fs.Sub(staticFS, "static")
		if err != nil {
			panic(err)
		}
	}
	mux.StaticFS("/static", http.FS(fs.FS(staticDir)))

	// The JSON API is also consumed by separately hosted front ends.
	apiArea := mux.Group("/api")
	apiArea.Use(append(middlewares, cors.Default())...)
	apiArea.GET("/countries", s.api.Countries)
	apiArea.GET("/hotels", s.api.Hotels)
	apiArea.GET("/translations/:locale", s.api.Translations)
	apiArea.POST("/form", s.api.SubmitForm)

	mux.Use(append(middlewares, localeExists(s.tStore))...)
	mux.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/"+defaultLocale)
	})
	mux.GET("/:locale", s.booking.RenderForm)
	mux.POST("/:locale/section/:section", s.booking.UpdateSection)
	mux.POST("/:locale/toggle/:section", s.booking.ToggleSection)
	mux.POST("/:locale/submit", s.booking.Submit)
	mux.GET("/:locale/success", s.booking.RenderSuccess)

	mux.NoRoute(notFound)

	mux.ServeHTTP(w, r)
}

// localeExists gates the page routes on a known translation bundle; an
// unknown locale prefix is a not-found, not an error.
func localeExists(db db.TranslationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Param("locale")
		if locale == "" {
			c.Next()
			return
		}
		if _, err := db.ByLanguage(c.Request.Context(), locale); err != nil {
			notFound(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
}

func slogAddTraceAttributes(c *gin.Context) {
	sloggin.AddCustomAttributes(c,
		slog.String("trace-id", trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID().String()),
	)
	sloggin.AddCustomAttributes(c,
		slog.String("span-id", trace.SpanFromContext(c.Request.Context()).SpanContext().SpanID().String()),
	)
	c.Next()
}
