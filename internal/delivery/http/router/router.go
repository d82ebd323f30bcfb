// Package router contains routing setup for the HTTP delivery.
package router

import (
	"mihrab/internal/delivery/http/middleware"
	"mihrab/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router mounts, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	QuranHandler        *handler.QuranHandler
	PrayerHandler       *handler.PrayerHandler
	QiblaHandler        *handler.QiblaHandler
	HadithHandler       *handler.HadithHandler
	PlacesHandler       *handler.PlacesHandler
	StreakHandler       *handler.StreakHandler
	TasbeehHandler      *handler.TasbeehHandler
	MemorizationHandler *handler.MemorizationHandler
	SettingHandler      *handler.SettingHandler
	DeviceHandler       *handler.DeviceHandler
	ShareHandler        *handler.ShareHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Reading content (Quran, hadith, prayer times, qibla, places, share) is
// public; everything scoped to an account requires a bearer token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.Refresh)
		authGroup.POST("/logout", p.UserHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(p.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.POST("/logout-all", p.UserHandler.LogoutAll)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Quran reading routes (public)
	quranGroup := apiV1.Group("/quran")
	{
		quranGroup.GET("/surahs", p.QuranHandler.ListSurahs)
		quranGroup.GET("/surahs/:number", p.QuranHandler.GetSurah)
		quranGroup.GET("/surahs/:number/ayahs/:ayah", p.QuranHandler.GetAyah)
		quranGroup.GET("/search", p.QuranHandler.Search)
	}

	// Bookmarks and reading position (require authentication)
	quranUserGroup := quranGroup.Group("")
	quranUserGroup.Use(p.AuthMiddleware.Authenticate)
	{
		quranUserGroup.POST("/bookmarks", p.QuranHandler.AddBookmark)
		quranUserGroup.GET("/bookmarks", p.QuranHandler.ListBookmarks)
		quranUserGroup.DELETE("/bookmarks/:id", p.QuranHandler.DeleteBookmark)
		quranUserGroup.GET("/progress", p.QuranHandler.GetProgress)
		quranUserGroup.PUT("/progress", p.QuranHandler.SaveProgress)
	}

	// Prayer schedule routes (public)
	prayerGroup := apiV1.Group("/prayer")
	{
		prayerGroup.GET("/day", p.PrayerHandler.GetDay)
		prayerGroup.GET("/today", p.PrayerHandler.Today)
	}

	// Qibla direction (public)
	apiV1.GET("/qibla", p.QiblaHandler.Direction)
	apiV1.POST("/qibla/smooth", p.QiblaHandler.SmoothHeadings)

	// Hadith browsing routes (public)
	hadithGroup := apiV1.Group("/hadith")
	{
		hadithGroup.GET("/books", p.HadithHandler.ListBooks)
		hadithGroup.GET("/books/:book", p.HadithHandler.GetBookPage)
		hadithGroup.GET("/books/:book/:number", p.HadithHandler.GetHadith)
	}

	// Nearby places (public)
	apiV1.GET("/places/nearby", p.PlacesHandler.FindNearby)

	// Ayah share QR (public)
	apiV1.GET("/share/ayah/:surah/:ayah", p.ShareHandler.AyahQR)

	// Reading streak routes
	streakGroup := apiV1.Group("/streak")
	streakGroup.Use(p.AuthMiddleware.Authenticate)
	{
		streakGroup.POST("/read", p.StreakHandler.RecordReading)
		streakGroup.GET("", p.StreakHandler.GetStreak)
	}

	// Dhikr counter routes
	tasbeehGroup := apiV1.Group("/tasbeeh/counters")
	tasbeehGroup.Use(p.AuthMiddleware.Authenticate)
	{
		tasbeehGroup.POST("", p.TasbeehHandler.CreateCounter)
		tasbeehGroup.GET("", p.TasbeehHandler.ListCounters)
		tasbeehGroup.POST("/:id/increment", p.TasbeehHandler.Increment)
		tasbeehGroup.POST("/:id/reset", p.TasbeehHandler.Reset)
		tasbeehGroup.DELETE("/:id", p.TasbeehHandler.DeleteCounter)
	}

	// Memorization tracking routes
	memorizationGroup := apiV1.Group("/memorization")
	memorizationGroup.Use(p.AuthMiddleware.Authenticate)
	{
		memorizationGroup.POST("/entries", p.MemorizationHandler.CreateEntry)
		memorizationGroup.GET("/entries", p.MemorizationHandler.ListEntries)
		memorizationGroup.PATCH("/entries/:id", p.MemorizationHandler.UpdateStatus)
		memorizationGroup.DELETE("/entries/:id", p.MemorizationHandler.DeleteEntry)
		memorizationGroup.GET("/summary", p.MemorizationHandler.Summary)
	}

	// Preference routes
	settingsGroup := apiV1.Group("/settings")
	settingsGroup.Use(p.AuthMiddleware.Authenticate)
	{
		settingsGroup.GET("", p.SettingHandler.ListSettings)
		settingsGroup.GET("/:key", p.SettingHandler.GetSetting)
		settingsGroup.PUT("/:key", p.SettingHandler.PutSetting)
	}

	// Reminder device routes
	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(p.AuthMiddleware.Authenticate)
	{
		devicesGroup.POST("", p.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", p.DeviceHandler.ListDevices)
		devicesGroup.DELETE("/:id", p.DeviceHandler.RemoveDevice)
	}
}
