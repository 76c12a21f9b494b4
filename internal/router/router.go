package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	GetSession(c *ginext.Context)
	ListListings(c *ginext.Context)
	FeaturedListings(c *ginext.Context)
	GetListing(c *ginext.Context)
	CreateListing(c *ginext.Context)
	BookListing(c *ginext.Context)
	ToggleWishlist(c *ginext.Context)
	GetDashboard(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		auth := api.Group("/auth")
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.GetSession)

		// Listings
		api.GET("/listings", h.ListListings)
		api.GET("/listings/featured", h.FeaturedListings)
		api.GET("/listings/:id", h.GetListing)
		api.POST("/listings", h.CreateListing)

		// Bookings and wishlist
		api.POST("/listings/:id/book", h.BookListing)
		api.POST("/listings/:id/wishlist", h.ToggleWishlist)

		api.GET("/dashboard", h.GetDashboard)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
