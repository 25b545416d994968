package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunch-voting-app/controllers"
	"github.com/yeremiapane/lunch-voting-app/middlewares"
	"github.com/yeremiapane/lunch-voting-app/stores"
	"gorm.io/gorm"
)

// SetupRouter wires the stores into their controllers and hangs everything
// on the route tree. The stores are constructed once here and injected;
// nothing in the request path reaches for a global.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Coarse per-IP limiter across the whole API (50 req/s).
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	identity := stores.NewIdentityStore(db)
	catalog := stores.NewCatalogStore(db)
	ledger := stores.NewVoteLedger(db)
	query := stores.NewQueryEngine(db, catalog)

	employeeCtrl := controllers.NewEmployeeController(identity)
	restaurantCtrl := controllers.NewRestaurantController(catalog)
	menuCtrl := controllers.NewMenuController(ledger, query)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Credential endpoints sit behind the strict rate limiter.
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", employeeCtrl.Register)
		public.POST("/login", employeeCtrl.Login)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/me", employeeCtrl.Profile)
		authed.POST("/add_restaurant", restaurantCtrl.AddRestaurant)
		authed.POST("/restaurants/:id/menu", restaurantCtrl.UploadMenu)

		// Client version is checked only on the voting surface.
		gated := authed.Group("/")
		gated.Use(middlewares.VersionGate())
		{
			gated.GET("/menu", menuCtrl.TodaysMenus)
			gated.POST("/menu/:id/vote", menuCtrl.CastVote)
			gated.GET("/results", menuCtrl.TodaysResults)
		}
	}

	return r
}
