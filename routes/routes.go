package routes

import (
	"fastfood-backend/configs"
	"fastfood-backend/controllers"
	"fastfood-backend/entity"
	"fastfood-backend/middlewares"
	"fastfood-backend/repository"
	"fastfood-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(200, "server up") })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	mealRepo := repository.NewMealRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cartRepo, orderRepo, restRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo, mealRepo, orderRepo)
	mealSvc := services.NewMealService(mealRepo, restRepo)
	cartSvc := services.NewCartService(cartRepo)
	orderSvc := services.NewOrderService(orderRepo, restRepo, userRepo)

	// Controllers
	userCtrl := controllers.NewUserController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	mealCtrl := controllers.NewMealController(mealSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	customerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer)
	ownerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner)

	// Users
	u := r.Group("/users")
	{
		u.POST("/register", userCtrl.Register)
		u.POST("/login", userCtrl.Login)
	}
	uAuth := u.Group("", auth)
	{
		uAuth.GET("/me", userCtrl.Me)
		uAuth.PUT("/me", userCtrl.UpdateMe)
		uAuth.PUT("/me/password", userCtrl.ChangePassword)
		uAuth.DELETE("/:id", userCtrl.Delete)
	}

	// Meals (public reads, owner writes)
	m := r.Group("/meals")
	{
		m.GET("", mealCtrl.List)
		m.GET("/:id", mealCtrl.Get)
		m.POST("", ownerOnly, mealCtrl.Create)
		m.PUT("/:id", ownerOnly, mealCtrl.Update)
		m.DELETE("/:id", ownerOnly, mealCtrl.Delete)
	}

	// Restaurants
	rs := r.Group("/restaurants")
	{
		rs.GET("", restCtrl.List)
		rs.GET("/search", restCtrl.Search)
		rs.GET("/statistics", ownerOnly, restCtrl.Statistics)
		rs.GET("/:id", restCtrl.Detail)
		rs.POST("", ownerOnly, restCtrl.Create)
		rs.PUT("/:id", ownerOnly, restCtrl.Update)
		rs.DELETE("/:id", ownerOnly, restCtrl.Delete)
	}

	// Carts
	ct := r.Group("/carts", auth)
	{
		ct.GET("/me", cartCtrl.Me)
		ct.PUT("/add", cartCtrl.Add)
		ct.PUT("/remove", cartCtrl.Remove)
		ct.DELETE("/me", cartCtrl.Clear)
	}

	// Orders
	o := r.Group("/orders")
	{
		o.POST("", customerOnly, orderCtrl.Create)
		o.GET("", auth, orderCtrl.List)
		o.GET("/:id", auth, orderCtrl.Detail)
		o.PUT("/:id", ownerOnly, orderCtrl.Advance)
		o.PUT("/:id/consegna", customerOnly, orderCtrl.ConfirmDelivery)
	}
}
