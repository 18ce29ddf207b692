package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Users    *UserHandler
	Products *ProductHandler
	Guard    *AuthGuard

	// Middlewares run ahead of CORS on every request, including unmatched ones.
	Middlewares []gin.HandlerFunc
	Metrics     http.Handler
}

func RegisterRoutes(router *gin.Engine, deps RouterDeps) {
	router.Use(deps.Middlewares...)
	router.Use(NewCORSMiddleware())

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	guard := deps.Guard.Middleware()

	user := router.Group("/user")
	{
		user.POST("/signup", deps.Users.SignUp)
		user.POST("/login", deps.Users.LogIn)

		authenticated := user.Group("", guard)
		{
			authenticated.POST("/deposit", deps.Users.Deposit)
			authenticated.GET("/reset", deps.Users.Reset)
			authenticated.POST("/logout", deps.Users.LogOut)
			authenticated.POST("/logout/all", deps.Users.LogOutAll)
		}
	}

	products := router.Group("/products")
	{
		products.GET("", deps.Products.List)

		authenticated := products.Group("", guard)
		{
			authenticated.POST("/add", deps.Products.Add)
			authenticated.PATCH("/update/:"+ProductIDKey, deps.Products.Update)
			authenticated.DELETE("/delete/:"+ProductIDKey, deps.Products.Delete)
			authenticated.POST("/buy", deps.Products.Buy)
		}
	}
}
