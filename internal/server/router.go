// Package server assembles the HTTP router and runs it with graceful
// shutdown.
package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"roundup/internal/handlers"
	"roundup/internal/middleware"
	"roundup/internal/services"
	"roundup/internal/store"
)

// Options carries everything the router needs beyond the store.
type Options struct {
	Tokens       *middleware.TokenService
	CORSOrigins  []string
	CookieSecure bool
}

// NewRouter wires services and handlers over st and registers every route.
func NewRouter(st store.Store, opts Options) *gin.Engine {
	// Services
	userService := services.NewUserService(st)
	accountService := services.NewAccountService(st)
	transactionService := services.NewTransactionService(st)
	goalService := services.NewGoalService(st)
	investmentService := services.NewMicroInvestmentService(st, transactionService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, opts.Tokens, opts.CookieSecure)
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	goalHandler := handlers.NewGoalHandler(goalService)
	investmentHandler := handlers.NewMicroInvestmentHandler(investmentService, transactionService)
	healthHandler := handlers.NewHealthHandler(st)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", healthHandler.Health)

	// Public routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", middleware.OptionalAuth(opts.Tokens), authHandler.Logout)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(opts.Tokens))

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)

	protected.GET("/account", accountHandler.GetAccount)
	protected.PUT("/account", accountHandler.UpdateAccount)

	api := protected.Group("/api")

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.GetUserTransactions)
	api.GET("/budget/total-savings", transactionHandler.GetTotalSavings)

	goals := api.Group("/goals")
	goals.GET("", goalHandler.GetGoal)
	goals.POST("", goalHandler.SetGoals)
	goals.POST("/expenditure", goalHandler.AddExpenditure)
	goals.POST("/savings", goalHandler.AddSavings)
	api.POST("/expenditure", goalHandler.AddExpenditure)
	api.POST("/savings", goalHandler.AddSavings)

	investments := api.Group("/microinvestment")
	investments.GET("", investmentHandler.GetUserMicroInvestments)
	investments.POST("", investmentHandler.CreateMicroInvestment)
	investments.GET("/summary", investmentHandler.GetSummary)
	investments.DELETE("/:id", investmentHandler.DeleteMicroInvestment)

	return router
}
