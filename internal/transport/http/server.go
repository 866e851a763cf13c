package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "github.com/ZivNavon/customer-management-tool/internal/app"
	"github.com/ZivNavon/customer-management-tool/internal/bootstrap"
	"github.com/ZivNavon/customer-management-tool/internal/cache"
	"github.com/ZivNavon/customer-management-tool/internal/platform/rabbitmq"
	"github.com/ZivNavon/customer-management-tool/internal/repository"
	"github.com/ZivNavon/customer-management-tool/internal/storage"
	"github.com/ZivNavon/customer-management-tool/internal/transport/http/handler"
	"github.com/ZivNavon/customer-management-tool/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	customerRepo := repository.NewCustomerRepository(app.MySQL)
	contactRepo := repository.NewContactRepository(app.MySQL)
	meetingRepo := repository.NewMeetingRepository(app.MySQL)
	assetRepo := repository.NewAssetRepository(app.MySQL)
	summaryRepo := repository.NewSummaryRepository(app.MySQL)
	draftRepo := repository.NewDraftRepository(app.MySQL)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	customerService := appsvc.NewCustomerService(customerRepo, contactRepo)
	meetingService := appsvc.NewMeetingService(
		meetingRepo,
		customerRepo,
		contactRepo,
		assetRepo,
		summaryRepo,
		draftRepo,
		storage.NewAssetStore(app.Config.Storage.AssetsDir),
		rabbitmq.NewAssetEventPublisher(app.MQConn, app.Config.RabbitMQ.AssetEventQueue),
		cache.NewMeetingCache(
			app.Redis,
			time.Duration(app.Config.Redis.MeetingTTLSeconds)*time.Second,
			time.Duration(app.Config.Redis.MeetingDirtyTTLSeconds)*time.Second,
		),
		app.Config.AI.Model,
		app.Config.AI.PromptTemplateVersion,
	)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	meetingHandler := handler.NewMeetingHandler(meetingService)

	authRequired := middleware.AuthJWT(app.Config.Auth.JWTSecret)

	authGroup := router.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authRequired, authHandler.Me)

	customers := router.Group("/customers", authRequired)
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)
	customers.GET("/:id/contacts", customerHandler.ListContacts)
	customers.POST("/:id/contacts", customerHandler.CreateContact)
	customers.GET("/:id/meetings", meetingHandler.ListByCustomer)
	customers.POST("/:id/meetings", meetingHandler.Create)

	contacts := router.Group("/contacts", authRequired)
	contacts.PUT("/:id", customerHandler.UpdateContact)
	contacts.DELETE("/:id", customerHandler.DeleteContact)

	meetings := router.Group("/meetings", authRequired)
	meetings.GET("/:id", meetingHandler.Get)
	meetings.POST("/:id/assets", meetingHandler.UploadAsset)
	meetings.POST("/:id/ai/summarize", meetingHandler.Summarize)
	meetings.POST("/:id/ai/draft-email", meetingHandler.DraftEmail)

	return router
}
