package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xyzhou0323/weapp-xyz-service/docs"
	"github.com/xyzhou0323/weapp-xyz-service/internal/config"
	"github.com/xyzhou0323/weapp-xyz-service/internal/database"
	"github.com/xyzhou0323/weapp-xyz-service/internal/handlers"
	"github.com/xyzhou0323/weapp-xyz-service/internal/middleware"
	"github.com/xyzhou0323/weapp-xyz-service/internal/services"
	"github.com/xyzhou0323/weapp-xyz-service/internal/wechat"
)

// @title           Questionnaire Service API
// @version         1.0
// @description     Backend for the WeChat mini-program questionnaire
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {session}"

func main() {
	cfg := config.Load()
	if cfg.WXAppID == "" || cfg.WXSecret == "" {
		log.Fatal("WX_APPID and WX_SECRET must be set")
	}

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	wxClient := wechat.NewClient(cfg.WXAppID, cfg.WXSecret)

	scoringService := services.NewScoringService()
	answerService := services.NewAnswerService(db, scoringService)
	sessionService := services.NewSessionService(db)
	authService := services.NewAuthService(db, sessionService, wxClient)
	questionnaireService := services.NewQuestionnaireService(db)
	counterService := services.NewCounterService(db)

	authHandler := handlers.NewAuthHandler(authService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	questionnaireHandler := handlers.NewQuestionnaireHandler(questionnaireService)
	counterHandler := handlers.NewCounterHandler(counterService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Wx-Source", "X-Wx-Openid"},
		AllowCredentials: true,
	}))

	r.StaticFile("/", "./index.html")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/wx_openid", handlers.WxOpenID)

		api.POST("/count", counterHandler.Update)
		api.GET("/count", counterHandler.Get)

		api.POST("/login", authHandler.Login)
		api.GET("/questionnaire/:id", questionnaireHandler.Get)

		api.POST("/submit-answer", middleware.SessionAuth(authService), answerHandler.Submit)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
