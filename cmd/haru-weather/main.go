package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"haru-weather/configs"
	_ "haru-weather/docs"
	"haru-weather/internal/application/controller"
	"haru-weather/internal/application/middleware"
	"haru-weather/internal/application/processor"
	"haru-weather/internal/application/schedule"
	"haru-weather/internal/domain/gateway/api"
	"haru-weather/internal/domain/gateway/db"
	"haru-weather/internal/domain/gateway/geo"
	"haru-weather/internal/domain/gateway/queue"
	"haru-weather/internal/domain/gateway/store"
	"haru-weather/internal/domain/model"
	"haru-weather/internal/domain/usecase/favorite"
	"haru-weather/internal/domain/usecase/feedback"
	"haru-weather/internal/domain/usecase/health"
	"haru-weather/internal/domain/usecase/location"
	"haru-weather/internal/domain/usecase/session"
	"haru-weather/internal/domain/usecase/theme"
	infraaws "haru-weather/internal/infra/aws"
	gormdb "haru-weather/internal/infra/database/gorm"
	"haru-weather/pkg/log"
	"haru-weather/pkg/msg"
	"haru-weather/pkg/redis"
	"haru-weather/pkg/resource"
	"haru-weather/pkg/sqs"
)

// @title HARU WEATHER API
// @version 1.0
// @description Weather lookup service with location resolution, favorites and autocomplete
// @BasePath /haru
func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetStringOrDefault("app.server.context-path", configs.Env.ContextPath))

	// Init store
	redisConfig := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379))
	redisClient := redis.NewClient(redisConfig)
	settingsStore := store.NewSettingsStore(redisClient, resource.GetBool("app.theme.default-dark"))
	storeHealthGateway := store.NewRedisHealthGateway(redisClient)

	// Init weather gateway, falling back to offline payloads without a key
	weatherGateway := newWeatherGateway(redisClient)

	// Init location resolution
	ipGateway := api.NewIPLocationGateway(resource.GetString("app.location.ip-url"))
	locationUseCase := location.NewLocationUseCase(newPositionProvider(), ipGateway)

	// Init database gateways
	dbConn, err := gormdb.Connect()
	if err != nil {
		log.Fatalf("Fail to connect database: %v", err)
	}
	feedbackGateway := db.NewGormFeedbackGateway(dbConn)
	healthDBGateway := db.NewGormHealthDBGateway(dbConn)

	// Init queue
	awsConfig, err := infraaws.NewAwsConfig(ctx)
	if err != nil {
		log.Fatalf("Fail to load AWS configuration: %v", err)
	}
	sqsClient := infraaws.NewSqsClient(awsConfig)
	queueSender := infraaws.NewSQSSenderAdapter(sqsClient)
	queueHealthGateway := queue.NewQueueHealthGateway()

	// Init UseCase
	sessionUseCase := session.NewSessionUseCase(weatherGateway, settingsStore, locationUseCase)
	sessionUseCase.LoadFavorites()
	themeUseCase := theme.NewThemeUseCase(settingsStore)
	themeUseCase.LoadTheme()
	feedbackUseCase := feedback.NewFeedbackUseCase(feedbackGateway)
	healthUseCase := health.NewHealthUseCase(settingsStore, storeHealthGateway, healthDBGateway, queueHealthGateway)

	queueName := resource.GetString("app.favorite.refresh.queue")
	favoriteUseCase := favorite.NewFavoriteUseCase(queueName, queueSender, weatherGateway, settingsStore)

	// Init Controller
	sessionController := controller.NewSessionController(apiGroup, sessionUseCase)
	favoriteController := controller.NewFavoriteController(apiGroup, sessionUseCase)
	locationController := controller.NewLocationController(apiGroup, locationUseCase)
	themeController := controller.NewThemeController(apiGroup, themeUseCase)
	pageController := controller.NewPageController(apiGroup)
	feedbackController := controller.NewFeedbackController(apiGroup, feedbackUseCase)
	storageController := controller.NewStorageController(apiGroup, settingsStore)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	sessionController.InitSessionRoutes()
	favoriteController.InitFavoriteRoutes()
	locationController.InitLocationRoutes()
	themeController.InitThemeRoutes()
	pageController.InitPageRoutes()
	feedbackController.InitFeedbackRoutes()
	storageController.InitStorageRoutes()
	healthController.InitHealthRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init worker and schedules
	if queueName != "" {
		favoriteProcessor := processor.NewFavoriteProcessor(favoriteUseCase)
		worker, err := sqs.NewWorker(ctx, sqsClient, queueName, favoriteProcessor, nil)
		if err != nil {
			log.Errorf("Fail to create favorite refresh worker: %v", err)
		} else {
			queueHealthGateway.RegisterWorker("favorite-refresh", worker)
			go worker.Start(ctx)
		}

		favoriteScheduler := schedule.NewFavoriteScheduler(
			favoriteUseCase,
			redisClient,
			resource.GetString("app.favorite.refresh.cron"),
			resource.GetIntOrDefault("app.favorite.refresh.lock-ttl", 600),
			resource.GetIntOrDefault("app.favorite.refresh.lock-refresh", 60),
		)
		favoriteScheduler.InitFavoriteScheduleTasks(ctx)
	}

	storageScheduler, err := schedule.NewStorageScheduler(settingsStore, resource.GetDuration("app.storage.usage-report.interval"))
	if err != nil {
		log.Errorf("Fail to create storage scheduler: %v", err)
	} else if err := storageScheduler.InitStorageScheduleTasks(); err != nil {
		log.Errorf("Fail to start storage scheduler: %v", err)
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
	log.Info(msg.GetMessage("app.started"))
}

// newWeatherGateway selects the upstream strategy once at startup. Without an
// API key every weather call serves offline payloads.
func newWeatherGateway(redisClient *redis.Client) api.WeatherGateway {
	apiKey := configs.Env.WeatherApiKey
	if apiKey == "" {
		log.Warn(msg.GetMessage("weather.api-key.missing"))
		return api.NewMockWeatherGateway(resource.GetDuration("app.weather.mock-delay"))
	}

	return api.NewOpenWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetString("app.weather.geo-url"),
		apiKey,
		resource.GetStringOrDefault("app.weather.lang", "kr"),
		redisClient,
		resource.GetDuration("app.weather.cache-ttl"),
	)
}

// newPositionProvider wires the device position source. Deployments pinned to
// a known coordinate use the static provider; everything else reports
// geolocation as unsupported and relies on the IP fallback.
func newPositionProvider() geo.Provider {
	if resource.GetString("app.location.provider") == "static" {
		return geo.NewStaticProvider(model.Coord{
			Lat: resource.GetFloat64("app.location.static-latitude"),
			Lon: resource.GetFloat64("app.location.static-longitude"),
		})
	}
	return geo.NewUnsupportedProvider()
}
