package config

import (
	"ReliefStock-Backend/internal/api/handlers"
	"ReliefStock-Backend/internal/api/routes"
	"ReliefStock-Backend/internal/middleware"
	"ReliefStock-Backend/internal/utils"
	"ReliefStock-Backend/internal/utils/mailing"
	"ReliefStock-Backend/internal/utils/storage"
	"ReliefStock-Backend/pkg/alert"
	"ReliefStock-Backend/pkg/category"
	"ReliefStock-Backend/pkg/donation"
	"ReliefStock-Backend/pkg/donor"
	"ReliefStock-Backend/pkg/item"
	"ReliefStock-Backend/pkg/jwt"
	"ReliefStock-Backend/pkg/receiver"
	"ReliefStock-Backend/pkg/request"
	"ReliefStock-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, mongoDB *mongo.Database) (*fiber.App, alert.AlertService, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewSMTPMailer()
	classifier := category.NewClassifier()

	// Repository
	userRepository := user.NewUserRepository(db)
	donorRepository := donor.NewDonorRepository(db)
	receiverRepository := receiver.NewReceiverRepository(db)
	itemRepository := item.NewItemRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	requestRepository := request.NewRequestRepository(db)
	alertRepository := alert.NewAlertRepository(db)
	alertLogRepository := alert.NewAlertLogRepository(mongoDB)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	donorService := donor.NewDonorService(donorRepository)
	receiverService := receiver.NewReceiverService(receiverRepository)
	itemService := item.NewItemService(itemRepository, classifier, s3)
	donationService := donation.NewDonationService(donationRepository)
	requestService := request.NewRequestService(requestRepository)
	alertService := alert.NewAlertService(
		alertRepository,
		alertLogRepository,
		itemRepository,
		mailer,
		utils.GetConfig("ADMIN_EMAIL"),
		utils.GetConfigInt("EXPIRY_CHECK_DAYS", 30),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donorHandler := handlers.NewDonorHandler(donorService, validator)
	receiverHandler := handlers.NewReceiverHandler(receiverService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	alertHandler := handlers.NewAlertHandler(alertService, validator)
	categoryHandler := handlers.NewCategoryHandler(classifier, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		DonorHandler:    donorHandler,
		ReceiverHandler: receiverHandler,
		ItemHandler:     itemHandler,
		DonationHandler: donationHandler,
		RequestHandler:  requestHandler,
		AlertHandler:    alertHandler,
		CategoryHandler: categoryHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, alertService, nil
}
