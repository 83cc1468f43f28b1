package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/delivery/http/routers"
	"doctorsportal-service/internal/app/drivers/database"
	"doctorsportal-service/internal/app/drivers/logger"
	"doctorsportal-service/internal/app/drivers/messaging"
	"doctorsportal-service/internal/app/drivers/storage"
	"doctorsportal-service/internal/app/services/core/appointmentoptions"
	"doctorsportal-service/internal/app/services/core/bookings"
	"doctorsportal-service/internal/app/services/core/doctors"
	"doctorsportal-service/internal/app/services/core/payments"
	"doctorsportal-service/internal/app/services/core/users"
	"doctorsportal-service/internal/app/services/shared/paymentgateway"
	redisrepo "doctorsportal-service/internal/app/services/shared/redis"
	miniostorage "doctorsportal-service/internal/app/services/shared/storage"

	rabbitmqpublisher "doctorsportal-service/internal/app/services/shared/messaging"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoClient := database.NewMongoDB(driverConfig, bootstrapLog)
	redisClient := database.NewRedisClient(driverConfig, bootstrapLog)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig, bootstrapLog)
	minioClient := storage.NewMinio(driverConfig, bootstrapLog)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	buildApp(bootstrap, bootstrapLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("addr", internalConfig.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("server stopped unexpectedly: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(internalConfig.App.ShutdownTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	zapLogger.Info("shutting down server")
	if err := server.Shutdown(ctx); err != nil {
		bootstrapLog.Errorf("graceful shutdown failed: %v", err)
	}

	mongoClient.Disconnect(ctx)
	redisClient.Close()
	rabbitMQConnection.Close()
}

func buildApp(bootstrap *config.Bootstrap, log *logrus.Logger) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Repositories. Constructors create the unique indexes the conflict and
	// registration guarantees rest on; refuse to serve without them.
	appointmentOptionRepository, err := appointmentoptions.NewAppointmentOptionMongoRepository(bootstrap.MongoDB, dbName)
	if err != nil {
		log.Fatalf("Failed to ensure appointment option indexes: %s", err.Error())
	}
	bookingRepository, err := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	if err != nil {
		log.Fatalf("Failed to ensure booking indexes: %s", err.Error())
	}
	userRepository, err := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	if err != nil {
		log.Fatalf("Failed to ensure user indexes: %s", err.Error())
	}
	doctorRepository, err := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	if err != nil {
		log.Fatalf("Failed to ensure doctor indexes: %s", err.Error())
	}
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	eventPublisher := rabbitmqpublisher.NewRabbitMQPublisher(bootstrap.RabbitMQ)
	objectStorage := miniostorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig)
	paymentGateway := paymentgateway.NewStripeService(bootstrap.InternalConfig)

	// Usecases
	appointmentOptionUsecase := appointmentoptions.NewAppointmentOptionUsecase(
		appointmentOptionRepository, bookingRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository, redisRepository, eventPublisher, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userRepository)
	authUsecase := users.NewAuthUsecase(userRepository, bootstrap.InternalConfig)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, objectStorage, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository, bookingRepository, paymentGateway, eventPublisher, bootstrap.Logger)

	// Delivery
	controllerSet := &routers.Controllers{
		Health:            controllers.NewHealthController(),
		AppointmentOption: controllers.NewAppointmentOptionController(bootstrap.Logger, bootstrap.InternalConfig, appointmentOptionUsecase),
		Booking:           controllers.NewBookingController(bootstrap.Logger, bootstrap.InternalConfig, bookingUsecase),
		Auth:              controllers.NewAuthController(bootstrap.Logger, bootstrap.InternalConfig, authUsecase),
		User:              controllers.NewUserController(bootstrap.Logger, bootstrap.InternalConfig, userUsecase),
		Doctor:            controllers.NewDoctorController(bootstrap.Logger, bootstrap.InternalConfig, doctorUsecase),
		Payment:           controllers.NewPaymentController(bootstrap.Logger, bootstrap.InternalConfig, paymentUsecase),
	}
	middlewareSet := middlewares.NewMiddlewares(bootstrap.Logger, userRepository, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, controllerSet, middlewareSet, bootstrap.InternalConfig)
}
