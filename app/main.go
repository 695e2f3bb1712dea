package main

import (
	"os"
	"os/signal"
	"sync"

	"hikmah/config"
	"hikmah/services/academic/delivery"
	"hikmah/services/academic/repository"
	"hikmah/services/academic/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Fatalf("Error loading .env file")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	meowClient, smtpAuth, smtpAddr, schoolPhone, emailSender, err := config.InitSender()
	if err != nil {
		log.Fatalf("Failed to initialize sender: %v", err)
		return
	}

	// Repositories
	authRepo := repository.NewAuthRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	classRepo := repository.NewClassRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	behaviorRepo := repository.NewBehaviorRepository(db)
	reportRepo := repository.NewReportRepository(db)
	senderRepo := repository.NewSenderRepository(db, smtpAuth, *smtpAddr, *schoolPhone, *emailSender, meowClient)

	// Usecases
	authUC := usecase.NewAuthUseCase(authRepo)
	studentUC := usecase.NewStudentUseCase(studentRepo, senderRepo)
	teacherUC := usecase.NewTeacherUseCase(teacherRepo)
	subjectUC := usecase.NewSubjectUseCase(subjectRepo)
	classUC := usecase.NewClassUseCase(classRepo)
	gradeUC := usecase.NewGradeUseCase(gradeRepo)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, gradeRepo, senderRepo)
	behaviorUC := usecase.NewBehaviorUseCase(behaviorRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)

	// Delivery
	delivery.NewAuthHandler(app, authUC)
	delivery.NewSantriHandler(app, studentUC, authUC, reportUC)
	delivery.NewGuruHandler(app, attendanceUC, gradeUC, studentUC, teacherUC)
	delivery.NewWalikelasHandler(app, db, classUC, reportUC, behaviorUC)
	delivery.NewAdminHandler(app, studentUC, teacherUC, classUC, subjectUC, authUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for %s on port %s", config.GetAppName(), config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	if meowClient != nil {
		meowClient.Disconnect()
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
