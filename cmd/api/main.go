package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/aimob/aimob-backend/internal/config"
	"github.com/aimob/aimob-backend/internal/db"
	"github.com/aimob/aimob-backend/internal/handlers"
	"github.com/aimob/aimob-backend/internal/middleware"
	"github.com/aimob/aimob-backend/internal/models"
	"github.com/aimob/aimob-backend/internal/report"
	"github.com/aimob/aimob-backend/internal/services/creciapi"
	"github.com/aimob/aimob-backend/internal/services/facebook"
	"github.com/aimob/aimob-backend/internal/services/mailer"
	"github.com/aimob/aimob-backend/internal/services/sms"
	"github.com/aimob/aimob-backend/internal/services/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(models.All()...); err != nil {
		log.Fatal(err)
	}

	s3store, err := storage.NewS3Storage(storage.S3Config{
		Region:    cfg.AWSRegion,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		log.Fatal(err)
	}

	var mail mailer.Sender
	if cfg.EmailUser != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	}
	var smsSender sms.Sender
	if cfg.TwilioAccountSID != "" {
		smsSender = sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	}
	var fb facebook.Poster
	if cfg.FacebookPageID != "" {
		fb = facebook.NewPageService(cfg.FacebookPageID, cfg.FacebookPageToken)
	}

	reports := report.NewGenerator()

	authH := &handlers.AuthHandler{DB: gdb, JWTSecret: cfg.JWTSecret, Expires: cfg.JWTExpiresMin}
	userH := handlers.NewUserHandler(gdb, s3store)
	employeeH := handlers.NewEmployeeHandler(gdb)
	ownerH := handlers.NewOwnerHandler(gdb)
	clientH := handlers.NewClientHandler(gdb)
	estateH := &handlers.RealEstateHandler{
		DB:          gdb,
		Storage:     s3store,
		Facebook:    fb,
		Reports:     reports,
		FrontendURL: cfg.FrontendURL,
	}
	contactH := &handlers.ContactHandler{DB: gdb, Reports: reports}
	appointmentH := &handlers.AppointmentHandler{DB: gdb, Mailer: mail, SMS: smsSender, Reports: reports}
	taskH := handlers.NewTaskHandler(gdb)
	contractH := handlers.NewContractHandler(gdb)
	notificationH := handlers.NewNotificationHandler(gdb)
	passwordH := &handlers.PasswordHandler{DB: gdb, Mailer: mail}
	creciH := &handlers.CreciHandler{API: creciapi.New()}

	app := fiber.New(fiber.Config{BodyLimit: 25 * 1024 * 1024})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.FrontendURL,
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Length, Content-Disposition",
	}))

	api := app.Group("/api")

	// público: login, cadastro e os funis de captação externos
	api.Post("/login", authH.Login)
	api.Post("/users", userH.Create)
	api.Post("/forgot-password", passwordH.SendResetCode)
	api.Post("/reset-password", passwordH.ResetPassword)
	api.Post("/contacts", contactH.Create)
	api.Post("/contacts/basic", contactH.CreateBasic)
	api.Post("/appointments/create", appointmentH.Create)
	api.Get("/creci/validate", creciH.Validate)

	// vitrine pública de imóveis
	api.Get("/realestates/available", estateH.ListAvailable)
	api.Get("/realestates/search", estateH.Search)
	api.Get("/realestates/advance-search", estateH.AdvanceSearch)
	api.Get("/realestates/:id<int>", estateH.Get)

	protected := api.Group("/",
		middleware.JWTFromHeader(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/users", userH.List)
	protected.Get("/users/:id", userH.Get)
	protected.Patch("/users/:id", userH.Update)
	protected.Delete("/users/:id", userH.Delete)

	protected.Post("/employees", employeeH.Create)
	protected.Get("/employees", employeeH.List)
	protected.Get("/employees/:id", employeeH.Get)
	protected.Patch("/employees/:id", employeeH.Update)
	protected.Delete("/employees/:id", employeeH.Delete)

	protected.Post("/owners", ownerH.Create)
	protected.Get("/owners", ownerH.List)
	protected.Get("/owners/:id", ownerH.Get)
	protected.Patch("/owners/:id", ownerH.Update)
	protected.Delete("/owners/:id", ownerH.Delete)

	protected.Post("/clients", clientH.Create)
	protected.Get("/clients", clientH.List)
	protected.Get("/clients/:id", clientH.Get)
	protected.Patch("/clients/:id", clientH.Update)
	protected.Delete("/clients/:id", clientH.Delete)

	protected.Post("/realestates", estateH.Create)
	protected.Get("/realestates", estateH.List)
	protected.Get("/realestates/report", estateH.Report)
	protected.Patch("/realestates/:id", estateH.Update)
	protected.Delete("/realestates/:id", estateH.Delete)

	protected.Get("/contacts", contactH.List)
	protected.Get("/contacts/report", contactH.Report)
	protected.Get("/contacts/:id", contactH.Get)
	protected.Patch("/contacts/:id", contactH.Update)
	protected.Delete("/contacts/:id", contactH.Delete)

	protected.Get("/appointments", appointmentH.List)
	protected.Get("/appointments/report", appointmentH.Report)
	protected.Get("/appointments/:id", appointmentH.Get)
	protected.Patch("/appointments/:id", appointmentH.Update)
	protected.Delete("/appointments/:id", appointmentH.Delete)

	protected.Post("/tasks", taskH.Create)
	protected.Get("/tasks", taskH.List)
	protected.Get("/tasks/:id", taskH.Get)
	protected.Patch("/tasks/:id", taskH.Update)
	protected.Delete("/tasks/:id", taskH.Delete)

	protected.Post("/contracts", contractH.Create)
	protected.Get("/contracts", contractH.List)
	protected.Get("/contracts/:id", contractH.Get)
	protected.Patch("/contracts/:id", contractH.Update)
	protected.Delete("/contracts/:id", contractH.Delete)

	protected.Post("/notifications", notificationH.Create)
	protected.Get("/notifications", notificationH.List)
	protected.Get("/notifications/:id", notificationH.Get)
	protected.Patch("/notifications/:id", notificationH.Update)
	protected.Delete("/notifications/:id", notificationH.Delete)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
