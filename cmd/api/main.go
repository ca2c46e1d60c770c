package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/infra/database"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/infra/http/handlers"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/infra/http/middleware"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/infra/mail"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/infra/queue"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/usecase"
)

func main() {
	godotenv.Load()

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("Missing DATABASE_URL")
	}

	db, err := database.NewDBConnection(connString, os.Getenv("DB_NAME"))
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	// 1. Repository
	leadRepo := database.NewLeadRepository(db)

	// 2. Notification dispatch. SEND_EMAILS gates it entirely; QUEUE_URL
	// switches from in-process SMTP to the RabbitMQ worker.
	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
		os.Getenv("ADMIN_EMAIL"),
		os.Getenv("APP_URL"),
	)

	var notifier usecase.LeadNotifier
	var rabbitMQ *queue.RabbitMQ

	if os.Getenv("SEND_EMAILS") == "true" {
		if queueURL := os.Getenv("QUEUE_URL"); queueURL != "" {
			rabbitMQ, err = queue.NewRabbitMQ(queueURL)
			if err != nil {
				log.Fatalf("RabbitMQ connection failed: %v", err)
			}
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()

			worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
			go worker.Start(queue.QueueName)

			notifier = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		} else {
			notifier = mailSender
		}
	}

	// 3. UseCases
	submitUC := usecase.NewSubmitEnquiryUseCase(leadRepo, notifier)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	updateUC := usecase.NewUpdateLeadStatusUseCase(leadRepo)
	deleteUC := usecase.NewDeleteLeadUseCase(leadRepo)

	// 4. Handlers
	enquiryHandler := handlers.NewEnquiryHandler(submitUC)
	leadHandler := handlers.NewLeadHandler(listUC, updateUC, deleteUC)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/enquiry", enquiryHandler.Handle)
	r.Get("/enquiry", enquiryHandler.HandleGet)
	r.Get("/leads", leadHandler.HandleList)
	r.Patch("/leads", leadHandler.HandleUpdateStatus)
	r.Delete("/leads", leadHandler.HandleDelete)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 CU Online leads API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
