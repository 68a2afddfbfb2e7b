package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/postplanner/configs"
	"github.com/maheshrc27/postplanner/internal/api/handlers"
	"github.com/maheshrc27/postplanner/internal/api/middleware"
	job "github.com/maheshrc27/postplanner/internal/jobs"
	"github.com/maheshrc27/postplanner/internal/metrics"
	"github.com/maheshrc27/postplanner/internal/queue"
	"github.com/maheshrc27/postplanner/internal/relay"
	"github.com/maheshrc27/postplanner/internal/repository"
	"github.com/maheshrc27/postplanner/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}
	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	postRepo := repository.NewPostRepository(db)
	postMediaRepo := repository.NewPostMediaRepository(db)
	pillarRepo := repository.NewPillarRepository(db)
	relayHistoryRepo := repository.NewRelayHistoryRepository(db)
	store := repository.NewEventStore(db, postRepo, postMediaRepo, pillarRepo)

	r2Client, err := service.NewR2Client(context.Background(), cfg.R2)
	if err != nil {
		log.Fatalf("Failed to configure media storage: %v", err)
	}

	dueScheduler := queue.NewScheduler(client, time.Local)
	scheduleService := service.NewScheduleService(store, dueScheduler, m)
	postService := service.NewPostService(store)
	pillarService := service.NewPillarService(store)
	mediaService := service.NewMediaService(r2Client, cfg.R2)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	catalogH := handlers.NewCatalogHandler()
	api.Get("/channels", catalogH.ListChannels)
	api.Get("/placements", catalogH.Placements)

	calendar := handlers.NewCalendarHandler(scheduleService)
	api.Get("/calendar", calendar.Month)

	post := handlers.NewPostHandler(scheduleService, postService, pillarService, cfg.SubmitTimeout)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts/schedule", post.SchedulePosts)
	api.Post("/posts/remove", post.RemovePost)

	api.Post("/preview", handlers.NewPreviewHandler().Preview)
	api.Post("/media", handlers.NewMediaHandler(mediaService).Upload)
	api.Get("/pillars", handlers.NewPillarHandler(pillarService).ListPillars)

	// cron jobs
	pillarJob := job.NewPillarRefreshJob(pillarService, time.Minute)

	//queue
	queueW := queue.NewQueue(store, relayHistoryRepo, relay.NewWebhookClient(cfg.AutomationWebhookURL, nil), m)

	c := cron.New()
	if err := pillarJob.Schedule(c, cfg.PillarRefreshSpec); err != nil {
		log.Fatalf("Invalid PILLAR_REFRESH_SPEC: %v", err)
	}
	c.Start()
	defer c.Stop()

	server := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: 10,
	})
	go func() {
		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePostDue, queueW.HandlePostDueTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.ListenAddr)

	gracefulShutdown(app, server)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, server *asynq.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Failed to shut down server: %v", err)
	}
	server.Shutdown()

	log.Println("Server shutdown complete.")
}
