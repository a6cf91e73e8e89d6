package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/edutrackr/edutrackr-api/api/swagger"
	"github.com/edutrackr/edutrackr-api/internal/handler"
	"github.com/edutrackr/edutrackr-api/internal/middleware"
	"github.com/edutrackr/edutrackr-api/internal/models"
	"github.com/edutrackr/edutrackr-api/internal/repository"
	"github.com/edutrackr/edutrackr-api/internal/service"
	"github.com/edutrackr/edutrackr-api/pkg/cache"
	"github.com/edutrackr/edutrackr-api/pkg/config"
	"github.com/edutrackr/edutrackr-api/pkg/jobs"
	"github.com/edutrackr/edutrackr-api/pkg/logger"
	corsmiddleware "github.com/edutrackr/edutrackr-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edutrackr/edutrackr-api/pkg/middleware/requestid"
)

// @title EduTrackr API
// @version 0.1.0
// @description Role-based education portal for students, parents and college staff
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsSvc := service.NewMetricsService()

	var cacheRepo *repository.CacheRepository
	if cfg.Redis.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
			defer client.Close() //nolint:errcheck
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.AITTL, logr, cacheRepo != nil)

	// Repositories. Everything except the optional Redis cache lives in
	// process memory, pre-seeded with the demo data set.
	flows := repository.NewFlowRepository(cfg.Login.FlowTTL)
	sessions := repository.NewSessionRepository()
	roster := repository.NewRosterRepository()
	records := repository.NewRecordsRepository()
	notices := repository.NewNoticeRepository()
	leaves := repository.NewLeaveRepository()
	schedule := repository.NewScheduleRepository()
	messages := repository.NewMessageRepository()
	partners := repository.NewPartnerRepository()
	board := repository.NewGamificationRepository()
	wellness := repository.NewWellnessRepository()

	codeQueue := jobs.NewQueue("verification-codes", func(_ context.Context, job jobs.Job) error {
		payload, _ := job.Payload.(map[string]string)
		logr.Info("verification code dispatched",
			zap.String("flow_id", payload["flow_id"]),
			zap.String("role", payload["role"]),
			zap.String("code", payload["code"]),
		)
		return nil
	}, jobs.QueueConfig{Workers: 1, Logger: logr})
	codeQueue.Start(ctx)
	defer codeQueue.Stop()

	noticeQueue := jobs.NewQueue("notice-broadcast", func(_ context.Context, job jobs.Job) error {
		payload, _ := job.Payload.(map[string]string)
		logr.Info("notice delivered",
			zap.String("notice_id", payload["notice_id"]),
			zap.String("student_id", payload["student_id"]),
		)
		return nil
	}, jobs.QueueConfig{Workers: cfg.Notices.Workers, Logger: logr})
	noticeQueue.Start(ctx)
	defer noticeQueue.Stop()

	authSvc := service.NewAuthService(flows, sessions, codeQueue, nil, logr, service.AuthConfig{
		TokenSecret:   cfg.JWT.Secret,
		TokenExpiry:   cfg.JWT.Expiration,
		Issuer:        cfg.JWT.Issuer,
		DispatchDelay: cfg.Login.DispatchDelay,
		VerifyDelay:   cfg.Login.VerifyDelay,
		StaffPassword: cfg.Login.StaffPassword,
	})
	viewSvc := service.NewViewService(sessions, logr)
	dashboardSvc := service.NewDashboardService(leaves, logr)
	aiSvc := service.NewAIService(cfg.AI, cacheSvc, metricsSvc, nil, logr, cfg.Cache.AITTL)
	scheduleSvc := service.NewScheduleService(schedule, logr)
	messageSvc := service.NewMessageService(messages, nil, logr)
	collegeSvc := service.NewCollegeService(roster, records, notices, leaves, noticeQueue, nil, logr)
	exportSvc := service.NewExportService(records, logr)
	partnerSvc := service.NewPartnerService(partners, messages, nil, logr)
	gamificationSvc := service.NewGamificationService(board, sessions, metricsSvc, nil, logr)
	wellnessSvc := service.NewWellnessService(wellness, nil, logr, time.Now().UnixNano())

	authHandler := handler.NewAuthHandler(authSvc, metricsSvc)
	viewHandler := handler.NewViewHandler(viewSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	studyHandler := handler.NewStudyHandler(aiSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	messageHandler := handler.NewMessageHandler(messageSvc)
	collegeHandler := handler.NewCollegeHandler(collegeSvc, exportSvc)
	partnerHandler := handler.NewPartnerHandler(partnerSvc)
	gamificationHandler := handler.NewGamificationHandler(gamificationSvc)
	wellnessHandler := handler.NewWellnessHandler(wellnessSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/flows", authHandler.StartFlow)
		auth.GET("/flows/:id", authHandler.GetFlow)
		auth.POST("/flows/:id/role", authHandler.SelectRole)
		auth.POST("/flows/:id/back", authHandler.Back)
		auth.POST("/flows/:id/details", authHandler.SubmitDetails)
		auth.PATCH("/flows/:id/code", authHandler.UpdateCodeDigit)
		auth.POST("/flows/:id/verify", authHandler.VerifyCode)
	}

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)

		protected.POST("/views/navigate", viewHandler.Navigate)
		protected.GET("/views/current", viewHandler.Current)
		protected.GET("/views/navigation", viewHandler.Navigation)
		protected.GET("/views/:view/title", viewHandler.Title)
		protected.GET("/views/:view/dispatch", viewHandler.Dispatch)

		protected.GET("/dashboard", dashboardHandler.Summary)

		protected.POST("/study/plan", studyHandler.GeneratePlan)
		protected.POST("/study/flashcards", studyHandler.GenerateFlashcards)
		protected.POST("/study/quiz", studyHandler.GenerateQuiz)
		protected.POST("/study/tutor", studyHandler.AskTutor)

		protected.GET("/schedule/week", scheduleHandler.Week)
		protected.GET("/schedule/days/:day", scheduleHandler.Day)
		protected.GET("/schedule/assignments", scheduleHandler.Assignments)
		protected.POST("/schedule/assignments/:id/toggle", scheduleHandler.ToggleAssignment)
		protected.GET("/schedule/timer", scheduleHandler.TimerPresets)

		protected.GET("/messages", messageHandler.Thread)
		protected.POST("/messages", messageHandler.Send)

		protected.GET("/partners/deck", partnerHandler.Deck)
		protected.GET("/partners/current", partnerHandler.Current)
		protected.POST("/partners/swipe", partnerHandler.Swipe)
		protected.GET("/partners/matches", partnerHandler.Matches)
		protected.GET("/partners/:id/chat", partnerHandler.Chat)
		protected.POST("/partners/:id/chat", partnerHandler.SendToPartner)

		protected.GET("/gamification/leaderboard", gamificationHandler.Leaderboard)
		protected.GET("/gamification/badges", gamificationHandler.Badges)
		protected.POST("/gamification/xp", gamificationHandler.AwardXP)

		protected.GET("/wellness/affirmation", wellnessHandler.Affirmation)
		protected.GET("/wellness/breathing", wellnessHandler.Breathing)
		protected.POST("/wellness/moods", wellnessHandler.CheckIn)
		protected.GET("/wellness/moods", wellnessHandler.Moods)

		// Read endpoints are open to every authenticated role; mutations
		// require the staff role.
		college := protected.Group("/college")
		{
			college.GET("/roster", collegeHandler.Roster)
			college.GET("/attendance", collegeHandler.AttendanceSheets)
			college.GET("/marks", collegeHandler.Marks)
			college.GET("/notices", collegeHandler.Notices)
			college.GET("/leaves", collegeHandler.Leaves)

			staff := college.Group("")
			staff.Use(middleware.RequireRoles(models.RoleCollege))
			{
				staff.POST("/attendance", collegeHandler.SubmitAttendance)
				staff.POST("/marks", collegeHandler.PublishMarks)
				staff.POST("/notices", collegeHandler.ComposeNotice)
				staff.POST("/leaves/:id/decision", collegeHandler.DecideLeave)
				staff.GET("/exports/marks", collegeHandler.ExportMarks)
				staff.GET("/exports/attendance", collegeHandler.ExportAttendance)
			}
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "cache", cacheSvc.Enabled())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
