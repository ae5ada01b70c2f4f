package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "dealflow-backend/internal/adapter/http"
	mw "dealflow-backend/internal/adapter/middleware"
	"dealflow-backend/internal/adapter/repository/mysql"
	"dealflow-backend/internal/config"
	"dealflow-backend/internal/domain/deal"
	"dealflow-backend/internal/infrastructure/cache"
	"dealflow-backend/internal/infrastructure/db"
	"dealflow-backend/internal/infrastructure/events"
	analysisuc "dealflow-backend/internal/usecase/analysis"
	dealuc "dealflow-backend/internal/usecase/deal"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&deal.Deal{}, &deal.ActivityEntry{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	engineCfg := analysisuc.DefaultConfig()
	if cfg.WholesaleFee > 0 {
		engineCfg.WholesaleFee = cfg.WholesaleFee
	}
	if cfg.CashThreshold > 0 {
		engineCfg.CashThreshold = cfg.CashThreshold
	}
	engine := analysisuc.NewEngine(engineCfg)

	mode, _ := deal.ParseMode(cfg.PipelineMode)
	repo := mysql.NewDealRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	pub := events.NewRedisPublisher(rdb)
	uc := dealuc.NewUsecase(repo, uow, engine, pub, deal.Rules{Mode: mode}, cfg.DealIDPrefix)

	h := httpadp.NewHandler()
	dh := httpadp.NewDealHandler(uc)
	ah := httpadp.NewAnalysisHandler(engine)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idemp := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.POST("/analyze", ah.Analyze)

	e.GET("/deals", dh.ListDeals)
	e.GET("/deals/stats", dh.StatusBreakdown)
	e.GET("/deals/:deal_id", dh.GetDeal)
	e.POST("/deals", dh.CreateDeal, idemp)
	e.PATCH("/deals/:deal_id/status", dh.UpdateStatus, idemp)
	e.POST("/deals/:deal_id/offer", dh.SubmitOffer, idemp)
	e.POST("/deals/:deal_id/reanalyze", dh.Reanalyze, idemp)
	e.POST("/deals/:deal_id/activity", dh.AddActivity, idemp)
	e.DELETE("/deals/:deal_id", dh.DeleteDeal)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
