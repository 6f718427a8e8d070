package initialize

import (
	"fmt"
	"net/http"

	"quiz-portal/app/controllers"
	"quiz-portal/app/db"
	"quiz-portal/app/middleware"
	"quiz-portal/app/models"
	"quiz-portal/app/repo"
	"quiz-portal/app/services"
	"quiz-portal/config"
	"quiz-portal/global"
	"quiz-portal/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Accounts *services.AccountService
	Refdata  *services.ReferenceService
	Quiz     *services.QuizService
}

// Build wires config -> db -> repos -> services -> controllers -> router.
// A storage failure is not fatal: the app comes up degraded, serving static
// pages while API routes report the failure, instead of exiting.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	static := controllers.NewStaticController(cfg.Server.StaticDir)

	gdb, err := connectAndSeed(cfg)
	if err != nil {
		global.Logger.Error().Err(err).Msg("storage unavailable, serving degraded")
		h := middleware.Logging(router.NewDegraded(static, err))
		return &App{Cfg: cfg, Router: h}, nil
	}
	global.Mdb = gdb

	// Services
	accountRepo := repo.NewAccountRepository(gdb)
	paramRepo := repo.NewSystemParamRepository(gdb)
	menuRepo := repo.NewMenuRepository(gdb)
	quizRepo := repo.NewQuizRepository(gdb)
	accountSvc := services.NewAccountService(accountRepo)
	refSvc := services.NewReferenceService(paramRepo, menuRepo)
	quizSvc := services.NewQuizService(quizRepo)

	if err := accountSvc.EnsureAdmin(cfg.Seed.AdminUser, cfg.Seed.AdminPass); err != nil {
		global.Logger.Warn().Err(err).Msg("ensure admin account")
	}
	if err := quizSvc.Seed(); err != nil {
		global.Logger.Warn().Err(err).Msg("seed quiz bank")
	}

	// Controllers
	authCtrl := controllers.NewAuthController(accountSvc)
	memberCtrl := controllers.NewMemberController(accountSvc)
	paramCtrl := controllers.NewParamController(refSvc)
	menuCtrl := controllers.NewMenuController(refSvc)
	quizCtrl := controllers.NewQuizController(quizSvc)
	mw := &middleware.Auth{Accounts: accountSvc}

	h := router.NewRouter(static, authCtrl, memberCtrl, paramCtrl, menuCtrl, quizCtrl, mw)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Accounts: accountSvc, Refdata: refSvc, Quiz: quizSvc}, nil
}

func connectAndSeed(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Path: cfg.DB.Path,
		Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&models.Account{}, &models.SystemParam{}, &models.MenuItem{}, &models.QuizQuestion{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gdb, nil
}
