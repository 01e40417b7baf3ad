package initialize

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"medora-backend/app/controllers"
	"medora-backend/app/db"
	jwtutil "medora-backend/app/jwt"
	"medora-backend/app/middleware"
	"medora-backend/app/models"
	"medora-backend/app/password"
	"medora-backend/app/repo"
	"medora-backend/app/services"
	"medora-backend/config"
	"medora-backend/router"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
	Auth   *services.AuthService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Connect(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	users := repo.NewUserRepository(gdb)
	hasher := password.NewHasher(cfg.BcryptCost)
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), ExpMin: cfg.JWT.ExpMin}
	authSvc := services.NewAuthService(users, hasher, signer)

	authCtrl := controllers.NewAuthController(authSvc)
	healthCtrl := controllers.NewHealthController()

	h := router.NewRouter(authCtrl, healthCtrl)
	h = middleware.Logging(h)
	h = middleware.RequestID(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authSvc}, nil
}
