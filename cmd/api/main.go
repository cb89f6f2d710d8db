package main

import (
	stdlog "log"

	"elegance/internal/config"
	"elegance/internal/domain/model"
	"elegance/internal/handler"
	"elegance/internal/infra/db"
	infralog "elegance/internal/infra/log"
	infraRepo "elegance/internal/infra/repository"
	"elegance/internal/middleware"
	"elegance/internal/usecase"
	"elegance/internal/validator"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

func main() {
	//.envが無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}

	logger, err := infralog.New(cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		stdlog.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		stdlog.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.Customer{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		stdlog.Fatal(err)
	}

	//Repository（GORM実装）生成
	adminRepo := infraRepo.NewAdminGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authValidator := validator.NewAuthValidator()
	customerAuthUC := usecase.NewCustomerAuthUsecase(cfg, customerRepo, orderRepo, orderItemRepo, authValidator)
	adminUC := usecase.NewAdminUsecase(cfg, adminRepo, productRepo, orderRepo, customerRepo)
	productUC := usecase.NewProductUsecase(productRepo, txManager)
	customerUC := usecase.NewCustomerUsecase(customerRepo, orderRepo, orderItemRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderItemRepo, customerRepo)

	//Handler生成
	customerAuthH := handler.NewCustomerAuthHandler(customerAuthUC)
	adminH := handler.NewAdminHandler(adminUC, orderUC, customerUC)
	productH := handler.NewProductHandler(productUC)
	customerH := handler.NewCustomerHandler(customerUC)
	orderH := handler.NewOrderHandler(orderUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(logger))

	customerAuthH.RegisterRoutes(e, cfg)
	adminH.RegisterRoutes(e, cfg)
	productH.RegisterRoutes(e, cfg)
	customerH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr)
	if err := e.Start(addr); err != nil {
		stdlog.Fatal(err)
	}
}
