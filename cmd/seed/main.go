package main

import (
	stdlog "log"
	"os"
	"time"

	"elegance/internal/domain/model"
	"elegance/internal/infra/db"
	infralog "elegance/internal/infra/log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 初期データ投入。冪等なので何度実行してもよい。
// 管理者はAPIから作れないため、初回デプロイでは必ずこれを流す。
const (
	seedAdminEmail    = "admin@twins-elegance.com"
	seedAdminPassword = "Admin@2025"
)

func seedProducts() []model.Product {
	now := time.Now()
	return []model.Product{
		{
			Name:        "Collier en Or 18K",
			Price:       "299.99",
			Image:       "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=500",
			Category:    "Colliers",
			Description: "Magnifique collier en or 18 carats avec pendentif élégant. Parfait pour toutes les occasions.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			Name:        "Bracelet Argent Sterling",
			Price:       "89.99",
			Image:       "https://images.unsplash.com/photo-1603561596112-0d0395e0e5f5?w=500",
			Category:    "Bracelets",
			Description: "Bracelet en argent sterling avec motifs délicats. Design moderne et intemporel.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			Name:        "Boucles d'Oreilles Diamants",
			Price:       "599.99",
			Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=500",
			Category:    "Boucles d'Oreilles",
			Description: "Boucles d'oreilles en or blanc avec diamants scintillants. Élégance et raffinement.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			Name:        "Bague Solitaire Or Blanc",
			Price:       "449.99",
			Image:       "https://images.unsplash.com/photo-1603561591411-07134e71a2a9?w=500",
			Category:    "Bagues",
			Description: "Bague solitaire en or blanc avec pierre précieuse. Un classique intemporel.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			Name:        "Montre Classique Or Rose",
			Price:       "899.99",
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
			Category:    "Montres",
			Description: "Montre classique en or rose avec cadran élégant. Design intemporel et raffiné.",
			InStock:     true,
			CreatedAt:   now,
		},
	}
}

// 管理者がいなければbcryptハッシュ付きで1人作る
func seedAdmin(gormDB *gorm.DB) (bool, error) {
	var count int64
	if err := gormDB.Model(&model.Admin{}).Where("email = ?", seedAdminEmail).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := &model.Admin{
		Email:     seedAdminEmail,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	return true, gormDB.Create(admin).Error
}

// 商品テーブルが空のときだけ投入する
func seedProductCatalog(gormDB *gorm.DB) (int, error) {
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	products := seedProducts()
	if err := gormDB.Create(&products).Error; err != nil {
		return 0, err
	}
	return len(products), nil
}

func main() {
	//.envが無ければ環境変数だけで動く
	_ = godotenv.Load()

	logger, err := infralog.New(os.Getenv("LOG_LEVEL"), true)
	if err != nil {
		stdlog.Fatal(err)
	}

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

	created, err := seedAdmin(gormDB)
	if err != nil {
		stdlog.Fatal(err)
	}
	if created {
		logger.Info("admin user created", "email", seedAdminEmail)
	} else {
		logger.Info("admin user already exists", "email", seedAdminEmail)
	}

	n, err := seedProductCatalog(gormDB)
	if err != nil {
		stdlog.Fatal(err)
	}
	if n > 0 {
		logger.Info("products created", "count", n)
	} else {
		logger.Info("products already exist")
	}

	logger.Info("database seeded")
}
