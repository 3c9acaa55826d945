// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/your-org/techstore-backend/internal/domain/order"
	"github.com/your-org/techstore-backend/internal/domain/product"
	"github.com/your-org/techstore-backend/internal/domain/upload"
	"github.com/your-org/techstore-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: categories before products, orders before items
	models := []interface{}{
		&user.User{},

		&product.Category{},
		&product.Product{},
		&product.Review{},

		&order.Order{},
		&order.OrderItem{},

		&upload.UploadedFile{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",

		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_reviews_product_created ON reviews(product_id, created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_order_status ON orders(order_status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_payment_status ON orders(payment_status)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

// SeedInitialData seeds development data: an admin account plus a
// small IT product catalog.
func (m *Migration) SeedInitialData() error {
	log.Println("🔄 Seeding initial data...")

	var userCount int64
	if err := m.db.Model(&user.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("Admin1234"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := user.User{
			ID:       uuid.New().String(),
			Email:    "admin@techstore.example",
			Password: string(hash),
			Name:     "Store Admin",
			Role:     user.RoleAdmin,
			IsActive: true,
		}
		if err := m.db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		log.Println("Seeded admin account admin@techstore.example")
	}

	var categoryCount int64
	if err := m.db.Model(&product.Category{}).Count(&categoryCount).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}

	if categoryCount == 0 {
		categories := []product.Category{
			{ID: uuid.New().String(), Name: "Laptops", Slug: "laptops", Description: "Notebooks and ultrabooks", IsActive: true},
			{ID: uuid.New().String(), Name: "Accessories", Slug: "accessories", Description: "Keyboards, mice, and more", IsActive: true},
			{ID: uuid.New().String(), Name: "Monitors", Slug: "monitors", Description: "Displays for work and play", IsActive: true},
		}
		if err := m.db.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		products := []product.Product{
			{
				ID:         uuid.New().String(),
				Name:       "ROG Zephyrus G14",
				Slug:       "rog-zephyrus-g14",
				Price:      25000000,
				Stock:      10,
				CategoryID: categories[0].ID,
				Images:     []string{"/uploads/seed/g14.jpg"},
				IsActive:   true,
				Specifications: map[string]string{
					"cpu": "Ryzen 9", "ram": "32GB", "storage": "1TB SSD",
				},
			},
			{
				ID:         uuid.New().String(),
				Name:       "MX Master 3S",
				Slug:       "mx-master-3s",
				Price:      1500000,
				Stock:      40,
				CategoryID: categories[1].ID,
				Images:     []string{"/uploads/seed/mx3s.jpg"},
				IsActive:   true,
			},
			{
				ID:         uuid.New().String(),
				Name:       "Dell UltraSharp U2723QE",
				Slug:       "dell-ultrasharp-u2723qe",
				Price:      9800000,
				Stock:      15,
				CategoryID: categories[2].ID,
				Images:     []string{"/uploads/seed/u2723qe.jpg"},
				IsActive:   true,
			},
		}
		if err := m.db.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		log.Printf("Seeded %d categories and %d products", len(categories), len(products))
	}

	log.Println("✅ Initial data seeding completed")
	return nil
}

// GetTableInfo logs row counts for the main tables
func (m *Migration) GetTableInfo() {
	tables := []string{"users", "categories", "products", "reviews", "orders", "order_items", "uploaded_files"}

	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			log.Printf("Table %s: error counting rows: %v", table, err)
			continue
		}
		log.Printf("Table %s: %d rows", table, count)
	}
}
