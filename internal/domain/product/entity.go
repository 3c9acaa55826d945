// internal/domain/product/entity.go
package product

import (
	"time"

	"gorm.io/gorm"
)

// Product represents the product entity
type Product struct {
	ID             string            `gorm:"primaryKey;size:36" json:"id"`
	Name           string            `gorm:"not null;size:255" json:"name"`
	Slug           string            `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description    string            `gorm:"type:text" json:"description"`
	Specifications map[string]string `gorm:"type:jsonb;serializer:json" json:"specifications"`
	Price          int64             `gorm:"not null" json:"price"` // Rupiah, no fractional unit
	Stock          int               `gorm:"default:0" json:"stock"`
	CategoryID     string            `gorm:"not null;index;size:36" json:"category_id"`
	Images         []string          `gorm:"type:jsonb;serializer:json" json:"images"` // First entry is the primary image
	Rating         float64           `gorm:"default:0" json:"rating"`
	TotalReviews   int               `gorm:"default:0" json:"total_reviews"`
	IsActive       bool              `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Reviews  []Review `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`
}

// Category represents product categories
type Category struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"size:500" json:"description"`
	Image       string         `gorm:"size:500" json:"image"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// Review represents a customer product review
type Review struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ProductID string    `gorm:"not null;index;size:36" json:"product_id"`
	UserID    string    `gorm:"not null;index;size:36" json:"user_id"`
	UserName  string    `gorm:"size:255" json:"user_name"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrimaryImage returns the first image URL or empty string
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Snapshot is a copied-at-add-time view of a product held inside cart
// and wishlist entries. It does not track later catalog changes.
type Snapshot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Price    int64    `json:"price"`
	Stock    int      `json:"stock"`
	Images   []string `json:"images"`
	IsActive bool     `json:"is_active"`
}

// ToSnapshot copies the fields the client-side containers carry
func (p *Product) ToSnapshot() Snapshot {
	images := make([]string, len(p.Images))
	copy(images, p.Images)
	return Snapshot{
		ID:       p.ID,
		Name:     p.Name,
		Slug:     p.Slug,
		Price:    p.Price,
		Stock:    p.Stock,
		Images:   images,
		IsActive: p.IsActive,
	}
}

// PrimaryImage returns the first image URL or empty string
func (s Snapshot) PrimaryImage() string {
	if len(s.Images) == 0 {
		return ""
	}
	return s.Images[0]
}

// IsComplete reports whether the snapshot carries enough data to take
// part in aggregate computations. Incomplete snapshots are skipped by
// totals rather than failing them.
func (s Snapshot) IsComplete() bool {
	return s.ID != "" && s.Name != ""
}
