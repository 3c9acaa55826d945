// internal/domain/product/review.go
package product

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewCreateRequest represents review creation data
type ReviewCreateRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// GetReviews retrieves reviews for a product, newest first
func (s *Service) GetReviews(productID string) ([]Review, error) {
	var reviews []Review
	if err := s.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview stores a review and recomputes the product's aggregate
// rating and review count in the same transaction.
func (s *Service) CreateReview(productID, userID, userName string, req *ReviewCreateRequest) (*Review, error) {
	var product Product
	if result := s.db.Where("id = ?", productID).First(&product); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	review := Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		var stats struct {
			Avg   float64
			Count int64
		}
		if err := tx.Model(&Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Where("product_id = ?", productID).
			Scan(&stats).Error; err != nil {
			return fmt.Errorf("failed to aggregate reviews: %w", err)
		}

		return tx.Model(&Product{}).Where("id = ?", productID).Updates(map[string]interface{}{
			"rating":        stats.Avg,
			"total_reviews": stats.Count,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}
