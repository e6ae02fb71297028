package repository

import (
	"expressfood/entity"

	"gorm.io/gorm"
)

// CatalogRepository covers the read-only browsing side: restaurants and
// their products.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) ListProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Find(&products).Error
	return products, err
}

func (r *CatalogRepository) ListRestaurants() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *CatalogRepository) RestaurantExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CatalogRepository) ListProductsByRestaurant(restaurantID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("restaurant_id = ?", restaurantID).Find(&products).Error
	return products, err
}

// FindProduct runs on the given handle so order placement can resolve
// products inside its transaction.
func (r *CatalogRepository) FindProduct(tx *gorm.DB, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := tx.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
