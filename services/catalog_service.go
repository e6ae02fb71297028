package services

import (
	"expressfood/entity"
	"expressfood/repository"
)

// CatalogService serves the read-only browsing endpoints.
type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// ----- wire DTOs (camelCase; storage columns stay snake_case) -----

type ProductView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type RestaurantView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Address     string `json:"address,omitempty"`
}

func toProductView(p *entity.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

func (s *CatalogService) Products() ([]ProductView, error) {
	products, err := s.Repo.ListProducts()
	if err != nil {
		return nil, err
	}
	out := make([]ProductView, 0, len(products))
	for i := range products {
		out = append(out, toProductView(&products[i]))
	}
	return out, nil
}

func (s *CatalogService) Restaurants() ([]RestaurantView, error) {
	rests, err := s.Repo.ListRestaurants()
	if err != nil {
		return nil, err
	}
	out := make([]RestaurantView, 0, len(rests))
	for _, r := range rests {
		out = append(out, RestaurantView{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			LogoURL:     r.LogoURL,
			Address:     r.Address,
		})
	}
	return out, nil
}

// ProductsForRestaurant filters the catalog by restaurant, verifying the
// restaurant exists first.
func (s *CatalogService) ProductsForRestaurant(restaurantID uint) ([]ProductView, error) {
	ok, err := s.Repo.RestaurantExists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	products, err := s.Repo.ListProductsByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]ProductView, 0, len(products))
	for i := range products {
		out = append(out, toProductView(&products[i]))
	}
	return out, nil
}
