package services

import (
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"expressfood/entity"
	"expressfood/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CatalogRepo *repository.CatalogRepository

	// orders placed without a token are attributed to this user
	AnonUserID uint
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	catalogRepo *repository.CatalogRepository,
	anonUserID uint,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CatalogRepo: catalogRepo, AnonUserID: anonUserID}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type PlaceOrderInput struct {
	Address string        `json:"address"`
	Total   *float64      `json:"total"`
	Items   []OrderItemIn `json:"items"`
}

type OrderItemView struct {
	Product  ProductView `json:"product"`
	Quantity int         `json:"quantity"`
}

type OrderView struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"userId"`
	Address   string          `json:"address"`
	Total     float64         `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []OrderItemView `json:"items"`
}

// totals arrive as floats; a cent of slack absorbs their rounding
const totalTolerance = 0.01

// Place runs the order workflow: validate, persist header then items in
// one transaction, and assemble the response with full product detail.
// Any missing product aborts the whole transaction.
func (s *OrderService) Place(userID uint, in *PlaceOrderInput) (*OrderView, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, ErrMissingAddress
	}
	if in.Total == nil || *in.Total < 0 {
		return nil, ErrInvalidTotal
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	if userID == 0 {
		userID = s.AnonUserID
	}

	var out *OrderView
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Address: strings.TrimSpace(in.Address),
			Total:   *in.Total,
			UserID:  userID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		var sum float64
		items := make([]OrderItemView, 0, len(in.Items))
		for _, it := range in.Items {
			p, err := s.CatalogRepo.FindProduct(tx, it.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}

			oi := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: p.ID,
				Quantity:  it.Quantity,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			sum += p.Price * float64(it.Quantity)
			items = append(items, OrderItemView{Product: toProductView(p), Quantity: it.Quantity})
		}

		// the submitted total must match the line items
		if math.Abs(sum-*in.Total) > totalTolerance {
			return ErrInvalidTotal
		}

		out = &OrderView{
			ID:        order.ID,
			UserID:    order.UserID,
			Address:   order.Address,
			Total:     order.Total,
			CreatedAt: order.CreatedAt,
			Items:     items,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// History returns the user's orders newest first. Items whose product no
// longer resolves are skipped with a warning instead of failing the
// read; old orders must stay readable even after catalog changes.
func (s *OrderService) History(userID uint) ([]OrderView, error) {
	if userID == 0 {
		userID = s.AnonUserID
	}

	orders, err := s.Repo.ListOrdersForUser(userID)
	if err != nil {
		return nil, err
	}

	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		rows, err := s.Repo.GetOrderItems(o.ID)
		if err != nil {
			return nil, err
		}

		items := make([]OrderItemView, 0, len(rows))
		for _, oi := range rows {
			p, err := s.CatalogRepo.FindProduct(s.DB, oi.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("order %d references missing product %d, skipping item", o.ID, oi.ProductID)
					continue
				}
				return nil, err
			}
			items = append(items, OrderItemView{Product: toProductView(p), Quantity: oi.Quantity})
		}

		out = append(out, OrderView{
			ID:        o.ID,
			UserID:    o.UserID,
			Address:   o.Address,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
			Items:     items,
		})
	}
	return out, nil
}
