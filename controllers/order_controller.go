package controllers

import (
	"errors"
	"net/http"

	"expressfood/pkg/resp"
	"expressfood/services"
	"expressfood/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

type OrderItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	Address string             `json:"address" binding:"required"`
	Total   *float64           `json:"total" binding:"required"`
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// POST /order
func (oc *OrderController) Create(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in := services.PlaceOrderInput{
		Address: req.Address,
		Total:   req.Total,
		Items:   make([]services.OrderItemIn, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, services.OrderItemIn{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	view, err := oc.Service.Place(utils.CurrentUserID(c), &in)
	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMissingAddress),
		errors.Is(err, services.ErrInvalidTotal),
		errors.Is(err, services.ErrInvalidQuantity):
		resp.BadRequest(c, err.Error())
		return
	case errors.Is(err, services.ErrProductNotFound):
		resp.NotFound(c, err.Error())
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GET /orders
func (oc *OrderController) History(c *gin.Context) {
	views, err := oc.Service.History(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
