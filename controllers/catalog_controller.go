package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"expressfood/pkg/resp"
	"expressfood/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service *services.CatalogService
}

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Service: s}
}

// GET /products
func (ctl *CatalogController) Products(c *gin.Context) {
	products, err := ctl.Service.Products()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /restaurants
func (ctl *CatalogController) Restaurants(c *gin.Context) {
	rests, err := ctl.Service.Restaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rests)
}

// GET /restaurants/:id/products
func (ctl *CatalogController) RestaurantProducts(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	products, err := ctl.Service.ProductsForRestaurant(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
