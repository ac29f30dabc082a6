package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/server/http/dto"
)

// ProductHandler serves the public catalog and admin product creation.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler creates ProductHandler instance.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
		return
	}

	product, err := h.facade.AddProduct(c.Request.Context(), &model.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		InStock:     req.InStock,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}
