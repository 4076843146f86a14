// Package catalog - catalog API controller.
package catalog

import (
	"net/http"

	"storefront/api/ctxutil"
	"storefront/api/middleware"
	"storefront/api/response"
	catalogapp "storefront/application/catalog"
	"storefront/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller catalog controller
type Controller struct {
	catalogService *catalogapp.Service
}

// NewController creates the catalog controller.
func NewController(catalogService *catalogapp.Service) *Controller {
	return &Controller{catalogService: catalogService}
}

// RegisterRoutes registers catalog routes. Reads are public, writes are
// admin only.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	productGroup := router.Group("/products")
	{
		productGroup.GET("", c.ListProducts)
		productGroup.GET("/:id", c.GetProduct)
	}

	adminGroup := router.Group("/products", middleware.RequireAdmin())
	{
		adminGroup.POST("", c.CreateProduct)
		adminGroup.PUT("/:id/active", c.SetProductActive)
		adminGroup.POST("/:id/restock", c.Restock)
	}
}

// ListProducts lists the catalog.
// GET /api/v1/products
func (c *Controller) ListProducts(ctx *gin.Context) {
	results, err := c.catalogService.ListProducts(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, results, "products retrieved successfully")
}

// GetProduct returns one product.
// GET /api/v1/products/:id
func (c *Controller) GetProduct(ctx *gin.Context) {
	productID := ctx.Param("id")
	if productID == "" {
		response.HandleError(ctx, errors.BadRequest("product ID is required"), "product ID is required", http.StatusBadRequest)
		return
	}

	result, err := c.catalogService.GetProduct(ctxutil.WithRequestID(ctx), productID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, result, "product retrieved successfully")
}

// CreateProduct adds a product. Admin only.
// POST /api/v1/products
func (c *Controller) CreateProduct(ctx *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.catalogService.CreateProduct(ctxutil.WithRequestID(ctx), &req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, result, "product created successfully")
}

// SetProductActive toggles availability. Admin only.
// PUT /api/v1/products/:id/active
func (c *Controller) SetProductActive(ctx *gin.Context) {
	productID := ctx.Param("id")
	if productID == "" {
		response.HandleError(ctx, errors.BadRequest("product ID is required"), "product ID is required", http.StatusBadRequest)
		return
	}

	var req catalogapp.SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.catalogService.SetProductActive(ctxutil.WithRequestID(ctx), productID, *req.Active)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, result, "product availability updated")
}

// Restock adds inbound inventory. Admin only.
// POST /api/v1/products/:id/restock
func (c *Controller) Restock(ctx *gin.Context) {
	productID := ctx.Param("id")
	if productID == "" {
		response.HandleError(ctx, errors.BadRequest("product ID is required"), "product ID is required", http.StatusBadRequest)
		return
	}

	var req catalogapp.RestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.catalogService.Restock(ctxutil.WithRequestID(ctx), productID, req.Quantity)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, result, "product restocked successfully")
}
