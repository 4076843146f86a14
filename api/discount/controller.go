// Package discount - discount code administration controller.
package discount

import (
	"net/http"

	"storefront/api/ctxutil"
	"storefront/api/middleware"
	"storefront/api/response"
	discountapp "storefront/application/discount"

	"github.com/gin-gonic/gin"
)

// Controller discount code controller
type Controller struct {
	discountService *discountapp.Service
}

// NewController creates the discount controller.
func NewController(discountService *discountapp.Service) *Controller {
	return &Controller{discountService: discountService}
}

// RegisterRoutes registers discount administration routes. Validation of
// a code against a cart lives with the order controller; these routes
// manage the code definitions themselves.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	adminGroup := router.Group("/discounts", middleware.RequireAdmin())
	{
		adminGroup.POST("", c.CreateCode)
		adminGroup.GET("", c.ListCodes)
	}
}

// CreateCode defines a discount code. Admin only.
// POST /api/v1/discounts
func (c *Controller) CreateCode(ctx *gin.Context) {
	var req discountapp.CreateCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.discountService.CreateCode(ctxutil.WithRequestID(ctx), &req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, result, "discount code created successfully")
}

// ListCodes lists all discount codes. Admin only.
// GET /api/v1/discounts
func (c *Controller) ListCodes(ctx *gin.Context) {
	results, err := c.discountService.ListCodes(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, results, "discount codes retrieved successfully")
}
