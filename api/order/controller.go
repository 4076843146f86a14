/*
Package order - order API controller.

Responsibilities:
1. Parse and bind HTTP parameters.
2. Call the application service.
3. Hand results and errors to the response package; HandleAppError maps
   business errors to status codes via errors.FromDomainError.
*/
package order

import (
	"net/http"

	"storefront/api/ctxutil"
	"storefront/api/middleware"
	"storefront/api/response"
	orderapp "storefront/application/order"
	"storefront/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller order controller
type Controller struct {
	orderService *orderapp.Service
}

// NewController creates the order controller.
func NewController(orderService *orderapp.Service) *Controller {
	return &Controller{orderService: orderService}
}

// RegisterRoutes registers order routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders", middleware.RequireUser())
	{
		orderGroup.POST("", c.CreateOrder)
		orderGroup.GET("", c.ListOrders)
		orderGroup.GET("/:id", c.GetOrder)
		orderGroup.POST("/:id/cancel", c.CancelOrder)
	}

	adminGroup := router.Group("/orders", middleware.RequireAdmin())
	{
		adminGroup.PUT("/:id/payment-status", c.UpdatePaymentStatus)
		adminGroup.PUT("/:id/delivery-status", c.UpdateDeliveryStatus)
	}

	router.POST("/discounts/validate", c.ValidateDiscount)
}

// CreateOrder places an order for the calling user.
// POST /api/v1/orders
func (c *Controller) CreateOrder(ctx *gin.Context) {
	var req orderapp.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.CreateOrder(ctxutil.WithRequestID(ctx), middleware.UserID(ctx), &req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	middleware.CountOrderCreated()
	response.HandleCreated(ctx, result, "order created successfully")
}

// GetOrder returns one order. Owners see their own; admins see any.
// GET /api/v1/orders/:id
func (c *Controller) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.GetOrder(ctxutil.WithRequestID(ctx), orderID, middleware.UserID(ctx), middleware.UserRole(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "order retrieved successfully")
}

// ListOrders returns the calling user's orders.
// GET /api/v1/orders
func (c *Controller) ListOrders(ctx *gin.Context) {
	results, err := c.orderService.ListUserOrders(ctxutil.WithRequestID(ctx), middleware.UserID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, results, "orders retrieved successfully")
}

// CancelOrder cancels an order and restores its stock.
// POST /api/v1/orders/:id/cancel
func (c *Controller) CancelOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	var req orderapp.CancelOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.CancelOrder(ctxutil.WithRequestID(ctx), orderID, middleware.UserID(ctx), middleware.UserRole(ctx), req.Reason)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	middleware.CountOrderCancelled()
	response.HandleSuccess(ctx, result, "order cancelled successfully")
}

// UpdatePaymentStatus records a payment result. Admin only.
// PUT /api/v1/orders/:id/payment-status
func (c *Controller) UpdatePaymentStatus(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	var req orderapp.UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.UpdatePaymentStatus(ctxutil.WithRequestID(ctx), orderID, &req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "payment status updated successfully")
}

// UpdateDeliveryStatus advances the delivery status. Admin only.
// PUT /api/v1/orders/:id/delivery-status
func (c *Controller) UpdateDeliveryStatus(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	var req orderapp.UpdateDeliveryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.UpdateDeliveryStatus(ctxutil.WithRequestID(ctx), orderID, &req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "delivery status updated successfully")
}

// ValidateDiscount checks a discount code without spending a use.
// POST /api/v1/discounts/validate
func (c *Controller) ValidateDiscount(ctx *gin.Context) {
	var req orderapp.ValidateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.ValidateDiscountCode(ctxutil.WithRequestID(ctx), &req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "discount code checked")
}
