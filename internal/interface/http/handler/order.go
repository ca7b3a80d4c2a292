package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookstore-integration/internal/application/order"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstore-integration/pkg/errors"
	"github.com/xiebiao/bookstore-integration/pkg/response"
)

// OrderHandler serves the sales endpoints.
type OrderHandler struct {
	placeOrderUseCase *apporder.PlaceOrderUseCase
}

// NewOrderHandler creates the sales handler.
func NewOrderHandler(placeOrderUseCase *apporder.PlaceOrderUseCase) *OrderHandler {
	return &OrderHandler{placeOrderUseCase: placeOrderUseCase}
}

// PlaceOrder records a purchase, decrementing the book's stock.
// @Summary      Place a new order
// @Description  Checks stock, records the order as PAID, then decrements inventory
// @Tags         Sales
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body dto.PlaceOrderRequest true "Order details"
// @Success      201 {object} order.Order
// @Failure      400 {object} response.ErrorBody "Missing body, missing fields, or insufficient stock"
// @Failure      401 {object} response.ErrorBody
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Absent and unreadable bodies collapse into one error, like the
		// missing/invalid JSON distinction the API never made.
		response.Error(c, apperrors.ErrMissingBody)
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		response.Error(c, apperrors.New(
			apperrors.ErrCodeMissingFields,
			"Missing fields: "+strings.Join(missing, ", "),
		))
		return
	}

	o, err := h.placeOrderUseCase.Execute(c.Request.Context(), apporder.PlaceOrderRequest{
		BookID:   req.BookID,
		Quantity: req.Quantity,
		Customer: req.Customer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, o)
}
