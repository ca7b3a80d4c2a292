package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	appdelivery "github.com/xiebiao/bookstore-integration/internal/application/delivery"
	"github.com/xiebiao/bookstore-integration/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookstore-integration/pkg/errors"
	"github.com/xiebiao/bookstore-integration/pkg/response"
)

// DeliveryHandler serves the delivery endpoints.
type DeliveryHandler struct {
	recordDeliveryUseCase *appdelivery.RecordDeliveryUseCase
}

// NewDeliveryHandler creates the delivery handler.
func NewDeliveryHandler(recordDeliveryUseCase *appdelivery.RecordDeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{recordDeliveryUseCase: recordDeliveryUseCase}
}

// UpdateDelivery records a dispatch for an order.
// @Summary      Update delivery information
// @Description  Creates a delivery record with status READY_FOR_DISPATCH
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body dto.UpdateDeliveryRequest true "Delivery details"
// @Success      201 {object} delivery.Delivery
// @Failure      400 {object} response.ErrorBody "Missing body or missing fields"
// @Failure      401 {object} response.ErrorBody
// @Router       /api/delivery/update [post]
func (h *DeliveryHandler) UpdateDelivery(c *gin.Context) {
	var req dto.UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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

	d, err := h.recordDeliveryUseCase.Execute(c.Request.Context(), appdelivery.RecordDeliveryRequest{
		OrderID: req.OrderID,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, d)
}
