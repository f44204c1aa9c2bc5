package controllers

import (
	"fmt"
	"strconv"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/pkg/resp"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/services"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/utils"

	"github.com/gin-gonic/gin"
)

// SellerOrderController serves the canteen dashboard. The acting canteen is
// always resolved from the authenticated account; only admins may name one
// explicitly.
type SellerOrderController struct {
	Orders   *services.OrderService
	Canteens *services.CanteenService
}

func NewSellerOrderController(o *services.OrderService, cs *services.CanteenService) *SellerOrderController {
	return &SellerOrderController{Orders: o, Canteens: cs}
}

func (h *SellerOrderController) resolveCanteenID(c *gin.Context) (uint, error) {
	if utils.CurrentRole(c) == "admin" {
		if q := c.Query("canteenId"); q != "" {
			id, err := strconv.ParseUint(q, 10, 32)
			if err != nil {
				return 0, fmt.Errorf("%w: bad canteenId", services.ErrValidation)
			}
			return uint(id), nil
		}
	}
	canteen, err := h.Canteens.ForSeller(utils.CurrentUserID(c))
	if err != nil {
		return 0, err
	}
	return canteen.ID, nil
}

// GET /seller/orders
func (h *SellerOrderController) List(c *gin.Context) {
	canteenID, err := h.resolveCanteenID(c)
	if err != nil {
		writeErr(c, err)
		return
	}

	orders, err := h.Orders.ListForCanteen(canteenID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

type advanceRequest struct {
	// the stage the seller's screen believes the order is in; a stale value
	// is rejected with 409 so the dashboard refetches
	CurrentStatus string `json:"currentStatus" binding:"required"`
}

// PATCH /seller/orders/:id/status
func (h *SellerOrderController) AdvanceStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}

	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	stage, ok := entity.ParseStage(req.CurrentStatus)
	if !ok {
		resp.BadRequest(c, "unknown order status")
		return
	}

	canteenID, err := h.resolveCanteenID(c)
	if err != nil {
		writeErr(c, err)
		return
	}
	owns, err := h.Orders.Repo.OrderBelongsToCanteen(uint(orderID), canteenID)
	if err != nil {
		writeErr(c, err)
		return
	}
	if !owns {
		resp.Forbidden(c, "order does not belong to this canteen")
		return
	}

	out, err := h.Orders.AdvanceStatus(uint(orderID), stage)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}
