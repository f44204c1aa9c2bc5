package controllers

import (
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/pkg/resp"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/services"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, subtotal, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

type cartActionRequest struct {
	FoodItemID uint   `json:"foodItemId" binding:"required"`
	Action     string `json:"action" binding:"required,oneof=add decrease remove"`
}

// PATCH /cart
func (h *CartController) Apply(c *gin.Context) {
	var req cartActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Apply(utils.CurrentUserID(c), req.FoodItemID, services.CartAction(req.Action))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
