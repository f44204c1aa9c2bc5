package controllers

import (
	"strconv"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/pkg/resp"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/services"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/utils"

	"github.com/gin-gonic/gin"
)

type CanteenController struct{ Svc *services.CanteenService }

func NewCanteenController(s *services.CanteenService) *CanteenController {
	return &CanteenController{Svc: s}
}

// GET /canteens
func (h *CanteenController) List(c *gin.Context) {
	out, err := h.Svc.List()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /canteens/:id
func (h *CanteenController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad canteen id")
		return
	}
	canteen, err := h.Svc.Get(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, canteen)
}

// POST /admin/canteens
func (h *CanteenController) Create(c *gin.Context) {
	var req services.CreateCanteenIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	canteen, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, canteen)
}

// PATCH /seller/canteen
func (h *CanteenController) UpdateOwn(c *gin.Context) {
	var req services.UpdateCanteenIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	canteen, err := h.Svc.UpdateOwn(utils.CurrentUserID(c), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, canteen)
}
