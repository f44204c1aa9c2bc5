package controllers

import (
	"strconv"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/pkg/resp"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/services"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc      *services.FoodService
	Canteens *services.CanteenService
}

func NewFoodController(s *services.FoodService, cs *services.CanteenService) *FoodController {
	return &FoodController{Svc: s, Canteens: cs}
}

// GET /canteens/:id/foods?meal_type=
func (h *FoodController) ListByCanteen(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad canteen id")
		return
	}
	foods, err := h.Svc.ListByCanteen(uint(id), c.Query("meal_type"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, foods)
}

// GET /foods/search?q=
func (h *FoodController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		resp.BadRequest(c, "q is required")
		return
	}
	foods, err := h.Svc.Search(q)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, foods)
}

func (h *FoodController) sellerCanteenID(c *gin.Context) (uint, bool) {
	canteen, err := h.Canteens.ForSeller(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return 0, false
	}
	return canteen.ID, true
}

// POST /seller/foods
func (h *FoodController) Create(c *gin.Context) {
	canteenID, ok := h.sellerCanteenID(c)
	if !ok {
		return
	}

	var req services.CreateFoodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := h.Svc.Create(c.Request.Context(), canteenID, &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, food)
}

// PATCH /seller/foods/:id
func (h *FoodController) Update(c *gin.Context) {
	foodID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad food id")
		return
	}
	canteenID, ok := h.sellerCanteenID(c)
	if !ok {
		return
	}

	var req services.UpdateFoodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := h.Svc.Update(uint(foodID), canteenID, &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, food)
}

// PATCH /seller/foods/:id/availability
func (h *FoodController) SetAvailability(c *gin.Context) {
	foodID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "bad food id")
		return
	}
	canteenID, ok := h.sellerCanteenID(c)
	if !ok {
		return
	}

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetAvailability(uint(foodID), canteenID, *req.Available); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"available": *req.Available})
}
