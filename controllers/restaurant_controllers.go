package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunch-voting-app/stores"
	"github.com/yeremiapane/lunch-voting-app/utils"
)

type RestaurantController struct {
	Catalog *stores.CatalogStore
}

func NewRestaurantController(catalog *stores.CatalogStore) *RestaurantController {
	return &RestaurantController{Catalog: catalog}
}

// AddRestaurant registers a new restaurant.
func (rc *RestaurantController) AddRestaurant(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := rc.Catalog.AddRestaurant(req.Name)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant added: %s (id=%d)", restaurant.Name, restaurant.ID)

	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// UploadMenu attaches today's menu to a restaurant. The date is stamped by
// the server; the request only carries the item payload.
func (rc *RestaurantController) UploadMenu(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant id"))
		return
	}

	var req struct {
		Items json.RawMessage `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := rc.Catalog.UploadMenu(uint(restaurantID), req.Items)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu uploaded", gin.H{
		"menu_id":       menu.ID,
		"restaurant_id": menu.RestaurantID,
		"date":          menu.Date,
		"items":         menu.ItemsJSON(),
	})
}
