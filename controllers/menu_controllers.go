package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunch-voting-app/stores"
	"github.com/yeremiapane/lunch-voting-app/utils"
)

type MenuController struct {
	Ledger *stores.VoteLedger
	Query  *stores.QueryEngine
}

func NewMenuController(ledger *stores.VoteLedger, query *stores.QueryEngine) *MenuController {
	return &MenuController{Ledger: ledger, Query: query}
}

// TodaysMenus lists every menu uploaded for the current date.
func (mc *MenuController) TodaysMenus(c *gin.Context) {
	menus, err := mc.Query.TodaysMenus()
	if err != nil {
		if errors.Is(err, stores.ErrNoMenusToday) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Today's menus", menus)
}

// CastVote records the caller's vote for one of today's menus.
func (mc *MenuController) CastVote(c *gin.Context) {
	employeeID, ok := currentEmployeeID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("employee id not found in context"))
		return
	}

	menuID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	vote, err := mc.Ledger.CastVote(employeeID, uint(menuID))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotFound):
			utils.RespondError(c, http.StatusNotFound, errors.New("menu not found"))
		case errors.Is(err, stores.ErrAlreadyVoted):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Vote cast: employee=%d menu=%d", employeeID, menuID)

	utils.RespondJSON(c, http.StatusCreated, "Vote recorded", gin.H{
		"vote_id": vote.ID,
		"menu_id": vote.MenuID,
	})
}

// TodaysResults returns the per-menu vote tally for the current date.
func (mc *MenuController) TodaysResults(c *gin.Context) {
	results, err := mc.Query.TodaysResults()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Today's results", results)
}
