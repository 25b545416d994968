package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunch-voting-app/stores"
	"github.com/yeremiapane/lunch-voting-app/utils"
)

type EmployeeController struct {
	Identity *stores.IdentityStore
}

func NewEmployeeController(identity *stores.IdentityStore) *EmployeeController {
	return &EmployeeController{Identity: identity}
}

// Register creates an employee account and logs the caller straight in.
func (ec *EmployeeController) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	employee, err := ec.Identity.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, stores.ErrUsernameTaken) {
			utils.RespondError(c, http.StatusConflict, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateToken(employee.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New employee registered: %s", employee.Username)

	utils.RespondJSON(c, http.StatusOK, "You have successfully registered", gin.H{
		"employee_id": employee.ID,
		"token":       token,
	})
}

// Login checks credentials and returns a session token. An unknown username
// and a wrong password answer differently (404 vs 401).
func (ec *EmployeeController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	employee, err := ec.Identity.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotFound):
			utils.RespondError(c, http.StatusNotFound, errors.New("no employee with this username"))
		case errors.Is(err, stores.ErrWrongPassword):
			utils.RespondError(c, http.StatusUnauthorized, errors.New("wrong password, please try again"))
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	token, err := utils.GenerateToken(employee.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "You have successfully logged in", gin.H{
		"employee_id": employee.ID,
		"token":       token,
	})
}

// Profile returns the authenticated employee's own account.
func (ec *EmployeeController) Profile(c *gin.Context) {
	employeeID, ok := currentEmployeeID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("employee id not found in context"))
		return
	}

	employee, err := ec.Identity.ByID(employeeID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":       employee.ID,
		"username": employee.Username,
	})
}

// currentEmployeeID reads the id that AuthMiddleware stored in the context.
func currentEmployeeID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("employee_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
