package admins

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/kingofgreatnezzz/greenwood-invest/middleware"
	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type promotePayload struct {
	UserID uint `json:"user_id" validate:"required"`
}

// PromoteUser grants the admin role to an existing account.
// POST /v1/admin/promote
func (c *UserController) PromoteUser(w http.ResponseWriter, r *http.Request) {
	var req promotePayload
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var user models.User
	if err := c.DB.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve user"})
		return
	}

	if user.IsAdmin() {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "User is already an admin"})
		return
	}

	if err := c.DB.Model(&user).Update("role", "admin").Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to promote user"})
		return
	}
	user.Role = "admin"

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "User promoted to admin", Data: adminUserResponse(&user)})
}
