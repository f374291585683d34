package admins

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/kingofgreatnezzz/greenwood-invest/middleware"
	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// GetSettings returns the platform settings row.
func (c *SettingController) GetSettings(w http.ResponseWriter, r *http.Request) {
	setting, err := models.GetSetting(c.DB)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve settings"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: setting})
}

type updateSettingsPayload struct {
	Name           *string  `json:"name,omitempty"`
	MinWithdrawal  *float64 `json:"min_withdrawal,omitempty"`
	MaxWithdrawal  *float64 `json:"max_withdrawal,omitempty"`
	Maintenance    *bool    `json:"maintenance,omitempty"`
	ClosedRegister *bool    `json:"closed_register,omitempty"`
}

// UpdateSettings edits the platform knobs, creating the row if needed.
func (c *SettingController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsPayload
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	if req.MinWithdrawal != nil && *req.MinWithdrawal <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Minimum withdrawal must be greater than zero"})
		return
	}
	if req.MaxWithdrawal != nil && req.MinWithdrawal != nil && *req.MaxWithdrawal > 0 && *req.MaxWithdrawal < *req.MinWithdrawal {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Maximum withdrawal cannot be below the minimum"})
		return
	}

	var setting models.Setting
	if err := c.DB.FirstOrCreate(&setting, models.Setting{ID: 1}).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load settings"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.MinWithdrawal != nil {
		updates["min_withdrawal"] = *req.MinWithdrawal
	}
	if req.MaxWithdrawal != nil {
		updates["max_withdrawal"] = *req.MaxWithdrawal
	}
	if req.Maintenance != nil {
		updates["maintenance"] = *req.Maintenance
	}
	if req.ClosedRegister != nil {
		updates["closed_register"] = *req.ClosedRegister
	}
	if len(updates) == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Nothing to update"})
		return
	}

	if err := c.DB.Model(&setting).Updates(updates).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update settings"})
		return
	}
	c.DB.First(&setting, setting.ID)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Settings updated successfully", Data: setting})
}
