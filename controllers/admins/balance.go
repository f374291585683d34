package admins

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingofgreatnezzz/greenwood-invest/middleware"
	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type overrideBalancePayload struct {
	CurrentBalance float64 `json:"current_balance"`
	Reason         string  `json:"reason"`
}

// OverrideBalance sets the spendable balance to an exact figure for back
// office reconciliation. The delta is recorded as a bonus or fee ledger
// transaction so the stored balance stays derivable from the ledger.
// PUT /v1/admin/users/{id}/balance
func (c *UserController) OverrideBalance(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserID(r)
	if !ok || adminID == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user ID"})
		return
	}

	var req overrideBalancePayload
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.CurrentBalance < 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Balance cannot be negative"})
		return
	}

	target := utils.RoundFloat(req.CurrentBalance, 2)

	var user models.User
	if err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, id).Error; err != nil {
			return err
		}
		delta := utils.RoundFloat(target-user.CurrentBalance, 2)
		if delta == 0 {
			return nil
		}

		txType := models.TxBonus
		amount := delta
		if delta < 0 {
			txType = models.TxFee
			amount = -delta
		}
		desc := req.Reason
		if desc == "" {
			desc = fmt.Sprintf("Balance override: %.2f -> %.2f", user.CurrentBalance, target)
		}
		now := time.Now()
		trx := models.Transaction{
			UserID:      user.ID,
			Type:        txType,
			Amount:      amount,
			Currency:    "USD",
			Status:      models.TxCompleted,
			Description: desc,
			ProcessedBy: &adminID,
			ProcessedAt: &now,
		}
		if err := trx.ApplyToUser(&user); err != nil {
			return err
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("current_balance", user.CurrentBalance).Error
	}); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		case errors.Is(err, models.ErrInsufficientBalance):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Override would overdraw the account balance"})
		default:
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update balance"})
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Balance updated successfully", Data: adminUserResponse(&user)})
}
