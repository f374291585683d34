package admins

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingofgreatnezzz/greenwood-invest/middleware"
	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type WithdrawalController struct {
	DB *gorm.DB
}

func NewWithdrawalController(db *gorm.DB) *WithdrawalController {
	return &WithdrawalController{DB: db}
}

type withdrawalResponse struct {
	ID             uint    `json:"id"`
	UserID         uint    `json:"user_id"`
	RequesterName  string  `json:"requester_name"`
	RequesterEmail string  `json:"requester_email"`
	Amount         float64 `json:"amount"`
	WalletType     string  `json:"wallet_type"`
	WalletName     string  `json:"wallet_name"`
	ReferenceID    string  `json:"reference_id"`
	Status         string  `json:"status"`
	AdminNotes     string  `json:"admin_notes,omitempty"`
	ProcessedBy    *uint   `json:"processed_by,omitempty"`
	ProcessedAt    string  `json:"processed_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func toWithdrawalResponse(wd *models.WithdrawalRequest) withdrawalResponse {
	resp := withdrawalResponse{
		ID:             wd.ID,
		UserID:         wd.UserID,
		RequesterName:  wd.RequesterName,
		RequesterEmail: wd.RequesterEmail,
		Amount:         wd.Amount,
		WalletType:     wd.WalletType,
		WalletName:     wd.WalletName,
		ReferenceID:    wd.ReferenceID,
		Status:         wd.Status,
		AdminNotes:     utils.GetStringValue(wd.AdminNotes),
		ProcessedBy:    wd.ProcessedBy,
		CreatedAt:      wd.CreatedAt.Format(time.RFC3339),
	}
	if wd.ProcessedAt != nil {
		resp.ProcessedAt = wd.ProcessedAt.Format(time.RFC3339)
	}
	return resp
}

// ListAllWithdrawals returns withdrawal requests across all users.
// GET /v1/admin/withdrawals?page=&limit=&status=&user_id=&search=
func (c *WithdrawalController) ListAllWithdrawals(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := c.DB.Model(&models.WithdrawalRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if search != "" {
		query = query.Where("reference_id LIKE ? OR requester_email LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve withdrawal data"})
		return
	}

	offset := (page - 1) * limit
	var withdrawals []models.WithdrawalRequest
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&withdrawals).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve withdrawal data"})
		return
	}

	resp := make([]withdrawalResponse, 0, len(withdrawals))
	for i := range withdrawals {
		resp = append(resp, toWithdrawalResponse(&withdrawals[i]))
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"data": resp,
			"pagination": map[string]interface{}{
				"page":        page,
				"limit":       limit,
				"total_rows":  totalRows,
				"total_pages": int(math.Ceil(float64(totalRows) / float64(limit))),
			},
		},
	})
}

type reviewWithdrawalPayload struct {
	Status     string  `json:"status" validate:"required"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// ReviewWithdrawal moves a request through its lifecycle:
//
//	approve   pending  -> approved   (funds stay reserved)
//	reject    pending  -> rejected   (reserved funds return to balance)
//	complete  approved -> completed  (reserved funds become a realized withdrawal)
//
// The user row is locked for the whole transition so the reservation and
// the ledger entry cannot drift apart.
// PUT /v1/admin/withdrawals/{id}
func (c *WithdrawalController) ReviewWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserID(r)
	if !ok || adminID == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid withdrawal ID"})
		return
	}

	var req reviewWithdrawalPayload
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	next := strings.ToLower(strings.TrimSpace(req.Status))
	switch next {
	case models.WithdrawalApproved, models.WithdrawalRejected, models.WithdrawalCompleted:
	default:
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: fmt.Sprintf("Status must be one of: %s, %s, %s", models.WithdrawalApproved, models.WithdrawalRejected, models.WithdrawalCompleted),
		})
		return
	}

	var wd models.WithdrawalRequest
	if err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&wd, id).Error; err != nil {
			return err
		}
		if err := wd.Transition(next, adminID, req.AdminNotes); err != nil {
			return err
		}
		if err := tx.Save(&wd).Error; err != nil {
			return err
		}

		// Balance effects only on terminal transitions; approval keeps
		// the funds reserved.
		switch next {
		case models.WithdrawalRejected:
			var user models.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, wd.UserID).Error; err != nil {
				return err
			}
			user.ReleaseWithdrawal(wd.Amount)
			if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
				"current_balance":     user.CurrentBalance,
				"pending_withdrawals": user.PendingWithdrawals,
			}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Transaction{}).
				Where("reference = ? AND user_id = ?", wd.ReferenceID, wd.UserID).
				Update("status", models.TxCancelled).Error; err != nil {
				return err
			}
		case models.WithdrawalCompleted:
			var user models.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, wd.UserID).Error; err != nil {
				return err
			}
			user.SettleWithdrawal(wd.Amount)
			if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
				"pending_withdrawals": user.PendingWithdrawals,
				"total_withdrawals":   user.TotalWithdrawals,
			}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Transaction{}).
				Where("reference = ? AND user_id = ?", wd.ReferenceID, wd.UserID).
				Update("status", models.TxCompleted).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Withdrawal request not found"})
			return
		}
		if errors.Is(err, models.ErrInvalidTransition) {
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{
				Success: false,
				Message: fmt.Sprintf("Cannot change status from %s to %s", wd.Status, next),
			})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update withdrawal request"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: fmt.Sprintf("Withdrawal request %s", next),
		Data:    toWithdrawalResponse(&wd),
	})
}
