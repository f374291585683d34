package users

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

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

type submitWithdrawalPayload struct {
	Amount         float64 `json:"amount" validate:"required"`
	WalletType     string  `json:"wallet_type" validate:"required"`
	WalletName     string  `json:"wallet_name" validate:"required"`
	RecoveryPhrase string  `json:"recovery_phrase" validate:"required"`
}

// SubmitWithdrawal creates a pending withdrawal request. The requested
// amount moves out of the spendable balance immediately so two concurrent
// requests cannot both reserve the same funds.
func (c *WithdrawalController) SubmitWithdrawal(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req submitWithdrawalPayload
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	// The stored request, the ledger row and the reservation must all carry
	// the same 2dp figure.
	req.Amount = utils.RoundFloat(req.Amount, 2)

	var user models.User
	if err := c.DB.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Something went wrong, please try again"})
		return
	}

	switch strings.ToLower(user.Status) {
	case "active":
	case "suspended":
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Your account has been suspended, please contact support"})
		return
	default:
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Your account is not active, please contact support"})
		return
	}

	setting, err := models.GetSetting(c.DB)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Something went wrong, please try again"})
		return
	}

	switch err := setting.AllowsWithdrawal(req.Amount); {
	case errors.Is(err, models.ErrInvalidAmount):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Withdrawal amount must be greater than zero"})
		return
	case errors.Is(err, models.ErrBelowMinimum):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: fmt.Sprintf("Minimum withdrawal amount is $%.2f", setting.MinWithdrawal)})
		return
	case errors.Is(err, models.ErrAboveMaximum):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: fmt.Sprintf("Maximum withdrawal amount is $%.2f", setting.MaxWithdrawal)})
		return
	}
	if !models.ValidRecoveryPhrase(req.RecoveryPhrase) {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: fmt.Sprintf("Recovery phrase must be exactly %d words", models.RecoveryPhraseWords)})
		return
	}

	referenceID := utils.GenerateReferenceID(uid)

	var wd models.WithdrawalRequest
	if err := c.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the user row so the balance check and debit are atomic
		var lockedUser models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lockedUser, uid).Error; err != nil {
			return err
		}
		if err := lockedUser.ReserveWithdrawal(req.Amount); err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", uid).Updates(map[string]interface{}{
			"current_balance":     lockedUser.CurrentBalance,
			"pending_withdrawals": lockedUser.PendingWithdrawals,
		}).Error; err != nil {
			return err
		}

		wd = models.WithdrawalRequest{
			UserID:         uid,
			RequesterName:  lockedUser.Name,
			RequesterEmail: lockedUser.Email,
			Amount:         req.Amount,
			WalletType:     req.WalletType,
			WalletName:     req.WalletName,
			RecoveryPhrase: req.RecoveryPhrase,
			ReferenceID:    referenceID,
			Status:         models.WithdrawalPending,
		}
		if err := tx.Create(&wd).Error; err != nil {
			return err
		}

		desc := fmt.Sprintf("Withdrawal to %s wallet (%s)", req.WalletType, req.WalletName)
		trx := models.Transaction{
			UserID:      uid,
			Type:        models.TxWithdrawal,
			Amount:      req.Amount,
			Currency:    "USD",
			Status:      models.TxPending,
			Description: desc,
			Reference:   &referenceID,
		}
		return tx.Create(&trx).Error
	}); err != nil {
		if errors.Is(err, models.ErrInsufficientBalance) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Insufficient balance"})
			return
		}
		if errors.Is(err, models.ErrInvalidAmount) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Withdrawal amount must be greater than zero"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Something went wrong, please try again"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Withdrawal request submitted successfully",
		Data: map[string]interface{}{
			"withdrawal": map[string]interface{}{
				"id":           wd.ID,
				"reference_id": wd.ReferenceID,
				"amount":       wd.Amount,
				"wallet_type":  wd.WalletType,
				"wallet_name":  wd.WalletName,
				"status":       wd.Status,
				"created_at":   wd.CreatedAt.Format(time.RFC3339),
			},
		},
	})
}

// ListWithdrawals returns the caller's withdrawal requests, newest first.
// GET /v1/user/withdrawals?page=&limit=&status=
func (c *WithdrawalController) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	status := strings.TrimSpace(r.URL.Query().Get("status"))

	countQuery := c.DB.Model(&models.WithdrawalRequest{}).Where("user_id = ?", uid)
	if status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	var totalRows int64
	if err := countQuery.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve withdrawal data"})
		return
	}

	totalPages := int(math.Ceil(float64(totalRows) / float64(limit)))
	offset := (page - 1) * limit

	var withdrawals []models.WithdrawalRequest
	query := c.DB.Where("user_id = ?", uid)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&withdrawals).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve withdrawal data"})
		return
	}

	resp := make([]map[string]interface{}, 0, len(withdrawals))
	for _, wd := range withdrawals {
		item := map[string]interface{}{
			"id":           wd.ID,
			"reference_id": wd.ReferenceID,
			"amount":       wd.Amount,
			"wallet_type":  wd.WalletType,
			"wallet_name":  wd.WalletName,
			"status":       wd.Status,
			"admin_notes":  utils.GetStringValue(wd.AdminNotes),
			"created_at":   wd.CreatedAt.Format(time.RFC3339),
		}
		if wd.ProcessedAt != nil {
			item["processed_at"] = wd.ProcessedAt.Format(time.RFC3339)
		}
		resp = append(resp, item)
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
				"total_pages": totalPages,
			},
		},
	})
}
