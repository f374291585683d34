package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/kingofgreatnezzz/greenwood-invest/controllers/admins"
	"github.com/kingofgreatnezzz/greenwood-invest/middleware"
)

// AdminRoutes registers back office routes. Admins authenticate through the
// shared /login endpoint; their tokens carry the admin role claim.
func AdminRoutes(api *mux.Router, db *gorm.DB) {
	withdrawalController := admins.NewWithdrawalController(db)
	userController := admins.NewUserController(db)
	transactionController := admins.NewTransactionController(db)
	investmentController := admins.NewInvestmentController(db)
	dashboardController := admins.NewDashboardController(db)
	settingController := admins.NewSettingController(db)

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuthMiddleware)

	// Dashboard stats
	adminRouter.Handle("/dashboard", http.HandlerFunc(dashboardController.GetStats)).Methods(http.MethodGet)

	// Withdrawal review
	adminRouter.Handle("/withdrawals", http.HandlerFunc(withdrawalController.ListAllWithdrawals)).Methods(http.MethodGet)
	adminRouter.Handle("/withdrawals/{id:[0-9]+}", http.HandlerFunc(withdrawalController.ReviewWithdrawal)).Methods(http.MethodPut)

	// User management
	adminRouter.Handle("/users", http.HandlerFunc(userController.ListUsers)).Methods(http.MethodGet)
	adminRouter.Handle("/users/{id:[0-9]+}", http.HandlerFunc(userController.GetUser)).Methods(http.MethodGet)
	adminRouter.Handle("/users/{id:[0-9]+}", http.HandlerFunc(userController.UpdateUser)).Methods(http.MethodPut)
	adminRouter.Handle("/users/{id:[0-9]+}/balance", http.HandlerFunc(userController.OverrideBalance)).Methods(http.MethodPut)
	adminRouter.Handle("/promote", http.HandlerFunc(userController.PromoteUser)).Methods(http.MethodPost)

	// Ledger
	adminRouter.Handle("/transactions", http.HandlerFunc(transactionController.ListTransactions)).Methods(http.MethodGet)
	adminRouter.Handle("/transactions", http.HandlerFunc(transactionController.CreateTransaction)).Methods(http.MethodPost)

	// Investment management
	adminRouter.Handle("/investments", http.HandlerFunc(investmentController.ListInvestments)).Methods(http.MethodGet)
	adminRouter.Handle("/investments/{id:[0-9]+}", http.HandlerFunc(investmentController.UpdateInvestment)).Methods(http.MethodPut)

	// Platform settings
	adminRouter.Handle("/settings", http.HandlerFunc(settingController.GetSettings)).Methods(http.MethodGet)
	adminRouter.Handle("/settings", http.HandlerFunc(settingController.UpdateSettings)).Methods(http.MethodPut)
}
