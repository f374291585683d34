package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/kingofgreatnezzz/greenwood-invest/controllers/auth"
	"github.com/kingofgreatnezzz/greenwood-invest/controllers/users"
	"github.com/kingofgreatnezzz/greenwood-invest/middleware"
)

// UserRoutes registers authentication and user-facing routes.
func UserRoutes(api *mux.Router, db *gorm.DB) {
	// Login/register limiter: 20 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(20, 5*time.Minute)
	// General API limiter: 120 per IP per minute
	apiLimiter := middleware.NewIPRateLimiter(120, time.Minute)

	authController := auth.NewAuthController(db)
	withdrawalController := users.NewWithdrawalController(db)
	transactionController := users.NewTransactionController(db)
	portfolioController := users.NewPortfolioController(db)
	profileController := users.NewProfileController(db)

	// Auth
	api.Handle("/register", loginLimiter.Middleware(http.HandlerFunc(authController.Register))).Methods(http.MethodPost)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(authController.Login))).Methods(http.MethodPost)
	api.Handle("/refresh", loginLimiter.Middleware(http.HandlerFunc(authController.Refresh))).Methods(http.MethodPost)
	api.Handle("/logout", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(authController.Logout)))).Methods(http.MethodPost)
	api.Handle("/logout-all", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(authController.LogoutAll)))).Methods(http.MethodPost)

	// Withdrawals
	api.Handle("/user/withdrawals", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(withdrawalController.SubmitWithdrawal)))).Methods(http.MethodPost)
	api.Handle("/user/withdrawals", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(withdrawalController.ListWithdrawals)))).Methods(http.MethodGet)

	// Ledger
	api.Handle("/user/transactions", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(transactionController.ListTransactions)))).Methods(http.MethodGet)

	// Portfolio
	api.Handle("/user/portfolio", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(portfolioController.GetPortfolio)))).Methods(http.MethodGet)

	// Profile
	api.Handle("/user/profile", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(profileController.GetProfile)))).Methods(http.MethodGet)
	api.Handle("/user/profile", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(profileController.UpdateProfile)))).Methods(http.MethodPut)
	api.Handle("/user/password", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(profileController.ChangePassword)))).Methods(http.MethodPut)
	api.Handle("/user/profile/kyc", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(profileController.UploadKYC)))).Methods(http.MethodPut)
}
