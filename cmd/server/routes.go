package main

import (
	"net/http"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/handlers"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	productHandler  *handlers.ProductHandler
	orderHandler    *handlers.OrderHandler
	walletHandler   *handlers.WalletHandler
	referralHandler *handlers.ReferralHandler
	supportHandler  *handlers.SupportHandler
	adminHandler    *handlers.AdminHandler
	authMiddleware  gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	adminOnly := middleware.RequireRole(string(entities.UserRoleAdmin))

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Product catalog (members browse active products)
		products := v1.Group("/products")
		products.Use(d.authMiddleware)
		{
			products.GET("", d.productHandler.List)
			products.GET("/:id", d.productHandler.Get)
		}

		// Orders (protected)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("", middleware.IdempotencyMiddleware(), d.orderHandler.Create)
			orders.GET("", d.orderHandler.List)
			orders.GET("/:id", d.orderHandler.Get)
			orders.POST("/:id/payment-proof", d.orderHandler.AttachPaymentProof)
		}

		// Wallet (protected)
		wallet := v1.Group("/wallet")
		wallet.Use(d.authMiddleware)
		{
			wallet.GET("", d.walletHandler.Summary)
			wallet.GET("/transactions", d.walletHandler.Transactions)
			wallet.POST("/withdrawals", middleware.IdempotencyMiddleware(), d.walletHandler.RequestWithdrawal)
		}

		// Referral network and rank progress (protected)
		referrals := v1.Group("/referrals")
		referrals.Use(d.authMiddleware)
		{
			referrals.GET("", d.referralHandler.List)
			referrals.GET("/tree", d.referralHandler.Tree)
		}
		v1.GET("/rank", d.authMiddleware, d.referralHandler.RankProgress)

		// Support tickets (protected)
		support := v1.Group("/support/tickets")
		support.Use(d.authMiddleware)
		{
			support.POST("", d.supportHandler.Create)
			support.GET("", d.supportHandler.List)
			support.GET("/:id", d.supportHandler.Get)
		}

		// Back office (admin role required)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, adminOnly)
		{
			admin.GET("/dashboard", d.adminHandler.Dashboard)

			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/users/:id", d.adminHandler.GetUser)
			admin.PATCH("/users/:id/status", d.adminHandler.SetUserStatus)
			admin.PATCH("/users/:id/kyc", d.adminHandler.SetUserKYC)
			admin.GET("/users/:id/referrals", d.referralHandler.TreeOf)

			admin.GET("/registrations", d.adminHandler.ListRegistrations)
			admin.POST("/registrations/:id/verify", d.adminHandler.VerifyRegistration)
			admin.POST("/registrations/:id/reject", d.adminHandler.RejectRegistration)

			admin.GET("/products", d.productHandler.AdminList)
			admin.POST("/products", d.productHandler.Create)
			admin.PATCH("/products/:id", d.productHandler.Update)
			admin.DELETE("/products/:id", d.productHandler.Delete)

			admin.GET("/orders", d.orderHandler.AdminList)
			admin.POST("/orders/:id/verify", middleware.IdempotencyMiddleware(), d.orderHandler.VerifyPayment)
			admin.POST("/orders/:id/reject", d.orderHandler.RejectPayment)
			admin.PATCH("/orders/:id/delivery", d.orderHandler.UpdateDelivery)

			admin.POST("/withdrawals/:id/approve", d.walletHandler.ApproveWithdrawal)
			admin.POST("/withdrawals/:id/decline", d.walletHandler.DeclineWithdrawal)

			admin.GET("/settings/plan", d.adminHandler.GetPlan)
			admin.PATCH("/settings/plan", d.adminHandler.UpdatePlan)
			admin.PUT("/settings/ranks", d.adminHandler.UpdateRanks)

			admin.POST("/dsc", d.adminHandler.CreateDSC)
			admin.GET("/dsc", d.adminHandler.ListDSC)
			admin.PATCH("/dsc/:id/status", d.adminHandler.SetDSCStatus)

			admin.GET("/support/tickets", d.supportHandler.AdminList)
			admin.POST("/support/tickets/:id/reply", d.supportHandler.Reply)
		}
	}
}
