package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-prepaid-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.CardHandler) {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cards := a.Router.Group("/cards")
	cards.POST("", h.CreateCard)
	cards.GET("/:id", h.GetCard)
	cards.GET("/:id/balance", h.GetBalance)
	cards.GET("/:id/blocked-balance", h.GetBlockedBalance)
	cards.POST("/:id/load-money", h.LoadMoney)
	cards.POST("/:id/refunds", h.ReceiveRefund)
	cards.GET("/:id/journal", h.GetJournal)

	a.Router.GET("/journal", h.GetEntries)

	merchants := a.Router.Group("/merchants")
	merchants.POST("", h.CreateMerchant)
	merchants.GET("/:id", h.GetMerchant)

	authorizations := a.Router.Group("/authorizations")
	authorizations.POST("", h.Authorize)
	authorizations.GET("/:id", h.GetAuthorization)
	authorizations.POST("/:id/capture", h.Capture)
	authorizations.POST("/:id/reverse", h.Reverse)
}
