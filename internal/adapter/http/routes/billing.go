package routes

import (
	"rebobinagem/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:budget_id", paymentHandler.CollectPayment)
		payments.GET("/:budget_id", paymentHandler.GetLatestPayment)
	}
}
