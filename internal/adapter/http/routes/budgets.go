package routes

import (
	"rebobinagem/internal/adapter/http/handlers"
	"rebobinagem/internal/adapter/http/middleware"
	"rebobinagem/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathBudgets   = "/budgets"
	PathClients   = "/clients"
	PathParts     = "/parts"
	PathPayments  = "/payments"
	PathDashboard = "/dashboard"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, documentHandler *handlers.DocumentHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PATCH("/:id", budgetHandler.UpdateDetails)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)

		budgets.POST("/:id/items", budgetHandler.AddItem)
		budgets.PATCH("/:id/items/:item_id", budgetHandler.UpdateItem)
		budgets.DELETE("/:id/items/:item_id", budgetHandler.RemoveItem)

		budgets.PUT("/:id/discount", budgetHandler.SetDiscount)
		budgets.PATCH("/:id/status", budgetHandler.TransitionStatus)
		budgets.POST("/:id/convert", budgetHandler.ConvertDraftToQuote)
		budgets.GET("/:id/statuses", budgetHandler.AllowedStatuses)

		budgets.GET("/:id/pdf", documentHandler.BudgetPDF)
		budgets.GET("/:id/label", documentHandler.MotorLabel)
		budgets.GET("/:id/whatsapp", documentHandler.WhatsApp)
	}

	rg.GET(PathDashboard, middleware.RequireRole(entities.RoleAdmin), budgetHandler.Dashboard)
}

func addCatalogRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, partHandler *handlers.PartHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	// Writes are admin only, enforced by PartUseCase.
	parts := rg.Group(PathParts)
	{
		parts.POST("", partHandler.CreatePart)
		parts.GET("", partHandler.ListParts)
		parts.GET("/:id", partHandler.GetPart)
		parts.PUT("/:id", partHandler.UpdatePart)
		parts.DELETE("/:id", partHandler.DeletePart)
	}
}
