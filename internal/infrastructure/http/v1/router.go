// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"opscore/internal/core/state"
	"opscore/internal/domain/automation"
	"opscore/internal/domain/erp"
	"opscore/internal/domain/inventory"
	"opscore/internal/domain/mes"
	"opscore/internal/domain/passport"
	"opscore/internal/domain/tasks"
	"opscore/internal/domain/workforce"
	"opscore/internal/infrastructure/http/v1/handlers"
	"opscore/internal/infrastructure/http/v1/middleware"
	"opscore/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Store is the shared enterprise state store
	Store *state.Store

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router over the seven domain
// facades.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler()
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()

	inventoryHandler := handlers.NewInventoryHandler(base, inventory.NewRepository(cfg.Store))
	mesHandler := handlers.NewMESHandler(base, mes.NewRepository(cfg.Store))
	erpHandler := handlers.NewERPHandler(base, erp.NewRepository(cfg.Store))
	tasksHandler := handlers.NewTasksHandler(base, tasks.NewRepository(cfg.Store))
	workforceHandler := handlers.NewWorkforceHandler(base, workforce.NewRepository(cfg.Store))
	passportHandler := handlers.NewPassportHandler(base, passport.NewRepository(cfg.Store))
	automationHandler := handlers.NewAutomationHandler(base, automation.NewRepository(cfg.Store))
	adminHandler := handlers.NewAdminHandler(cfg.Store)

	api := router.Group("/api/v1")
	{
		inv := api.Group("/inventory")
		{
			inv.GET("/items", inventoryHandler.ListItems)
			inv.POST("/items", inventoryHandler.UpsertItem)
			inv.GET("/boms", inventoryHandler.ListBoms)
			inv.GET("/warehouses", inventoryHandler.ListWarehouses)
			inv.GET("/locations", inventoryHandler.ListLocations)
			inv.GET("/stock-lots", inventoryHandler.ListStockLots)
			inv.GET("/stock-moves", inventoryHandler.ListStockMoves)
			inv.POST("/stock-moves", inventoryHandler.RecordStockMove)
			inv.POST("/receipts", inventoryHandler.ReceiveInventory)
		}

		mesGroup := api.Group("/mes")
		{
			mesGroup.GET("/work-centers", mesHandler.ListWorkCenters)
			mesGroup.GET("/routings", mesHandler.ListRoutings)
			mesGroup.GET("/production-orders", mesHandler.ListProductionOrders)
			mesGroup.POST("/production-orders", mesHandler.CreateProductionOrder)
			mesGroup.POST("/production-orders/:id/release", mesHandler.ReleaseProductionOrder)
			mesGroup.PUT("/production-orders/:id/status", mesHandler.UpdateProductionOrderStatus)
			mesGroup.POST("/production-orders/:id/work-orders", mesHandler.GenerateWorkOrders)
			mesGroup.GET("/work-orders", mesHandler.ListWorkOrders)
			mesGroup.POST("/work-orders/:id/start", mesHandler.StartWorkOrder)
			mesGroup.POST("/work-orders/:id/complete", mesHandler.CompleteWorkOrder)
			mesGroup.PUT("/work-orders/:id/status", mesHandler.UpdateWorkOrderStatus)
			mesGroup.GET("/quality-checks", mesHandler.ListQualityChecks)
			mesGroup.POST("/quality-checks", mesHandler.RecordQualityCheck)
			mesGroup.GET("/nonconformances", mesHandler.ListNonconformances)
			mesGroup.POST("/nonconformances", mesHandler.RaiseNonconformance)
			mesGroup.GET("/maintenance-orders", mesHandler.ListMaintenanceOrders)
			mesGroup.POST("/maintenance-orders/:id/log", mesHandler.AppendMaintenanceLog)
		}

		erpGroup := api.Group("/erp")
		{
			erpGroup.GET("/suppliers", erpHandler.ListSuppliers)
			erpGroup.GET("/customers", erpHandler.ListCustomers)
			erpGroup.GET("/purchase-orders", erpHandler.ListPurchaseOrders)
			erpGroup.POST("/purchase-orders", erpHandler.CreatePurchaseOrder)
			erpGroup.POST("/purchase-orders/:id/receive", erpHandler.ReceivePurchaseOrder)
			erpGroup.PUT("/purchase-orders/:id/status", erpHandler.UpdatePurchaseOrderStatus)
			erpGroup.GET("/sales-orders", erpHandler.ListSalesOrders)
			erpGroup.POST("/sales-orders", erpHandler.CreateSalesOrder)
			erpGroup.POST("/sales-orders/:id/ship", erpHandler.ShipSalesOrder)
			erpGroup.PUT("/sales-orders/:id/status", erpHandler.UpdateSalesOrderStatus)
			erpGroup.GET("/invoices", erpHandler.ListInvoices)
			erpGroup.POST("/invoices", erpHandler.CreateInvoice)
		}

		tasksGroup := api.Group("/tasks")
		{
			tasksGroup.GET("", tasksHandler.ListTasks)
			tasksGroup.POST("", tasksHandler.CreateTask)
			tasksGroup.PUT("/:id", tasksHandler.UpdateTask)
			tasksGroup.PUT("/:id/status", tasksHandler.MoveTask)
			tasksGroup.DELETE("/:id", tasksHandler.DeleteTask)
		}

		wf := api.Group("/workforce")
		{
			wf.GET("/employees", workforceHandler.ListEmployees)
			wf.POST("/employees", workforceHandler.UpsertEmployee)
			wf.GET("/shifts", workforceHandler.ListShifts)
			wf.POST("/shifts", workforceHandler.AssignShift)
		}

		pp := api.Group("/passports")
		{
			pp.GET("", passportHandler.ListPassports)
			pp.POST("", passportHandler.CreatePassport)
			pp.POST("/:id/events", passportHandler.AppendEvent)
		}

		auto := api.Group("/automation")
		{
			auto.GET("/templates", automationHandler.ListTemplates)
			auto.GET("/playbooks", automationHandler.ListPlaybooks)
			auto.POST("/playbooks", automationHandler.CreatePlaybook)
			auto.POST("/playbooks/:id/run", automationHandler.RunPlaybook)
			auto.PUT("/playbooks/:id/enabled", automationHandler.SetPlaybookEnabled)
			auto.GET("/runs", automationHandler.ListRuns)
		}

		api.POST("/admin/reset", adminHandler.Reset)
	}

	return router
}
