package web

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/labworks/labman/docs"
	"github.com/labworks/labman/internal/config"
	"github.com/labworks/labman/pkg/middleware/auth"
	"github.com/labworks/labman/pkg/middleware/logger"
	accountView "github.com/labworks/labman/pkg/web/views/account"
	calculatorView "github.com/labworks/labman/pkg/web/views/calculator"
	dashboardView "github.com/labworks/labman/pkg/web/views/dashboard"
	explogView "github.com/labworks/labman/pkg/web/views/explog"
	"github.com/labworks/labman/pkg/web/views/health"
	inventoryView "github.com/labworks/labman/pkg/web/views/inventory"
	plannerView "github.com/labworks/labman/pkg/web/views/planner"
	protocolView "github.com/labworks/labman/pkg/web/views/protocol"
	streamView "github.com/labworks/labman/pkg/web/views/stream"
)

func NewRouter(ctx context.Context, g *gin.Engine) context.CancelFunc {
	installMiddleware(g)
	return installURL(ctx, g)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(logger.LogWithWriter())
}

func installURL(ctx context.Context, g *gin.Engine) context.CancelFunc {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/health/live", health.Live)
	api.GET("/health/ready", health.Ready)
	g.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	aHandle := accountView.NewAccountHandle()

	// Public auth routes
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", aHandle.Register)
		authGroup.POST("/login", aHandle.Login)
		authGroup.POST("/refresh", aHandle.Refresh)
	}

	sHandle := streamView.NewStreamHandle(ctx)

	// Protected routes
	{
		v1 := api.Group("/v1", auth.Auth())

		v1.POST("/auth/logout", aHandle.Logout)
		v1.GET("/account/me", aHandle.Me)

		// Calculators
		{
			cHandle := calculatorView.NewCalculatorHandle()
			calcRouter := v1.Group("/calc")
			calcRouter.POST("/dilution/simple", cHandle.SimpleDilution)
			calcRouter.POST("/dilution/serial", cHandle.SerialDilution)
			calcRouter.POST("/solution", cHandle.Solution)
			calcRouter.POST("/buffer", cHandle.Buffer)
			calcRouter.GET("/history", cHandle.History)
		}

		// Reagent inventory
		{
			iHandle := inventoryView.NewInventoryHandle()
			reagentRouter := v1.Group("/reagent")
			reagentRouter.POST("/create", iHandle.Create)
			reagentRouter.GET("/query", iHandle.Query)
			reagentRouter.PUT("/update", iHandle.UpdateQuantity)
			reagentRouter.GET("/alerts", iHandle.Alerts)
			reagentRouter.GET("/cas", iHandle.LookupCAS)
		}

		// Protocol library
		{
			pHandle := protocolView.NewProtocolHandle()
			protocolRouter := v1.Group("/protocol")
			protocolRouter.POST("/create", pHandle.Create)
			protocolRouter.GET("/query", pHandle.Query)
			protocolRouter.GET("/detail/:uuid", pHandle.Detail)
		}

		// Task planner
		{
			eHandle := plannerView.NewPlannerHandle()
			eventRouter := v1.Group("/event")
			eventRouter.POST("/create", eHandle.Create)
			eventRouter.GET("/query", eHandle.Query)
			eventRouter.PUT("/complete", eHandle.Complete)
			eventRouter.DELETE("/delete", eHandle.Delete)
			eventRouter.GET("/calendar", eHandle.Calendar)
			eventRouter.GET("/today", eHandle.Today)
		}

		// Experiment logs
		{
			lHandle := explogView.NewExplogHandle()
			explogRouter := v1.Group("/explog")
			explogRouter.POST("/create", lHandle.Create)
			explogRouter.GET("/query", lHandle.Query)
			explogRouter.GET("/detail/:uuid", lHandle.Detail)
		}

		// Dashboard
		{
			dHandle := dashboardView.NewDashboardHandle()
			v1.GET("/dashboard", dHandle.Overview)
		}

		// Live notifications: websocket and SSE views of the same stream
		{
			v1.GET("/ws/alerts", sHandle.Alerts)
			v1.GET("/notify/sse", sHandle.SSE)
		}
	}

	return func() {
		sHandle.Close(ctx)
	}
}
