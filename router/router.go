package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	signalCtrl interface {
		Signal(echo.Context) error
		Risks(echo.Context) error
		StageProgress(echo.Context) error
	},
	profileCtrl interface {
		Save(echo.Context) error
		Get(echo.Context) error
	},
	historyCtrl interface {
		List(echo.Context) error
		PatchAction(echo.Context) error
		Feedback(echo.Context) error
		Clear(echo.Context) error
		LastAlert(echo.Context) error
	},
	weatherCtrl interface{ Get(echo.Context) error },
	marketCtrl interface {
		Price(echo.Context) error
		CreateTransaction(echo.Context) error
		ListTransactions(echo.Context) error
	},
	aiCtrl interface {
		Chat(echo.Context) error
		Scan(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/profile", profileCtrl.Save)
	e.GET("/profile", profileCtrl.Get)

	e.POST("/signal", signalCtrl.Signal)
	e.POST("/risks", signalCtrl.Risks)
	e.GET("/stage", signalCtrl.StageProgress)

	g := e.Group("/history")
	g.GET("", historyCtrl.List)
	g.DELETE("", historyCtrl.Clear)
	g.GET("/last", historyCtrl.LastAlert)
	g.PATCH("/:id/action", historyCtrl.PatchAction)
	g.POST("/:id/feedback", historyCtrl.Feedback)

	e.GET("/weather", weatherCtrl.Get)

	e.GET("/market", marketCtrl.Price)
	e.POST("/market/transactions", marketCtrl.CreateTransaction)
	e.GET("/market/transactions", marketCtrl.ListTransactions)

	e.POST("/chat", aiCtrl.Chat)
	e.POST("/scan", aiCtrl.Scan)

	return e
}
