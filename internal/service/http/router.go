package http

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
	"github.com/MrJuicyBacon/sample-api/internal/metrics"
	"github.com/MrJuicyBacon/sample-api/internal/service/placement"
)

// RouterDeps перечисляет зависимости HTTP-слоя.
type RouterDeps struct {
	Placement *placement.Service
	Users     domain.UserRepository
	Shops     domain.ShopRepository
	Orders    domain.OrderRepository

	Logger  *log.Entry
	Metrics *metrics.HTTPMetrics
}

// NewRouter собирает gin-маршрутизатор со всеми обработчиками и middleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = log.New().WithField("component", "http")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogging(logger))
	if deps.Metrics != nil {
		router.Use(Metrics(deps.Metrics))
	}

	orders := newOrderHandler(deps.Placement, logger)
	users := newUserHandler(deps.Users, deps.Orders)
	shops := newShopHandler(deps.Shops)

	router.POST("/order", orders.placeOrder)
	router.GET("/users/:user_id", users.getUser)
	router.GET("/users/:user_id/orders", users.listUserOrders)
	router.GET("/shops/:shop_id", shops.getShop)

	return router
}
