package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mercata/shop-backend/internal/awsx"
	"github.com/mercata/shop-backend/internal/clients"
	"github.com/mercata/shop-backend/internal/items"
	"github.com/mercata/shop-backend/internal/orders"
	"github.com/mercata/shop-backend/internal/service"
	"github.com/mercata/shop-backend/internal/validation"
)

// Config groups dependencies for the HTTP handlers.
type Config struct {
	DynamoDBClient awsx.DynamoDBAPI
	SQSClient      awsx.SQSAPI
	ClientsTable   string
	ItemsTable     string
	OrdersTable    string
	EventsQueueURL string
}

// RegisterRoutes builds the stores and services from cfg and mounts every
// resource on r.
func RegisterRoutes(r *gin.Engine, cfg Config) {
	clientStore := clients.NewStore(cfg.DynamoDBClient, cfg.ClientsTable)
	itemStore := items.NewStore(cfg.DynamoDBClient, cfg.ItemsTable)
	orderStore := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)

	var events service.EventPublisher
	if cfg.EventsQueueURL != "" {
		events = awsx.NewPublisher(cfg.SQSClient, cfg.EventsQueueURL)
	}

	RegisterServiceRoutes(r, Services{
		Clients:      service.NewClientService(clientStore, orderStore, cfg.ClientsTable),
		Items:        service.NewItemService(itemStore, orderStore, cfg.ItemsTable),
		Orders:       service.NewOrderService(orderStore, clientStore, itemStore, events),
		ClientOrders: service.NewClientOrderService(orderStore, clientStore, itemStore, events),
	})
}

// Services bundles the wired domain services.
type Services struct {
	Clients      *service.ClientService
	Items        *service.ItemService
	Orders       *service.OrderService
	ClientOrders *service.ClientOrderService
}

// RegisterServiceRoutes mounts the resource routes over already-built
// services. Split out from RegisterRoutes so tests can inject fakes.
func RegisterServiceRoutes(r *gin.Engine, svcs Services) {
	v := validation.New()

	registerClientRoutes(r, v, svcs.Clients)
	registerItemRoutes(r, v, svcs.Items)
	registerOrderRoutes(r, v, svcs.Orders)
	registerClientOrderRoutes(r, v, svcs.ClientOrders)
}
