package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/mercata/shop-backend/internal/httperr"
	"github.com/mercata/shop-backend/internal/mapper"
	"github.com/mercata/shop-backend/internal/service"
	"github.com/mercata/shop-backend/internal/validation"
)

func registerClientOrderRoutes(r *gin.Engine, v *validatorv10.Validate, svc *service.ClientOrderService) {
	r.GET("/clients/:clientId/orders", func(c *gin.Context) {
		list, err := svc.GetOrdersByClientID(c.Request.Context(), c.Param("clientId"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.OrdersToResponses(list))
	})

	r.GET("/clients/:clientId/orders/:orderId", func(c *gin.Context) {
		order, err := svc.GetOrderByClientAndID(c.Request.Context(), c.Param("clientId"), c.Param("orderId"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.OrderToResponse(order))
	})

	r.POST("/clients/:clientId/orders", func(c *gin.Context) {
		var req validation.ClientOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		created, err := svc.CreateOrderForClient(c.Request.Context(), c.Param("clientId"), req)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, mapper.OrderToResponse(created))
	})

	r.PUT("/clients/:clientId/orders/:orderId", func(c *gin.Context) {
		var req validation.ClientOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		updated, err := svc.UpdateOrderByID(c.Request.Context(), c.Param("clientId"), c.Param("orderId"), req)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.OrderToResponse(updated))
	})

	r.DELETE("/clients/:clientId/orders/:orderId", func(c *gin.Context) {
		if err := svc.DeleteOrderByID(c.Request.Context(), c.Param("clientId"), c.Param("orderId")); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
