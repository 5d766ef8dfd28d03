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

func registerOrderRoutes(r *gin.Engine, v *validatorv10.Validate, svc *service.OrderService) {
	r.POST("/orders", func(c *gin.Context) {
		var req validation.OrderCreateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		created, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, mapper.OrderToResponse(created))
	})

	r.GET("/orders", func(c *gin.Context) {
		list, err := svc.GetAll(c.Request.Context())
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.OrdersToResponses(list))
	})

	r.GET("/orders/:orderId", func(c *gin.Context) {
		order, err := svc.GetByID(c.Request.Context(), c.Param("orderId"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.OrderToResponse(order))
	})

	r.PUT("/orders/:orderId", func(c *gin.Context) {
		var req validation.OrderUpdateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		updated, err := svc.Update(c.Request.Context(), c.Param("orderId"), req)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.OrderToResponse(updated))
	})

	r.DELETE("/orders/:orderId", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("orderId")); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
