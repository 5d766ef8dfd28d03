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

func registerClientRoutes(r *gin.Engine, v *validatorv10.Validate, svc *service.ClientService) {
	r.POST("/clients", func(c *gin.Context) {
		var req validation.ClientCreateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		created, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, mapper.ClientToResponse(created))
	})

	r.GET("/clients", func(c *gin.Context) {
		list, err := svc.GetAll(c.Request.Context())
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.ClientsToResponses(list))
	})

	r.GET("/clients/:clientId", func(c *gin.Context) {
		client, err := svc.GetByID(c.Request.Context(), c.Param("clientId"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.ClientToResponse(client))
	})

	r.PUT("/clients/:clientId", func(c *gin.Context) {
		var req validation.ClientUpdateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		updated, err := svc.Update(c.Request.Context(), c.Param("clientId"), req)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.ClientToResponse(updated))
	})

	r.DELETE("/clients/:clientId", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("clientId")); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
