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

func registerItemRoutes(r *gin.Engine, v *validatorv10.Validate, svc *service.ItemService) {
	r.POST("/items", func(c *gin.Context) {
		var req validation.ItemCreateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		created, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, mapper.ItemToResponse(created))
	})

	r.GET("/items", func(c *gin.Context) {
		list, err := svc.GetAll(c.Request.Context())
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.ItemsToResponses(list))
	})

	r.GET("/items/:itemId", func(c *gin.Context) {
		item, err := svc.GetByID(c.Request.Context(), c.Param("itemId"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.ItemToResponse(item))
	})

	r.PUT("/items/:itemId", func(c *gin.Context) {
		var req validation.ItemUpdateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		updated, err := svc.Update(c.Request.Context(), c.Param("itemId"), req)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, mapper.ItemToResponse(updated))
	})

	r.DELETE("/items/:itemId", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("itemId")); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
