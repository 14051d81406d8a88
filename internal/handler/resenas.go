package handler

import (
	"errors"
	"net/http"

	"github.com/panteragalgo/awa-app/internal/apierror"
	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/middleware"
	"github.com/panteragalgo/awa-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResenasHandler struct{ svc service.ResenaService }

func NewResenasHandler(svc service.ResenaService) *ResenasHandler {
	return &ResenasHandler{svc: svc}
}

func (h *ResenasHandler) Crear(c *gin.Context) {
	claims := middleware.GetClaims(c)
	customerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("token invalido"))
		return
	}
	var req dto.CrearResenaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Crear(c.Request.Context(), customerID, &req)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, service.ErrResenaDuplicada) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
