package handler

import (
	"net/http"

	"github.com/panteragalgo/awa-app/internal/apierror"
	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct {
	svc       service.ProveedorService
	resenaSvc service.ResenaService
}

func NewProveedoresHandler(svc service.ProveedorService, resenaSvc service.ResenaService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc, resenaSvc: resenaSvc}
}

// Buscar godoc
// @Summary Busca proveedores verificados con filtros y ordenamiento
// @Tags proveedores
// @Produce json
// @Param search query string false "Subcadena sobre el nombre del negocio"
// @Param zone query string false "Zona de cobertura exacta"
// @Param verified_only query bool false "Solo verificados"
// @Param sort query string false "rating | reviews | price-asc | price-desc"
// @Success 200 {object} dto.ProveedorListResponse
// @Router /v1/proveedores [get]
func (h *ProveedoresHandler) Buscar(c *gin.Context) {
	var filter dto.ProveedorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("filtros invalidos: "+err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("orden invalido"))
		return
	}

	resp, err := h.svc.Buscar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("error al buscar proveedores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProveedoresHandler) Detalle(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Detalle(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("proveedor no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProveedoresHandler) Resenas(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.resenaSvc.ListarPorProveedor(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("error al listar reseñas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
