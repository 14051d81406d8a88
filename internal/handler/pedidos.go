package handler

import (
	"net/http"

	"github.com/panteragalgo/awa-app/internal/apierror"
	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Panel godoc
// @Summary Panel del proveedor: pedidos recientes, productos y estadísticas
// @Tags panel
// @Produce json
// @Success 200 {object} dto.PanelResponse
// @Router /v1/panel [get]
func (h *PedidosHandler) Panel(c *gin.Context) {
	providerID, ok := claimsProviderID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Panel(c.Request.Context(), providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("error al cargar el panel"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) CambiarEstado(c *gin.Context) {
	providerID, ok := claimsProviderID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.CambiarEstado(c.Request.Context(), providerID, orderID, &req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *PedidosHandler) Estadisticas(c *gin.Context) {
	providerID, ok := claimsProviderID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Estadisticas(c.Request.Context(), providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("error al calcular estadísticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
