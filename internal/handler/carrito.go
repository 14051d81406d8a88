package handler

import (
	"net/http"

	"github.com/panteragalgo/awa-app/internal/apierror"
	"github.com/panteragalgo/awa-app/internal/dto"
	"github.com/panteragalgo/awa-app/internal/middleware"
	"github.com/panteragalgo/awa-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CarritoHandler expone el carrito del cliente, uno por proveedor. El
// proveedor viaja en la ruta; el cliente sale del token.
type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

func (h *CarritoHandler) Obtener(c *gin.Context) {
	userID, providerID, ok := h.ids(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), userID, providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("error al obtener carrito"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Agregar(c *gin.Context) {
	userID, providerID, ok := h.ids(c)
	if !ok {
		return
	}
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("product_id invalido"))
		return
	}

	resp, err := h.svc.Agregar(c.Request.Context(), userID, providerID, productID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) ActualizarCantidad(c *gin.Context) {
	userID, providerID, ok := h.ids(c)
	if !ok {
		return
	}
	productID, ok := pathUUID(c, "productId")
	if !ok {
		return
	}
	var req dto.ActualizarCantidadRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.ActualizarCantidad(c.Request.Context(), userID, providerID, productID, req.Delta)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Vaciar(c *gin.Context) {
	userID, providerID, ok := h.ids(c)
	if !ok {
		return
	}
	h.svc.Vaciar(c.Request.Context(), userID, providerID)
	c.Status(http.StatusNoContent)
}

func (h *CarritoHandler) ids(c *gin.Context) (userID, providerID uuid.UUID, ok bool) {
	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("token invalido"))
		return uuid.Nil, uuid.Nil, false
	}
	providerID, ok = pathUUID(c, "providerId")
	return userID, providerID, ok
}
