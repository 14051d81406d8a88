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

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// claimsProviderID resolves the provider behind the authenticated token.
// Routes using it sit behind RequireUserType("proveedor"), so a missing
// provider_id claim means a malformed token, not a role problem.
func claimsProviderID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.ProviderID == nil {
		c.JSON(http.StatusForbidden, apierror.New("la cuenta no tiene un proveedor asociado"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(*claims.ProviderID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("token invalido"))
		return uuid.Nil, false
	}
	return id, true
}

// Crear godoc
// @Summary Alta de producto en el catálogo propio
// @Tags productos
// @Accept json
// @Produce json
// @Param body body dto.CrearProductoRequest true "Producto"
// @Success 201 {object} dto.ProductoResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/panel/productos [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	providerID, ok := claimsProviderID(c)
	if !ok {
		return
	}
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Crear(c.Request.Context(), providerID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	providerID, ok := claimsProviderID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	providerID, ok := claimsProviderID(c)
	if !ok {
		return
	}
	productID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Actualizar(c.Request.Context(), providerID, productID, &req)
	if err != nil {
		h.writeProductoError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) ToggleActivo(c *gin.Context) {
	providerID, ok := claimsProviderID(c)
	if !ok {
		return
	}
	productID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := h.svc.ToggleActivo(c.Request.Context(), providerID, productID)
	if err != nil {
		h.writeProductoError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) writeProductoError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProductoAjeno) {
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusNotFound, apierror.New(err.Error()))
}
