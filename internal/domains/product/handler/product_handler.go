package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ralhum-backend/internal/domains/product"
	"ralhum-backend/internal/shared/middleware"
	"ralhum-backend/internal/shared/response"
)

type ProductHandler struct {
	service product.ProductService
}

func NewProductHandler(svc product.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req product.CreateProductReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Create(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		response.ErrorResponse(c, product.GetHTTPStatusCode(err), "PRODUCT_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, product.ErrInvalidID.Error())
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		response.ErrorResponse(c, product.GetHTTPStatusCode(err), "PRODUCT_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *ProductHandler) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		response.BadRequest(c, "invalid slug")
		return
	}
	resp, err := h.service.GetBySlug(c.Request.Context(), middleware.ActorFromContext(c), slug)
	if err != nil {
		response.ErrorResponse(c, product.GetHTTPStatusCode(err), "PRODUCT_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *ProductHandler) GetAll(c *gin.Context) {
	filter := &product.ProductFilter{Limit: 20, Search: strings.TrimSpace(c.Query("search"))}
	if v := c.Query("category"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.CategoryID = &id
		}
	}
	if v := c.Query("brand"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.BrandID = &id
		}
	}
	if v := c.Query("status"); v != "" {
		status := product.Status(v)
		filter.Status = &status
	}
	if v := c.Query("featured"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.Featured = &b
		}
	}
	if v := c.Query("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			filter.Limit = l
		}
	}
	if v := c.Query("offset"); v != "" {
		if o, err := strconv.Atoi(v); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	resp, err := h.service.GetAll(c.Request.Context(), middleware.ActorFromContext(c), filter)
	if err != nil {
		response.ErrorResponse(c, product.GetHTTPStatusCode(err), "PRODUCT_LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, product.ErrInvalidID.Error())
		return
	}
	var req product.UpdateProductReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, &req)
	if err != nil {
		response.ErrorResponse(c, product.GetHTTPStatusCode(err), "PRODUCT_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, product.ErrInvalidID.Error())
		return
	}
	var req product.UpdateStockReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.UpdateStock(c.Request.Context(), middleware.ActorFromContext(c), id, &req)
	if err != nil {
		response.ErrorResponse(c, product.GetHTTPStatusCode(err), "PRODUCT_STOCK_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, product.ErrInvalidID.Error())
		return
	}
	if err := h.service.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		response.ErrorResponse(c, product.GetHTTPStatusCode(err), "PRODUCT_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// Export streams the catalog spreadsheet. Staff only, enforced in the service.
func (h *ProductHandler) Export(c *gin.Context) {
	data, err := h.service.ExportXLSX(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		response.ErrorResponse(c, product.GetHTTPStatusCode(err), "PRODUCT_EXPORT_FAILED", err.Error())
		return
	}
	filename := fmt.Sprintf("catalog-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
