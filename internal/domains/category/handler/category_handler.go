package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ralhum-backend/internal/domains/category"
	"ralhum-backend/internal/shared/middleware"
	"ralhum-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.CategoryService
}

func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Create(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, category.ErrInvalidID.Error())
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		response.BadRequest(c, "invalid slug")
		return
	}
	resp, err := h.service.GetBySlug(c.Request.Context(), middleware.ActorFromContext(c), slug)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	filter := &category.CategoryFilter{Limit: 20}
	if statusStr := c.Query("status"); statusStr != "" {
		status := category.Status(statusStr)
		filter.Status = &status
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			filter.Limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	resp, err := h.service.GetAll(c.Request.Context(), middleware.ActorFromContext(c), filter)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, category.ErrInvalidID.Error())
		return
	}
	var req category.UpdateCategoryReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, category.ErrInvalidID.Error())
		return
	}
	if err := h.service.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
