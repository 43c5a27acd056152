package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"

	"github.com/gin-gonic/gin"
)

type TopicCategoryHandler struct {
	categoryService *services.TopicCategoryService
}

func NewTopicCategoryHandler(categoryService *services.TopicCategoryService) *TopicCategoryHandler {
	return &TopicCategoryHandler{categoryService: categoryService}
}

// Create godoc
// @Summary Create a topic category
// @Tags topic-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateTopicCategoryRequest true "Category data"
// @Success 201 {object} models.TopicCategory
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/topic-categories [post]
func (h *TopicCategoryHandler) Create(c *gin.Context) {
	var req models.CreateTopicCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": category, "message": "Topic category created"})
}

// List godoc
// @Summary List topic categories
// @Tags topic-categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TopicCategory
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topic-categories [get]
func (h *TopicCategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories, "count": len(categories)})
}

// Get godoc
// @Summary Get a topic category
// @Tags topic-categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.TopicCategory
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/topic-categories/{id} [get]
func (h *TopicCategoryHandler) Get(c *gin.Context) {
	category, err := h.categoryService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

// Update godoc
// @Summary Update a topic category
// @Tags topic-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body models.UpdateTopicCategoryRequest true "Fields to update"
// @Success 200 {object} models.TopicCategory
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/topic-categories/{id} [put]
func (h *TopicCategoryHandler) Update(c *gin.Context) {
	var req models.UpdateTopicCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": category, "message": "Topic category updated"})
}

// Delete godoc
// @Summary Delete a topic category
// @Tags topic-categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/topic-categories/{id} [delete]
func (h *TopicCategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Topic category deleted"})
}
