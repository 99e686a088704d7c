package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhangben/backend/internal/httputil"
	"github.com/zhangben/backend/internal/models"
)

// Category is the API representation of a Category.
type Category struct {
	models.Category
	Links struct {
		Self string `json:"self" example:"https://example.com/api/v1/categories/2"` // The category itself
	} `json:"links"`
}

func (cat *Category) links(c *gin.Context) {
	cat.Links.Self = fmt.Sprintf("%s/categories/%d", httputil.RequestPathV1(c), cat.ID)
}

type CategoryCreate struct {
	Name string              `json:"name" binding:"required" example:"餐饮"`
	Type models.CategoryType `json:"type" example:"expense"`
}

type CategoryListResponse struct {
	Data []Category `json:"data"`
}

type CategoryResponse struct {
	Data Category `json:"data"`
}

func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}
	{
		r.OPTIONS("/:categoryId", httputil.OptionsGetDelete)
		r.GET("/:categoryId", GetCategory)
		r.DELETE("/:categoryId", DeleteCategory)
	}
}

// GetCategories returns all categories of the demo user.
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := models.DB.Where(&models.Category{UserID: defaultUserID}).Order("name ASC").Find(&categories).Error; err != nil {
		errorHandler(c, err)
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		cat := Category{Category: category}
		cat.links(c)
		data = append(data, cat)
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// GetCategory returns a single category by its ID.
func GetCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "categoryId")
	if err != nil {
		return
	}

	var category models.Category
	if err := models.DB.First(&category, "id = ? AND user_id = ?", id, defaultUserID).Error; err != nil {
		errorHandler(c, err)
		return
	}

	cat := Category{Category: category}
	cat.links(c)

	c.JSON(http.StatusOK, CategoryResponse{Data: cat})
}

// CreateCategory creates a new category.
func CreateCategory(c *gin.Context) {
	var create CategoryCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	category, err := models.CategoryForName(models.DB, defaultUserID, create.Name, create.Type)
	if err != nil {
		errorHandler(c, err)
		return
	}

	cat := Category{Category: category}
	cat.links(c)

	c.JSON(http.StatusCreated, CategoryResponse{Data: cat})
}

// DeleteCategory deletes a category. Categories still referenced by
// transactions cannot be deleted.
func DeleteCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "categoryId")
	if err != nil {
		return
	}

	var category models.Category
	if err := models.DB.First(&category, "id = ? AND user_id = ?", id, defaultUserID).Error; err != nil {
		errorHandler(c, err)
		return
	}

	count, err := category.TransactionCount(models.DB)
	if err != nil {
		errorHandler(c, err)
		return
	}
	if count > 0 {
		httputil.NewError(c, http.StatusBadRequest, models.ErrResourceInUse)
		return
	}

	if err := models.DB.Delete(&category).Error; err != nil {
		errorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
