package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/resto-admin/models"
	"github.com/yeremiapane/resto-admin/utils"
)

const menuUploadDir = "public/uploads/menus"

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> paginated catalog listing with optional filters:
// name (substring), category (exact), withStock (stock > 0).
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	page, limit := parsePagination(c, 100)

	query := mc.DB.Model(&models.Menu{})
	if name := c.Query("name"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("withStock") != "" {
		query = query.Where("stock > 0")
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		respondInternalError(c, "failed get menus", err)
		return
	}

	var menus []models.Menu
	if err := query.Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Find(&menus).Error; err != nil {
		respondInternalError(c, "failed get menus", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "success get menus", gin.H{
		"pagination": paginate(totalRows, page, limit),
		"menus":      menus,
	})
}

// CreateMenu -> multipart form insert with optional image upload.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	menu, errs := bindMenuForm(c)
	if len(errs) > 0 {
		utils.RespondError(c, http.StatusBadRequest, "failed insert new menu", errs)
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := saveMenuImage(c, file)
		if err != nil {
			respondInternalError(c, "failed insert new menu", err)
			return
		}
		menu.Image = imagePath
	}

	now := time.Now()
	menu.CreatedAt = now
	menu.UpdatedAt = now

	if err := mc.DB.Create(&menu).Error; err != nil {
		removeMenuImage(menu.Image)
		respondInternalError(c, "failed insert new menu", err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "success insert new menu", gin.H{"menu": menu})
}

// GetMenuByID -> catalog item detail.
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "failed get menu detail", "id is required")
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "failed get menu detail", "menu not found")
		return
	}

	utils.RespondJSON(c, http.StatusOK, "success get menu detail", gin.H{"menu": menu})
}

// UpdateMenu -> multipart form update; a new image replaces the stored
// file on disk.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "failed update menu", "id is required")
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "failed update menu", "menu is not found")
		return
	}

	update, errs := bindMenuForm(c)
	if len(errs) > 0 {
		utils.RespondError(c, http.StatusBadRequest, "failed update menu", errs)
		return
	}

	menu.Name = update.Name
	menu.Category = update.Category
	menu.Description = update.Description
	menu.Price = update.Price
	menu.Stock = update.Stock
	menu.UpdatedAt = time.Now()

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := saveMenuImage(c, file)
		if err != nil {
			respondInternalError(c, "failed update menu", err)
			return
		}
		removeMenuImage(menu.Image)
		menu.Image = imagePath
	}

	if err := mc.DB.Save(&menu).Error; err != nil {
		respondInternalError(c, "failed update menu", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "success update menu", gin.H{"menu": menu})
}

// DeleteMenu -> removes a catalog item. Menus referenced by any
// transaction line are protected so history stays accurate.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("menu_id"))
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "failed delete menu", "id is required")
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "failed delete menu", "menu is not found")
		return
	}

	var references int64
	if err := mc.DB.Model(&models.Transaction{}).
		Where("menu_id = ?", menu.ID).Count(&references).Error; err != nil {
		respondInternalError(c, "failed delete menu", err)
		return
	}
	if references > 0 {
		utils.RespondError(c, http.StatusConflict, "failed delete menu",
			"menu is referenced by existing transactions")
		return
	}

	if err := mc.DB.Delete(&menu).Error; err != nil {
		respondInternalError(c, "failed delete menu", err)
		return
	}
	removeMenuImage(menu.Image)

	utils.RespondJSON(c, http.StatusOK, "success delete menu", gin.H{"id": menu.ID})
}

// bindMenuForm validates the shared multipart fields of create/update.
func bindMenuForm(c *gin.Context) (models.Menu, gin.H) {
	errs := gin.H{}

	menu := models.Menu{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
	}
	if menu.Name == "" {
		errs["name"] = "name is required"
	}
	if menu.Category == "" {
		errs["category"] = "category is required"
	}
	if menu.Description == "" {
		errs["description"] = "description is required"
	}

	stock, err := strconv.ParseInt(c.PostForm("stock"), 10, 64)
	if err != nil || stock < 0 {
		errs["stock"] = "stock is required and must be a number"
	}
	menu.Stock = stock

	price, err := strconv.ParseInt(c.PostForm("price"), 10, 64)
	if err != nil || price < 0 {
		errs["price"] = "price is required and must be a number"
	}
	menu.Price = price

	return menu, errs
}

// saveMenuImage stores the upload under the public dir and returns the
// path served by the router.
func saveMenuImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(menuUploadDir, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(menuUploadDir, filename)); err != nil {
		return "", err
	}
	return "/uploads/menus/" + filename, nil
}

func removeMenuImage(image string) {
	if image == "" {
		return
	}
	os.Remove(filepath.Join(menuUploadDir, filepath.Base(image)))
}
