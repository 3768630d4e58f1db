package webapi

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tallerguerrero/storefront/internal/domain"
	"github.com/tallerguerrero/storefront/internal/store"
	"github.com/tallerguerrero/storefront/internal/validate"
)

// listProducts is the public storefront listing, a bare array ordered most
// recent first.
func (h *Handler) listProducts(c echo.Context) error {
	products, err := h.Products.List(c.Request().Context())
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": "Error al obtener productos"})
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) createProduct(c echo.Context) error {
	input := validate.ProductInput{
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
		Stock:    c.FormValue("stock"),
		Price:    c.FormValue("price"),
	}
	if details := validate.Product(input); len(details) > 0 {
		return failValidation(c, details)
	}

	stock, _ := strconv.Atoi(strings.TrimSpace(input.Stock))
	price, _ := strconv.ParseFloat(strings.TrimSpace(input.Price), 64)

	image := ""
	if fh := imageFile(c); fh != nil {
		ref, err := h.Uploads.Save(fh)
		if err != nil {
			zap.L().Error("failed to save product image", zap.Error(err))
			return failError(c, http.StatusInternalServerError, "Error al crear producto")
		}
		image = ref
	}

	product := domain.Product{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Category:  strings.TrimSpace(input.Category),
		Stock:     stock,
		Price:     price,
		Image:     image,
		CreatedAt: time.Now(),
	}

	if err := h.Products.Create(c.Request().Context(), &product); err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		return failError(c, http.StatusInternalServerError, "Error al crear producto")
	}
	return ok(c, map[string]interface{}{"product": product})
}

// updateProduct performs a partial merge: only fields present and valid in the
// request override the stored values. A new image replaces the old one; the
// superseded file is removed best-effort after the record is persisted.
func (h *Handler) updateProduct(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return failError(c, http.StatusBadRequest, "ID de producto inválido")
	}

	fields := formFields(c)
	if details := validate.ProductPartial(fields); len(details) > 0 {
		return failValidation(c, details)
	}

	product, err := h.Products.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return failError(c, http.StatusNotFound, "Producto no encontrado")
	} else if err != nil {
		zap.L().Error("failed to query product", zap.String("id", id), zap.Error(err))
		return failError(c, http.StatusInternalServerError, "Error al actualizar producto")
	}

	if v, present := fields["name"]; present {
		product.Name = strings.TrimSpace(v)
	}
	if v, present := fields["category"]; present {
		product.Category = strings.TrimSpace(v)
	}
	if v, present := fields["stock"]; present {
		product.Stock, _ = strconv.Atoi(strings.TrimSpace(v))
	}
	if v, present := fields["price"]; present {
		product.Price, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
	}

	oldImage := ""
	if fh := imageFile(c); fh != nil {
		ref, err := h.Uploads.Save(fh)
		if err != nil {
			zap.L().Error("failed to save product image", zap.String("id", id), zap.Error(err))
			return failError(c, http.StatusInternalServerError, "Error al actualizar producto")
		}
		oldImage = product.Image
		product.Image = ref
	}

	if err := h.Products.Update(c.Request().Context(), product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return failError(c, http.StatusNotFound, "Producto no encontrado")
		}
		zap.L().Error("failed to update product", zap.String("id", id), zap.Error(err))
		return failError(c, http.StatusInternalServerError, "Error al actualizar producto")
	}

	if oldImage != "" {
		h.Uploads.Remove(oldImage)
	}
	return ok(c, map[string]interface{}{"product": product})
}

func (h *Handler) deleteProduct(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return failError(c, http.StatusBadRequest, "ID de producto inválido")
	}

	product, err := h.Products.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return failError(c, http.StatusNotFound, "Producto no encontrado")
	} else if err != nil {
		zap.L().Error("failed to query product", zap.String("id", id), zap.Error(err))
		return failError(c, http.StatusInternalServerError, "Error al eliminar producto")
	}

	if err := h.Products.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return failError(c, http.StatusNotFound, "Producto no encontrado")
		}
		zap.L().Error("failed to delete product", zap.String("id", id), zap.Error(err))
		return failError(c, http.StatusInternalServerError, "Error al eliminar producto")
	}

	h.Uploads.Remove(product.Image)
	return ok(c, map[string]interface{}{"message": "Producto eliminado exitosamente"})
}

// imageFile returns the uploaded image part, nil when the form carries none.
func imageFile(c echo.Context) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fh
}
