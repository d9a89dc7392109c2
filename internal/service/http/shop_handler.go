package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

type shopHandler struct {
	shops domain.ShopRepository
}

func newShopHandler(shops domain.ShopRepository) *shopHandler {
	return &shopHandler{shops: shops}
}

type bookResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

type shopResponse struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	PostCode string         `json:"post_code"`
	Books    []bookResponse `json:"books"`
}

// getShop отдаёт магазин вместе со списком доступных книг.
func (h *shopHandler) getShop(c *gin.Context) {
	id, ok := pathID(c, "shop_id")
	if !ok {
		return
	}

	shop, err := h.shops.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, errorBody("Shop not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, errorBody(msgGenericError))
		return
	}

	books := make([]bookResponse, 0, len(shop.Books))
	for _, book := range shop.Books {
		books = append(books, bookResponse{
			ID:     book.ID,
			Name:   book.Name,
			Author: book.Author,
			ISBN:   book.ISBN,
		})
	}

	c.JSON(http.StatusOK, shopResponse{
		ID:       shop.ID,
		Name:     shop.Name,
		Address:  shop.Address,
		PostCode: shop.PostCode,
		Books:    books,
	})
}
