package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

const regDateLayout = "2006-01-02"

type userHandler struct {
	users  domain.UserRepository
	orders domain.OrderRepository
}

func newUserHandler(users domain.UserRepository, orders domain.OrderRepository) *userHandler {
	return &userHandler{users: users, orders: orders}
}

type userResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	FathersName string `json:"fathers_name,omitempty"`
	Email       string `json:"email"`
}

type orderItemResponse struct {
	ID       int64 `json:"id"`
	BookID   int64 `json:"book_id"`
	ShopID   int64 `json:"shop_id"`
	Quantity int64 `json:"quantity"`
}

type orderResponse struct {
	ID      int64               `json:"id"`
	RegDate string              `json:"reg_date"`
	UserID  int64               `json:"user_id"`
	Items   []orderItemResponse `json:"items"`
}

func (h *userHandler) getUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, errorBody("User not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, errorBody(msgGenericError))
		return
	}

	c.JSON(http.StatusOK, userResponse{
		ID:          user.ID,
		Name:        user.Name,
		Surname:     user.Surname,
		FathersName: user.FathersName,
		Email:       user.Email,
	})
}

func (h *userHandler) listUserOrders(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(msgGenericError))
		return
	}

	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}

	c.JSON(http.StatusOK, result)
}

func toOrderResponse(order domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ID:       item.ID,
			BookID:   item.BookID,
			ShopID:   item.ShopID,
			Quantity: item.Quantity,
		})
	}
	return orderResponse{
		ID:      order.ID,
		RegDate: order.RegDate.Format(regDateLayout),
		UserID:  order.UserID,
		Items:   items,
	}
}

// pathID разбирает числовой идентификатор из пути; нечисловое значение
// неотличимо от отсутствующей записи и отдаётся как 404.
func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, errorBody("Not found."))
		return 0, false
	}
	return id, true
}
