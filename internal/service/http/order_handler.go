package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
	"github.com/MrJuicyBacon/sample-api/internal/service/placement"
)

// Литеральные сообщения контракта размещения; клиенты сверяются с текстом.
const (
	msgUnparsableBody   = "Unable to process submitted data."
	msgInvalidBuyer     = `"user_id" parameter is in the wrong format.`
	msgLinesRequired    = `"books" field is required.`
	msgUnknownShops     = "Unable to identify all of the shops."
	msgInvalidQuantity  = `"quantity" can't be less than one.`
	msgLinesMalformed   = `"books" parameter is in the wrong format.`
	msgGenericError     = "Some error occurred."
	bookNotAvailableFmt = "Book with id=%d is not available at the store with id=%d."
)

type orderHandler struct {
	placement *placement.Service
	logger    *log.Entry
}

func newOrderHandler(svc *placement.Service, logger *log.Entry) *orderHandler {
	return &orderHandler{placement: svc, logger: logger}
}

// placeOrder принимает сырую отправку заказа. Тело пробуется сначала как
// urlencoded-форма, затем как JSON-объект; пустое тело даёт общий 500.
func (h *orderHandler) placeOrder(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(msgGenericError))
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		c.JSON(http.StatusInternalServerError, errorBody(msgGenericError))
		return
	}

	sub, ok := placement.SubmissionFromForm(body)
	if !ok {
		var parseErr error
		sub, parseErr = placement.SubmissionFromJSON(body)
		if parseErr != nil {
			c.JSON(http.StatusUnprocessableEntity, errorBody(msgUnparsableBody))
			return
		}
	}

	if _, err := h.placement.PlaceOrder(c.Request.Context(), sub); err != nil {
		status, msg := placementErrorResponse(err)
		if status == http.StatusInternalServerError {
			h.logger.WithError(err).Error("order placement failed")
		}
		c.JSON(status, errorBody(msg))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// placementErrorResponse переводит ошибку конвейера размещения в статус и
// текст ответа. Отказ хранилища на заголовке заказа исторически отдаётся как
// 400, отказ на позициях или коммите — как 500; клиенты зависят от различия.
func placementErrorResponse(err error) (int, string) {
	var notAvailable *domain.BookNotAvailableError
	switch {
	case errors.Is(err, domain.ErrBuyerInvalid):
		return http.StatusBadRequest, msgInvalidBuyer
	case errors.Is(err, domain.ErrLinesRequired):
		return http.StatusBadRequest, msgLinesRequired
	case errors.Is(err, domain.ErrLinesMalformed):
		return http.StatusBadRequest, msgLinesMalformed
	case errors.Is(err, domain.ErrUnknownShops):
		return http.StatusBadRequest, msgUnknownShops
	case errors.Is(err, domain.ErrQuantityInvalid):
		return http.StatusBadRequest, msgInvalidQuantity
	case errors.As(err, &notAvailable):
		return http.StatusBadRequest, fmt.Sprintf(bookNotAvailableFmt, notAvailable.BookID, notAvailable.ShopID)
	case errors.Is(err, domain.ErrOrderRejected):
		return http.StatusBadRequest, msgGenericError
	}
	return http.StatusInternalServerError, msgGenericError
}

func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}
