package placement

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

// Submission — сырой материал размещения заказа: значения полей до валидации.
// Числовые поля намеренно остаются нетипизированными: источник может прислать
// как JSON-числа, так и числовые строки.
type Submission struct {
	// UserID — значение поля user_id в текстовом виде.
	UserID string
	// HasUserID сообщает, присутствовало ли поле user_id в запросе вообще.
	HasUserID bool
	// Books — сырое значение поля books: ожидается JSON-массив объектов позиций.
	Books []byte
}

// SubmissionFromForm пытается собрать Submission из urlencoded-тела.
// Возвращает false, если тело не разбирается как форма либо не содержит
// ни одного из ожидаемых полей — тогда вызывающий пробует JSON-обрамление.
func SubmissionFromForm(body []byte) (Submission, bool) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return Submission{}, false
	}
	if !values.Has("user_id") && !values.Has("books") {
		return Submission{}, false
	}

	return Submission{
		UserID:    values.Get("user_id"),
		HasUserID: values.Has("user_id"),
		Books:     booksFieldBytes(values),
	}, true
}

func booksFieldBytes(values url.Values) []byte {
	if !values.Has("books") {
		return nil
	}
	return []byte(values.Get("books"))
}

// SubmissionFromJSON собирает Submission из JSON-объекта верхнего уровня.
// Поле books принимается и как строка с закодированным JSON-массивом
// (каноничное обрамление источника), и как сам массив.
func SubmissionFromJSON(body []byte) (Submission, error) {
	var envelope struct {
		UserID json.RawMessage `json:"user_id"`
		Books  json.RawMessage `json:"books"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Submission{}, fmt.Errorf("decode submission body: %w", err)
	}

	sub := Submission{}

	if len(envelope.UserID) > 0 {
		sub.HasUserID = true
		sub.UserID = rawToString(envelope.UserID)
	}
	if len(envelope.Books) > 0 {
		sub.Books = unwrapEncodedJSON(envelope.Books)
	}

	return sub, nil
}

// rawToString снимает JSON-кавычки со строкового значения;
// прочие значения возвращаются дословно.
func rawToString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}

// unwrapEncodedJSON разворачивает строково-закодированное JSON-значение.
func unwrapEncodedJSON(raw json.RawMessage) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return []byte(s)
		}
	}
	return trimmed
}

// buyerID разбирает идентификатор покупателя: требуется положительное целое.
func (s Submission) buyerID() (int64, error) {
	if !s.HasUserID {
		return 0, domain.ErrBuyerInvalid
	}
	id, err := strconv.ParseInt(strings.TrimSpace(s.UserID), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBuyerInvalid
	}
	return id, nil
}

// requestLine — одна позиция из запроса до проверки каталога.
// Количество остаётся сырым: его разбор относится к поштучным проверкам,
// а не к разбору структуры списка.
type requestLine struct {
	BookID   int64
	ShopID   int64
	quantity json.RawMessage
}

// lines разбирает поле books в список позиций. Отсутствие поля или пустой
// список — ErrLinesRequired; всё, что не является списком объектов позиций
// с разбираемыми id и shop_id, — ErrLinesMalformed.
func (s Submission) lines() ([]requestLine, error) {
	if len(bytes.TrimSpace(s.Books)) == 0 {
		return nil, domain.ErrLinesRequired
	}

	var rawLines []struct {
		ID       json.RawMessage `json:"id"`
		ShopID   json.RawMessage `json:"shop_id"`
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.Unmarshal(s.Books, &rawLines); err != nil {
		return nil, domain.ErrLinesMalformed
	}
	if len(rawLines) == 0 {
		return nil, domain.ErrLinesRequired
	}

	result := make([]requestLine, 0, len(rawLines))
	for _, raw := range rawLines {
		bookID, err := coerceInt(raw.ID)
		if err != nil {
			return nil, domain.ErrLinesMalformed
		}
		shopID, err := coerceInt(raw.ShopID)
		if err != nil {
			return nil, domain.ErrLinesMalformed
		}
		result = append(result, requestLine{BookID: bookID, ShopID: shopID, quantity: raw.Quantity})
	}

	return result, nil
}

// coerceInt приводит JSON-число или числовую строку к int64.
func coerceInt(raw json.RawMessage) (int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, fmt.Errorf("value is missing")
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return 0, fmt.Errorf("unquote value: %w", err)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse value %q: %w", s, err)
		}
		return n, nil
	}

	var n int64
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return 0, fmt.Errorf("parse value: %w", err)
	}
	return n, nil
}
