package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCreateRequest_NormalizeCamelCase(t *testing.T) {
	body := `{
		"customer": {"email": "marie@example.com", "firstName": "Marie", "lastName": "Dubois", "zipCode": "69003"},
		"items": [{"id": 1, "quantity": 2, "price": "10.00"}],
		"subtotal": "20.00",
		"deliveryFee": "4.90",
		"total": "24.90",
		"id": "ORD-FRONT001"
	}`

	var req orderCreateRequest
	assert.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.normalize()
	assert.Equal(t, "Marie", in.Customer.FirstName)
	assert.Equal(t, "Dubois", in.Customer.LastName)
	assert.Equal(t, "69003", in.Customer.ZipCode)
	assert.Equal(t, "ORD-FRONT001", in.OrderNumber)
	assert.Equal(t, "20.00", in.Subtotal.StringFixed(2))
	assert.Equal(t, "4.90", in.DeliveryFee.StringFixed(2))
	assert.Len(t, in.Items, 1)
	assert.Equal(t, int64(1), in.Items[0].ProductID)
	assert.Equal(t, "10.00", in.Items[0].Price.StringFixed(2))
}

func TestOrderCreateRequest_NormalizeSnakeCaseFallback(t *testing.T) {
	body := `{
		"customer": {"email": "marie@example.com", "first_name": "Marie", "last_name": "Dubois", "zip_code": "69003"},
		"items": [{"id": 1, "quantity": 1}],
		"delivery_fee": 4.9
	}`

	var req orderCreateRequest
	assert.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.normalize()
	assert.Equal(t, "Marie", in.Customer.FirstName)
	assert.Equal(t, "69003", in.Customer.ZipCode)
	assert.Equal(t, "4.90", in.DeliveryFee.StringFixed(2))
	//price省略時はnilのまま（注文時に商品価格が使われる）
	assert.Nil(t, in.Items[0].Price)
}

// camelとsnakeの両方が来たらcamelを優先する
func TestOrderCreateRequest_CamelWinsOverSnake(t *testing.T) {
	body := `{
		"customer": {"firstName": "Camel", "first_name": "Snake", "lastName": "D", "email": "d@example.com"},
		"items": [{"id": 1}],
		"deliveryFee": "1.00",
		"delivery_fee": "9.99"
	}`

	var req orderCreateRequest
	assert.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.normalize()
	assert.Equal(t, "Camel", in.Customer.FirstName)
	assert.Equal(t, "1.00", in.DeliveryFee.StringFixed(2))
}

// フロントは注文番号を数値でも文字列でも送ってくる
func TestFlexString_AcceptsNumberAndString(t *testing.T) {
	var req orderCreateRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"id": 12345}`), &req))
	assert.Equal(t, "12345", string(req.ID))

	req = orderCreateRequest{}
	assert.NoError(t, json.Unmarshal([]byte(`{"id": "ORD-ABC"}`), &req))
	assert.Equal(t, "ORD-ABC", string(req.ID))

	req = orderCreateRequest{}
	assert.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &req))
	assert.Equal(t, "", string(req.ID))
}

func TestRegisterRequest_Normalize(t *testing.T) {
	body := `{"email": "marie@example.com", "password": "secret123", "first_name": "Marie", "last_name": "Dubois"}`

	var req registerRequest
	assert.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.normalize()
	assert.Equal(t, "marie@example.com", in.Email)
	assert.Equal(t, "Marie", in.FirstName)
	assert.Equal(t, "Dubois", in.LastName)
}

func TestCustomerUpdateRequest_NilFieldsStayNil(t *testing.T) {
	body := `{"city": "Paris"}`

	var req customerUpdateRequest
	assert.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.normalizeProfile()
	assert.NotNil(t, in.City)
	assert.Equal(t, "Paris", *in.City)
	assert.Nil(t, in.FirstName)
	assert.Nil(t, in.Password)

	adminIn := req.normalizeAdmin()
	assert.Nil(t, adminIn.Email)
	assert.Equal(t, "Paris", *adminIn.City)
}

func TestCustomerUpdateRequest_SnakeFallback(t *testing.T) {
	body := `{"first_name": "Marie", "zip_code": "69003"}`

	var req customerUpdateRequest
	assert.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.normalizeProfile()
	assert.Equal(t, "Marie", *in.FirstName)
	assert.Equal(t, "69003", *in.ZipCode)
}
