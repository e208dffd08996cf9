package avro

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/domain/workorder"
)

func TestWorkOrder_AvroRoundTrip(t *testing.T) {
	enc, err := NewWorkOrderEncoder()
	require.NoError(t, err)

	order := workorder.WorkOrder{
		ID:        "os-001",
		ClientID:  "c1",
		VehicleID: "v1",
		Services: []workorder.ServiceLine{
			{ServiceID: "s1", Name: "Troca de óleo", Quantity: 3, UnitPrice: 80},
		},
		Parts: []workorder.PartLine{
			{PartID: "p1", Name: "Óleo motor 5W30", Quantity: 3, UnitPrice: 45, StockCeiling: 3},
		},
		Observations: "cliente aguarda na loja",
		LaborCost:    50,
		Discount:     20,
		Total:        405,
		Status:       workorder.StatusOpen,
	}

	raw, err := json.Marshal(order)
	require.NoError(t, err)

	var asMap map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &asMap))

	native, err := ToWorkOrderNative(asMap)
	require.NoError(t, err)

	binary, err := enc.Encode(native)
	require.NoError(t, err)
	require.NotEmpty(t, binary)

	decodedNative, err := enc.Decode(binary)
	require.NoError(t, err)

	plain, err := json.Marshal(FromNative(decodedNative))
	require.NoError(t, err)

	var decoded workorder.WorkOrder
	require.NoError(t, json.Unmarshal(plain, &decoded))

	assert.Equal(t, order.ID, decoded.ID)
	assert.Equal(t, order.Total, decoded.Total)
	require.Len(t, decoded.Services, 1)
	assert.Equal(t, 3, decoded.Services[0].Quantity)
	require.Len(t, decoded.Parts, 1)
	assert.Equal(t, 3, decoded.Parts[0].StockCeiling)
	assert.Equal(t, workorder.StatusOpen, decoded.Status)
}

func TestToWorkOrderNative_MissingOptionalFields(t *testing.T) {
	native, err := ToWorkOrderNative(map[string]interface{}{
		"id": "os-002",
	})

	require.NoError(t, err)
	assert.Nil(t, native["services"])
	assert.Nil(t, native["observations"])
	assert.Equal(t, map[string]interface{}{"string": "os-002"}, native["id"])
}

func TestToWorkOrderNative_BadLines(t *testing.T) {
	_, err := ToWorkOrderNative(map[string]interface{}{
		"services": "not-an-array",
	})

	assert.Error(t, err)
}
