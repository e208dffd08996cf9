package workorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedPayload(t *testing.T) *Payload {
	t.Helper()
	c := NewComposer()
	c.AddService(oilChange)
	c.AddPart(engineOil)
	c.SetPartQuantity("p1", 2)
	p, err := c.Submit(Header{ClientID: "c1", VehicleID: "v1", LaborCost: 30, Status: StatusOpen})
	require.NoError(t, err)
	return p
}

func TestNewWorkOrder(t *testing.T) {
	p := submittedPayload(t)

	o, err := NewWorkOrder("os-001", p)

	require.NoError(t, err)
	assert.Equal(t, StatusOpen, o.Status)
	assert.Equal(t, p.Total, o.Total)
	assert.Empty(t, o.ValidateInvariants())
}

func TestNewWorkOrder_NoServices(t *testing.T) {
	c := NewComposer()
	c.AddPart(engineOil)
	p, err := c.Submit(Header{ClientID: "c1", VehicleID: "v1"})
	require.NoError(t, err)

	_, err = NewWorkOrder("os-002", p)

	assert.ErrorIs(t, err, ErrNoServices)
}

func TestNewWorkOrder_MissingHeader(t *testing.T) {
	p := submittedPayload(t)
	p.VehicleID = ""

	_, err := NewWorkOrder("os-003", p)

	assert.ErrorIs(t, err, ErrMissingField)
}

func TestWorkOrder_ValidateInvariants_TotalMismatch(t *testing.T) {
	p := submittedPayload(t)
	o, err := NewWorkOrder("os-004", p)
	require.NoError(t, err)

	o.Total += 1

	errs := o.ValidateInvariants()
	assert.Contains(t, errs, ErrTotalMismatch)
}
