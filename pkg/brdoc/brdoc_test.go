package brdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDocument(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "cpf digits", raw: "12345678900", want: "123.456.789-00"},
		{name: "cpf with noise", raw: "123.456.789-00", want: "123.456.789-00"},
		{name: "cnpj digits", raw: "12345678000195", want: "12.345.678/0001-95"},
		{name: "partial input untouched", raw: "12345", want: "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDocument(tt.raw))
		})
	}
}

func TestValidDocument(t *testing.T) {
	assert.True(t, ValidDocument("123.456.789-00"))
	assert.True(t, ValidDocument("12.345.678/0001-95"))
	assert.False(t, ValidDocument("12345678900"))
	assert.False(t, ValidDocument("123.456.789-0"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 3456-7890", FormatPhone("1134567890"))
	assert.Equal(t, "(11) 93456-7890", FormatPhone("11934567890"))
	assert.Equal(t, "119345", FormatPhone("11 9345"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("(11) 3456-7890"))
	assert.True(t, ValidPhone("(11) 93456-7890"))
	assert.False(t, ValidPhone("11934567890"))
}

func TestFormatPlate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "old layout", raw: "abc1234", want: "ABC-1234"},
		{name: "old layout with hyphen", raw: "ABC-1234", want: "ABC-1234"},
		{name: "mercosul", raw: "abc1d23", want: "ABC1D23"},
		{name: "partial", raw: "ab", want: "AB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPlate(tt.raw))
		})
	}
}

func TestValidPlate(t *testing.T) {
	assert.True(t, ValidPlate("ABC-1234"))
	assert.True(t, ValidPlate("ABC1D23"))
	assert.False(t, ValidPlate("ABC1234"))
	assert.False(t, ValidPlate("abc-1234"))
}

func TestIsMercosul(t *testing.T) {
	assert.True(t, IsMercosul("ABC1D23"))
	assert.False(t, IsMercosul("ABC-1234"))
}
