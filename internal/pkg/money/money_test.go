package money

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "120", want: "120.00"},
		{in: "99.5", want: "99.50"},
		{in: " 1,299.00 ", want: "1299.00"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0.05", want: "0.05"},
		{in: "1/3", wantErr: true},
		{in: "1e3", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "0.001", wantErr: true},
		{in: "0.0000000001", wantErr: true},
		{in: "12.", wantErr: true},
		{in: ".5", wantErr: true},
		{in: "1234567890123", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestArithmetic(t *testing.T) {
	price, err := New(4550, 100)
	require.NoError(t, err)

	subtotal := price.MulInt(3)
	assert.Equal(t, "136.50", subtotal.String())

	total := subtotal.Add(FromRat(big.NewRat(1, 2)))
	assert.Equal(t, "137.00", total.String())
	assert.True(t, total.IsPositive())
	assert.True(t, Zero().IsZero())
	assert.True(t, FromRat(nil).IsZero())
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := New(1, 0)
	assert.Error(t, err)
}

func TestRatIsCopy(t *testing.T) {
	m, _ := New(10, 1)
	r := m.Rat()
	r.SetInt64(99)
	assert.Equal(t, "10.00", m.String())
}

func TestMarshalJSON(t *testing.T) {
	m, _ := New(25, 2)
	b, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"12.50"`, string(b))
}

func TestUnmarshalJSON(t *testing.T) {
	var body struct {
		A *Money `json:"a"`
		B *Money `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1,299.50","b":45}`), &body))
	assert.Equal(t, "1299.50", body.A.String())
	assert.Equal(t, "45.00", body.B.String())

	assert.Error(t, json.Unmarshal([]byte(`{"a":"abc"}`), &body))
}
