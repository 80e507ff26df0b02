package dto

import (
	"math"
	"strconv"
)

// Amount is a money figure that encodes NaN and infinities as null, which
// encoding/json otherwise refuses to marshal.
type Amount float64

func (a Amount) MarshalJSON() ([]byte, error) {
	v := float64(a)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Amount(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

func toAmounts(values []float64) []Amount {
	out := make([]Amount, len(values))
	for i, v := range values {
		out[i] = Amount(v)
	}
	return out
}
