package validate

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		max      int
		expected string
	}{
		{"Trims surrounding whitespace", "  Dil Panjab  ", 80, "Dil Panjab"},
		{"Whitespace only collapses to empty", " \t\n ", 80, ""},
		{"Truncates to max", "abcdefghij", 4, "abcd"},
		{"Counts characters not bytes", "ਪੰਜਾਬ ਦਾ ਖਾਣਾ", 5, "ਪੰਜਾਬ"},
		{"Zero max yields empty", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.value, tt.max))
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		input    Number
		expected float64
		ok       bool
	}{
		{"Zero is valid", NumberOf(0), 0, true},
		{"Rounds to cents", NumberOf(4.499), 4.5, true},
		{"Rounds down", NumberOf(12.344), 12.34, true},
		{"Whole number", NumberOf(9), 9, true},
		{"Negative rejected", NumberOf(-0.01), 0, false},
		{"NaN rejected", NumberOf(math.NaN()), 0, false},
		{"Infinity rejected", NumberOf(math.Inf(1)), 0, false},
		{"Missing rejected", Number{}, 0, false},
		{"Huge value kept", NumberOf(1e307), 1e307, true},
		{"Largest float kept", NumberOf(math.MaxFloat64), math.MaxFloat64, true},
		{"Large whole amount unchanged", NumberOf(1e15), 1e15, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := Price(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, price)
		})
	}
}

func TestPrice_RoundsEveryValidInput(t *testing.T) {
	for cents := 0; cents < 5000; cents += 7 {
		p := float64(cents)/100 + 0.003
		price, ok := Price(NumberOf(p))
		require.True(t, ok)
		assert.InDelta(t, float64(cents)/100, price, 1e-9)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005+1e-9))
	assert.Equal(t, -2.5, Round2(-2.499))
	assert.Equal(t, 1e300, Round2(1e300))
	assert.False(t, math.IsInf(Round2(math.MaxFloat64), 0))
}

func TestQuantity(t *testing.T) {
	for q := -5; q <= 25; q++ {
		got, ok := Quantity(NumberOf(float64(q)))
		if q >= MinQuantity && q <= MaxQuantity {
			assert.True(t, ok, "quantity %d should be accepted", q)
			assert.Equal(t, q, got)
		} else {
			assert.False(t, ok, "quantity %d should be rejected", q)
		}
	}

	_, ok := Quantity(NumberOf(2.5))
	assert.False(t, ok)

	_, ok = Quantity(Number{})
	assert.False(t, ok)

	_, ok = Quantity(NumberOf(math.NaN()))
	assert.False(t, ok)
}

func TestDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-1-01", false},
		{"24-01-01", false},
		{"2024/01/01", false},
		{"2024-01-01T10:00", false},
		{"2024-02-291", false},
		{" 2024-06-01 ", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Date(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, strings.TrimSpace(tt.input), got)
			}
		})
	}
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/images/menu-tikki.svg", "/images/menu-tikki.svg"},
		{"images/today-curry.svg", "images/today-curry.svg"},
		{"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"HTTP://cdn.example.com/a.png", "HTTP://cdn.example.com/a.png"},
		{"javascript:alert(1)", ""},
		{"ftp://example.com/a.png", ""},
		{"photos/a.png", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImageURL(tt.input))
		})
	}

	long := "/" + strings.Repeat("a", 600)
	assert.Len(t, ImageURL(long), 500)
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw      string
		expected Number
	}{
		{`4.5`, NumberOf(4.5)},
		{`"4.5"`, NumberOf(4.5)},
		{`" 3 "`, NumberOf(3)},
		{`""`, Number{}},
		{`"abc"`, Number{}},
		{`null`, Number{}},
		{`true`, Number{}},
		{`[1]`, Number{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var payload struct {
				N Number `json:"n"`
			}
			err := json.Unmarshal([]byte(`{"n":`+tt.raw+`}`), &payload)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, payload.N)
		})
	}
}

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"yes"`, true},
		{`""`, false},
		{`null`, false},
		{`{}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f Flag
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.expected, bool(f))
		})
	}
}

func TestOptionalBool_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Paid OptionalBool `json:"paid"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"paid":true}`), &payload))
	assert.Equal(t, BoolOf(true), payload.Paid)

	payload.Paid = OptionalBool{}
	require.NoError(t, json.Unmarshal([]byte(`{"paid":false}`), &payload))
	assert.Equal(t, BoolOf(false), payload.Paid)

	payload.Paid = OptionalBool{}
	require.NoError(t, json.Unmarshal([]byte(`{"paid":"true"}`), &payload))
	assert.False(t, payload.Paid.Set)

	payload.Paid = OptionalBool{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.False(t, payload.Paid.Set)
}
