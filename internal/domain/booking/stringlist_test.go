//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"

	"anchor-gateway/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want booking.StringList
	}{
		{name: "bare string wraps into one element", in: `"nuts"`, want: booking.StringList{"nuts"}},
		{name: "array passes through", in: `["nuts","gluten"]`, want: booking.StringList{"nuts", "gluten"}},
		{name: "empty array stays empty", in: `[]`, want: booking.StringList{}},
		{name: "null is nil", in: `null`, want: nil},
		{name: "empty string is a single empty element", in: `""`, want: booking.StringList{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got booking.StringList
			require.NoError(t, json.Unmarshal([]byte(tc.in), &got))
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("numbers are rejected", func(t *testing.T) {
		var got booking.StringList
		assert.Error(t, json.Unmarshal([]byte(`42`), &got))
	})
}

func TestStringListNormalized(t *testing.T) {
	assert.Nil(t, booking.StringList{}.Normalized())
	assert.Nil(t, booking.StringList{" ", ""}.Normalized())
	assert.Equal(t, []string{"vegan"}, booking.StringList{" vegan "}.Normalized())
}
