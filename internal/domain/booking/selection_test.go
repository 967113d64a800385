//go:build unit

package booking_test

import (
	"testing"

	"agenda-web/internal/domain/booking"
	"agenda-web/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
)

var (
	haircut = catalog.ServiceOption{ID: 1, Name: "Corte de cabello", Price: 350, DurationMin: 30}
	beard   = catalog.ServiceOption{ID: 2, Name: "Barba", Price: 200, DurationMin: 20}
	combo   = catalog.ServiceOption{ID: 3, Name: "Corte + Barba", Price: 500, DurationMin: 45}
)

func TestSelectionSet(t *testing.T) {
	t.Run("toggle appends in selection order", func(t *testing.T) {
		var s booking.SelectionSet

		assert.True(t, s.Toggle(combo))
		assert.True(t, s.Toggle(haircut))

		assert.Equal(t, []catalog.ServiceOption{combo, haircut}, s.Items())
		assert.Equal(t, []string{"Corte + Barba", "Corte de cabello"}, s.Names())
	})

	t.Run("toggle twice is a no-op", func(t *testing.T) {
		var s booking.SelectionSet
		s.Toggle(haircut)
		s.Toggle(beard)
		before := s.Items()

		assert.True(t, s.Toggle(combo))
		assert.False(t, s.Toggle(combo))

		assert.Equal(t, before, s.Items())
	})

	t.Run("toggle removes by id and keeps the rest in order", func(t *testing.T) {
		var s booking.SelectionSet
		s.Toggle(haircut)
		s.Toggle(beard)
		s.Toggle(combo)

		// same id, different payload still removes
		s.Toggle(catalog.ServiceOption{ID: beard.ID})

		assert.Equal(t, []catalog.ServiceOption{haircut, combo}, s.Items())
		assert.False(t, s.Contains(beard.ID))
		assert.True(t, s.Contains(combo.ID))
	})

	t.Run("items is a snapshot", func(t *testing.T) {
		var s booking.SelectionSet
		s.Toggle(haircut)
		items := s.Items()
		items[0].Price = 0

		assert.Equal(t, int64(350), s.Subtotal())
	})

	t.Run("reset empties the set", func(t *testing.T) {
		var s booking.SelectionSet
		s.Toggle(haircut)
		s.Reset()

		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Len())
	})
}

func TestSubtotal(t *testing.T) {
	cases := []struct {
		name string
		opts []catalog.ServiceOption
		want int64
	}{
		{name: "empty", want: 0},
		{name: "single", opts: []catalog.ServiceOption{beard}, want: 200},
		{name: "haircut and combo", opts: []catalog.ServiceOption{haircut, combo}, want: 850},
		{name: "all three", opts: []catalog.ServiceOption{haircut, beard, combo}, want: 1050},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s booking.SelectionSet
			for _, o := range c.opts {
				s.Toggle(o)
			}
			assert.Equal(t, c.want, s.Subtotal())
		})
	}
}
