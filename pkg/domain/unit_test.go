package domain_test

import (
	"testing"

	"github.com/fige/storefront/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitID_Padded(t *testing.T) {
	u := domain.Unit{Number: 3}
	assert.Equal(t, "#03", u.ID())
}

func TestUnits_LimitedRun(t *testing.T) {
	units := domain.Units()
	require.Len(t, units, 5)

	assert.True(t, units[0].Sold())
	assert.True(t, units[1].Sold())
	for _, u := range units[2:] {
		assert.False(t, u.Sold(), "unit %s should be open for pre-order", u.ID())
	}
}

func TestUnitByID(t *testing.T) {
	u, ok := domain.UnitByID("#04")
	require.True(t, ok)
	assert.Equal(t, 4, u.Number)

	_, ok = domain.UnitByID("#09")
	assert.False(t, ok)

	_, ok = domain.UnitByID("4")
	assert.False(t, ok)
}
