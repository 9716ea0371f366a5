package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cochera-backend/config"
)

func TestLookupKnownClass(t *testing.T) {
	c := NewCatalog(nil)

	cl := c.Lookup("auto_viejo")
	assert.Equal(t, "Auto viejo", cl.Label)
	assert.Equal(t, 5.0, cl.DayRate)
	assert.Equal(t, 7.0, cl.NightRate)
}

func TestLookupUnknownClassIsZeroRate(t *testing.T) {
	c := NewCatalog(nil)

	cl := c.Lookup("zeppelin")
	assert.Equal(t, "zeppelin", cl.Key)
	assert.Equal(t, "zeppelin", cl.Label, "raw key is used as label")
	assert.Equal(t, 0.0, cl.DayRate)
	assert.Equal(t, 0.0, cl.NightRate)
}

func TestConfigOverridesAndExtends(t *testing.T) {
	c := NewCatalog([]config.TariffEntry{
		{Key: "camion", Label: "Camión grande", DayRate: 9, NightRate: 15},
		{Key: "cuatrimoto", DayRate: 3, NightRate: 5},
	})

	overridden := c.Lookup("camion")
	assert.Equal(t, "Camión grande", overridden.Label)
	assert.Equal(t, 9.0, overridden.DayRate)
	assert.Equal(t, 15.0, overridden.NightRate)

	added := c.Lookup("cuatrimoto")
	assert.Equal(t, "cuatrimoto", added.Label, "missing label falls back to the key")
	assert.Equal(t, 3.0, added.DayRate)

	// untouched defaults survive
	assert.Equal(t, 2.0, c.Lookup("mototaxi").DayRate)
}

func TestClassesKeepStableOrder(t *testing.T) {
	c := NewCatalog([]config.TariffEntry{
		{Key: "cuatrimoto", Label: "Cuatrimoto", DayRate: 3, NightRate: 5},
	})

	classes := c.Classes()
	assert.Len(t, classes, 9)
	assert.Equal(t, "auto_viejo", classes[0].Key)
	assert.Equal(t, "cuatrimoto", classes[8].Key, "new classes are appended after the defaults")
}
