package tariff

import "cochera-backend/config"

// Class is one entry of the rate catalog: a vehicle category with its
// day and night rates. Amounts share a single currency unit.
type Class struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	DayRate   float64 `json:"day_rate"`
	NightRate float64 `json:"night_rate"`
}

// Catalog is a fixed mapping from vehicle-class key to rates. It is
// built once at startup and read-only afterwards, so it is safe for
// concurrent use.
type Catalog struct {
	classes map[string]Class
	order   []string
}

var defaults = []Class{
	{Key: "auto_viejo", Label: "Auto viejo", DayRate: 5, NightRate: 7},
	{Key: "auto_nuevo", Label: "Auto nuevo", DayRate: 6, NightRate: 8},
	{Key: "mototaxi", Label: "Mototaxi", DayRate: 2, NightRate: 4},
	{Key: "moto_lineal", Label: "Moto lineal", DayRate: 2, NightRate: 3},
	{Key: "triciclo", Label: "Triciclo", DayRate: 1, NightRate: 4},
	{Key: "afilador", Label: "Afilador", DayRate: 1, NightRate: 2},
	{Key: "camion", Label: "Camión", DayRate: 7, NightRate: 12},
	{Key: "bicicleta", Label: "Bicicleta", DayRate: 1, NightRate: 2},
}

// NewCatalog builds the catalog from the built-in classes, with
// config entries overriding or extending them.
func NewCatalog(overrides []config.TariffEntry) *Catalog {
	c := &Catalog{classes: make(map[string]Class, len(defaults))}
	for _, cl := range defaults {
		c.classes[cl.Key] = cl
		c.order = append(c.order, cl.Key)
	}
	for _, o := range overrides {
		if o.Key == "" {
			continue
		}
		label := o.Label
		if label == "" {
			label = o.Key
		}
		if _, exists := c.classes[o.Key]; !exists {
			c.order = append(c.order, o.Key)
		}
		c.classes[o.Key] = Class{Key: o.Key, Label: label, DayRate: o.DayRate, NightRate: o.NightRate}
	}
	return c
}

// Lookup resolves a vehicle-class key. It is total: an unknown key
// yields zero rates with the raw key as label, never an error.
func (c *Catalog) Lookup(key string) Class {
	if cl, ok := c.classes[key]; ok {
		return cl
	}
	return Class{Key: key, Label: key}
}

// Classes returns all catalog entries in stable order.
func (c *Catalog) Classes() []Class {
	out := make([]Class, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.classes[key])
	}
	return out
}
