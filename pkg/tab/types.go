// Package tab decodes OLGA tab files: fixed-format text tables describing
// fluid PVT properties on a pressure/temperature grid.
package tab

// EOSUnknown is stored when the fluid header carries no EOS= token.
const EOSUnknown = "UNKNOWN"

// PhysicalPropertyTable holds one property's values on the fluid's grid.
// Data is indexed [temperature row][pressure column]: NTABT rows of NTABP
// values each. A table is populated once, when its section is read, and is
// read-only afterwards.
type PhysicalPropertyTable struct {
	Data        [][]float64
	Unit        string
	Description string
}

// Rows returns the temperature dimension of the table.
func (p *PhysicalPropertyTable) Rows() int {
	return len(p.Data)
}

// Cols returns the pressure dimension of the table.
func (p *PhysicalPropertyTable) Cols() int {
	if len(p.Data) == 0 {
		return 0
	}
	return len(p.Data[0])
}

// FluidTable is the decoded content of one tab file. It is populated by a
// single sequential pass of the Reader and is read-only from then on; any
// number of goroutines may query it concurrently.
type FluidTable struct {
	FluidName      string
	EOS            string
	WaterOption    bool
	Entropy        bool
	NonEquilibrium bool

	NTABP int // pressure node count
	NTABT int // temperature node count

	PressureAxis       []float64 // NTABP values, ascending
	TemperatureAxis    []float64 // NTABT values, ascending
	BubblePointPress   []float64 // NTABT values, one per temperature node
	DewPointPress      []float64 // NTABT values, one per temperature node
	TotalWaterFraction float64   // RSWTOTB, used with three-phase tables

	tables  map[Property]*PhysicalPropertyTable
	engines *engineCache
}

// NewFluidTable returns an empty table ready for the Reader to fill.
func NewFluidTable() *FluidTable {
	return &FluidTable{
		EOS:       EOSUnknown,
		FluidName: "unspecified",
		tables:    make(map[Property]*PhysicalPropertyTable),
		engines:   newEngineCache(),
	}
}

// Table returns the stored table for prop, or false when the source file
// carried no section for it.
func (ft *FluidTable) Table(prop Property) (*PhysicalPropertyTable, bool) {
	t, ok := ft.tables[prop]
	return t, ok
}

// Properties lists the populated property identifiers in catalog order.
func (ft *FluidTable) Properties() []Property {
	var out []Property
	for _, e := range catalog {
		if _, ok := ft.tables[e.prop]; ok {
			out = append(out, e.prop)
		}
	}
	return out
}

// setTable stores a parsed property section. Re-encountering a section
// overwrites the earlier one and invalidates any cached interpolant.
func (ft *FluidTable) setTable(prop Property, t *PhysicalPropertyTable) {
	ft.tables[prop] = t
	ft.engines.invalidate(prop)
}
