// Package olgatab decodes OLGA tab files, the tabular text format multiphase
// flow simulators use to describe fluid PVT properties on a pressure and
// temperature grid, and interpolates the tabulated properties at arbitrary
// (pressure, temperature) points.
package olgatab

import (
	"fmt"
	"io"
	"os"

	"github.com/flowlab-apps/olgatab-golang/pkg/tab"
)

// Re-export types from the tab package for the public API
type (
	FluidTable            = tab.FluidTable
	PhysicalPropertyTable = tab.PhysicalPropertyTable
	Property              = tab.Property
	Reader                = tab.Reader
)

// EOSUnknown is stored when the fluid header carries no EOS= token.
const EOSUnknown = tab.EOSUnknown

// Re-export the error sentinels
var (
	ErrTruncated       = tab.ErrTruncated
	ErrDimensionLine   = tab.ErrDimensionLine
	ErrNoFluidHeader   = tab.ErrNoFluidHeader
	ErrMissingProperty = tab.ErrMissingProperty
)

// Re-export the property identifiers
const (
	GasDensity             = tab.GasDensity
	OilDensity             = tab.OilDensity
	WaterDensity           = tab.WaterDensity
	DGasDensityDP          = tab.DGasDensityDP
	DOilDensityDP          = tab.DOilDensityDP
	DWaterDensityDP        = tab.DWaterDensityDP
	DGasDensityDT          = tab.DGasDensityDT
	DOilDensityDT          = tab.DOilDensityDT
	DWaterDensityDT        = tab.DWaterDensityDT
	GasMassFraction        = tab.GasMassFraction
	WaterVaporMassFraction = tab.WaterVaporMassFraction
	GasViscosity           = tab.GasViscosity
	OilViscosity           = tab.OilViscosity
	WaterViscosity         = tab.WaterViscosity
	GasSpecificHeat        = tab.GasSpecificHeat
	OilSpecificHeat        = tab.OilSpecificHeat
	WaterSpecificHeat      = tab.WaterSpecificHeat
	GasEnthalpy            = tab.GasEnthalpy
	OilEnthalpy            = tab.OilEnthalpy
	WaterEnthalpy          = tab.WaterEnthalpy
	GasConductivity        = tab.GasConductivity
	OilConductivity        = tab.OilConductivity
	WaterConductivity      = tab.WaterConductivity
	SigmaGasOil            = tab.SigmaGasOil
	SigmaGasWater          = tab.SigmaGasWater
	SigmaWaterOil          = tab.SigmaWaterOil
	GasEntropy             = tab.GasEntropy
	OilEntropy             = tab.OilEntropy
	WaterEntropy           = tab.WaterEntropy
)

// PropertyByName resolves an OLGA mnemonic such as "ROGTB".
var PropertyByName = tab.PropertyByName

// AllProperties lists every property the decoder models.
var AllProperties = tab.AllProperties

// Open reads and parses a tab file.
func Open(filepath string) (*FluidTable, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a tab file from r in one sequential pass. The returned table
// is read-only and safe for concurrent queries.
func Parse(r io.Reader) (*FluidTable, error) {
	return tab.NewReader(r).Read()
}
