package tab

import (
	"fmt"
	"sync"

	"github.com/flowlab-apps/olgatab-golang/pkg/interp"
)

// engineCache lazily builds one interpolation engine per property. Building
// is idempotent, so concurrent readers of a finished FluidTable can share
// the cache; the mutex only guards the map itself.
type engineCache struct {
	mu      sync.Mutex
	engines map[Property]*interp.Engine
}

func newEngineCache() *engineCache {
	return &engineCache{engines: make(map[Property]*interp.Engine)}
}

func (c *engineCache) invalidate(prop Property) {
	c.mu.Lock()
	delete(c.engines, prop)
	c.mu.Unlock()
}

// Engine returns the interpolation engine for prop, building it on first
// use. ErrMissingProperty when the source file carried no section for prop.
func (ft *FluidTable) Engine(prop Property) (*interp.Engine, error) {
	c := ft.engines
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.engines[prop]; ok {
		return e, nil
	}
	t, ok := ft.tables[prop]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrMissingProperty, prop, prop.Description())
	}
	e, err := interp.NewEngine(ft.PressureAxis, ft.TemperatureAxis, t.Data)
	if err != nil {
		return nil, fmt.Errorf("building %s interpolant: %w", prop, err)
	}
	c.engines[prop] = e
	return e, nil
}

// Query interpolates prop at one (pressure, temperature) point, in the axis
// units of the source file.
func (ft *FluidTable) Query(prop Property, pressure, temperature float64) (float64, error) {
	e, err := ft.Engine(prop)
	if err != nil {
		return 0, err
	}
	return e.At(pressure, temperature), nil
}

// QueryGrid interpolates prop on the outer product of the query points,
// returning len(pressures) rows of len(temperatures) values.
func (ft *FluidTable) QueryGrid(prop Property, pressures, temperatures []float64) ([][]float64, error) {
	e, err := ft.Engine(prop)
	if err != nil {
		return nil, err
	}
	return e.Grid(pressures, temperatures), nil
}

// Convenience accessors binding Query to each catalog property.

// RhoGas returns the gas density at (pressure, temperature).
func (ft *FluidTable) RhoGas(p, t float64) (float64, error) { return ft.Query(GasDensity, p, t) }

// RhoOil returns the oil density at (pressure, temperature).
func (ft *FluidTable) RhoOil(p, t float64) (float64, error) { return ft.Query(OilDensity, p, t) }

// RhoWater returns the water density at (pressure, temperature).
func (ft *FluidTable) RhoWater(p, t float64) (float64, error) { return ft.Query(WaterDensity, p, t) }

// DRhoGasDP returns ∂ρ_gas/∂p.
func (ft *FluidTable) DRhoGasDP(p, t float64) (float64, error) { return ft.Query(DGasDensityDP, p, t) }

// DRhoOilDP returns ∂ρ_oil/∂p.
func (ft *FluidTable) DRhoOilDP(p, t float64) (float64, error) { return ft.Query(DOilDensityDP, p, t) }

// DRhoWaterDP returns ∂ρ_water/∂p.
func (ft *FluidTable) DRhoWaterDP(p, t float64) (float64, error) {
	return ft.Query(DWaterDensityDP, p, t)
}

// DRhoGasDT returns ∂ρ_gas/∂T.
func (ft *FluidTable) DRhoGasDT(p, t float64) (float64, error) { return ft.Query(DGasDensityDT, p, t) }

// DRhoOilDT returns ∂ρ_oil/∂T.
func (ft *FluidTable) DRhoOilDT(p, t float64) (float64, error) { return ft.Query(DOilDensityDT, p, t) }

// DRhoWaterDT returns ∂ρ_water/∂T.
func (ft *FluidTable) DRhoWaterDT(p, t float64) (float64, error) {
	return ft.Query(DWaterDensityDT, p, t)
}

// GasFractionInGasOil returns the gas mass fraction of the gas and oil
// mixture.
func (ft *FluidTable) GasFractionInGasOil(p, t float64) (float64, error) {
	return ft.Query(GasMassFraction, p, t)
}

// WaterVaporFraction returns the water vapour mass fraction in the gas
// phase.
func (ft *FluidTable) WaterVaporFraction(p, t float64) (float64, error) {
	return ft.Query(WaterVaporMassFraction, p, t)
}

// ViscGas returns the gas dynamic viscosity.
func (ft *FluidTable) ViscGas(p, t float64) (float64, error) { return ft.Query(GasViscosity, p, t) }

// ViscOil returns the oil dynamic viscosity.
func (ft *FluidTable) ViscOil(p, t float64) (float64, error) { return ft.Query(OilViscosity, p, t) }

// ViscWater returns the water dynamic viscosity.
func (ft *FluidTable) ViscWater(p, t float64) (float64, error) {
	return ft.Query(WaterViscosity, p, t)
}

// CpGas returns the gas heat capacity at constant pressure.
func (ft *FluidTable) CpGas(p, t float64) (float64, error) { return ft.Query(GasSpecificHeat, p, t) }

// CpOil returns the oil heat capacity at constant pressure.
func (ft *FluidTable) CpOil(p, t float64) (float64, error) { return ft.Query(OilSpecificHeat, p, t) }

// CpWater returns the water heat capacity at constant pressure.
func (ft *FluidTable) CpWater(p, t float64) (float64, error) {
	return ft.Query(WaterSpecificHeat, p, t)
}

// EnthalpyGas returns the gas enthalpy.
func (ft *FluidTable) EnthalpyGas(p, t float64) (float64, error) { return ft.Query(GasEnthalpy, p, t) }

// EnthalpyOil returns the oil enthalpy.
func (ft *FluidTable) EnthalpyOil(p, t float64) (float64, error) { return ft.Query(OilEnthalpy, p, t) }

// EnthalpyWater returns the water enthalpy.
func (ft *FluidTable) EnthalpyWater(p, t float64) (float64, error) {
	return ft.Query(WaterEnthalpy, p, t)
}

// CondGas returns the gas thermal conductivity.
func (ft *FluidTable) CondGas(p, t float64) (float64, error) { return ft.Query(GasConductivity, p, t) }

// CondOil returns the oil thermal conductivity.
func (ft *FluidTable) CondOil(p, t float64) (float64, error) { return ft.Query(OilConductivity, p, t) }

// CondWater returns the water thermal conductivity.
func (ft *FluidTable) CondWater(p, t float64) (float64, error) {
	return ft.Query(WaterConductivity, p, t)
}

// SurfaceTensionGasOil returns the gas/oil surface tension.
func (ft *FluidTable) SurfaceTensionGasOil(p, t float64) (float64, error) {
	return ft.Query(SigmaGasOil, p, t)
}

// SurfaceTensionGasWater returns the gas/water surface tension.
func (ft *FluidTable) SurfaceTensionGasWater(p, t float64) (float64, error) {
	return ft.Query(SigmaGasWater, p, t)
}

// SurfaceTensionWaterOil returns the water/oil surface tension.
func (ft *FluidTable) SurfaceTensionWaterOil(p, t float64) (float64, error) {
	return ft.Query(SigmaWaterOil, p, t)
}

// EntropyGas returns the gas specific entropy.
func (ft *FluidTable) EntropyGas(p, t float64) (float64, error) { return ft.Query(GasEntropy, p, t) }

// EntropyOil returns the oil specific entropy.
func (ft *FluidTable) EntropyOil(p, t float64) (float64, error) { return ft.Query(OilEntropy, p, t) }

// EntropyWater returns the water specific entropy.
func (ft *FluidTable) EntropyWater(p, t float64) (float64, error) {
	return ft.Query(WaterEntropy, p, t)
}
