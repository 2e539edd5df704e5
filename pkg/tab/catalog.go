package tab

import "strings"

// Property identifies one physical property of an OLGA tab file. The zero
// value is invalid.
type Property int

const (
	PropInvalid Property = iota
	GasDensity
	OilDensity
	WaterDensity
	DGasDensityDP
	DOilDensityDP
	DWaterDensityDP
	DGasDensityDT
	DOilDensityDT
	DWaterDensityDT
	GasMassFraction
	WaterVaporMassFraction
	GasViscosity
	OilViscosity
	WaterViscosity
	GasSpecificHeat
	OilSpecificHeat
	WaterSpecificHeat
	GasEnthalpy
	OilEnthalpy
	WaterEnthalpy
	GasConductivity
	OilConductivity
	WaterConductivity
	SigmaGasOil
	SigmaGasWater
	SigmaWaterOil
	GasEntropy
	OilEntropy
	WaterEntropy
)

// catalogEntry binds a property to the header phrase that announces its
// section and to a human-readable description.
type catalogEntry struct {
	prop        Property
	mnemonic    string // OLGA variable name
	phrase      string // matched as a case-sensitive substring of the header
	description string
}

// catalog is the fixed property registry. Order matters only in that the
// first matching phrase wins; the phrases are mutually exclusive substrings
// in practice.
var catalog = []catalogEntry{
	{GasDensity, "ROGTB", "GAS DENSITY", "Gas densities"},
	{OilDensity, "ROOTB", "LIQUID DENSITY", "Oil densities"},
	{WaterDensity, "ROWTB", "WATER DENSITY", "Water densities"},
	{DGasDensityDP, "DRGPTB", "PRES. DERIV. OF GAS DENS.", "Partial derivatives of gas densities with respect to pressure"},
	{DOilDensityDP, "DROPTB", "PRES. DERIV. OF LIQUID DENS.", "Partial derivatives of oil densities with respect to pressure"},
	{DWaterDensityDP, "DRWPTB", "PRES. DERIV. OF WATER DENS.", "Partial derivatives of water densities with respect to pressure"},
	{DGasDensityDT, "DRGTTB", "TEMP. DERIV. OF GAS DENS.", "Partial derivatives of gas densities with respect to temperature"},
	{DOilDensityDT, "DROTTB", "TEMP. DERIV. OF LIQUID DENS.", "Partial derivatives of oil densities with respect to temperature"},
	{DWaterDensityDT, "DRWTTB", "TEMP. DERIV. OF WATER DENS.", "Partial derivatives of water densities with respect to temperature"},
	{GasMassFraction, "RSGTB", "GAS MASS FRACTION OF GAS . OIL", "Gas mass fraction in gas and oil mixture; the gas mass divided by the gas and oil mass"},
	{WaterVaporMassFraction, "RSWTB", "WATER MASS FRACTION OF GAS", "Water vapour mass fraction in the gas phase"},
	{GasViscosity, "VSGTB", "GAS VISCOSITY", "Dynamic viscosity for gas"},
	{OilViscosity, "VSOTB", "LIQ. VISCOSITY", "Dynamic viscosity for oil"},
	{WaterViscosity, "VSWTB", "WAT. VISCOSITY", "Dynamic viscosity for water"},
	{GasSpecificHeat, "CPGTB", "GAS SPECIFIC HEAT", "Gas heat capacity at constant pressure"},
	{OilSpecificHeat, "CPOTB", "LIQ. SPECIFIC HEAT", "Oil heat capacity at constant pressure"},
	{WaterSpecificHeat, "CPWTB", "WAT. SPECIFIC HEAT", "Water heat capacity at constant pressure"},
	{GasEnthalpy, "HGTB", "GAS ENTHALPY", "Gas enthalpy"},
	{OilEnthalpy, "HOTB", "LIQ. ENTHALPY", "Oil enthalpy"},
	{WaterEnthalpy, "HWTB", "WAT. ENTHALPY", "Water enthalpy"},
	{GasConductivity, "TKGTB", "GAS THERMAL COND.", "Gas thermal conductivity"},
	{OilConductivity, "TKOTB", "LIQ. THERMAL COND.", "Oil thermal conductivity"},
	{WaterConductivity, "TKWTB", "WAT. THERMAL COND.", "Water thermal conductivity"},
	{SigmaGasOil, "SIGOGT", "SURFACE TENSION GAS/OIL", "Surface tension between gas and oil"},
	{SigmaGasWater, "SIGWGT", "SURFACE TENSION GAS/WATER", "Surface tension between gas and water"},
	{SigmaWaterOil, "SIGWOT", "SURFACE TENSION WATER/OIL", "Surface tension between water and oil"},
	{GasEntropy, "SGTB", "GAS ENTROPY", "Gas specific entropy"},
	{OilEntropy, "SOTB", "LIQUID ENTROPY", "Oil specific entropy"},
	{WaterEntropy, "SWTB", "WATER ENTROPY", "Water specific entropy"},
}

// String returns the OLGA variable mnemonic for the property.
func (p Property) String() string {
	for _, e := range catalog {
		if e.prop == p {
			return e.mnemonic
		}
	}
	return "INVALID"
}

// Description returns the catalog description for the property.
func (p Property) Description() string {
	for _, e := range catalog {
		if e.prop == p {
			return e.description
		}
	}
	return ""
}

// Phrase returns the section header phrase announcing the property.
func (p Property) Phrase() string {
	for _, e := range catalog {
		if e.prop == p {
			return e.phrase
		}
	}
	return ""
}

// AllProperties lists every known property in catalog order.
func AllProperties() []Property {
	out := make([]Property, len(catalog))
	for i, e := range catalog {
		out[i] = e.prop
	}
	return out
}

// MatchSection classifies a header line against the catalog. It returns the
// property whose phrase first appears as a substring of the line, or false
// when the line announces no known section.
func MatchSection(line string) (Property, bool) {
	for _, e := range catalog {
		if strings.Contains(line, e.phrase) {
			return e.prop, true
		}
	}
	return PropInvalid, false
}

// PropertyByName resolves an OLGA mnemonic such as "ROGTB" to its property.
func PropertyByName(name string) (Property, bool) {
	for _, e := range catalog {
		if e.mnemonic == name {
			return e.prop, true
		}
	}
	return PropInvalid, false
}
