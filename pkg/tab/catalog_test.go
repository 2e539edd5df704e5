package tab

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestCatalogMatchSection(tst *testing.T) {

	chk.PrintTitle("catalog01. section classification by header phrase")

	cases := []struct {
		line string
		prop Property
	}{
		{" GAS DENSITY (KG/M3)", GasDensity},
		{" PRES. DERIV. OF GAS DENS. (S2/M2)", DGasDensityDP},
		{" TEMP. DERIV. OF LIQUID DENS. (KG/M3-C)", DOilDensityDT},
		{" GAS MASS FRACTION OF GAS . OIL (-)", GasMassFraction},
		{" WATER MASS FRACTION OF GAS (-)", WaterVaporMassFraction},
		{" LIQ. VISCOSITY (NS/M2)", OilViscosity},
		{" SURFACE TENSION GAS/WATER (N/M)", SigmaGasWater},
		{" LIQUID ENTROPY (J/KG/C)", OilEntropy},
	}
	for _, c := range cases {
		prop, ok := MatchSection(c.line)
		if !ok {
			tst.Errorf("MatchSection(%q) found nothing", c.line)
			continue
		}
		if prop != c.prop {
			tst.Errorf("MatchSection(%q) = %s, want %s", c.line, prop, c.prop)
		}
	}

	if _, ok := MatchSection(" COMPOSITIONAL DATA BLOCK"); ok {
		tst.Errorf("MatchSection matched a line with no known phrase")
	}
}

// Every catalog phrase must classify to its own property: no earlier phrase
// may appear inside a later one.
func TestCatalogPhrasesMutuallyExclusive(tst *testing.T) {

	chk.PrintTitle("catalog02. phrases are mutually exclusive substrings")

	for _, prop := range AllProperties() {
		got, ok := MatchSection(prop.Phrase())
		if !ok || got != prop {
			tst.Errorf("phrase %q of %s classified as %s", prop.Phrase(), prop, got)
		}
	}
}

func TestCatalogNames(tst *testing.T) {

	chk.PrintTitle("catalog03. mnemonic round trip and descriptions")

	chk.Int(tst, "catalog size", len(AllProperties()), 29)

	for _, prop := range AllProperties() {
		back, ok := PropertyByName(prop.String())
		if !ok || back != prop {
			tst.Errorf("PropertyByName(%q) = %s, %v", prop.String(), back, ok)
		}
		if prop.Description() == "" {
			tst.Errorf("%s has no description", prop)
		}
	}

	chk.String(tst, GasDensity.String(), "ROGTB")
	chk.String(tst, SigmaWaterOil.String(), "SIGWOT")
	if _, ok := PropertyByName("NOPE"); ok {
		tst.Errorf("PropertyByName accepted an unknown mnemonic")
	}
}
