package main

import (
	"fmt"
	"log"
	"os"

	olgatab "github.com/flowlab-apps/olgatab-golang"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tabinfo <tab_file>")
		os.Exit(1)
	}

	tabPath := os.Args[1]

	fmt.Printf("Opening tab file: %s\n", tabPath)
	ft, err := olgatab.Open(tabPath)
	if err != nil {
		log.Fatalf("Failed to open tab file: %v", err)
	}

	fmt.Printf("\nFluid:   %s\n", ft.FluidName)
	fmt.Printf("EOS:     %s\n", ft.EOS)
	fmt.Printf("Flags:   water-option=%v entropy=%v non-equilibrium=%v\n",
		ft.WaterOption, ft.Entropy, ft.NonEquilibrium)
	fmt.Printf("Grid:    %d pressure x %d temperature nodes\n", ft.NTABP, ft.NTABT)
	fmt.Printf("P range: %g .. %g\n", ft.PressureAxis[0], ft.PressureAxis[ft.NTABP-1])
	fmt.Printf("T range: %g .. %g\n", ft.TemperatureAxis[0], ft.TemperatureAxis[ft.NTABT-1])
	fmt.Printf("RSWTOTB: %g\n", ft.TotalWaterFraction)

	props := ft.Properties()
	fmt.Printf("\nPopulated properties: %d\n", len(props))
	for _, prop := range props {
		table, _ := ft.Table(prop)
		fmt.Printf("  %-7s %-30s unit=%q\n", prop, table.Description, table.Unit)
	}
}
