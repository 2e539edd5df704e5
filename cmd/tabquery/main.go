package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	olgatab "github.com/flowlab-apps/olgatab-golang"
)

func main() {
	if len(os.Args) < 5 {
		fmt.Println("Usage: tabquery <tab_file> <property> <pressure> <temperature>")
		fmt.Println("Example: tabquery fluid.tab ROGTB 5.0e6 350.0")
		fmt.Println("\nKnown properties:")
		for _, prop := range olgatab.AllProperties() {
			fmt.Printf("  %-7s %s\n", prop, prop.Description())
		}
		os.Exit(1)
	}

	tabPath := os.Args[1]
	prop, ok := olgatab.PropertyByName(os.Args[2])
	if !ok {
		log.Fatalf("Unknown property mnemonic %q", os.Args[2])
	}
	pressure, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		log.Fatalf("Invalid pressure %q: %v", os.Args[3], err)
	}
	temperature, err := strconv.ParseFloat(os.Args[4], 64)
	if err != nil {
		log.Fatalf("Invalid temperature %q: %v", os.Args[4], err)
	}

	ft, err := olgatab.Open(tabPath)
	if err != nil {
		log.Fatalf("Failed to open tab file: %v", err)
	}

	value, err := ft.Query(prop, pressure, temperature)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	table, _ := ft.Table(prop)
	fmt.Printf("%s (%s) at P=%g T=%g: %g %s\n",
		prop, table.Description, pressure, temperature, value, table.Unit)
}
