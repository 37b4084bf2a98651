package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/clinicasansebastianips-ship-it/ganaderia/constants"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/common"
	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	if len(os.Args) < 2 {
		printError("Uso: %s <archivo.xlsx>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}
	workbook := os.Args[1]

	info, err := os.Stat(workbook)
	if err != nil || info.IsDir() {
		printError("No existe: %s\n", workbook)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	out := cfg.Output.Path
	if out == "" {
		out = constants.DefaultOutputFile
	}

	doc, err := pipeline.New(logger).Run(workbook, out)
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("OK -> %s creado\n", out)
	fmt.Printf("- Animales: %d\n", len(doc.Data.Animals))
	fmt.Printf("- Brutos: %d\n", len(doc.Data.RawAnimals))
	fmt.Printf("- Ordeños: %d\n", len(doc.Data.Milk))
	fmt.Printf("- Medicamentos: %d\n", len(doc.Data.Medications))
	fmt.Printf("- Eventos de salud: %d\n", len(doc.Data.HealthEvents))
	fmt.Printf("- Refuerzos: %d\n", len(doc.Data.Boosters))
}
