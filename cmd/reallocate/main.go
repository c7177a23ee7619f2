// Command reallocate corre el motor de reasignación por lotes, sin API ni
// base de datos: lee un snapshot xlsx y escribe las sugerencias en otro xlsx.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rickyyue315/reallocation-api/internal/domain/entity"
	"github.com/rickyyue315/reallocation-api/internal/domain/transfer"
	infraexcel "github.com/rickyyue315/reallocation-api/internal/infrastructure/excel"
)

func main() {
	app := &cli.App{
		Name:  "reallocate",
		Usage: "Motor de reasignación de inventario entre tiendas",
		Commands: []*cli.Command{
			analyzeCmd,
			estimateCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var analyzeCmd = &cli.Command{
	Name:    "analyze",
	Usage:   "Analiza un snapshot y escribe las sugerencias de traspaso",
	Aliases: []string{"a"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Required: true,
			Usage:    "snapshot de inventario (.xlsx)",
		},
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "libro de sugerencias a escribir (.xlsx)",
		},
		&cli.StringFlag{
			Name:  "mode",
			Value: "conservative",
			Usage: "modo de estrategia (conservative|enhanced|zerofill|crossgroup)",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doAnalyze(ctx.String("in"), ctx.String("out"), ctx.String("mode"))
	},
}

var estimateCmd = &cli.Command{
	Name:    "estimate",
	Usage:   "Previsualiza el potencial de traspaso bajo los cuatro modos",
	Aliases: []string{"e"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Required: true,
			Usage:    "snapshot de inventario (.xlsx)",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doEstimate(ctx.String("in"))
	},
}

func readSnapshot(inFile string) ([]entity.StockRecord, error) {
	f, err := os.Open(inFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, logs, err := infraexcel.NewSnapshotReader().Read(f)
	if err != nil {
		return nil, err
	}
	for _, line := range logs {
		fmt.Println("aviso:", line)
	}
	if len(records) == 0 {
		return nil, errors.New("snapshot sin registros válidos")
	}
	return records, nil
}

func doAnalyze(inFile, outFile, modeName string) error {
	mode, err := transfer.ParseMode(modeName)
	if err != nil {
		return err
	}

	records, err := readSnapshot(inFile)
	if err != nil {
		return err
	}

	supply, demand := transfer.Classify(records, mode)
	recs := transfer.Match(supply, demand, mode)
	summary := transfer.Aggregate(recs)

	book, err := infraexcel.NewResultExporter().Export(recs, summary)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outFile, book, 0o644); err != nil {
		return err
	}

	fmt.Printf("snapshot:        %d registros\n", len(records))
	fmt.Printf("recomendaciones: %d (%d unidades)\n",
		summary.KPIs.Count, summary.KPIs.TotalTransferQty)
	fmt.Printf("artículos:       %d en %d OMs\n",
		summary.KPIs.DistinctArticles, summary.KPIs.DistinctOrgUnits)
	fmt.Println("sugerencias:    ", outFile)
	return nil
}

func doEstimate(inFile string) error {
	records, err := readSnapshot(inFile)
	if err != nil {
		return err
	}

	fmt.Printf("snapshot: %d registros\n\n", len(records))
	fmt.Printf("%-14s %9s %10s %10s %10s\n",
		"modo", "emisores", "receptores", "oferta", "demanda")
	for _, p := range transfer.Estimate(records) {
		fmt.Printf("%-14s %9d %10d %10d %10d\n",
			p.Mode, p.SupplyCandidates, p.DemandCandidates,
			p.PotentialSupply, p.TotalDemand)
	}
	return nil
}
