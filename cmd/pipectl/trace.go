package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thebigbrain/mesa/barrier"
	"github.com/thebigbrain/mesa/emit"
	"github.com/thebigbrain/mesa/hw"
	"github.com/thebigbrain/mesa/pipecontrol"
	"github.com/thebigbrain/mesa/tracelog"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run a canned barrier scenario and record the resolved commands.",
	Long: `Trace records draws on the render batch and a dispatch on the ` +
		`compute batch, issues a texture barrier and a memory barrier, ` +
		`and writes every resolved synchronization command to a SQLite ` +
		`trace database.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, _ := cmd.Flags().GetString("db")
		genName, _ := cmd.Flags().GetString("gen")

		gen, err := parseGeneration(genName)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		runScenario(db, gen)
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().String("db", "pipectl_trace", "Trace database path")
	traceCmd.Flags().String("gen", "gen12", "Hardware generation")
}

func parseGeneration(name string) (hw.Generation, error) {
	for _, g := range []hw.Generation{hw.Gen9, hw.Gen11, hw.Gen12} {
		if g.String() == name {
			return g, nil
		}
	}

	return 0, fmt.Errorf("unknown generation %q", name)
}

func runScenario(db string, gen hw.Generation) {
	dev := hw.MakeBuilder().
		WithGeneration(gen).
		Build("Dev")

	recorder := tracelog.NewRecorder(db)
	defer recorder.Close()

	coord := pipecontrol.MakeBuilder().
		WithEmitter(tracelog.NewTee(recorder, emit.New(dev))).
		WithScratch(dev.Scratch()).
		Build()
	policy := barrier.MakeBuilder().
		WithDevice(dev).
		WithCoordinator(coord).
		Build()

	color := hw.NewBuffer("Color", 4096)
	depth := hw.NewBuffer("Depth", 4096)

	dev.RenderBatch().RecordDraw(color)
	dev.RenderBatch().RecordDepth(depth)
	dev.ComputeBatch().RecordDispatch()

	policy.TextureBarrier()
	policy.MemoryBarrier(barrier.Texture | barrier.ConstantBuffer)

	fmt.Printf("Recorded %d render and %d compute commands on %s.\n",
		dev.RenderBatch().CommandCount(),
		dev.ComputeBatch().CommandCount(),
		gen)
}
