package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thebigbrain/mesa/tracelog"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a recorded synchronization command trace.",
	Run: func(cmd *cobra.Command, args []string) {
		db, _ := cmd.Flags().GetString("db")

		reader := tracelog.NewReader(db)
		defer reader.Close()

		emissions, err := reader.Emissions(context.Background())
		if err != nil {
			log.Fatalf("Error reading trace: %v", err)
		}

		for _, e := range emissions {
			line := fmt.Sprintf("%4d %-14s %s", e.Seq, e.Batch, e.FlagNames)
			if e.Target != "" {
				line += fmt.Sprintf(
					" -> %s+0x%x = %d", e.Target, e.Offset, e.Imm)
			}

			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().String("db", "pipectl_trace.sqlite3", "Trace database file")
}
