package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thebigbrain/mesa/pipecontrol"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flag-word]",
	Short: "Print the symbolic names of a synchronization flag word.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		word, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			log.Fatalf("Error parsing flag word: %v", err)
		}

		fmt.Println(pipecontrol.Flags(word))
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
