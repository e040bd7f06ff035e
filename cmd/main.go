package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openpanel/ai-service/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:   "ai-service",
		Short: "ai-service",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command, try: ai-service service")
		},
	}

	root.AddCommand(service.NewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
