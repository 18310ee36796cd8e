package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "0.1.0"

func main() {
	cmd := &cli.Command{
		Name:    "pagesync",
		Usage:   "One-way incremental sync from a Notion database to a Google Sheet",
		Version: version,
		Commands: []*cli.Command{
			runCmd,
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(ctx context.Context, c *cli.Command) error {
					fmt.Println(c.Root().Version)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
