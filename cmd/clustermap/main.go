package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/avoronov/clustermap/export"
	"github.com/avoronov/clustermap/probe"
	"github.com/avoronov/clustermap/render"
	"github.com/avoronov/clustermap/session"
	"github.com/avoronov/clustermap/volume"
)

func main() {
	cli := cli.App{
		Usage: "Visualize which disk clusters belong to which files on an NTFS volume",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Usage: "size of the extent probe worker pool",
				Value: volume.DefaultWorkers,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "map",
				Usage:     "Scan the volume containing FILE and print its cluster map",
				Action:    mapClusters,
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:  "margin",
						Usage: "clusters materialized around each highlighted extent",
					},
					&cli.IntFlag{
						Name:  "columns",
						Usage: "cluster cells per grid row",
						Value: render.DefaultColumns,
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Scan the volume containing FILE and write its extent table as CSV",
				Action:    exportClusters,
				ArgsUsage: "FILE",
			},
		},
	}

	err := cli.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newSession(context *cli.Context) *session.Session {
	scanner := volume.NewScanner(probe.FsutilProber{})
	scanner.Workers = context.Int("workers")
	return session.New(scanner, volume.FsutilInfo{})
}

func mapClusters(context *cli.Context) error {
	if context.NArg() != 1 {
		return fmt.Errorf("expected exactly one FILE argument, got %d", context.NArg())
	}

	sess := newSession(context)
	sess.Margin = context.Uint64("margin")

	batch, err := sess.Load(context.Args().First())
	if err != nil {
		return err
	}

	report := sess.Report()
	fmt.Printf("mapped %d files, %d unreadable entries skipped\n",
		report.FilesMapped, report.EntriesSkipped)
	if sess.Viewport().TotalClusters() == 0 {
		fmt.Println("total cluster count unavailable; cannot draw a viewport")
		return nil
	}
	fmt.Printf("materialized %d clusters around %q\n",
		len(batch), sess.Highlighted().Path)

	return render.Grid(
		os.Stdout,
		sess.Viewport(),
		sess.Index(),
		sess.Highlighted().Extents,
		context.Int("columns"))
}

func exportClusters(context *cli.Context) error {
	if context.NArg() != 1 {
		return fmt.Errorf("expected exactly one FILE argument, got %d", context.NArg())
	}

	sess := newSession(context)
	if _, err := sess.Load(context.Args().First()); err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, sess.Files())
}
