package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/internal/server"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the HTTP server",
	RunE: func(_ *cobra.Command, _ []string) error {
		return server.Start()
	},
}

var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "Print every mounted route",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		db, err := database.Open(config.DatabaseDriver(), config.DatabaseDSN())
		if err != nil {
			return err
		}

		r := server.Build(db)
		printRoutes(r.Routes())
		return nil
	},
}

func printRoutes(routes []router.RouteInfo) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tNAME")
	for _, rt := range routes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", rt.Method, rt.Path, rt.Name)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(serveCmd, routeListCmd)
}
