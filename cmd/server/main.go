package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/methubd/clickdesire-ecom-server/config"
	"github.com/methubd/clickdesire-ecom-server/database/seeders"
	"github.com/methubd/clickdesire-ecom-server/internal/server"
	"github.com/methubd/clickdesire-ecom-server/pkg/database"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "ClickDesire e-commerce server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(routeListCmd)
}

// storefront serve — start the HTTP server (also the bare default).
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// storefront seed — populate sample users and products.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx := context.Background()
		client, err := database.Connect(ctx)
		if err != nil {
			return err
		}
		defer database.Disconnect(client) //nolint:errcheck

		db := client.Database(config.MongoDatabase())
		if err := database.EnsureIndexes(ctx, db); err != nil {
			return err
		}

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, db)
	},
}

// storefront route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		// The driver connects lazily, so building the route table needs no
		// reachable database.
		client, err := mongo.Connect(context.Background(),
			options.Client().ApplyURI(config.MongoURI()))
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background()) //nolint:errcheck

		r := server.BuildRouter(client.Database(config.MongoDatabase()))

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
