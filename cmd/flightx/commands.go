package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/engine"
	"github.com/lintang-b-s/Flightx/pkg/http/usecases"
	"github.com/lintang-b-s/Flightx/pkg/logger"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type cli struct {
	datasetPath string
	verbose     bool
	service     *usecases.RoutingService
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "flightx",
		Short: "Analyze a flight route network offline",
		Long: `flightx loads a flight routes csv (.csv or .csv.bz2) and answers
connectivity, minimum spanning tree and shortest path questions about it.

Examples:
  flightx analyze --dataset ./data/flights_final.csv
  flightx path CGK JFK
  flightx farthest SIN --k 5`,
		SilenceUsage:      true,
		PersistentPreRunE: c.load,
	}
	rootCmd.PersistentFlags().StringVar(&c.datasetPath, "dataset", "", "flight routes csv, defaults to DATASET_PATH")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log dataset loading")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report connectivity and the minimum spanning tree of every component",
		Args:  cobra.NoArgs,
		RunE:  c.runAnalyze,
	}

	airportCmd := &cobra.Command{
		Use:   "airport CODE",
		Short: "Show airport details",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runAirport,
	}

	pathCmd := &cobra.Command{
		Use:   "path ORIGIN DESTINATION",
		Short: "Find the shortest route between two airports",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runPath,
	}

	farthestCmd := &cobra.Command{
		Use:   "farthest CODE",
		Short: "List the airports with the longest shortest path from CODE",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runFarthest,
	}
	farthestCmd.Flags().Int("k", pkg.DEFAULT_FARTHEST_K, "number of airports to list")

	nearbyCmd := &cobra.Command{
		Use:   "nearby LAT LON RADIUS_KM",
		Short: "List airports within a radius of a point, nearest first",
		Long: `List airports within RADIUS_KM of a point, nearest first.
Put -- before negative coordinates: flightx nearby -- -6.2 106.8 50`,
		Args:  cobra.ExactArgs(3),
		RunE:  c.runNearby,
	}

	rootCmd.AddCommand(analyzeCmd, airportCmd, pathCmd, farthestCmd, nearbyCmd)
	return rootCmd
}

func (c *cli) load(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" {
		return nil
	}
	if err := util.ReadConfig(); err != nil {
		return err
	}
	path := c.datasetPath
	if path == "" {
		path = viper.GetString("DATASET_PATH")
	}

	log := zap.NewNop()
	if c.verbose {
		l, err := logger.New()
		if err != nil {
			return err
		}
		log = l
	}

	flightEngine, err := engine.NewEngine(path, log)
	if err != nil {
		return err
	}
	c.service = usecases.NewRoutingService(log, flightEngine, viper.GetInt("MST_WORKERS"),
		viper.GetInt("NEARBY_MAX_RESULTS"), false)
	return nil
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

func (c *cli) runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd)
	defer cancel()

	analysis, err := c.service.GraphAnalysis(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "airports: %d, routes: %d\n", analysis.TotalAirports, analysis.TotalRoutes)
	if analysis.IsConnected {
		fmt.Fprintln(out, "the route network is connected")
	} else {
		fmt.Fprintf(out, "the route network is not connected, %d components\n", analysis.TotalComponents)
	}

	rows := make([][]string, 0, len(analysis.MST))
	for _, comp := range analysis.MST {
		rows = append(rows, []string{strconv.Itoa(comp.Component), strconv.Itoa(comp.Vertices), formatKm(comp.Weight)})
	}
	renderTable(out, []string{"component", "airports", "mst weight (km)"}, rows)
	fmt.Fprintf(out, "total mst weight: %s km\n", formatKm(analysis.TotalMSTWeight))
	return nil
}

func (c *cli) runAirport(cmd *cobra.Command, args []string) error {
	airport, err := c.service.GetAirport(args[0])
	if err != nil {
		return err
	}
	renderTable(cmd.OutOrStdout(), []string{"code", "name", "city", "country", "lat", "lon"}, [][]string{{
		airport.GetCode(), airport.GetName(), airport.GetCity(), airport.GetCountry(),
		strconv.FormatFloat(airport.GetLat(), 'f', -1, 64), strconv.FormatFloat(airport.GetLon(), 'f', -1, 64),
	}})
	return nil
}

func (c *cli) runPath(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd)
	defer cancel()

	route, err := c.service.ShortestPath(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(route.Stops))
	for i, s := range route.Stops {
		rows = append(rows, []string{strconv.Itoa(i), s.GetCode(), s.GetName(), s.GetCity(), s.GetCountry()})
	}
	out := cmd.OutOrStdout()
	renderTable(out, []string{"stop", "code", "name", "city", "country"}, rows)
	fmt.Fprintf(out, "distance: %s km\n", formatKm(route.Distance))
	fmt.Fprintf(out, "polyline: %s\n", route.Polyline)
	return nil
}

func (c *cli) runFarthest(cmd *cobra.Command, args []string) error {
	k, err := cmd.Flags().GetInt("k")
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	farthest, err := c.service.FarthestAirports(ctx, args[0], k)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(farthest))
	for i, f := range farthest {
		rows = append(rows, []string{strconv.Itoa(i + 1), f.Airport.GetCode(), f.Airport.GetName(),
			f.Airport.GetCountry(), formatKm(f.Distance)})
	}
	renderTable(cmd.OutOrStdout(), []string{"rank", "code", "name", "country", "distance (km)"}, rows)
	return nil
}

func (c *cli) runNearby(cmd *cobra.Command, args []string) error {
	coords := make([]float64, 0, 3)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("argument %d (%q) must be a number", i+1, a)
		}
		coords = append(coords, v)
	}

	nearby := c.service.NearbyAirports(coords[0], coords[1], coords[2])
	rows := make([][]string, 0, len(nearby))
	for _, n := range nearby {
		rows = append(rows, []string{n.Airport.GetCode(), n.Airport.GetName(), n.Airport.GetCity(), formatKm(n.Distance)})
	}
	renderTable(cmd.OutOrStdout(), []string{"code", "name", "city", "distance (km)"}, rows)
	return nil
}

func formatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', pkg.DISTANCE_PRECISION, 64)
}
