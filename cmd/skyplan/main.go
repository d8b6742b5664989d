// Command skyplan answers a batch of itinerary requests against a flight
// file and writes the flight plan report.
//
//	skyplan [-config skyplan.toml] <flights> <requests> <report>
//
// Passing "mysql:" as <flights> loads the flights from the table configured
// under [mysql] instead of a file.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/skyplan/config"
	"github.com/katalvlaran/skyplan/flightdata"
	"github.com/katalvlaran/skyplan/flightstore"
	"github.com/katalvlaran/skyplan/itinerary"
	"github.com/katalvlaran/skyplan/logging"
	"github.com/katalvlaran/skyplan/network"
	"github.com/katalvlaran/skyplan/report"
)

const (
	usage       = "Usage: skyplan [-config file] <flights> <requests> <report>"
	mysqlSource = "mysql:"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run returns the process exit code.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("skyplan", flag.ContinueOnError)
	fs.SetOutput(stdout)
	cfgPath := fs.String("config", "skyplan.toml", "TOML configuration file")
	fs.Usage = func() {
		fmt.Fprintln(stdout, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return 1
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Errorf("loading configuration failed, err:%v", err)
		return 1
	}
	closer, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Errorf("logging setup failed, err:%v", err)
		return 1
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := plan(ctx, cfg, fs.Arg(0), fs.Arg(1), fs.Arg(2)); err != nil {
		log.Errorf("skyplan failed: %v", err)
		return 1
	}

	return 0
}

// plan runs the whole batch. The report file is created only after every
// request has been planned and rendered.
func plan(ctx context.Context, cfg *config.Config, flightsArg, requestsPath, reportPath string) error {
	start := time.Now()

	net, err := loadNetwork(ctx, cfg, flightsArg)
	if err != nil {
		return err
	}
	reqs, err := flightdata.LoadRequests(requestsPath)
	if err != nil {
		return err
	}

	planner, err := itinerary.NewPlanner(net,
		itinerary.WithLimit(cfg.Planner.MaxResults),
		itinerary.WithMaxLegs(cfg.Planner.MaxLegs),
		itinerary.WithMaxPaths(cfg.Planner.MaxPaths),
		itinerary.WithWorkers(cfg.Planner.Workers),
	)
	if err != nil {
		return err
	}
	results, err := planner.PlanAll(ctx, reqs)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, results); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(reportPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	found := 0
	for _, r := range results {
		if r.Found() {
			found++
		}
	}
	stats := net.Stats()
	entry := log.WithFields(log.Fields{
		"locations": stats.Locations,
		"edges":     stats.Edges,
		"requests":  len(reqs),
		"found":     found,
		"elapsed":   time.Since(start).Round(time.Millisecond),
	})
	if rss, ok := residentMemory(); ok {
		entry = entry.WithField("rss_mb", rss>>20)
	}
	entry.Infof("report written to %s", reportPath)

	return nil
}

func loadNetwork(ctx context.Context, cfg *config.Config, flightsArg string) (*network.Network, error) {
	var (
		flights []flightdata.Flight
		err     error
	)
	if flightsArg == mysqlSource {
		flights, err = loadFromMySQL(ctx, cfg.MySQL)
	} else {
		flights, err = flightdata.LoadFlights(flightsArg)
	}
	if err != nil {
		return nil, err
	}

	return flightdata.Build(flights, network.WithCapacity(2*len(flights))), nil
}

func loadFromMySQL(ctx context.Context, cfg config.MySQL) ([]flightdata.Flight, error) {
	if cfg.DSN == "" {
		return nil, errors.New("mysql source requested but mysql.dsn is not configured")
	}
	db, err := flightstore.Open(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return flightstore.Store{DB: db, Table: cfg.Table}.Flights(ctx)
}
