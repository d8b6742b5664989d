// Command skyplan-server loads a flight network once and serves itinerary
// queries over HTTP.
//
//	skyplan-server [-config skyplan.toml] [-flights flights.txt | -flights mysql:]
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/skyplan/config"
	"github.com/katalvlaran/skyplan/flightdata"
	"github.com/katalvlaran/skyplan/flightstore"
	"github.com/katalvlaran/skyplan/httpapi"
	"github.com/katalvlaran/skyplan/itinerary"
	"github.com/katalvlaran/skyplan/logging"
	"github.com/katalvlaran/skyplan/network"
)

const mysqlSource = "mysql:"

func main() {
	cfgPath := flag.String("config", "skyplan.toml", "TOML configuration file")
	flightsArg := flag.String("flights", "flights.txt", `flight file, or "mysql:" for the configured table`)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("loading configuration failed, err:%v", err)
	}
	closer, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("logging setup failed, err:%v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, *flightsArg); err != nil {
		log.Errorf("skyplan-server: %v", err)
		closer.Close()
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg *config.Config, flightsArg string) error {
	flights, err := loadFlights(ctx, cfg, flightsArg)
	if err != nil {
		return err
	}
	net := flightdata.Build(flights, network.WithCapacity(2*len(flights)))
	stats := net.Stats()
	log.Infof("network loaded: %d locations, %d edges", stats.Locations, stats.Edges)

	entry := log.WithField("component", "httpapi")
	planner, err := itinerary.NewPlanner(net,
		itinerary.WithLimit(cfg.Planner.MaxResults),
		itinerary.WithMaxLegs(cfg.Planner.MaxLegs),
		itinerary.WithMaxPaths(cfg.Planner.MaxPaths),
		itinerary.WithLogger(entry),
	)
	if err != nil {
		return err
	}

	srv, err := httpapi.New(net, planner,
		httpapi.WithAllowedOrigins(cfg.HTTP.AllowedOrigins),
		httpapi.WithLogger(entry),
	)
	if err != nil {
		return err
	}

	return srv.Run(ctx, cfg.HTTP.Addr)
}

func loadFlights(ctx context.Context, cfg *config.Config, flightsArg string) ([]flightdata.Flight, error) {
	if flightsArg != mysqlSource {
		return flightdata.LoadFlights(flightsArg)
	}
	if cfg.MySQL.DSN == "" {
		return nil, errors.New("mysql source requested but mysql.dsn is not configured")
	}
	db, err := flightstore.Open(ctx, cfg.MySQL.DSN)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return flightstore.Store{DB: db, Table: cfg.MySQL.Table}.Flights(ctx)
}
