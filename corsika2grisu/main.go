package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	grisu "github.com/iact-sim/corsika2grisu/pkg"
	sqlx "github.com/jmoiron/sqlx"
)

var dbConn *sqlx.DB
var configuration grisu.Configuration

var (
	logger         Logger
	VerbosityLevel int
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		return
	}
	grisu.SetConfiguration(configuration)
	grisu.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	if !configuration.NoDB {
		dbConn, err = grisu.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
		if err != nil {
			message := fmt.Errorf("Error connecting to database: %w", err)
			logger.Error(message.Error())
			return
		}
		defer dbConn.Close()
	}

	file, err := os.Open(configuration.FileIn)
	if err != nil {
		message := fmt.Errorf("Error opening file: %w", err)
		logger.Error(message.Error())
		return
	}
	defer file.Close()

	evtCount, err := grisu.CountShowers(file)
	if err != nil {
		message := fmt.Errorf("Error counting showers: %w", err)
		logger.Error(message.Error())
		return
	}
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Number of showers: %d", evtCount)
		logger.Info(message, "main")
	}

	writer, err := grisu.NewWriter(configuration.FileOut)
	if err != nil {
		// The destination is the only output of the run; there is no
		// fallback once it cannot be opened.
		message := fmt.Errorf("Error opening output: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}
	defer writer.Close()

	fileReader := grisu.NewFileReader(file)

	start := time.Now()
	showers := 0
	bunches := 0
	for {
		record, err := fileReader.NextRecord()
		if err != nil {
			if err != io.EOF {
				message := fmt.Errorf("error reading record: %w", err)
				logger.Error(message.Error())
			}
			break
		}
		switch record.Header.RecordType {
		case grisu.RUN_HEADER_RECORD:
			err = writer.WriteRunHeader(record.RunHeader, grisu.RawRunHeader{Buffer: record.RunHeader})
			if err != nil {
				message := fmt.Errorf("error writing run header: %w", err)
				logger.Error(message.Error())
			}
			if !configuration.NoDB {
				if err := grisu.RegisterRun(dbConn, record.RunHeader, configuration.FileOut); err != nil {
					message := fmt.Errorf("error registering run: %w", err)
					logger.Error(message.Error())
				}
			}
		case grisu.SHOWER_RECORD:
			if err := writer.WriteEvent(*record.Shower, configuration.PrintMoreInfo); err != nil {
				message := fmt.Errorf("error writing shower %d: %w", record.Shower.ShowerID, err)
				logger.Error(message.Error())
			}
			showers++
		case grisu.BUNCH_RECORD:
			writer.WritePhoton(*record.Bunch, record.Telescope)
			bunches++
		}
	}

	duration := time.Since(start)
	if VerbosityLevel > 0 {
		logger.Info(fmt.Sprintf("Showers converted: %d", showers), "main")
		logger.Info(fmt.Sprintf("Photon bunches converted: %d", bunches), "main")
		logger.Info(fmt.Sprintf("Total time: %d ms", duration.Milliseconds()), "main")
	}
}
