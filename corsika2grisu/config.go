package main

import (
	"encoding/json"
	"fmt"
	"os"

	grisu "github.com/iact-sim/corsika2grisu/pkg"
)

func LoadConfiguration(filename string) (grisu.Configuration, error) {
	var config grisu.Configuration

	// Set default values
	config.MaxEvents = 1000000000
	config.Verbosity = 0
	config.Skip = 0
	config.FileOut = grisu.STDOUT_SENTINEL
	config.Version = "corsika2grisu"
	config.Qeff = 1.0
	config.AtmID = 1
	config.PrintMoreInfo = false
	config.NoDB = false
	config.Host = "localhost"
	config.User = "corsika"
	config.Passwd = "readonly"
	config.DBName = "CorsikaRuns"

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func printConfiguration(config grisu.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("Version label: %s", config.Version), "config")
	logger.Info(fmt.Sprintf("Quantum efficiency: %f", config.Qeff), "config")
	logger.Info(fmt.Sprintf("Atmosphere id: %d", config.AtmID), "config")
	logger.Info(fmt.Sprintf("Atmosphere profile: %s", config.AtmProfile), "config")
	logger.Info(fmt.Sprintf("Print more info: %t", config.PrintMoreInfo), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Skip: %d", config.Skip), "config")
	logger.Info(fmt.Sprintf("Max events: %d", config.MaxEvents), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
}
