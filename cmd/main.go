package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smarthome_simulator/internal/environment"
	"smarthome_simulator/internal/logger"
	"smarthome_simulator/internal/simulation"

	"github.com/fatih/color"
	"github.com/spf13/viper"
)

func main() {
	configFound := loadConfig()

	log := logger.Get(viper.GetString("log.level"))
	if !configFound {
		log.Infow("config file not found; using defaults", "path", "configs/config.yml")
	}

	scenario := pickScenario(sampleScenarios(), viper.GetString("sim.scenario"))
	if scenario == nil {
		log.Fatalw("unknown scenario", "name", viper.GetString("sim.scenario"))
	}

	start, err := time.Parse("15:04", viper.GetString("sim.start"))
	if err != nil {
		log.Fatalw("invalid sim.start, want HH:MM", "value", viper.GetString("sim.start"), "err", err)
	}

	rng := rand.New(rand.NewSource(viper.GetInt64("sim.seed")))
	env := environment.New(simulation.At(start.Hour(), start.Minute()), rng)

	// cancel on SIGINT/SIGTERM so a paced run can be stopped between steps
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchSignals(cancel)

	sim := simulation.NewSimulator(env,
		viper.GetInt("sim.speed"),
		time.Duration(viper.GetInt("sim.tick_ms"))*time.Millisecond,
	)

	fmt.Println(scenario)

	runLog, err := sim.Run(ctx, scenario, viper.GetInt("sim.duration_min"))
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Warnw("simulation ended early", "err", err)
	}

	printSummary(scenario, env, runLog)
}

// loadConfig installs defaults and reads configs/config.yml when present.
// Reports whether a config file was found.
func loadConfig() bool {
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("sim.scenario", "Morning Routine")
	viper.SetDefault("sim.start", "05:30")
	viper.SetDefault("sim.duration_min", 240)
	viper.SetDefault("sim.speed", 1)
	viper.SetDefault("sim.tick_ms", 0)
	viper.SetDefault("sim.seed", 1)

	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	return viper.ReadInConfig() == nil
}

// watchSignals cancels the run context on the first termination signal.
func watchSignals(cancel context.CancelFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	cancel()
}

// printSummary renders the post-run reports: environment, devices, journal.
func printSummary(scenario *simulation.Scenario, env *environment.HomeEnvironment, runLog *simulation.RunLog) {
	heading := color.New(color.FgCyan, color.Bold)
	deviceName := color.New(color.FgGreen)
	journalTime := color.New(color.FgYellow)

	heading.Println("\n==== Simulation Completed ====")
	fmt.Println(env.Report())

	heading.Println("\nDevice statuses:")
	for _, d := range scenario.Devices() {
		deviceName.Printf("\n%s\n", d.Name())
		fmt.Println(d.StatusReport())
	}

	heading.Println("\nRun journal:")
	for _, e := range runLog.Events() {
		journalTime.Printf("[%s] ", e.OccurredAt.Format("15:04"))
		fmt.Printf("%-14s %s\n", e.Type, e.Description)
	}
}
