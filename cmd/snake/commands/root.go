package commands

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/gridsnake/engine/config"
	"github.com/gridsnake/engine/game"
	"github.com/gridsnake/engine/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake plays a grid snake game in the terminal or serves it over http",
	Version: version.Version,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	width      = config.Width
	height     = config.Height
	speed      = config.Speed
	categories = config.Categories
	verbose    bool
	logFile    string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&width, "width", width, "width of the grid")
	flags.IntVar(&height, "height", height, "height of the grid")
	flags.DurationVar(&speed, "speed", speed, "time between ticks")
	flags.StringSliceVar(&categories, "categories", categories, "food categories, each drawn in its own colour")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func gameConfig() game.Config {
	return game.Config{
		Width:      width,
		Height:     height,
		Speed:      speed,
		Categories: categories,
	}
}

// setupLogging configures logrus. Interactive commands own the terminal, so
// their logs go to the log file or nowhere.
func setupLogging(interactive bool) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		log.SetOutput(f)
		return nil
	}
	if interactive {
		log.SetOutput(ioutil.Discard)
	}
	return nil
}
