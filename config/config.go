package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. They seed the command line flag defaults and tune
// the remote input limiter.
var (
	Width      = getEnvInt("SNAKE_WIDTH", 20)
	Height     = getEnvInt("SNAKE_HEIGHT", 15)
	Speed      = time.Duration(getEnvInt("SNAKE_SPEED_MS", 150)) * time.Millisecond
	Categories = getEnvList("SNAKE_CATEGORIES", []string{"red", "green", "blue"})
	InputRate  = rate.Limit(getEnvInt("SNAKE_INPUT_RPS", 20))
	InputBurst = getEnvInt("SNAKE_INPUT_BURST", 5)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvList(varName string, defaults []string) []string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	list := []string{}
	for _, item := range strings.Split(val, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaults
	}
	return list
}
