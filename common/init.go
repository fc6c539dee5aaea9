package common

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ZiadElshayeb/workky/common/env"
	"github.com/ZiadElshayeb/workky/common/logger"
)

var Version = "v1.0.0"

var StartTime = time.Now()

func printHelp() {
	fmt.Println("Workky voice relay " + Version + " - streaming chat-completion proxy with calendar tools.")
	fmt.Println("Usage: voice-relay [--port <port>] [--log-dir <log directory>] [--env-file <file>] [--version] [--help]")
}

func Init() {
	flag.Parse()

	if *env.PrintVersion {
		fmt.Println(Version)
		os.Exit(0)
	}

	if *env.PrintHelp {
		printHelp()
		os.Exit(0)
	}

	if *env.LogDir != "" {
		var err error
		*env.LogDir, err = filepath.Abs(*env.LogDir)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := os.Stat(*env.LogDir); os.IsNotExist(err) {
			err = os.Mkdir(*env.LogDir, 0777)
			if err != nil {
				log.Fatal(err)
			}
		}
		logger.LogDir = *env.LogDir
	}
}
