package main

import (
	"flag"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to config file (default: discovered)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	check := flag.Bool("check", false, "Validate config and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("moviecatd %s\n", version)
		os.Exit(0)
	}

	if *check {
		if err := checkConfig(os.Stdout, *configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runServer(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
