package main

import (
	"flag"
	"log"

	"namecard/internal/di"
	"namecard/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	debug := flag.Bool("debug", false, "mirror logs to stderr")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		log.Fatalf("namecard: %v", err)
	}
}
