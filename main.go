package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"scanbuf/batch"
	"scanbuf/config"
	"scanbuf/util/log"
	"syscall"
)

var banner = `
                      __          ___
  ___ ___ ___ ____   / /  __ __  / _/
 (_-</ __/ _ '/ _ \ / _ \/ // / / _/
/___/\__/\_,_/_//_//_.__/\_,_/ /_/
                        v1.0-SNAPSHOT`

func main() {
	fmt.Println(banner)
	var (
		configFile = flag.String("config", "", "config file, defaults to ./scanbuf.yaml when present")
		capacity   = flag.Int("capacity", 0, "initial buffer capacity")
		incFactor  = flag.Int("incFactor", 0, "increment factor, 0 means fixed")
		mode       = flag.String("mode", "", "growth mode: f, a or m")
		allocator  = flag.String("allocator", "", "storage allocator: heap or mmap")
		sentinel   = flag.Int("sentinel", 0, "byte appended by compaction")
		compact    = flag.Bool("compact", true, "compact buffers after loading")
		printOut   = flag.Bool("print", false, "print staged buffers")
		workers    = flag.Int("workers", 0, "number of workers")
		poolSize   = flag.Int("poolSize", 0, "number of pooled buffers")
		debugMode  = flag.Bool("debugMode", false, "enable debug logs")
	)
	flag.Parse()

	path := *configFile
	if path == "" {
		if _, err := os.Stat("./scanbuf.yaml"); err == nil {
			path = "./scanbuf.yaml"
		}
	}
	if path != "" {
		if err := config.LoadConfigs(path); err != nil {
			log.Errorf("load config %s: %v", path, err)
			os.Exit(2)
		}
	}
	props := config.Properties
	// explicit flags override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "capacity":
			props.Capacity = *capacity
		case "incFactor":
			props.IncFactor = *incFactor
		case "mode":
			props.Mode = *mode
		case "allocator":
			props.Allocator = *allocator
		case "sentinel":
			props.Sentinel = *sentinel
		case "compact":
			props.Compact = *compact
		case "print":
			props.Print = *printOut
		case "workers":
			props.Workers = *workers
		case "poolSize":
			props.PoolSize = *poolSize
		case "debugMode":
			props.DebugMode = *debugMode
		}
	})
	if props.DebugMode {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.LevelError)
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: scanbuf [flags] file...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	runner, err := batch.NewRunner(props)
	if err != nil {
		log.Errorf("invalid configuration: %v", err)
		os.Exit(2)
	}
	defer runner.Close()
	props.DisplayConfigs()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	results := runner.Run(ctx, flag.Args())
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%s: %v\n", r.Path, r.Err)
			continue
		}
		fmt.Printf("%s: loaded %d bytes, limit %d, capacity %d, relocated %v\n", r.Path, r.Loaded, r.Limit, r.Capacity, r.Relocated)
		if r.Contents != nil {
			os.Stdout.Write(r.Contents)
		}
	}
	if batch.Failed(results) > 0 {
		runner.Close()
		os.Exit(1)
	}
}
