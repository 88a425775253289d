package main

import (
	"flag"
	"fmt"
	"os"
)

func parseLogLevel(s string) (logLevel, error) {
	switch s {
	case "debug":
		return logLevelDebug, nil
	case "info":
		return logLevelInfo, nil
	case "warn":
		return logLevelWarn, nil
	case "error":
		return logLevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func main() {
	var (
		configPath = flag.String("config", "", "path to TOML config (omit for defaults)")
		check      = flag.Bool("check", false, "resolve the config and print the effective settings as JSON")
		initDirs   = flag.Bool("init", false, "create the working directory tree and seed the peer database")
		logLevelS  = flag.String("log-level", "info", "debug, info, warn or error")
		stdout     = flag.Bool("stdout", false, "mirror log output to stdout")
	)
	flag.Parse()

	level, err := parseLogLevel(*logLevelS)
	if err != nil {
		fatal("invalid -log-level", err)
	}
	setLogLevel(level)
	logger.configureWriter(os.Stderr, *stdout)
	defer logger.Stop()

	var cfg Config
	if *configPath != "" {
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fatal("config resolution failed", err, "path", *configPath)
		}
		logger.Info("config resolved", "path", *configPath, "mode", cfg.Burnchain.Mode)
	} else {
		cfg = defaultConfig()
		logger.Info("no config given, using defaults", "mode", cfg.Burnchain.Mode)
	}

	if *check {
		out, err := fastJSONMarshalIndent(buildEffectiveConfig(cfg))
		if err != nil {
			fatal("encode effective config", err)
		}
		fmt.Println(string(out))
	}

	if *initDirs {
		if err := initWorkingDir(&cfg); err != nil {
			fatal("init working directory", err, "dir", cfg.Node.WorkingDir)
		}
		logger.Info("working directory initialized",
			"dir", cfg.Node.WorkingDir,
			"peer_db", cfg.peerDBPath())
	}
}

// initWorkingDir creates the node's on-disk layout and seeds the peer
// database with the bootstrap neighbor, if one is configured.
func initWorkingDir(cfg *Config) error {
	for _, dir := range []string{
		cfg.burnchainPath(),
		cfg.burnDBFilePath(),
		cfg.chainstatePath(),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	db, err := openPeerDB(cfg.peerDBPath())
	if err != nil {
		return err
	}
	defer db.Close()
	if cfg.Node.BootstrapNode != nil {
		if err := storeNeighbor(db, cfg.Node.BootstrapNode); err != nil {
			return err
		}
	}
	return nil
}
