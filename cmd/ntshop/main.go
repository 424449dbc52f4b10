package main

import (
	"io"
	"log"
	"os"

	"ntshop/internal/config"
	applog "ntshop/internal/log"
	"ntshop/internal/session"
	"ntshop/internal/shop"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	sh := shop.New(cfg)
	if err := sh.Load(); err != nil {
		log.Fatal(err)
	}
	if err := sh.Seed(); err != nil {
		log.Fatal(err)
	}

	session.New(sh, os.Stdin, os.Stdout).Run()

	// Save-on-exit covers anything the session checkpoints missed.
	if err := sh.SaveAll(); err != nil {
		applog.Error(applog.Ctx{}, "shutdown.save", err, nil)
		os.Exit(1)
	}
}
