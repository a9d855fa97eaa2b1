package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sartorproj/tempcast/errs"
	"github.com/sartorproj/tempcast/report"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cmd, err := newRootCmd().ExecuteC()
	if err != nil {
		report.NewConsole(log.Logger).Error(err.Error())
		if errs.Is(err, errs.KindArgument) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		os.Exit(1)
	}
}
