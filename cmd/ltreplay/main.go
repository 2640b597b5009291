// ltreplay feeds a captured chunk stream back through the row reader and
// prints the reconstructed rows as JSON lines. It exists to debug
// reassembly against real server output without a live connection.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/litetable/litetable-client/config"
	"github.com/litetable/litetable-client/internal/capture"
	"github.com/litetable/litetable-client/litetable"
	"github.com/litetable/litetable-client/reader"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	capturePath := flag.String("capture", "", "chunk capture file to replay")
	configPath := flag.String("config", "", "optional litetable-client.toml")
	start := flag.String("start", "", "replay rows at or after this key")
	end := flag.String("end", "", "replay rows before this key")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *capturePath == "" {
		log.Fatal().Msg("-capture is required")
	}

	if err := run(*capturePath, *configPath, *start, *end); err != nil {
		log.Fatal().Err(err).Msg("replay failed")
	}
}

func run(capturePath, configPath, start, end string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	retry := cfg.RetrySettings()
	r, err := reader.New(&reader.Config{
		Streams: capture.NewFactory(capturePath),
		Retry:   &retry,
	})
	if err != nil {
		return err
	}

	rows := litetable.AllRows()
	if start != "" || end != "" {
		rows = litetable.RowSet{Ranges: []litetable.RowRange{{Start: start, End: end}}}
	}

	enc := json.NewEncoder(os.Stdout)
	var count int
	err = r.ReadRows(context.Background(), rows, func(row *litetable.Row) bool {
		if err := enc.Encode(row); err != nil {
			log.Error().Err(err).Msg("failed to encode row")
			return false
		}
		count++
		return true
	})
	if err != nil {
		return err
	}

	log.Info().Int("rows", count).Msg("replay complete")
	return nil
}
