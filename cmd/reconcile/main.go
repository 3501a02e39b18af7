// Command reconcile is a batch harness for the edition reconciliation
// engine. It reads a JSON array of raw provider records from a file (or
// stdin when no argument is given), reconciles them, and writes the
// resulting edition groups to stdout as JSON. With -storage, the output is
// the normalized edition + binding shape the persistence layer stores.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/foliobooks/folio/pkg/config"
	"github.com/foliobooks/folio/pkg/export"
	"github.com/foliobooks/folio/pkg/reconcile"
	"github.com/foliobooks/folio/pkg/records"
	"github.com/foliobooks/folio/pkg/version"
	"github.com/google/uuid"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
)

func main() {
	storage := flag.Bool("storage", false, "emit the storage export shape instead of edition groups")
	flag.Parse()

	log := logger.New()
	log.Info("starting reconcile", logger.Data{"version": version.Version})

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	raws, err := readRecords(flag.Arg(0))
	if err != nil {
		log.Err(err).Fatal("failed to read records")
	}
	log.Info("loaded records", logger.Data{"count": len(raws)})

	ctx := log.WithContext(context.Background())
	groups := reconcile.NewService(cfg).Reconcile(ctx, raws)
	log.Info("reconciled", logger.Data{"groups": len(groups)})

	var out interface{} = groups
	if *storage {
		out = export.FromGroups(groups)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Err(err).Fatal("failed to write output")
	}
}

// readRecords decodes the input records and assigns an ID to any record that
// arrives without one, so that merge provenance stays traceable.
func readRecords(path string) ([]records.RawRecord, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raws []records.RawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	for i := range raws {
		if raws[i].ID == "" {
			raws[i].ID = uuid.NewString()
		}
	}

	return raws, nil
}
