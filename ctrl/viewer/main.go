package main

import (
	"fmt"
	"github.com/celskeggs/waveview/ctrl/util"
	"github.com/celskeggs/waveview/wave/chart"
	"github.com/celskeggs/waveview/wave/datastore"
	"log"
)

func main() {
	if util.HasArg("--help") {
		fmt.Printf("Usage: viewer [--file <wave-file>] [--export-dir <dir>] [--trace]\n")
		return
	}
	store := datastore.NewTest()
	if path, ok := util.ArgValue("--file"); ok {
		if err := store.Load(path); err != nil {
			log.Printf("Showing synthetic signals instead: %v", err)
		}
	}
	exportDir, _ := util.ArgValue("--export-dir")
	if exportDir != "" && !util.Exists(exportDir) {
		log.Fatalf("Export directory %q does not exist", exportDir)
	}

	c := chart.New()
	c.Trace = util.HasArg("--trace")
	c.Fit(store.TimeRange())
	DisplayChart(c, store, exportDir)
}
