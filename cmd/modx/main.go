// Command modx is a thin CLI over the model data exploration utilities:
// transit boardings import/export, TAZ attribute queries, and bounding-box
// arithmetic over GeoJSON collections.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ctpsstaff/modx"
	"github.com/ctpsstaff/modx/config"
	"github.com/ctpsstaff/modx/export"
	"github.com/ctpsstaff/modx/geoutil"
	"github.com/ctpsstaff/modx/taz"
	"github.com/ctpsstaff/modx/transit"
	flag "github.com/spf13/pflag"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "version":
		fmt.Println(modx.GetVersion())
	case "boardings":
		runBoardings(os.Args[2:])
	case "taz":
		runTaz(os.Args[2:])
	case "metamode":
		runMetamode(os.Args[2:])
	case "bbox":
		runBBox(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: modx <boardings|taz|metamode|bbox|version> [flags]")
}

// loadConfig pulls in modx.yml when a flag was left for configuration to
// fill; a missing config file is only an error at that point.
func loadConfig() {
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("load modx.yml: %v", err)
	}
}

func runBoardings(args []string) {
	fs := flag.NewFlagSet("boardings", flag.ExitOnError)
	scenario := fs.String("scenario", "", "scenario directory containing AM/MD/PM/NT result CSVs")
	out := fs.String("out", "daily_boardings.csv", "output CSV path for the daily table")
	columns := fs.StringSlice("columns", nil, "column subset to export (default: all)")
	fs.Parse(args)

	if *scenario == "" {
		loadConfig()
		*scenario = config.Config.Transit.ScenarioDir
	}
	if *scenario == "" {
		log.Fatal("boardings: no scenario directory given")
	}

	byTOD, err := transit.ImportTransitAssignment(*scenario)
	if err != nil {
		log.Fatal(err)
	}
	var cols []string
	if len(*columns) > 0 {
		cols = *columns
	}
	if err := export.WriteCSV(byTOD["daily"].Frame(), *out, cols); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d daily rows to %s", byTOD["daily"].NumRows(), *out)
}

func runTaz(args []string) {
	fs := flag.NewFlagSet("taz", flag.ExitOnError)
	shapefile := fs.String("shapefile", "", "TAZ shapefile path (default: modx.yml, then the canonical path)")
	mpo := fs.String("mpo", "", "select TAZes by MPO")
	brmpo := fs.Bool("brmpo", false, "select Boston Region MPO TAZes")
	town := fs.String("town", "", "select TAZes by town")
	state := fs.String("state", "", "select TAZes by state")
	subregion := fs.String("subregion", "", "select TAZes by Boston Region MPO subregion")
	sector := fs.String("sector", "", "select TAZes by analysis sector")
	fs.Parse(args)

	if *shapefile == "" {
		loadConfig()
		*shapefile = config.Config.TAZ.Shapefile
	}
	m, err := taz.NewManager(*shapefile)
	if err != nil {
		log.Fatal(err)
	}

	var records []taz.Record
	switch {
	case *mpo != "":
		records = m.MPOToTazes(*mpo)
	case *subregion != "":
		records = m.BRMPOSubregionToTazes(*subregion)
	case *sector != "":
		records = m.SectorToTazes(*sector)
	case *town != "" && *state != "":
		records = m.TownStateToTazes(*town, *state)
	case *brmpo && *town != "":
		records = m.BRMPOTownToTazes(*town)
	case *town != "":
		records = m.TownToTazes(*town)
	case *state != "":
		records = m.StateToTazes(*state)
	case *brmpo:
		records = m.BRMPOTazes()
	default:
		log.Fatal("taz: no selection flag given")
	}

	for _, id := range taz.TazIDs(records) {
		fmt.Println(id)
	}
}

func runMetamode(args []string) {
	fs := flag.NewFlagSet("metamode", flag.ExitOnError)
	mode := fs.Int("mode", -1, "numeric transit mode code to resolve")
	revision := fs.String("revision", "", "mapping revision: 2019 or 2021 (default: modx.yml)")
	fs.Parse(args)

	if *mode < 0 {
		log.Fatal("metamode: no mode code given")
	}
	if *revision == "" {
		loadConfig()
		*revision = config.Config.Transit.MetamodeRevision
	}
	rev, err := transit.ParseRevision(*revision)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(transit.ModeToMetamode(rev, *mode))
}

func runBBox(args []string) {
	fs := flag.NewFlagSet("bbox", flag.ExitOnError)
	path := fs.String("geojson", "", "GeoJSON feature collection to measure")
	fs.Parse(args)

	if *path == "" {
		log.Fatal("bbox: no GeoJSON file given")
	}
	fc, err := export.ReadGeoJSON(*path)
	if err != nil {
		log.Fatal(err)
	}
	box, err := geoutil.BBoxOfFeatureCollection(fc)
	if err != nil {
		log.Fatal(err)
	}
	center := geoutil.CenterOfBBox(box)
	fmt.Printf("bbox: minx=%g miny=%g maxx=%g maxy=%g\n", box.MinX, box.MinY, box.MaxX, box.MaxY)
	fmt.Printf("center: x=%g y=%g\n", center[0], center[1])
}
