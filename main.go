package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SanzharKuandyk/saya/config"
	"github.com/SanzharKuandyk/saya/engine"
	"github.com/SanzharKuandyk/saya/frequency"
	"github.com/SanzharKuandyk/saya/jlpt"
	"github.com/SanzharKuandyk/saya/logger"
	"github.com/SanzharKuandyk/saya/lookup"
	"github.com/SanzharKuandyk/saya/pitch"
	"github.com/SanzharKuandyk/saya/reading"
	"github.com/SanzharKuandyk/saya/scan"
)

func main() {
	cfg, err := config.Load("config.json")
	if err != nil {
		fmt.Println("failed to load config:", err)
		return
	}

	// initialize logs directory (clear existing .json files)
	if err := logger.InitLogs(cfg.LogDir); err != nil {
		fmt.Println("failed to init logs:", err)
		return
	}

	store, err := engine.LoadDictionaries(cfg.Dictionary)
	if err != nil {
		// run with the built-in sample-free store so enrichment and readings
		// still demonstrate end to end
		_ = logger.LogError(cfg.LogDir, err.Error())
		fmt.Println("dictionary load failed, continuing without:", err)
		store, _ = engine.LoadDictionaries(config.Dictionary{})
	}
	fmt.Printf("dictionary entries: %d\n", store.Len())

	var (
		freq    *frequency.Table
		accents *pitch.Accents
		levels  *jlpt.Levels
	)
	if cfg.Enrichment.Enabled {
		freq = loadFrequency(cfg)
		accents = loadPitch(cfg)
		levels = loadJLPT(cfg)
	}

	eng := engine.New(store, freq, accents, levels)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	eng.Start(ctx)

	const text = "日本語の本を食べて寝ました。"

	q, err := eng.Submit(text)
	if err != nil {
		fmt.Println("submit error:", err)
		return
	}

	var res engine.QueryResult
	select {
	case res = <-eng.Results:
	case <-ctx.Done():
		fmt.Println("timed out waiting for result")
		return
	}

	out, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(out))
	if err := logger.LogJSON(cfg.LogDir, q.ID+"_lookup", res); err != nil {
		fmt.Println("failed to write lookup log:", err)
	}

	if cfg.Reading.Enabled {
		ann, err := reading.New(cfg.Reading.Dict)
		if err != nil {
			fmt.Println("reading annotator error:", err)
			return
		}
		segs := ann.Furigana(text)
		segOut, _ := json.MarshalIndent(segs, "", "  ")
		fmt.Println(string(segOut))
		if err := logger.LogJSON(cfg.LogDir, q.ID+"_furigana", segs); err != nil {
			fmt.Println("failed to write furigana log:", err)
		}
	}

	if store.Len() > 0 {
		sc, err := scan.NewScanner(store)
		if err != nil {
			fmt.Println("scanner error:", err)
			return
		}
		matches := sc.Scan(text)
		fmt.Printf("document scan: %d term occurrences\n", len(matches))
		if err := logger.LogJSON(cfg.LogDir, q.ID+"_scan", matches); err != nil {
			fmt.Println("failed to write scan log:", err)
		}
	}

	printTopResults(res.Results)
}

func loadFrequency(cfg config.Config) *frequency.Table {
	if cfg.Enrichment.FrequencyPath != "" {
		t, err := frequency.LoadFile(cfg.Enrichment.FrequencyPath)
		if err == nil {
			return t
		}
		fmt.Println("frequency data load failed, using built-in:", err)
	}
	return frequency.WithDefaults()
}

func loadPitch(cfg config.Config) *pitch.Accents {
	if cfg.Enrichment.PitchPath != "" {
		a, err := pitch.LoadFile(cfg.Enrichment.PitchPath)
		if err == nil {
			return a
		}
		fmt.Println("pitch data load failed, using built-in:", err)
	}
	return pitch.WithDefaults()
}

func loadJLPT(cfg config.Config) *jlpt.Levels {
	if cfg.Enrichment.JLPTPath != "" {
		l, err := jlpt.LoadFile(cfg.Enrichment.JLPTPath)
		if err == nil {
			return l
		}
		fmt.Println("jlpt data load failed, using built-in:", err)
	}
	return jlpt.WithDefaults()
}

func printTopResults(results []lookup.Result) {
	for _, r := range results {
		line := r.Term
		if len(r.Readings) > 0 {
			line += " [" + r.Readings[0] + "]"
		}
		if r.Meta.Conjugation != "" {
			line += "  (" + r.Meta.Conjugation + ")"
		}
		if r.Meta.JLPT != "" {
			line += "  " + r.Meta.JLPT
		}
		if r.Meta.Pitch != "" {
			line += "  " + r.Meta.Pitch
		}
		fmt.Println(line)
	}
}
