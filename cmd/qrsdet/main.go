// qrsdet runs the Pan-Tompkins QRS detector over a recorded ECG file or a
// live serial line and writes a per-sample CSV report.
//
// Usage:
//
//	qrsdet -in ecg.txt -out output.csv -verbose
//	qrsdet -serial /dev/ttyUSB0 -baud 115200 -out output.csv
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ecglab/qrsdet"
	"github.com/ecglab/qrsdet/internal/acquire"
	"github.com/ecglab/qrsdet/internal/config"
	"github.com/ecglab/qrsdet/internal/logger"
	"github.com/ecglab/qrsdet/internal/report"
)

func main() {
	in := flag.String("in", "", "path to a text ECG file, one sample per whitespace-separated token")
	serialPort := flag.String("serial", "", "serial device to read live int16 samples from, used when no input file is set")
	baud := flag.Int("baud", 0, "serial baud rate, overrides config")
	out := flag.String("out", "", "output CSV path, overrides config")
	configPath := flag.String("config", "", "path to a YAML config file")
	verbose := flag.Bool("verbose", false, "print each row to stdout as it is written")
	quiet := flag.Bool("quiet", false, "suppress informational logging")
	flag.Parse()

	logger.Quiet = *quiet

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *in != "" {
		cfg.Input = *in
	}
	if *serialPort != "" {
		cfg.Serial.Port = *serialPort
	}
	if *baud != 0 {
		cfg.Serial.Baud = *baud
	}
	if *out != "" {
		cfg.Output = *out
	}
	if *verbose {
		cfg.Verbose = true
	}

	if cfg.Input == "" && cfg.Serial.Port == "" {
		fmt.Fprintln(os.Stderr, "qrsdet: provide -in FILE or -serial DEVICE")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	var src acquire.Source
	var err error
	if cfg.Input != "" {
		src, err = acquire.OpenFile(cfg.Input)
	} else {
		src, err = acquire.OpenSerial(cfg.Serial.Port, cfg.Serial.Baud)
	}
	if err != nil {
		return err
	}
	defer src.Close()

	outFile, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Output, err)
	}
	defer outFile.Close()

	w := report.NewWriter(outFile)
	d := qrsdet.NewDetector()

	var sampleCount, beatCount int32
	for {
		x, ok, err := src.Next()
		if err != nil {
			return fmt.Errorf("read sample %d: %w", sampleCount, err)
		}
		if !ok {
			break
		}
		sampleCount++

		delay := d.ProcessSample(x)

		var rLoc int32
		if delay != 0 {
			rLoc = sampleCount - int32(delay)
			beatCount++
		}

		row := report.Row{
			Input:       x,
			LPFilter:    d.LPFVal(),
			HPFilter:    d.HPFVal(),
			DerivativeF: d.DRFVal(),
			SQRFilter:   d.SQFVal(),
			MVAFilter:   d.MVAVal(),
			RBeat:       rLoc,
			RunningThI1: d.ThI1(),
			SignalLevel: d.SPKI(),
			NoiseLevel:  d.NPKI(),
			RunningThF:  d.ThF1(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
		if cfg.Verbose {
			fmt.Printf("%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d\n",
				row.Input, row.LPFilter, row.HPFilter, row.DerivativeF, row.SQRFilter,
				row.MVAFilter, row.RBeat, row.RunningThI1, row.SignalLevel, row.NoiseLevel, row.RunningThF)
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	logger.Info("%d beats detected in %d samples", beatCount, sampleCount)
	return nil
}
