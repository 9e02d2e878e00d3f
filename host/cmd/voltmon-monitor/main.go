package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"voltmon/host/monitor"
	"voltmon/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	raw     = flag.Bool("raw", false, "Echo every line, not just transitions")
	summary = flag.Duration("summary", 10*time.Second, "Interval between count summaries (0 = never)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	fmt.Printf("Connecting to %s...\n", *device)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	tracker := monitor.NewTracker()
	lastSummary := time.Now()

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := scanner.Text()
		now := time.Now()

		if *raw {
			fmt.Printf("%s %s\n", now.Format("15:04:05.000"), line)
		}

		label, ok := monitor.ParseStateLine(line)
		if !ok {
			continue
		}
		if tr := tracker.Observe(label, now); tr != nil && !*raw {
			if tr.From == "" {
				fmt.Printf("%s state %s\n", now.Format("15:04:05.000"), tr.To)
			} else {
				fmt.Printf("%s state %s -> %s\n", now.Format("15:04:05.000"), tr.From, tr.To)
			}
		}

		if *summary > 0 && now.Sub(lastSummary) >= *summary {
			lastSummary = now
			fmt.Printf("  reports so far: %v\n", tracker.Counts())
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read: %v\n", err)
		os.Exit(1)
	}
}
