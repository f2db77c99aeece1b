package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"hourmeter/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	set    = flag.String("set", "", "Force-set the lifetime total as H:M (send during the boot window)")
	raw    = flag.Bool("raw", false, "Print raw console lines instead of the two-line panel view")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	// Blocking reads; the line scanner drives the pacing.
	cfg.ReadTimeout = 0

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	if *set != "" {
		cmd, err := setCommand(*set)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if _, err := port.Write([]byte(cmd)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to send override: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Sent %q\n", strings.TrimSuffix(cmd, "\n"))
	}

	// The device mirrors each rendered display line as "<row>:<text>".
	scanner := bufio.NewScanner(port)
	var panel [2]string
	for scanner.Scan() {
		line := scanner.Text()
		if *raw {
			fmt.Println(line)
			continue
		}

		if len(line) < 2 || line[1] != ':' || (line[0] != '0' && line[0] != '1') {
			continue
		}
		panel[line[0]-'0'] = line[2:]
		fmt.Printf("\r[%-16s | %-16s]", panel[0], panel[1])
	}
	fmt.Println()

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
		os.Exit(1)
	}
}

// setCommand turns "H:M" into the device's SET_TOTAL console command.
func setCommand(arg string) (string, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid -set value %q, want H:M", arg)
	}

	var hours, minutes uint
	if _, err := fmt.Sscanf(parts[0], "%d", &hours); err != nil {
		return "", fmt.Errorf("invalid hours in %q: %w", arg, err)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &minutes); err != nil {
		return "", fmt.Errorf("invalid minutes in %q: %w", arg, err)
	}
	if minutes >= 60 {
		return "", fmt.Errorf("minutes must be below 60, got %d", minutes)
	}

	return fmt.Sprintf("SET_TOTAL H=%d M=%d\n", hours, minutes), nil
}
