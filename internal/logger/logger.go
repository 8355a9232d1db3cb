package logger

import (
	"fmt"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

func line(color, level, tag, msg string) {
	fmt.Printf("%s%s%s %s%-5s%s %s[%s]%s %s\n",
		colorGray, timestamp(), colorReset,
		color, level, colorReset,
		colorBold, tag, colorReset, msg)
}

// Info logs a neutral progress message under a component tag.
func Info(tag, msg string) {
	line(colorCyan, "INFO", tag, msg)
}

// Success logs a completed milestone.
func Success(tag, msg string) {
	line(colorGreen, "OK", tag, msg)
}

// Warn logs a recoverable problem.
func Warn(tag, msg string) {
	line(colorYellow, "WARN", tag, msg)
}

// Error logs a failure.
func Error(tag, msg string) {
	line(colorRed, "ERROR", tag, msg)
}

// Banner prints the startup header.
func Banner(version string) {
	fmt.Println()
	fmt.Printf("%s  Isofarian Guard Companion%s", colorBold, colorReset)
	if version != "" {
		fmt.Printf(" %s%s%s", colorGray, version, colorReset)
	}
	fmt.Println()
	fmt.Printf("%s  route planner for the world of Isofar%s\n\n", colorGray, colorReset)
}

// Section prints a visual divider before a group of related log lines.
func Section(name string) {
	fmt.Printf("\n%s── %s ──%s\n", colorGray, name, colorReset)
}

// Stats prints a key/value pair aligned under the current section.
func Stats(key string, value interface{}) {
	fmt.Printf("   %s%-24s%s %v\n", colorGray, key, colorReset, value)
}

// Server logs the listen address once the HTTP server is up.
func Server(addr string) {
	fmt.Printf("\n%s  ➜  http://%s%s\n\n", colorGreen, addr, colorReset)
}
