package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "sim":
		runSim(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  npzr play [--name NAME] [--difficulty D] [--seed N] [--profiles FILE --profile NAME]")
	fmt.Println("  npzr sim  [--games N] [--d0 D] [--d1 D] [--seed N] [--verbose]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Play a game against the AI in the terminal")
	fmt.Println("  sim     Run AI-vs-AI games and report the outcomes")
}
