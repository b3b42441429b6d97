package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	npzrmcp "github.com/peterkuimelis/npzr/internal/mcp"
)

func main() {
	profiles := flag.String("profiles", "profiles.yaml", "path to opponent profiles YAML file")
	flag.Parse()

	npzrmcp.SetProfilesFile(*profiles)

	s := server.NewMCPServer("npzr", "1.0.0")
	npzrmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
