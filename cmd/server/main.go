package main

import (
	"fmt"
	"os"

	"cleanenergy-leads/cmd/server/cli"
)

// @title Clean Energy Leads API
// @version 1.0
// @description Lead capture, savings estimation and admin lead management.

// @contact.name API Support

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// Set via -ldflags at build time
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
