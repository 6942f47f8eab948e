// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command landingkit serves, validates, and exports a landing site driven by
// a single YAML document.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	lkcli "landingkit/internal/cli"
)

func main() {
	err := lkcli.NewApp().Run(os.Args)
	if err == nil {
		return
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(ec.ExitCode())
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
