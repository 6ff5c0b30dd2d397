// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cardapio/menu-api/pkg/client"
	"github.com/cardapio/menu-api/pkg/defaults"
	"github.com/cardapio/menu-api/pkg/serializer"
)

var (
	serverFlag = &cli.StringFlag{
		Name:    "server",
		Aliases: []string{"s"},
		Value:   client.DefaultBaseURL,
		Usage:   "Base URL of the menu API server",
		Sources: cli.EnvVars("MENU_SERVER"),
	}

	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Value: defaults.HTTPClientTimeout,
		Usage: "Total timeout for each API request",
	}

	insecureFlag = &cli.BoolFlag{
		Name:  "insecure",
		Usage: "Skip TLS certificate verification",
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "warn",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatTable),
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

// parseOutputFormat returns the --format value or an error naming the
// supported formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// writeOutput serializes v to --output (or stdout) in --format.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}

func newClient(cmd *cli.Command) *client.Client {
	return client.New(cmd.String(serverFlag.Name),
		serializer.WithTotalTimeout(cmd.Duration(timeoutFlag.Name)),
		serializer.WithInsecureSkipVerify(cmd.Bool(insecureFlag.Name)),
		serializer.WithUserAgent(name+"/"+version),
	)
}

// requireArg returns the first positional argument or a usage error.
func requireArg(cmd *cli.Command, argName string) (string, error) {
	v := strings.TrimSpace(cmd.Args().First())
	if v == "" {
		return "", fmt.Errorf("missing required argument <%s>; usage: %s %s <%s>",
			argName, name, cmd.Name, argName)
	}
	return v, nil
}
