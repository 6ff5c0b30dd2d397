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

// Package logging configures the process-wide slog logger for menud and the
// menu CLI.
//
// Logs are JSON objects on stderr. Every record carries the "module" and
// "version" attributes; debug level adds the source location.
//
//	logging.SetDefaultStructuredLoggerWithLevel("menud", version, os.Getenv("LOG_LEVEL"))
//	slog.Info("store opened", "backend", "pebble", "dir", dir)
//
// Levels are parsed case-insensitively (debug, info, warn/warning, error);
// anything else falls back to info. The server reads LOG_LEVEL, the CLI
// reads --log-level (default warn, also bound to LOG_LEVEL).
//
// NewLogLogger adapts slog for APIs that still take a *log.Logger, such as
// http.Server.ErrorLog.
package logging
