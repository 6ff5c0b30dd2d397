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

// Package cli implements the menu command-line client.
//
// # Overview
//
// The menu CLI talks to a running menud server through pkg/client and prints
// results with pkg/serializer. Every command accepts --output/-o and
// --format/-t (json, yaml, table; default table).
//
// # Commands
//
//	menu list
//	menu get <id>
//	menu category <categoria>
//	menu search <nome>
//	menu categories
//	menu create --nome N --descricao D --preco P --categoria C [--imagem F ...]
//	menu create --file item.yaml
//	menu update [--nome N] [--preco P] [--imagem F ... | --clear-imagens] <id>
//	menu delete <id>
//	menu catalog
//
// Only the flags given to update are sent, so omitted fields keep their
// stored value. catalog prints the built-in seed catalog without contacting
// a server; its YAML output can be used as SEED_FILE.
//
// # Global Flags
//
//	--server, -s   API base URL (env MENU_SERVER, default http://localhost:3000)
//	--timeout      Total timeout per request
//	--insecure     Skip TLS verification
//	--log-level    debug, info, warn, error (env LOG_LEVEL, default warn)
//
// API errors are printed with their code and message; the process exits 1.
package cli
