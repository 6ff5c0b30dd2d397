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
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/cardapio/menu-api/pkg/menu"
	"github.com/cardapio/menu-api/pkg/serializer"
)

func itemFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "nome", Usage: "Item name"},
		&cli.StringFlag{Name: "descricao", Usage: "Item description"},
		&cli.StringFlag{Name: "preco", Usage: "Price, a non-negative number (e.g. 12.50)"},
		&cli.StringFlag{Name: "categoria", Usage: "Category (free-form)"},
		&cli.StringSliceFlag{Name: "imagem", Usage: "Image file name; repeat for several"},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Path/URL of a JSON or YAML document with the item fields; other item flags are ignored",
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List every menu item",
		Flags: []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			items, err := newClient(cmd).List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}
			return writeOutput(ctx, cmd, menu.Items(items))
		},
	}
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show one menu item",
		ArgsUsage: "<id>",
		Flags:     []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requireArg(cmd, "id")
			if err != nil {
				return err
			}
			it, err := newClient(cmd).Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get item %s: %w", id, err)
			}
			return writeOutput(ctx, cmd, it)
		},
	}
}

func categoryCmd() *cli.Command {
	return &cli.Command{
		Name:      "category",
		Usage:     "List items whose category contains the given text (case-insensitive)",
		ArgsUsage: "<categoria>",
		Flags:     []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			categoria, err := requireArg(cmd, "categoria")
			if err != nil {
				return err
			}
			items, err := newClient(cmd).ByCategory(ctx, categoria)
			if err != nil {
				return fmt.Errorf("failed to list category %q: %w", categoria, err)
			}
			return writeOutput(ctx, cmd, menu.Items(items))
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "List items whose name contains the given text (case-insensitive)",
		ArgsUsage: "<nome>",
		Flags:     []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			nome, err := requireArg(cmd, "nome")
			if err != nil {
				return err
			}
			items, err := newClient(cmd).Search(ctx, nome)
			if err != nil {
				return fmt.Errorf("failed to search %q: %w", nome, err)
			}
			return writeOutput(ctx, cmd, menu.Items(items))
		},
	}
}

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List the distinct categories",
		Flags: []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cats, err := newClient(cmd).Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			return writeOutput(ctx, cmd, menu.Categorias(cats))
		},
	}
}

func createCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a menu item",
		Description: `Fields come from flags or from --file:

  menu create --nome "Laço Paula" --descricao "Fita gorgurão" --preco 12 --categoria Laços
  menu create -f item.yaml`,
		Flags: append(itemFlags(), outputFlag, formatFlag),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in, err := inputFromCmd(cmd)
			if err != nil {
				return err
			}
			it, err := newClient(cmd).Create(ctx, in)
			if err != nil {
				return fmt.Errorf("failed to create item: %w", err)
			}
			return writeOutput(ctx, cmd, it)
		},
	}
}

func updateCmd() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update the given fields of a menu item",
		ArgsUsage: "<id>",
		Flags: append(itemFlags(),
			&cli.BoolFlag{Name: "clear-imagens", Usage: "Remove every image"},
			outputFlag, formatFlag),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requireArg(cmd, "id")
			if err != nil {
				return err
			}
			p, err := patchFromCmd(cmd)
			if err != nil {
				return err
			}
			it, err := newClient(cmd).Update(ctx, id, p)
			if err != nil {
				return fmt.Errorf("failed to update item %s: %w", id, err)
			}
			return writeOutput(ctx, cmd, it)
		},
	}
}

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a menu item",
		ArgsUsage: "<id>",
		Flags:     []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requireArg(cmd, "id")
			if err != nil {
				return err
			}
			it, err := newClient(cmd).Delete(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to delete item %s: %w", id, err)
			}
			return writeOutput(ctx, cmd, it)
		},
	}
}

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Print the built-in seed catalog",
		Description: `Does not contact a server. The YAML or JSON output is a valid SEED_FILE:

  menu catalog -t yaml -o seed.yaml`,
		Flags: []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeOutput(ctx, cmd, menu.Items(menu.DefaultCatalog()))
		},
	}
}

// inputFromCmd builds a create payload from --file or the item flags.
// Unset flags stay nil so the server reports them as required.
func inputFromCmd(cmd *cli.Command) (menu.Input, error) {
	if path := cmd.String("file"); path != "" {
		in, err := serializer.FromFile[menu.Input](path)
		if err != nil {
			return menu.Input{}, fmt.Errorf("failed to load item from %q: %w", path, err)
		}
		return *in, nil
	}

	var in menu.Input
	in.Nome = stringIfSet(cmd, "nome")
	in.Descricao = stringIfSet(cmd, "descricao")
	in.Categoria = stringIfSet(cmd, "categoria")
	preco, err := priceIfSet(cmd)
	if err != nil {
		return menu.Input{}, err
	}
	in.Preco = preco
	if cmd.IsSet("imagem") {
		in.Imagens = cmd.StringSlice("imagem")
	}
	return in, nil
}

// patchFromCmd builds a partial update from --file or the flags that were
// given explicitly.
func patchFromCmd(cmd *cli.Command) (menu.Patch, error) {
	if path := cmd.String("file"); path != "" {
		p, err := serializer.FromFile[menu.Patch](path)
		if err != nil {
			return menu.Patch{}, fmt.Errorf("failed to load patch from %q: %w", path, err)
		}
		return *p, nil
	}

	var p menu.Patch
	p.Nome = stringIfSet(cmd, "nome")
	p.Descricao = stringIfSet(cmd, "descricao")
	p.Categoria = stringIfSet(cmd, "categoria")
	preco, err := priceIfSet(cmd)
	if err != nil {
		return menu.Patch{}, err
	}
	p.Preco = preco

	switch {
	case cmd.Bool("clear-imagens"):
		imgs := []string{}
		p.Imagens = &imgs
	case cmd.IsSet("imagem"):
		imgs := cmd.StringSlice("imagem")
		p.Imagens = &imgs
	}
	return p, nil
}

func stringIfSet(cmd *cli.Command, flag string) *string {
	if !cmd.IsSet(flag) {
		return nil
	}
	v := cmd.String(flag)
	return &v
}

func priceIfSet(cmd *cli.Command) (*float64, error) {
	if !cmd.IsSet("preco") {
		return nil, nil
	}
	raw := cmd.String("preco")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --preco %q: must be a number", raw)
	}
	return &f, nil
}
