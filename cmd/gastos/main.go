// Command gastos drives the mock expense API from the terminal. Every
// subcommand maps onto one facade operation and prints the operation's
// envelope as indented JSON, the same payload a real endpoint would return.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gastos/internal/api"
	"gastos/internal/cli"
	"gastos/internal/log"
)

const usage = `Usage: gastos <command> [flags]

Commands:
  create   -type gasto|entrada -amount VALUE -description TEXT [-card BRAND]
  list     [-type T] [-card B] [-q TEXT] [-from DATE] [-to DATE]
  get      ID
  delete   ID
  seed

Amounts accept Brazilian formatting, e.g. -amount 1.234,56.
Backend is chosen by DATA_BACKEND (file, memory, sqlite).
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cli.LoadEnvFile()
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	result := cli.InitBackend(ctx, logger, cfg)

	a := api.New(result.Store, logger)
	code := dispatch(ctx, a, os.Args[1], os.Args[2:])

	if result.Cleanup != nil {
		if err := result.Cleanup(); err != nil {
			logger.Warn("Backend cleanup failed", log.FieldError, err)
		}
	}
	os.Exit(code)
}

func dispatch(ctx context.Context, a *api.API, cmd string, args []string) int {
	switch cmd {
	case "create":
		return runCreate(ctx, a, args)
	case "list":
		return runList(ctx, a, args)
	case "get":
		return printResponse(a.GetEntry(ctx, requireID(args, "get")))
	case "delete":
		return printResponse(a.DeleteEntry(ctx, requireID(args, "delete")))
	case "seed":
		return printResponse(a.SeedDemo(ctx))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		return 2
	}
}

func runCreate(ctx context.Context, a *api.API, args []string) int {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	entryType := fs.String("type", "", "entry type: gasto or entrada")
	amount := fs.String("amount", "", "amount, e.g. 99,90")
	description := fs.String("description", "", "entry description")
	card := fs.String("card", "", "card brand (optional)")
	fs.Parse(args)

	return printResponse(a.CreateEntry(ctx, api.CreateEntryInput{
		Type:        *entryType,
		Amount:      *amount,
		Description: *description,
		CardBrand:   *card,
	}))
}

func runList(ctx context.Context, a *api.API, args []string) int {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	entryType := fs.String("type", "", "filter by entry type")
	card := fs.String("card", "", "filter by card brand")
	q := fs.String("q", "", "description search text")
	from := fs.String("from", "", "inclusive lower createdAt bound (RFC 3339 or YYYY-MM-DD)")
	to := fs.String("to", "", "inclusive upper createdAt bound (RFC 3339 or YYYY-MM-DD)")
	fs.Parse(args)

	return printResponse(a.ListEntries(ctx, api.ListParams{
		Type:      *entryType,
		CardBrand: *card,
		Q:         *q,
		From:      *from,
		To:        *to,
	}))
}

func requireID(args []string, cmd string) string {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintf(os.Stderr, "usage: gastos %s ID\n", cmd)
		os.Exit(2)
	}
	return args[0]
}

func printResponse[T any](resp api.Response[T]) int {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode response: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	if !resp.OK {
		return 1
	}
	return 0
}
