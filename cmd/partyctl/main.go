// Command partyctl inspects party line calls, either straight from a badger
// directory or through the gRPC call service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"partyline/domain/call"
	"partyline/domain/persona"
	"partyline/infrastructure/grpc/client"
	"partyline/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const usage = `usage: partyctl <command> [flags]

commands:
  personas                        list the persona catalog
  calls   -db PATH [-limit N]     list stored calls (read-only badger)
  list    -addr HOST:PORT         list calls through the call service
  get     -addr HOST:PORT ID      show one call
  create  -addr HOST:PORT -url URL PERSONA...
  add     -addr HOST:PORT CALL_ID PERSONA
  remove  -addr HOST:PORT CALL_ID PERSONA
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		color.Error.Println(err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	dbPath := fs.String("db", "./data/badger", "Path to badger DB")
	addr := fs.String("addr", "localhost:50051", "Call service address")
	limit := fs.Int("limit", 50, "Maximum number of calls")
	url := fs.String("url", "", "Page the call is about")
	timeout := fs.Duration("timeout", 60*time.Second, "Request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch command {
	case "personas":
		printPersonas(persona.Default())
		return nil
	case "calls":
		return listStored(*dbPath, *limit)
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connect %s: %w", *addr, err)
	}
	defer func() { _ = conn.Close() }()
	calls := client.NewCallClient(conn, *timeout)
	ctx := context.Background()

	switch command {
	case "list":
		list, err := calls.ListCalls(ctx, *limit)
		if err != nil {
			return err
		}
		printCalls(list)
	case "get":
		if fs.NArg() != 1 {
			return fmt.Errorf("get needs a call id")
		}
		c, err := calls.GetCall(ctx, call.ID(fs.Arg(0)))
		if err != nil {
			return err
		}
		printCall(c)
	case "create":
		if *url == "" || fs.NArg() == 0 {
			return fmt.Errorf("create needs -url and at least one persona")
		}
		ids := make([]persona.ID, 0, fs.NArg())
		for _, a := range fs.Args() {
			ids = append(ids, persona.ID(a))
		}
		id, err := calls.CreateCall(ctx, *url, ids)
		if err != nil {
			return err
		}
		color.Success.Printf("Call created: %s\n", id)
	case "add", "remove":
		if fs.NArg() != 2 {
			return fmt.Errorf("%s needs a call id and a persona", command)
		}
		callID, personaID := fs.Arg(0), persona.ID(fs.Arg(1))
		if command == "add" {
			err = calls.AddToCall(ctx, callID, personaID)
		} else {
			err = calls.RemoveFromCall(ctx, callID, personaID)
		}
		if err != nil {
			return err
		}
		color.Success.Printf("%s %s: ok\n", command, personaID)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func listStored(path string, limit int) error {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("open badger %s: %w", path, err)
	}
	defer func() { _ = db.Close() }()

	list, err := storage.NewCallRepository(db, logs.GetLoggerFromString("WARN")).List(limit)
	if err != nil {
		return err
	}
	printCalls(list)
	return nil
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func printPersonas(catalog *persona.Catalog) {
	table := newTable("ID", "Emoji", "Description", "Voice")
	for _, p := range catalog.All() {
		table.Append([]string{string(p.ID), p.Emoji, p.Description, p.Voice})
	}
	table.Render()
}

func printCalls(calls []call.Call) {
	if len(calls) == 0 {
		color.Warn.Println("No call stored")
		return
	}
	table := newTable("ID", "Created", "Lang", "Personas", "URL")
	for _, c := range calls {
		table.Append([]string{
			string(c.ID),
			c.CreatedAt.Local().Format(time.DateTime),
			c.Language,
			joinPersonas(c.Personas),
			c.URL,
		})
	}
	table.Render()
}

func printCall(c call.Call) {
	color.Cyan.Printf("%s\n", c.ID)
	fmt.Printf("  url:      %s\n", c.URL)
	fmt.Printf("  personas: %s\n", joinPersonas(c.Personas))
	fmt.Printf("  language: %s\n", c.Language)
	fmt.Printf("  created:  %s\n", c.CreatedAt.Local().Format(time.DateTime))
	fmt.Printf("  updated:  %s\n\n", c.UpdatedAt.Local().Format(time.DateTime))
	fmt.Println(c.Content)
}

func joinPersonas(ids []persona.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}
