package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/damru/damru/internal/config"
	"github.com/damru/damru/internal/directory"
	"github.com/damru/damru/internal/domain"
	"github.com/damru/damru/internal/instance"
	"github.com/damru/damru/internal/lock"
	"github.com/damru/damru/internal/store"
)

func main() {
	instanceFlag := flag.String("instance", "", "instance name (overrides config default)")
	configFlag := flag.String("config", "", "config file path (default ~/.damru/config.toml)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Usage = printUsage
	flag.Parse()

	configPath := *configFlag
	if configPath == "" {
		configPath = instance.ConfigPath()
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fatal(err)
	}

	name := instance.Resolve(*instanceFlag, cfg)
	if err := instance.ValidateName(name); err != nil {
		fatal(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "contacts":
		cmdContacts(openDirectory(name, cfg), args[1:], *jsonFlag)
	case "chats":
		cmdChats(openDirectory(name, cfg), args[1:], *jsonFlag)
	case "calls":
		cmdCalls(openDirectory(name, cfg), *jsonFlag)
	case "config":
		cmdConfig(cfg, *jsonFlag)
	case "instances":
		cmdInstances(*jsonFlag)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: damructl [--instance <name>] [--config <path>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  contacts [--all] [--search q]   List contacts (--all includes non-contacts)")
	fmt.Fprintln(os.Stderr, "  chats [--search q]              List conversations")
	fmt.Fprintln(os.Stderr, "  calls                           Show call history")
	fmt.Fprintln(os.Stderr, "  config                          Show effective configuration")
	fmt.Fprintln(os.Stderr, "  instances                       List known instances")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// openDirectory loads the instance directory database, creating and
// seeding it on first use.
func openDirectory(name string, cfg *config.Config) directory.Directory {
	db, _, err := store.OpenMigrated(instance.DirectoryDB(name, cfg))
	if err != nil {
		fatal(err)
	}
	defer func() { _ = db.Close() }()

	dir, err := db.LoadDirectory()
	if err != nil {
		fatal(err)
	}
	return dir
}

type contactRow struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Presence  string `json:"presence"`
	IsContact bool   `json:"is_contact"`
}

func cmdContacts(dir directory.Directory, args []string, jsonOut bool) {
	fs := flag.NewFlagSet("contacts", flag.ExitOnError)
	all := fs.Bool("all", false, "include users who are not contacts")
	search := fs.String("search", "", "filter by name or phone")
	_ = fs.Parse(args)

	scope := directory.MyContacts
	if *all {
		scope = directory.AllUsers
	}
	contacts := directory.FilterContacts(dir.Contacts(), *search, scope)

	rows := make([]contactRow, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, contactRow{
			ID:        c.ID,
			Name:      c.Name,
			Phone:     c.Phone,
			Presence:  c.PresenceLabel(),
			IsContact: c.IsContact,
		})
	}
	if jsonOut {
		outputJSON(rows)
		return
	}
	if len(rows) == 0 {
		fmt.Println("No contacts found.")
		return
	}
	fmt.Printf("%s (%d)\n", scope, len(rows))
	for _, r := range rows {
		fmt.Printf("%-4d %-20s %-18s %s\n", r.ID, r.Name, r.Phone, r.Presence)
	}
}

type chatRow struct {
	ID          int64  `json:"id"`
	Contact     string `json:"contact"`
	LastMessage string `json:"last_message"`
	Timestamp   string `json:"timestamp"`
	Unread      int    `json:"unread"`
	Pinned      bool   `json:"pinned"`
	Muted       bool   `json:"muted"`
	Encrypted   bool   `json:"encrypted"`
}

func cmdChats(dir directory.Directory, args []string, jsonOut bool) {
	fs := flag.NewFlagSet("chats", flag.ExitOnError)
	search := fs.String("search", "", "filter by contact name")
	_ = fs.Parse(args)

	matches := directory.FilterConversations(dir, *search)
	rows := make([]chatRow, 0, len(matches))
	for _, m := range matches {
		c := m.Conversation
		rows = append(rows, chatRow{
			ID:          c.ID,
			Contact:     m.Contact.Name,
			LastMessage: c.LastMessage,
			Timestamp:   c.Timestamp,
			Unread:      c.Unread,
			Pinned:      c.Pinned,
			Muted:       c.Muted,
			Encrypted:   c.Encrypted,
		})
	}
	if jsonOut {
		outputJSON(rows)
		return
	}
	if len(rows) == 0 {
		fmt.Println("No chats found.")
		return
	}
	for _, r := range rows {
		unread := ""
		if r.Unread > 0 {
			unread = fmt.Sprintf("(%d)", r.Unread)
		}
		fmt.Printf("%-4d %-20s %-5s %-10s %s\n", r.ID, r.Contact, unread, r.Timestamp, r.LastMessage)
	}
}

type callRow struct {
	ID        int64           `json:"id"`
	Contact   string          `json:"contact"`
	Type      domain.CallType `json:"type"`
	Direction string          `json:"direction"`
	Duration  string          `json:"duration"`
	Timestamp string          `json:"timestamp"`
}

func cmdCalls(dir directory.Directory, jsonOut bool) {
	resolved := directory.ResolveCalls(dir, dir.CallHistory())
	rows := make([]callRow, 0, len(resolved))
	for _, r := range resolved {
		rows = append(rows, callRow{
			ID:        r.Call.ID,
			Contact:   r.Contact.Name,
			Type:      r.Call.Type,
			Direction: r.Call.Direction(),
			Duration:  r.Call.Duration,
			Timestamp: r.Call.Timestamp,
		})
	}
	if jsonOut {
		outputJSON(rows)
		return
	}
	if len(rows) == 0 {
		fmt.Println("No calls found.")
		return
	}
	for _, r := range rows {
		fmt.Printf("%-4d %-20s %-6s %-9s %6s  %s\n", r.ID, r.Contact, r.Type.Label(), r.Direction, r.Duration, r.Timestamp)
	}
}

func cmdConfig(cfg *config.Config, jsonOut bool) {
	if jsonOut {
		outputJSON(cfg)
		return
	}
	if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		fatal(err)
	}
}

type instanceRow struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Running bool   `json:"running"`
}

func cmdInstances(jsonOut bool) {
	entries, err := os.ReadDir(filepath.Join(instance.BaseDir(), "instances"))
	if err != nil && !os.IsNotExist(err) {
		fatal(err)
	}
	rows := make([]instanceRow, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || instance.ValidateName(e.Name()) != nil {
			continue
		}
		dir := instance.Dir(e.Name())
		_, statErr := os.Stat(filepath.Join(dir, lock.FileName))
		rows = append(rows, instanceRow{Name: e.Name(), Path: dir, Running: statErr == nil})
	}
	if jsonOut {
		outputJSON(rows)
		return
	}
	if len(rows) == 0 {
		fmt.Println("No instances found.")
		return
	}
	for _, r := range rows {
		running := "stopped"
		if r.Running {
			running = "running"
		}
		fmt.Printf("%-20s %s (%s)\n", r.Name, r.Path, running)
	}
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}
