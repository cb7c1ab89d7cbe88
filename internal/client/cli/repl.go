package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	ListEntries(ctx context.Context) error
	WriteEntry(ctx context.Context) error
	ReflectEntry(ctx context.Context) error
	DeleteEntry(ctx context.Context) error
	ExportAttachments(ctx context.Context) error

	ListTasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	ToggleTask(ctx context.Context) error
	DeleteTask(ctx context.Context) error
	Plan(ctx context.Context) error

	ListFeed(ctx context.Context) error
	SharePost(ctx context.Context) error
	LikePost(ctx context.Context) error
	DeletePost(ctx context.Context) error

	ListFriends(ctx context.Context) error
	AddFriend(ctx context.Context) error
	DeleteFriend(ctx context.Context) error
	Chat(ctx context.Context) error

	Memories(ctx context.Context) error
	SmartFeed(ctx context.Context) error

	Settings(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Mindful CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - entries, write, reflect, delentry, export — journal
//	  - tasks, addtask, toggle, deltask, plan  — tasks
//	  - feed, share, like, delpost             — feed
//	  - friends, addfriend, delfriend, chat    — companions
//	  - memories, smartfeed                    — insights
//	  - settings, refresh, logout, exit        — session
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mindful %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Journal:    (e)ntries, write, reflect, delentry, export")
				printlnFn("Tasks:      (t)asks, addtask, toggle, deltask, plan")
				printlnFn("Feed:       feed, share, like, delpost")
				printlnFn("Friends:    friends, addfriend, delfriend, chat")
				printlnFn("Insights:   memories, smartfeed")
				printlnFn("Session:    settings, refresh, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "e", "entries":
			_ = a.ListEntries(ctx)

		case "write":
			_ = a.WriteEntry(ctx)

		case "reflect":
			_ = a.ReflectEntry(ctx)

		case "delentry":
			_ = a.DeleteEntry(ctx)

		case "export":
			_ = a.ExportAttachments(ctx)

		case "t", "tasks":
			_ = a.ListTasks(ctx)

		case "addtask":
			_ = a.AddTask(ctx)

		case "toggle":
			_ = a.ToggleTask(ctx)

		case "deltask":
			_ = a.DeleteTask(ctx)

		case "plan":
			_ = a.Plan(ctx)

		case "feed":
			_ = a.ListFeed(ctx)

		case "share":
			_ = a.SharePost(ctx)

		case "like":
			_ = a.LikePost(ctx)

		case "delpost":
			_ = a.DeletePost(ctx)

		case "friends":
			_ = a.ListFriends(ctx)

		case "addfriend":
			_ = a.AddFriend(ctx)

		case "delfriend":
			_ = a.DeleteFriend(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "memories":
			_ = a.Memories(ctx)

		case "smartfeed":
			_ = a.SmartFeed(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
