// Package main replays recorded gateway frames through a gear tree.
//
// Input is newline-delimited JSON, one frame per line, in the gateway's
// envelope shape:
//
//	{"t": "MESSAGE_CREATE", "d": {"id": "...", "content": "..."}}
//
// Every decoded event is dispatched into a small demo tree so the routing,
// once-semantics and failure isolation can be observed without a network
// connection.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/disgear/disgear"
	"github.com/disgear/disgear/config"
	"github.com/disgear/disgear/event"
	"github.com/disgear/disgear/events"
	"github.com/disgear/disgear/object"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "optional TOML config file")
		verbose    = flag.Bool("v", false, "print every raw frame")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: disgear-replay [flags] frames.ndjson")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	d := disgear.New(
		disgear.WithConfig(cfg),
		disgear.WithSyncDelivery(), // deterministic output for a replay
		disgear.WithFailureHandler(func(f disgear.Failure) {
			fmt.Fprintf(os.Stderr, "failure: %v\n", f.AsError())
		}),
	)
	if err := d.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer d.Stop(context.Background())

	if err := buildTree(d); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer file.Close()

	frames := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		raw := event.RawOf(line)
		kind := event.Kind(raw.Get("t").String())
		payload := event.RawOf([]byte(raw.Get("d").Raw))

		if *verbose {
			fmt.Printf("frame %d: %s\n", frames, kind)
		}

		ev, err := event.Decode(kind, payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "frame %d: %v\n", frames, err)
			continue
		}
		if err := d.Dispatch(context.Background(), ev); err != nil {
			fmt.Fprintf(os.Stderr, "frame %d: %v\n", frames, err)
		}
		frames++
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	stats := d.Stats()
	fmt.Printf("\n%d frames, %d events dispatched, %d listeners invoked, %d errors, %d panics\n",
		frames, stats.EventsDispatched, stats.ListenersInvoked, stats.ListenerErrors, stats.ListenerPanics)
	return 0
}

// buildTree assembles the demo tree: a chat gear under the root with a
// reactions gear attached beneath it.
func buildTree(d *disgear.Dispatcher) error {
	_, err := disgear.Listen(d, func(ctx context.Context, ev events.Ready) error {
		fmt.Printf("ready: %s (session %s, %d guilds)\n",
			ev.User.DisplayName(), ev.SessionID, len(ev.Guilds))
		return nil
	}, disgear.WithOnce())
	if err != nil {
		return err
	}

	chat := disgear.NewGear("chat")
	if _, err := disgear.Listen(chat, func(ctx context.Context, ev events.MessageCreate) error {
		fmt.Printf("[%s] %s: %s\n",
			ev.ChannelID, ev.Author.DisplayName(), ev.Content)
		return nil
	}); err != nil {
		return err
	}
	if _, err := disgear.Listen(chat, func(ctx context.Context, ev events.MessageDelete) error {
		fmt.Printf("[%s] message %s deleted (posted %s)\n",
			ev.ChannelID, ev.MessageID, ev.MessageID.Time().Format(time.RFC3339))
		return nil
	}); err != nil {
		return err
	}

	reactions := disgear.NewGear("reactions")
	if _, err := disgear.Listen(reactions, func(ctx context.Context, ev events.ReactionAdd) error {
		fmt.Printf("[%s] %s reacted with %s\n", ev.ChannelID, ev.UserID, emojiName(ev.Emoji))
		return nil
	}); err != nil {
		return err
	}

	if err := chat.AttachGear(reactions); err != nil {
		return err
	}
	return d.AttachGear(chat)
}

func emojiName(e object.Emoji) string {
	if e.IsCustom() {
		return ":" + e.Name + ":"
	}
	return e.Name
}
