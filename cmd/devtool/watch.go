package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

type WatchCommand struct{}

func (c *WatchCommand) Name() string {
	return "watch"
}

func (c *WatchCommand) Description() string {
	return "Tail the tournament event stream (-types, -session)"
}

// streamEvent is one frame of the server's event stream
type streamEvent struct {
	Name string
	Data string
}

func (c *WatchCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	types := fs.String("types", "", "comma-separated event types to keep")
	session := fs.String("session", "", "only events of this tournament id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := url.Values{}
	if *types != "" {
		query.Set("types", *types)
	}
	if *session != "" {
		query.Set("session", *session)
	}
	path := "/api/v1/events"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := newAPIClient()
	req, err := client.newRequest(path)
	if err != nil {
		return err
	}

	// Streams stay open indefinitely, so no client timeout here
	resp, err := http.DefaultClient.Do(req.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	PrintHeader(fmt.Sprintf("Watching %s%s (Ctrl+C to stop)", client.baseURL, path))
	err = readStream(resp.Body, func(evt streamEvent) {
		if evt.Name == "keepalive" {
			return
		}
		fmt.Println(formatStreamEvent(evt))
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// readStream calls fn for every complete frame until r is exhausted
func readStream(r io.Reader, fn func(streamEvent)) error {
	scanner := bufio.NewScanner(r)
	var evt streamEvent
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if evt.Name != "" || evt.Data != "" {
				fn(evt)
			}
			evt = streamEvent{}
		case strings.HasPrefix(line, "event: "):
			evt.Name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			evt.Data = strings.TrimPrefix(line, "data: ")
		}
	}
	return scanner.Err()
}

// formatStreamEvent renders "[type] session payload" with the payload compacted
func formatStreamEvent(evt streamEvent) string {
	var frame struct {
		SessionID string          `json:"session_id"`
		Payload   json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal([]byte(evt.Data), &frame); err != nil {
		return fmt.Sprintf("[%s] %s", evt.Name, evt.Data)
	}
	session := frame.SessionID
	if session == "" {
		session = "-"
	}
	return fmt.Sprintf("[%s] %s %s", evt.Name, session, string(frame.Payload))
}
