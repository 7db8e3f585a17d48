package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/geonet-ai/geonet/internal/config"
	"github.com/geonet-ai/geonet/internal/dependency"
	"github.com/geonet-ai/geonet/internal/session"
)

var (
	agentMessage string
	agentTimeout time.Duration
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Talk to the GeoAI assistant",
	RunE:  runAgent,
}

func init() {
	agentCmd.Flags().StringVarP(&agentMessage, "message", "m", "", "Send a single message and exit")
	agentCmd.Flags().DurationVar(&agentTimeout, "timeout", 0, "Per-turn timeout (default from config)")
}

var exitCommands = map[string]bool{
	"exit":  true,
	"quit":  true,
	"/exit": true,
	"/quit": true,
	":q":    true,
}

// shouldExit reports whether line is an exit phrase: matching is
// case-insensitive and ignores surrounding whitespace.
func shouldExit(line string) bool {
	return exitCommands[strings.ToLower(strings.TrimSpace(line))]
}

func runAgent(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	container, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	timeout := agentTimeout
	if timeout <= 0 {
		timeout = cfg.Agent.TurnTimeout.Std()
	}

	sess := container.Session()

	if agentMessage != "" {
		return runSingleMessage(sess, agentMessage, timeout)
	}

	return runInteractive(sess, timeout)
}

// runSingleMessage sends one message to the session and prints the reply.
func runSingleMessage(sess *session.Session, message string, timeout time.Duration) error {
	fmt.Fprintf(os.Stderr, "  ↳ thinking...\n")

	reply, err := sess.Converse(context.Background(), message, timeout)
	if err != nil {
		return err
	}

	printResponse(reply)
	return nil
}

// runInteractive starts the REPL: reads lines from stdin, runs each as one
// conversational turn, and prints the reply before prompting again.
//
// A failed turn never terminates the loop: timeouts and endpoint faults are
// reported and the next prompt follows. Only EOF, an exit phrase, or a
// signal end the process.
func runInteractive(sess *session.Session, timeout time.Duration) error {
	fmt.Printf("%s geonet interactive mode (type 'exit' or 'quit' to stop)\n\n", logo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listenForSignals(cancel)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")

		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if shouldExit(line) {
			fmt.Println("Goodbye!")
			return nil
		}
		if line == "/new" {
			sess.Reset()
			fmt.Println("Started a new conversation.")
			continue
		}

		reply, err := sess.Converse(ctx, line, timeout)
		if err != nil {
			reportTurnError(err)
			if ctx.Err() != nil {
				return nil
			}
			continue
		}
		printResponse(reply)
	}
}

// reportTurnError prints a human-readable message for one failed turn.
func reportTurnError(err error) {
	var timeoutErr *session.TimeoutError
	var faultErr *session.FaultError
	switch {
	case errors.As(err, &timeoutErr):
		fmt.Printf("\n(The turn timed out after %s. The conversation is still usable.)\n\n", timeoutErr.Timeout)
	case errors.As(err, &faultErr):
		fmt.Printf("\n(The model endpoint failed: %v)\n\n", faultErr.Err)
	default:
		fmt.Printf("\n(An error occurred: %v)\n\n", err)
	}
}

// listenForSignals cancels ctx on SIGINT or SIGTERM.
func listenForSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		cancel()
		os.Exit(0)
	}()
}

func printResponse(text string) {
	fmt.Printf("\n%s geonet\n%s\n\n", logo, text)
}
