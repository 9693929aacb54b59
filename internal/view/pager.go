package view

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
)

// pager feeds output to an external pager through its standard input.
type pager struct {
	command string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	// interrupts swallows Ctrl-C while the pager owns the terminal; the
	// pager handles it and we wait for it to exit.
	interrupts chan os.Signal
}

// pagerCommand returns configured, or less when it is installed, or more.
func pagerCommand(configured string, lookPath func(string) (string, error)) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}
	if _, err := lookPath("less"); err == nil {
		return "less -SR"
	}
	return "more -f"
}

func startPager(configured string, out io.Writer) (*pager, error) {
	command := pagerCommand(configured, exec.LookPath)
	fields := strings.Fields(command)
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("pager %q: %w", command, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("pager %q: %w", command, err)
	}
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	return &pager{command: command, cmd: cmd, stdin: stdin, interrupts: interrupts}, nil
}

func (p *pager) Write(b []byte) (int, error) { return p.stdin.Write(b) }

// Close ends the input and waits for the user to leave the pager.
func (p *pager) Close() error {
	_ = p.stdin.Close()
	err := p.cmd.Wait()
	signal.Stop(p.interrupts)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// less exits non-zero after a broken pipe; that is not our failure.
		return nil
	}
	return err
}
