package console

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/seekerror/logw"
)

// ReadCommands reads console command lines from stdin into a chan. Async.
func ReadCommands(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "command << %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteReplies writes driver reply lines, including board renderings and
// move records, from the given chan to stdout.
func WriteReplies(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, "reply >> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
