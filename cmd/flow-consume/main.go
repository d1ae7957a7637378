// Command flow-consume demonstrates driving a multiplexed-wait loop with the
// flow package: a producer feeds a bounded channel on a timer, and each
// iteration of the select loop evaluates to a single ControlFlow value that
// decides whether to keep consuming or stop.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-flow/controlflow/pkg/flow"
	"github.com/go-flow/controlflow/pkg/optional"
)

var (
	count    = flag.Int("count", 10, "number of messages to produce")
	interval = flag.Duration("interval", time.Second, "delay between messages")
)

func main() {
	flag.Parse()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

	msgs := messages(*count, *interval)
	for {
		var step flow.ControlFlow[string, int]
		select {
		case <-exit:
			step = flow.Break[string, int]("interrupted")
		case m, ok := <-msgs:
			step = flow.ContinueOr[string](optional.OfReceive(m, ok), "drained")
		}

		msg, ok := step.ContinueValue()
		if !ok {
			reason, _ := step.BreakValue()
			log.Printf("done: %s", reason)
			return
		}
		log.Printf("msg = %d", msg)
	}
}

func messages(n int, every time.Duration) <-chan int {
	out := make(chan int, 1)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			time.Sleep(every)
			out <- i
		}
	}()
	return out
}
