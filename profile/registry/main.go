// Profiling:
// go build ./profile/registry
// go tool pprof -http=":8000" -nodefraction=0.001 ./registry mem.pprof

package main

import (
	"fmt"
	"log/slog"

	"github.com/pkg/profile"

	"github.com/mosbergapi/modkit/pkg/content"
	"github.com/mosbergapi/modkit/pkg/engine"
	"github.com/mosbergapi/modkit/pkg/modkit"
)

func main() {
	rounds := 50
	lookups := 200
	entries := 5000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, lookups, entries)
	p.Stop()
}

func run(rounds, lookups, entries int) {
	for range rounds {
		kit, err := modkit.New(engine.New(), modkit.WithLogger(slog.New(slog.DiscardHandler)))
		if err != nil {
			panic(err)
		}

		names := make([]string, entries)
		for i := range names {
			names[i] = fmt.Sprintf("item_%d", i)
			kit.Items.MustRegister(names[i], &content.Item{DisplayName: names[i], StackSize: 64})
		}

		found := 0
		for range lookups {
			for _, name := range names {
				if _, ok := kit.Items.Get(name); ok {
					found++
				}
			}
		}
		if found != lookups*entries {
			panic("registry lookup miss")
		}
	}
}
