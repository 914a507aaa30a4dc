package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage lists described commands, aliases of one command on one line.
func (p *Executor) WriteUsage(w io.Writer) {
	names := make(map[*Command][]string)
	var order []*Command
	for name, command := range p.commands {
		if command == nil || command.Description == "" {
			continue
		}
		if _, ok := names[command]; !ok {
			order = append(order, command)
		}
		names[command] = append(names[command], name)
	}
	for _, command := range order {
		slices.Sort(names[command])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	for _, command := range order {
		fmt.Fprintf(w, "%s\t%s\n", strings.Join(names[command], ", "), command.Description)
	}
}
