package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-out", Func(func(string) {}).Desc("output path"))
	executor.Define("-v", Func(func() {}).Desc("keep code blocks").Alias("-verbose"))
	executor.Define("-hidden", Func(func() {}))

	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	expected := "--help, -h, -help, help\tprint this usage\n" +
		"-out\toutput path\n" +
		"-v, -verbose\tkeep code blocks\n"
	if got := buf.String(); got != expected {
		t.Fatalf("got:\n%s", got)
	}
}
