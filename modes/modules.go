package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ForProduction provides ModeProduction and a nil *testing.T.
func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

type ModuleForProduction struct {
	dscope.Module
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// ForTest provides ModeDevelopment and t.
// Config files on the machine are ignored in this mode.
func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
