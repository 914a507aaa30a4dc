package feaconfigs

import (
	"fmt"
	"time"

	"github.com/typesupply/feafofum/cmds"
	"github.com/typesupply/feafofum/configs"
	"github.com/typesupply/feafofum/vars"
)

type Verbose bool

var verboseFlag = cmds.Switch("-verbose", "keep code blocks in the output")

func (Module) Verbose(
	loader configs.Loader,
) Verbose {
	return Verbose(*verboseFlag || configs.First[bool](loader, "verbose"))
}

type ResolveReferences bool

var resolveReferencesFlag = cmds.Switch("-references", "compile included files and point includes at them")

func (Module) ResolveReferences(
	loader configs.Loader,
) ResolveReferences {
	return ResolveReferences(*resolveReferencesFlag || configs.First[bool](loader, "resolve_references"))
}

// ScriptTimeout bounds one script block; zero means no limit.
type ScriptTimeout time.Duration

var scriptTimeoutFlag = cmds.Var[time.Duration]("-script-timeout", "stop a code block after this duration")

func (Module) ScriptTimeout(
	loader configs.Loader,
) ScriptTimeout {
	if *scriptTimeoutFlag > 0 {
		return ScriptTimeout(*scriptTimeoutFlag)
	}
	str := configs.First[string](loader, "script_timeout")
	if str == "" {
		return 0
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		panic(fmt.Errorf("bad script timeout %q: %w", str, err))
	}
	return ScriptTimeout(d)
}

// MaxExecutionSteps bounds one script block; zero means no limit.
type MaxExecutionSteps uint64

var maxExecutionStepsFlag = cmds.Var[uint64]("-max-steps", "stop a code block after this many execution steps")

func (Module) MaxExecutionSteps(
	loader configs.Loader,
) MaxExecutionSteps {
	return MaxExecutionSteps(vars.FirstNonZero(
		*maxExecutionStepsFlag,
		configs.First[uint64](loader, "max_execution_steps"),
	))
}
