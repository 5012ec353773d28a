package reporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanStack(t *testing.T) {
	stack := strings.Join([]string{
		"Error: boom",
		"    at login (/app/test/login.js:3:9)",
		"    at Runner.run (/app/node_modules/runner/index.js:10:1)",
		"    ---",
		"From previous event:",
		"    at helper (/app/test/helpers.js:8:2)",
		"    at listOnTimeout (node:internal/timers:569:17)",
	}, "\n")

	t.Run("should keep only frames of user code", func(t *testing.T) {
		cleaned := CleanStack(ErrorRecord{Message: "boom", Stack: stack}, nil)

		require.Equal(t, "    at login (/app/test/login.js:3:9)\n    at helper (/app/test/helpers.js:8:2)", cleaned.Stack)
		require.Equal(t, "boom", cleaned.Message)
	})

	t.Run("should not modify the input", func(t *testing.T) {
		in := ErrorRecord{Message: "boom", Stack: stack}

		CleanStack(in, nil)

		require.Equal(t, stack, in.Stack)
	})

	t.Run("should give the same result when applied twice", func(t *testing.T) {
		once := CleanStack(ErrorRecord{Stack: stack}, []string{"helpers.js"})
		twice := CleanStack(once, []string{"helpers.js"})

		require.Equal(t, once, twice)
		require.Equal(t, "    at login (/app/test/login.js:3:9)", twice.Stack)
	})

	t.Run("should keep user frames under internal and runtime directories", func(t *testing.T) {
		userStack := strings.Join([]string{
			"    at login (/app/src/internal/login.js:3:4)",
			"    at run (/app/src/runtime/run.js:1:1)",
			"    at processTicksAndRejections (internal/process/task_queues.js:97:5)",
			"    at goexit (/usr/local/go/src/runtime/asm_amd64.s:1650)",
		}, "\n")

		cleaned := CleanStack(ErrorRecord{Stack: userStack}, nil)

		require.Equal(t, "    at login (/app/src/internal/login.js:3:4)\n    at run (/app/src/runtime/run.js:1:1)", cleaned.Stack)
	})

	t.Run("should leave an empty stack alone", func(t *testing.T) {
		require.Equal(t, ErrorRecord{Message: "x"}, CleanStack(ErrorRecord{Message: "x"}, nil))
	})
}
