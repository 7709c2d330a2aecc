package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// EnvVerbose passes the -v flag to extensions.
const EnvVerbose = "CASHBOOK_VERBOSE"

// RunExtension attempts to find and execute an external cbk-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "cbk-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		debugf("external command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv(os.Environ())

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv appends the effective settings to env.
func extensionEnv(env []string) []string {
	return append(env,
		EnvLedgerFile+"="+config.LedgerFile,
		EnvCurrency+"="+config.Currency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)
}
