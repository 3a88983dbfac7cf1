package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// EnvPricePath passes the -prices-path flag to extensions.
const EnvPricePath = "INVT_PRICES_PATH"

// ExtensionPrefix is the name prefix of external subcommands found in PATH.
const ExtensionPrefix = "invt-"

// RunExtension attempts to find and execute an external invt-<subcommand>
// binary, passing the global flags as environment variables.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if there is no such extension.
func RunExtension(subcommand string, args []string) (bool, int) {
	path, err := exec.LookPath(ExtensionPrefix + subcommand)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvConfigFile+"="+flagOrEnv(*configFile, EnvConfigFile),
		EnvPriceFile+"="+flagOrEnv(*priceFile, EnvPriceFile),
		EnvPricePath+"="+*pricePath,
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", path, err)
		return true, 1
	}
	return true, 0
}
