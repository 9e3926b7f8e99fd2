//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) install(item launchItem) error {
	return runReg("add", registryRunKey, "/v", item.Name, "/t", "REG_SZ", "/d", runCommand(item), "/f")
}

func (service *platformService) uninstall(item launchItem) error {
	return runReg("delete", registryRunKey, "/v", item.Name, "/f")
}

// runCommand is the Run value data. The program path is always quoted.
func runCommand(item launchItem) string {
	first := true
	return item.CommandLine(func(arg string) string {
		if first {
			first = false
			return `"` + arg + `"`
		}
		return quoteIfSpaced(arg)
	})
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s failed: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
