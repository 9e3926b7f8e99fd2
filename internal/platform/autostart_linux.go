//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (service *platformService) install(item launchItem) error {
	entryPath, err := service.desktopEntryPath(item)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	if err := os.WriteFile(entryPath, []byte(desktopEntry(item)), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func (service *platformService) uninstall(item launchItem) error {
	entryPath, err := service.desktopEntryPath(item)
	if err != nil {
		return err
	}
	if err := os.Remove(entryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

// desktopEntryPath follows the XDG autostart layout.
func (service *platformService) desktopEntryPath(item launchItem) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", item.Slug+".desktop"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func desktopEntry(item launchItem) string {
	keys := [][2]string{
		{"Type", "Application"},
		{"Name", item.Name},
		{"Comment", "Pomodoro timer widget"},
		{"Exec", item.CommandLine(quoteIfSpaced)},
		{"X-GNOME-Autostart-enabled", "true"},
		{"Terminal", "false"},
	}
	var entry strings.Builder
	entry.WriteString("[Desktop Entry]\n")
	for _, kv := range keys {
		entry.WriteString(kv[0] + "=" + kv[1] + "\n")
	}
	return entry.String()
}
