package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// EnableAutostart registers execPath to open the widget at login.
func (service *platformService) EnableAutostart(appName, execPath string) error {
	item, err := newLaunchItem(appName)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	item.Program = execPath
	if err := service.install(item); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

// DisableAutostart removes the login item. Removing a missing item succeeds.
func (service *platformService) DisableAutostart(appName string) error {
	item, err := newLaunchItem(appName)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := service.uninstall(item); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

// ApplyAutostart registers or removes the running executable as a login item.
func ApplyAutostart(service Service, appName string, enabled bool) error {
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return service.EnableAutostart(appName, execPath)
}

// widgetArgs start the desktop widget rather than the terminal timer.
var widgetArgs = []string{"widget"}

// launchItem is what every OS backend needs to start the widget at login.
type launchItem struct {
	Name    string
	Slug    string
	Program string
	Args    []string
}

func newLaunchItem(appName string) (launchItem, error) {
	name := strings.TrimSpace(appName)
	if name == "" {
		return launchItem{}, errors.New("app name is empty")
	}
	return launchItem{
		Name: name,
		Slug: autostartSlug(name),
		Args: append([]string(nil), widgetArgs...),
	}, nil
}

// Argv returns the program followed by its arguments.
func (item launchItem) Argv() []string {
	return append([]string{strings.Trim(item.Program, `"`)}, item.Args...)
}

// CommandLine joins Argv, passing each part through quote.
func (item launchItem) CommandLine(quote func(string) string) string {
	argv := item.Argv()
	parts := make([]string, len(argv))
	for i, arg := range argv {
		parts[i] = quote(arg)
	}
	return strings.Join(parts, " ")
}

// quoteIfSpaced wraps arg in double quotes when it contains whitespace.
func quoteIfSpaced(arg string) string {
	if strings.ContainsAny(arg, " \t") {
		return `"` + arg + `"`
	}
	return arg
}

func autostartSlug(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "aurafocus"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}
