package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"zikirmatik/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// DaemonScheduler talks to the local zikirmatik tray daemon over HTTP.
// The daemon writes a lockfile ("port|pid|secret") into its config dir on
// startup; every call revalidates the lockfile so a stale daemon never
// swallows schedules silently.
type DaemonScheduler struct {
	client *http.Client
}

func NewDaemonScheduler() *DaemonScheduler {
	return &DaemonScheduler{
		client: &http.Client{},
	}
}

type scheduleRequest struct {
	Content Content `json:"content"`
	Trigger Trigger `json:"trigger"`
}

type scheduleResponse struct {
	NotificationID string `json:"notification_id"`
}

type permissionResponse struct {
	Status string `json:"status"` // granted | denied
}

type scheduledResponse struct {
	NotificationIDs []string `json:"notification_ids"`
}

type deliveredResponse struct {
	Deliveries []Delivery `json:"deliveries"`
}

func (d *DaemonScheduler) RequestPermission() (bool, error) {
	var resp permissionResponse
	if err := d.call("POST", "/permission", nil, &resp); err != nil {
		return false, err
	}
	return resp.Status == "granted", nil
}

func (d *DaemonScheduler) Schedule(content Content, trigger Trigger) (string, error) {
	var resp scheduleResponse
	req := scheduleRequest{Content: content, Trigger: trigger}
	if err := d.call("POST", "/schedule", req, &resp); err != nil {
		return "", err
	}
	if resp.NotificationID == "" {
		return "", errors.New("daemon returned empty notification id")
	}
	return resp.NotificationID, nil
}

func (d *DaemonScheduler) Cancel(notificationID string) error {
	req := map[string]string{"notification_id": notificationID}
	return d.call("POST", "/cancel", req, nil)
}

func (d *DaemonScheduler) ListScheduled() ([]string, error) {
	var resp scheduledResponse
	if err := d.call("GET", "/scheduled", nil, &resp); err != nil {
		return nil, err
	}
	return resp.NotificationIDs, nil
}

func (d *DaemonScheduler) Delivered() ([]Delivery, error) {
	var resp deliveredResponse
	if err := d.call("POST", "/delivered", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Deliveries, nil
}

// RequestWidgetRedraw asks the tray daemon to repaint its widget from
// the shared storage keys.
func (d *DaemonScheduler) RequestWidgetRedraw() error {
	return d.call("POST", "/widget/reload", nil, nil)
}

func (d *DaemonScheduler) call(method, path string, payload, out interface{}) error {
	trayConfigDir, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(trayConfigDir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(data)
	}

	url := fmt.Sprintf("http://127.0.0.1:%s%s", port, path)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Zikirmatik-Secret", secret)

	res, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(res.Body)
		return fmt.Errorf("daemon request %s failed with status %d: %s", path, res.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode daemon response: %w", err)
		}
	}
	return nil
}

// GetTrayAppConfigDir returns the configuration directory used by the tray daemon.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	// A settings.json in the tray dir may redirect the lockfile location
	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return trayConfigDir, nil
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("zikirmatik-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("zikirmatik-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), constants.NotifierProcessPrefix) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.NotifierProcessPrefix, process.Executable())
	}

	return port, secret, nil
}
