package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Seed          int64          `json:"seed"`
	FloorsReached int            `json:"floors_reached"`
	TurnsPlayed   int            `json:"turns_played"`
	Level         int            `json:"level"`
	Died          bool           `json:"died"`
	EnemiesKilled map[string]int `json:"enemies_killed"`
	ItemsUsed     map[string]int `json:"items_used"`
}

func newRunLog(seed int64) RunLog {
	return RunLog{
		Seed:          seed,
		FloorsReached: 1,
		EnemiesKilled: make(map[string]int),
		ItemsUsed:     make(map[string]int),
	}
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
func saveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("run log: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored.
// Follows the XDG Base Directory layout: $XDG_DATA_HOME/delve-roguelike,
// defaulting to ~/.local/share/delve-roguelike.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "delve-roguelike"), nil
}
