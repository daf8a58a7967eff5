package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores tournament records as CSV files under a timestamped
// directory, one directory per tournament run.
type Writer struct {
	baseDir string
}

func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory this writer stores records in.
func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "round", "white", "black", "winner", "outcome", "termination", "plies", "start_time", "end_time"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			record.ID.String(),
			strconv.Itoa(record.Round),
			record.White,
			record.Black,
			record.Winner,
			record.Outcome,
			record.Termination,
			strconv.Itoa(record.Plies),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"game", "ply", "bot", "move", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			record.Game.String(),
			strconv.Itoa(record.Ply),
			record.Bot,
			record.Move,
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
