package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// RoundRow is a single played round of an arena game.
//
// Moves are encoded 0=rock, 1=paper, 2=scissors.
// Outcome is from player 1's perspective: 0=tie, 1=player 1 won, 2=player 2 won.
type RoundRow struct {
	ArenaID string `parquet:"arena_id,dict"`
	GameID  string `parquet:"game_id,dict"`
	Round   int32  `parquet:"round"`
	Player1 string `parquet:"player1,dict"`
	Player2 string `parquet:"player2,dict"`
	Move1   int32  `parquet:"move1"`
	Move2   int32  `parquet:"move2"`
	Outcome int32  `parquet:"outcome"`
}

var ErrClosed = errors.New("archive writer is closed")

// Writes RoundRows into a single parquet file. Rows go to tmp/<name> first,
// Finalize moves the file into the output directory.
// Safe for concurrent use.
type ArchiveWriter struct {
	mu sync.Mutex

	outDir  string
	tmpPath string
	outPath string

	file   *os.File
	writer *parquet.GenericWriter[RoundRow]

	bufferedGames int
	bufferedRows  int
}

func NewArchiveWriter(outDir string) (*ArchiveWriter, error) {
	if outDir == "" {
		return nil, fmt.Errorf("outDir is required")
	}

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		absOut = outDir
	}
	tmpDir := filepath.Join(absOut, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("rounds_%d.parquet", time.Now().UnixNano())
	tmpPath := filepath.Join(tmpDir, name)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[RoundRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata("schema", "round_row_v1")

	return &ArchiveWriter{
		outDir:  absOut,
		tmpPath: tmpPath,
		outPath: filepath.Join(absOut, name),
		file:    f,
		writer:  w,
	}, nil
}

func (a *ArchiveWriter) TmpPath() string { return a.tmpPath }
func (a *ArchiveWriter) OutPath() string { return a.outPath }

// Append rows of one game
func (a *ArchiveWriter) WriteRows(rows []RoundRow) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.writer == nil || a.file == nil {
		return ErrClosed
	}
	if len(rows) == 0 {
		return nil
	}
	if _, err := a.writer.Write(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	a.bufferedRows += len(rows)
	a.bufferedGames++
	return nil
}

// Finalize closes the parquet writer and moves the file from tmp/ to outDir.
// If no rows were written, the tmp file is removed and outPath is returned empty.
func (a *ArchiveWriter) Finalize() (outPath string, rows int, games int, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.writer == nil && a.file == nil {
		return "", 0, 0, nil
	}

	rows = a.bufferedRows
	games = a.bufferedGames
	outPath = a.outPath

	var closeErr error
	if a.writer != nil {
		closeErr = a.writer.Close()
		a.writer = nil
	}
	var fileErr error
	if a.file != nil {
		_ = a.file.Sync()
		fileErr = a.file.Close()
		a.file = nil
	}
	if closeErr != nil {
		return "", 0, 0, fmt.Errorf("close parquet writer: %w", closeErr)
	}
	if fileErr != nil {
		return "", 0, 0, fmt.Errorf("close parquet file: %w", fileErr)
	}

	if rows == 0 {
		_ = os.Remove(a.tmpPath)
		return "", 0, 0, nil
	}
	if err := os.Rename(a.tmpPath, a.outPath); err != nil {
		return "", 0, 0, fmt.Errorf("rename parquet: %w", err)
	}
	return outPath, rows, games, nil
}

// Read every row of a finalized archive
func ReadArchive(path string) ([]RoundRow, error) {
	rows, err := parquet.ReadFile[RoundRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	return rows, nil
}
