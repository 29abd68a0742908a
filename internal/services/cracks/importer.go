package cracks

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/structech/survey-api/internal/models"
	"github.com/structech/survey-api/internal/services/blocks"
	"github.com/structech/survey-api/pkg/timeparse"
	"github.com/xuri/excelize/v2"
)

// Fixed column layout of the survey workbook (0-based). Headers are only
// checked for width, never matched by name.
const (
	colBlock = iota
	colChainageFrom
	colChainageTo
	colRL
	colDefectType
	colLength
	colWidth
	colHeight
	colVideo
	colStart
	colEnd

	columnCount = 11
)

// A run of this many fully blank (or contentless) rows ends the scan early;
// survey sheets often carry decorative footers far below the data block.
const emptyRunLimit = 5

// RowError is a recoverable, row-scoped import problem
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportOutcome summarizes one import run. It is returned to the caller and
// never persisted.
type ImportOutcome struct {
	Deleted       int64      `json:"deleted"`
	Imported      int64      `json:"imported"`
	Errors        []RowError `json:"errors"`
	ProcessedRows int        `json:"processedRows"`
	TotalRows     int        `json:"totalRows"`
}

// Importer turns a survey workbook into crack records for one project
type Importer struct {
	repository Repository
	blocks     blocks.Service
}

// NewImporter creates an importer over the given stores
func NewImporter(repository Repository, blockService blocks.Service) *Importer {
	return &Importer{repository: repository, blocks: blockService}
}

// Import reads the first sheet of the workbook, scans its data rows, and
// atomically replaces the project's crack records with the valid ones.
// Row-level problems are collected into the outcome, never aborting the scan;
// a sheet that produces zero valid rows fails with ErrNoValidRows and leaves
// existing data untouched.
func (im *Importer) Import(ctx context.Context, projectID uint, workbook io.Reader) (*ImportOutcome, error) {
	rows, err := readFirstSheet(workbook)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}
	if len(rows[0]) < columnCount {
		return nil, ErrUnexpectedHeader
	}

	resolver := im.blocks.NewResolver(projectID)

	var (
		candidates    []models.CrackRecord
		rowErrors     = []RowError{}
		lastBlockName string
		emptyRun      int
		processedRows int
	)

scan:
	for r := 1; r < len(rows); r++ {
		row := rows[r]
		processedRows++

		if rowBlank(row) {
			emptyRun++
			if emptyRun >= emptyRunLimit {
				break // assume end of data block
			}
			continue
		}

		blockName := strings.TrimSpace(cell(row, colBlock))
		if blockName == "" && lastBlockName != "" {
			blockName = lastBlockName // fill-down only if a prior value exists
		}
		if blockName == "" {
			rowErrors = append(rowErrors, RowError{Row: r + 1, Error: "Block missing"})
			continue
		}
		lastBlockName = blockName

		blockID, err := resolver.Resolve(ctx, blockName)
		if err != nil {
			return nil, fmt.Errorf("resolving block %q: %w", blockName, err)
		}

		chainageFrom := textCell(cell(row, colChainageFrom))
		chainageTo := textCell(cell(row, colChainageTo))
		rl := timeparse.Num(cell(row, colRL))
		defectType := textCell(cell(row, colDefectType))
		lengthMM := timeparse.Num(cell(row, colLength))
		widthMM := timeparse.Num(cell(row, colWidth))
		heightMM := timeparse.Num(cell(row, colHeight))
		videoFileName := textCell(cell(row, colVideo))

		rawStart := strings.TrimSpace(cell(row, colStart))
		rawEnd := strings.TrimSpace(cell(row, colEnd))
		startTime, startOK := parseTimeCell(rawStart)
		endTime, endOK := parseTimeCell(rawEnd)

		switch {
		case rawStart != "" && !startOK:
			rowErrors = append(rowErrors, RowError{Row: r + 1, Error: "Invalid startTime format"})
			continue
		case rawEnd != "" && !endOK:
			rowErrors = append(rowErrors, RowError{Row: r + 1, Error: "Invalid endTime format"})
			continue
		case (rawStart != "") != (rawEnd != ""):
			rowErrors = append(rowErrors, RowError{Row: r + 1, Error: "Both startTime and endTime required together"})
			continue
		case startOK && endOK && startTime > endTime:
			// Canonical zero-padded strings compare correctly as text
			rowErrors = append(rowErrors, RowError{Row: r + 1, Error: "startTime > endTime"})
			continue
		}

		record := models.CrackRecord{
			ProjectID:     projectID,
			BlockID:       blockID,
			ChainageFrom:  chainageFrom,
			ChainageTo:    chainageTo,
			RL:            rl,
			DefectType:    defectType,
			LengthMM:      lengthMM,
			WidthMM:       widthMM,
			HeightMM:      heightMM,
			VideoFileName: videoFileName,
		}
		if startOK && endOK {
			record.StartTime = &startTime
			record.EndTime = &endTime
		}

		// RL alone is not enough to count as data
		if !hasContent(&record) {
			emptyRun++
			if emptyRun >= emptyRunLimit {
				break scan
			}
			continue // decorative filler row
		}

		emptyRun = 0
		candidates = append(candidates, record)
	}

	if len(candidates) == 0 {
		return nil, ErrNoValidRows
	}

	deleted, created, err := im.repository.ReplaceProjectCracks(ctx, projectID, candidates)
	if err != nil {
		return nil, err
	}

	return &ImportOutcome{
		Deleted:       deleted,
		Imported:      created,
		Errors:        rowErrors,
		ProcessedRows: processedRows,
		TotalRows:     len(rows) - 1,
	}, nil
}

// readFirstSheet loads the workbook and returns the first sheet's rows as
// raw strings.
func readFirstSheet(workbook io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(workbook)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookUnreadable, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookUnreadable, err)
	}
	return rows, nil
}

var decimalRe = regexp.MustCompile(`^\d*\.\d+$`)

// parseTimeCell canonicalizes one raw time cell. Decimal text is a date
// serial leaking through an unformatted cell, so it goes through the
// day-fraction path.
func parseTimeCell(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	if decimalRe.MatchString(raw) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", false
		}
		return timeparse.Clock(f)
	}
	return timeparse.Clock(raw)
}

// cell returns the trimmed-length-safe cell at index i; sheets routinely
// yield ragged rows.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// textCell trims a cell to a nullable string. "0" survives: chainage markers
// are free text and a literal zero is a position, not an empty cell.
func textCell(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

func rowBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// hasContent reports whether a normalized row carries meaningful survey data.
// Zero-valued dimensions do not count, matching the legacy ingest rules.
func hasContent(r *models.CrackRecord) bool {
	if r.DefectType != nil || r.StartTime != nil || r.EndTime != nil {
		return true
	}
	if r.ChainageFrom != nil || r.ChainageTo != nil {
		return true
	}
	for _, dim := range []*float64{r.LengthMM, r.WidthMM, r.HeightMM} {
		if dim != nil && *dim != 0 {
			return true
		}
	}
	return false
}
