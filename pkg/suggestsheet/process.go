package suggestsheet

import (
	"context"
	"time"

	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/models"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/parser"
	"go.uber.org/zap"
)

// Fetcher looks up autocomplete suggestions for a keyword. It reports
// failures as an empty result rather than an error.
type Fetcher interface {
	Fetch(ctx context.Context, keyword string) models.Suggestions
}

// Record is one fetched row handed to a Recorder.
type Record struct {
	Book      string
	Sheet     string
	Row       int
	Keyword   string
	Result    models.Suggestions
	FetchedAt time.Time
}

// Recorder keeps an audit trail of fetched rows.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

// Processor fills one sheet at a time.
type Processor struct {
	Book     *Workbook
	Fetcher  Fetcher
	Recorder Recorder // optional
	Options  Options
	Logger   *zap.Logger
}

func (p *Processor) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// ProcessSheet looks up every keyword row of sheet and writes the longest and
// shortest suggestions next to it, saving the workbook after each row.
// It returns a *SheetError wrapping ErrNoHeaderRow or ErrNoKeywordColumn when
// the sheet cannot be processed; in that case nothing is modified.
func (p *Processor) ProcessSheet(ctx context.Context, sheet string) (models.SheetResult, error) {
	log := p.logger().With(zap.String("sheet", sheet))
	result := models.SheetResult{Name: sheet}

	rows, err := parser.ReadRows(p.Book.File(), sheet)
	if err != nil {
		return result, NewSheetError(sheet, "read", err)
	}

	layout, err := p.resolveLayout(sheet, rows)
	if err != nil {
		return result, err
	}
	result.Layout = layout
	if len(layout.Created) > 0 {
		log.Info("Added result columns", zap.Strings("labels", layout.Created))
	}

	keywordRows, skipped := parser.ExtractKeywordRows(rows, layout.HeaderRow-1, layout.KeywordCol-1)
	result.Skipped = skipped

	for _, kr := range keywordRows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		log.Info("Processing keyword", zap.String("keyword", kr.Keyword), zap.Int("row", kr.R))
		suggestions := p.Fetcher.Fetch(ctx, kr.Keyword)
		// A fetch cut short by cancellation reports an empty pair; keep the
		// row's existing cells rather than writing a false "no data".
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Processed++
		if suggestions.Empty() {
			result.Empty++
		}

		if err := p.writeRow(sheet, kr.R, layout, suggestions); err != nil {
			return result, NewSheetError(sheet, "write", err)
		}
		p.record(ctx, log, sheet, kr, suggestions)

		if err := p.Book.Save(); err != nil {
			result.SaveFailures++
			log.Error("Error saving workbook", zap.Int("row", kr.R), zap.Error(err))
		}
	}

	return result, nil
}

// resolveLayout finds the header row and column roles, creating the result
// columns when they are missing.
func (p *Processor) resolveLayout(sheet string, rows [][]string) (models.SheetLayout, error) {
	var layout models.SheetLayout

	headerIdx, ok := parser.FindHeaderRow(rows)
	if !ok {
		return layout, NewSheetError(sheet, "header", ErrNoHeaderRow)
	}
	headers := rows[headerIdx]

	keywordCol, ok := parser.ResolveColumn(headers, parser.KeywordAliases)
	if !ok {
		return layout, NewSheetError(sheet, "columns", ErrNoKeywordColumn)
	}
	longestCol, hasLongest := parser.ResolveColumn(headers, parser.LongestAliases)
	shortestCol, hasShortest := parser.ResolveColumn(headers, parser.ShortestAliases)

	layout.HeaderRow = headerIdx + 1
	layout.KeywordCol = keywordCol + 1

	// New columns start right of the widest row so no existing cell is
	// overwritten.
	next := parser.DataWidth(rows) + 1
	labelRow := layout.HeaderRow + p.Options.headerRowOffset()

	if hasLongest {
		layout.LongestCol = longestCol + 1
	} else {
		layout.LongestCol = next
		next++
		if err := p.Book.SetCell(sheet, layout.LongestCol, labelRow, parser.LongestLabel); err != nil {
			return layout, NewSheetError(sheet, "columns", err)
		}
		layout.Created = append(layout.Created, parser.LongestLabel)
	}

	if hasShortest {
		layout.ShortestCol = shortestCol + 1
	} else {
		layout.ShortestCol = next
		if err := p.Book.SetCell(sheet, layout.ShortestCol, labelRow, parser.ShortestLabel); err != nil {
			return layout, NewSheetError(sheet, "columns", err)
		}
		layout.Created = append(layout.Created, parser.ShortestLabel)
	}

	return layout, nil
}

func (p *Processor) writeRow(sheet string, row int, layout models.SheetLayout, s models.Suggestions) error {
	if err := p.Book.SetCell(sheet, layout.LongestCol, row, s.Longest); err != nil {
		return err
	}
	return p.Book.SetCell(sheet, layout.ShortestCol, row, s.Shortest)
}

func (p *Processor) record(ctx context.Context, log *zap.Logger, sheet string, kr models.KeywordRow, s models.Suggestions) {
	if p.Recorder == nil {
		return
	}
	rec := Record{
		Book:      p.Book.Path(),
		Sheet:     sheet,
		Row:       kr.R,
		Keyword:   kr.Keyword,
		Result:    s,
		FetchedAt: time.Now().UTC(),
	}
	if err := p.Recorder.Record(ctx, rec); err != nil {
		log.Warn("Error recording suggestions", zap.Int("row", kr.R), zap.Error(err))
	}
}
