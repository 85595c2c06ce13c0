package suggestsheet

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/models"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Session is a fetcher that holds an external resource until closed.
type Session interface {
	Fetcher
	Close() error
}

// SessionOpener acquires the fetch session used for a whole run.
type SessionOpener func(ctx context.Context) (Session, error)

// Runner fills every sheet of a workbook using one fetch session.
type Runner struct {
	OpenSession SessionOpener
	Recorder    Recorder // optional
	Options     Options
	Logger      *zap.Logger
}

// Run opens the workbook at path, processes each selected sheet, and saves
// after every sheet. The session and workbook are always closed; their close
// errors are joined with any processing error.
func (r *Runner) Run(ctx context.Context, path string) (res *models.RunResult, err error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	book, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	book.dryRun = r.Options.DryRun
	defer func() {
		err = multierr.Append(err, book.Close())
	}()

	session, err := r.OpenSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("close session: %w", cerr))
		}
	}()

	proc := &Processor{
		Book:     book,
		Fetcher:  session,
		Recorder: r.Recorder,
		Options:  r.Options,
		Logger:   log,
	}

	res = &models.RunResult{BookName: filepath.Base(path)}
	for _, sheet := range book.SheetNames() {
		if !r.Options.ShouldProcess(sheet) {
			log.Debug("Skipping unselected sheet", zap.String("sheet", sheet))
			continue
		}

		log.Info("Processing sheet", zap.String("sheet", sheet))
		sheetRes, perr := proc.ProcessSheet(ctx, sheet)
		switch {
		case perr == nil:
			res.Sheets = append(res.Sheets, sheetRes)
			log.Debug("Sheet done",
				zap.String("sheet", sheet),
				zap.Int("processed", sheetRes.Processed),
				zap.Int("skipped", sheetRes.Skipped))
		case IsStructural(perr):
			res.SkippedSheets = append(res.SkippedSheets, sheet)
			log.Warn("Skipping sheet", zap.String("sheet", sheet), zap.Error(perr))
			continue
		default:
			return res, perr
		}

		if err := book.Save(); err != nil {
			return res, err
		}
	}

	return res, nil
}
