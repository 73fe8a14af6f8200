package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"xlc/internal/diag"
	"xlc/internal/source"
)

// SourceExt: расширение исходников X.
const SourceExt = ".x"

// ParseDirResult: результат одного файла из ParseDir.
type ParseDirResult struct {
	Path string
	*ParseResult
}

// ListSources walks dir recursively and returns the *.x files sorted.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && d.Type().IsRegular() && filepath.Ext(path) == SourceExt {
			files = append(files, path)
		}
		return err
	})
	slices.Sort(files)
	return files, err
}

// ParseDir разбирает все *.x под dir не более чем в opts.Jobs горутин
// (GOMAXPROCS по умолчанию). Результаты в порядке ListSources.
// Ошибка только при отмене ctx или нечитаемом каталоге; ошибки
// отдельных файлов лежат в их Bag и Err.
func ParseDir(ctx context.Context, dir string, opts Options) ([]ParseDirResult, error) {
	files, err := ListSources(dir)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// каждая горутина пишет только в свой индекс
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			started := time.Now()
			r := parseOne(gctx, path, opts)
			results[i] = r

			ev := Event{File: path, Stage: StageParse, Status: StatusDone, Err: r.Err, Elapsed: time.Since(started)}
			if r.Err != nil || r.Bag.HasErrors() {
				ev.Status = StatusError
			}
			emit(opts.Progress, ev)
			return nil
		})
	}
	return results, g.Wait()
}

// parseOne turns a load failure into a result carrying IO4001.
func parseOne(ctx context.Context, path string, opts Options) ParseDirResult {
	res, err := Parse(ctx, path, opts)
	if err != nil {
		bag := diag.NewBag(opts.maxDiagnostics())
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
		res = &ParseResult{File: source.NewVirtual(path, nil), Bag: bag, Err: err}
	}
	return ParseDirResult{Path: path, ParseResult: res}
}
