package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/shinji-kodama/renamer/internal/browse"
	"github.com/shinji-kodama/renamer/internal/config"
	"github.com/shinji-kodama/renamer/internal/fsutil"
	"github.com/shinji-kodama/renamer/internal/match"
	"github.com/shinji-kodama/renamer/internal/model"
	"github.com/shinji-kodama/renamer/internal/skip"
)

var (
	// ErrInvalidArgument marks failures caused by the caller's input:
	// missing or equal from/to, or a pattern that does not compile.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a root directory that does not exist or is not a
	// directory.
	ErrNotFound = errors.New("directory not found")
)

// Reporter receives the message stream of a run.
type Reporter interface {
	// Report shows a single message.
	Report(model.Message)

	// Clear discards previously shown messages.
	Clear()
}

// ConfirmFunc is shown the run preview and returns true to abort.
type ConfirmFunc func(preview model.Message) (abort bool)

// Env bundles the collaborators of a run. Only Reporter is required.
type Env struct {
	// Reporter receives every message of the run.
	Reporter Reporter

	// Confirm gates the run before any mutation; nil proceeds without asking.
	Confirm ConfirmFunc

	// FS is the filesystem to operate on; nil means the host filesystem.
	FS fsutil.FileSystem

	// Opener opens the root directory when OpenDirectoryAfter is set; nil
	// means the platform file browser.
	Opener browse.Opener

	// Logger receives debug diagnostics; nil discards them.
	Logger *log.Logger
}

// Summary describes the outcome of a run.
type Summary struct {
	// Occurrences counts content replacements plus successful file and
	// directory renames.
	Occurrences int `json:"occurrences"`

	// Directories counts the directories that were walked.
	Directories int `json:"directories"`

	// Files counts the files that were processed without a read or write
	// error.
	Files int `json:"files"`

	// Aborted is true when the confirmation gate declined the run.
	Aborted bool `json:"aborted"`
}

// job holds the state of a single Run call and is discarded afterwards.
type job struct {
	from, to string
	root     string
	cfg      config.Configuration
	env      Env

	matcher *match.Matcher
	filter  *skip.Filter

	// directories lists walked directories in discovery order, each with
	// the listing read while walking it.
	directories []walkedDir

	// pending lists directories whose name needs changing, in discovery
	// order (parents before children). Renamed in reverse.
	pending []string

	summary Summary
}

// walkedDir is a discovered directory and its entries.
type walkedDir struct {
	path    string
	entries []os.DirEntry
}

// Run replaces from with to across the tree rooted at rootDirectory.
//
// The returned error is non-nil only for precondition failures, which are
// marked with ErrInvalidArgument or ErrNotFound. Per-item failures are
// reported as Error messages and do not fail the run.
func Run(from, to, rootDirectory string, cfg config.Configuration, env Env) (Summary, error) {
	j, err := newJob(from, to, rootDirectory, cfg, env)
	if err != nil {
		return Summary{}, err
	}

	preview := model.Info("Changing everything from '%s' to '%s' inside %s", from, to, j.root).
		WithBlock("Configuration\n=============\n" + cfg.String()).
		WithBlock("Proceed?")

	if j.env.Confirm != nil && j.env.Confirm(preview) {
		j.env.Logger.Debug("run cancelled at confirmation", "root", j.root)
		return Summary{Aborted: true}, nil
	}

	j.env.Reporter.Clear()
	j.report(model.Info("Skipping: ").WithBlock(j.filter.Rules().String()))
	j.report(model.BlankLine)

	j.discover(j.root)
	j.processDirectories()
	if cfg.RenameDirectories {
		j.renameDirectories()
	}

	j.report(model.BlankLine)
	j.report(model.Change("Changed %d occurrences of %s to %s inside %d directories and %d files!",
		j.summary.Occurrences, from, to, j.summary.Directories, j.summary.Files))

	if cfg.OpenDirectoryAfter {
		if err := j.env.Opener.Open(j.root); err != nil {
			j.report(model.Failure("Could not open the folder %s because of the following reason: %v...", j.root, err))
		}
	}

	return j.summary, nil
}

// newJob validates the arguments and fills in default collaborators.
func newJob(from, to, rootDirectory string, cfg config.Configuration, env Env) (*job, error) {
	if env.Reporter == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "a reporter is required")
	}
	if from == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "from must be specified")
	}
	if from == to {
		return nil, errors.Wrapf(ErrInvalidArgument, "from and to must differ (both are %q)", from)
	}

	if env.FS == nil {
		env.FS = fsutil.NewOS()
	}
	if env.Opener == nil {
		env.Opener = browse.System{}
	}
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}

	root, err := filepath.Abs(rootDirectory)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "resolve %s", rootDirectory), ErrInvalidArgument)
	}
	info, err := env.FS.Stat(root)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s is not a directory", rootDirectory), ErrNotFound)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrNotFound, "%s is not a directory", rootDirectory)
	}

	matcher, err := match.New(cfg.MatchCase, cfg.FullWord, cfg.FullWordRegex)
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidArgument)
	}
	filter, err := skip.FromRules(cfg.Skip)
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidArgument)
	}

	return &job{
		from:    from,
		to:      to,
		root:    root,
		cfg:     cfg,
		env:     env,
		matcher: matcher,
		filter:  filter,
	}, nil
}

func (j *job) report(m model.Message) {
	j.env.Reporter.Report(m)
}

// discover walks dir and its subdirectories pre-order. Skipped directories
// prune their whole subtree. Symbolic links to directories are not followed.
// A directory that cannot be listed is reported once and not walked, but
// may still be renamed.
func (j *job) discover(dir string) {
	if j.filter.ShouldSkipDirectory(filepath.Base(dir)) {
		j.report(model.Skipping("Skipping the following directory: %s...", dir))
		return
	}

	// The root has no parent inside the walk and is never renamed.
	if dir != j.root && j.matcher.Count(filepath.Base(dir), j.from) > 0 {
		j.pending = append(j.pending, dir)
	}

	entries, err := j.env.FS.ReadDir(dir)
	if err != nil {
		j.report(model.Failure("Could not read the directory %s, reason: %v", dir, err))
		return
	}
	j.directories = append(j.directories, walkedDir{path: dir, entries: entries})
	j.env.Logger.Debug("discovered directory", "path", dir)

	for _, entry := range entries {
		if entry.IsDir() {
			j.discover(filepath.Join(dir, entry.Name()))
		}
	}
}

// processDirectories handles the files directly inside every discovered
// directory, in discovery order.
func (j *job) processDirectories() {
	for _, dir := range j.directories {
		j.summary.Directories++

		for _, entry := range dir.entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir.path, entry.Name())

			if !entry.Type().IsRegular() {
				j.report(model.Skipping("Skipping the following file: %s (not a regular file)...", path))
				continue
			}
			if !j.cfg.RenameWithinFileContent || j.filter.ShouldSkipFile(entry.Name()) {
				j.report(model.Skipping("Skipping the following file: %s...", path))
				continue
			}

			if j.processFile(path) {
				j.summary.Files++
			}
		}
	}
}

// processFile rewrites the content of path and then renames it. It returns
// false when the content could not be read or written; a failed rename is
// reported but still counts the file as processed.
func (j *job) processFile(path string) bool {
	j.report(model.Change("Changing occurrences in %s...", path))

	info, err := j.env.FS.Stat(path)
	if err != nil {
		j.report(model.Failure("Could not parse the file %s because of the following reason: %v...", path, err))
		return false
	}
	data, err := j.env.FS.ReadFile(path)
	if err != nil {
		j.report(model.Failure("Could not parse the file %s because of the following reason: %v...", path, err))
		return false
	}

	occurrences := 0

	if j.cfg.SkipBinaryFiles && !fsutil.IsText(data) {
		j.report(model.Skipping("Leaving the binary content of %s untouched...", path))
	} else {
		content, found := j.matcher.Replace(string(data), j.from, j.to)
		if found > 0 {
			if err := j.env.FS.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
				j.report(model.Failure("Could not parse the file %s because of the following reason: %v...", path, err))
				return false
			}
		}
		occurrences += found
	}

	if j.cfg.RenameFiles && j.renameFile(path) {
		occurrences++
	}

	j.report(model.NewMessage(model.MessageChangeReport, fmt.Sprintf("%d occurrences changed!", occurrences), ""))
	j.summary.Occurrences += occurrences
	j.env.Logger.Debug("processed file", "path", path, "occurrences", occurrences)

	return true
}

// renameFile moves path to its new name if the name matches. It reports
// true only when a rename happened.
func (j *job) renameFile(path string) bool {
	name := filepath.Base(path)
	newName, changes := NewFileName(j.matcher, name, j.from, j.to, j.cfg.UseFileExtensionWhileRenaming)
	if changes == 0 || newName == name {
		return false
	}

	target, err := j.move(path, newName)
	if err != nil {
		j.report(model.Failure("Could not move the file %s, reason: %v", path, err))
		return false
	}
	j.env.Logger.Debug("renamed file", "from", path, "to", target)
	return true
}

// renameDirectories renames pending directories deepest first.
func (j *job) renameDirectories() {
	for i := len(j.pending) - 1; i >= 0; i-- {
		dir := j.pending[i]
		newName, _ := j.matcher.Replace(filepath.Base(dir), j.from, j.to)

		target, err := j.move(dir, newName)
		if err != nil {
			j.report(model.Failure("Could not move the directory %s, reason: %v", dir, err))
			continue
		}
		j.summary.Occurrences++
		j.env.Logger.Debug("renamed directory", "from", dir, "to", target)
	}
}

// move renames oldPath to newName within the same parent directory and
// returns the new path. It never overwrites: a target that already exists
// is an error unless it is the source itself (a case-only rename on a
// case-insensitive filesystem).
func (j *job) move(oldPath, newName string) (string, error) {
	if newName == "" || newName == "." || newName == ".." ||
		strings.ContainsRune(newName, '/') || strings.ContainsRune(newName, filepath.Separator) {
		return "", errors.Newf("invalid new name %q", newName)
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newName)

	if existing, err := j.env.FS.Lstat(newPath); err == nil {
		source, err := j.env.FS.Lstat(oldPath)
		if err != nil || !os.SameFile(source, existing) {
			return "", errors.Newf("%s already exists", newPath)
		}
	}

	if err := j.env.FS.Rename(oldPath, newPath); err != nil {
		return "", err
	}
	return newPath, nil
}

// NewFileName computes the renamed form of a file name and the number of
// occurrences in it.
//
// With useExtension the whole name is matched. Otherwise only the part
// before the extension is matched and the extension is re-attached; a dot
// separator is inserted only if neither piece already carries one.
func NewFileName(m *match.Matcher, name, from, to string, useExtension bool) (string, int) {
	base, ext := name, ""
	if !useExtension {
		ext = filepath.Ext(name)
		base = strings.TrimSuffix(name, ext)
	}

	renamed, changes := m.Replace(base, from, to)
	if changes == 0 {
		return name, 0
	}

	sep := ""
	if ext != "" && !strings.Contains(renamed, ".") && !strings.Contains(ext, ".") {
		sep = "."
	}
	return renamed + sep + ext, changes
}
