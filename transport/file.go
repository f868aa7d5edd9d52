package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/apstndb/flagbind/binding"
)

// DefaultDebounce is the quiet period FileSource waits for after a file
// event before reloading.
const DefaultDebounce = 100 * time.Millisecond

// LoadError reports a flag file that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("flag file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// FileSource reads a YAML (or JSON) mapping of flag names to scalar values:
//
//	spawn_z_offset: 150
//	quest_mode: ENDLESS
//	hidden_quests_csv: [q1, q2]   # lists are joined with ","
//	tick_interval: null           # absent, resets to the default
//
// Each load is diffed against the previous one. Changed and new keys become
// present updates; keys that became null or were removed become absent
// updates. Updates are applied in name order.
//
// A FileSource is not safe for concurrent use.
type FileSource struct {
	Fs   afero.Fs
	Path string

	// Watch makes Run reload the file on changes until ctx is done.
	// Watching uses the operating system's file notifications, so it only
	// sees changes to files on the OS filesystem.
	Watch    bool
	Debounce time.Duration

	// OnError handles load failures and rejected updates. The default logs
	// them and continues.
	OnError ErrorHandler
	Logger  binding.Logger

	snapshot map[string]*string
}

// NewFileSource returns a source for path on the OS filesystem.
func NewFileSource(path string) *FileSource {
	return &FileSource{Fs: afero.NewOsFs(), Path: path}
}

// Load reads the file once and applies the differences from the previous
// load. It returns a *LoadError when the file cannot be read or decoded,
// leaving the previous snapshot in place, and the joined update failures
// otherwise.
func (s *FileSource) Load(apply binding.UpdateFunc) error {
	next, err := s.read()
	if err != nil {
		return &LoadError{Path: s.Path, Err: err}
	}

	updates := diffSnapshots(s.snapshot, next)
	s.snapshot = next

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(updates)) {
		if err := apply(name, updates[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *FileSource) read() (map[string]*string, error) {
	data, err := afero.ReadFile(s.Fs, s.Path)
	if err != nil {
		return nil, err
	}

	// goccy/go-yaml accepts JSON as well as YAML.
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	result := make(map[string]*string, len(doc))
	for name, v := range doc {
		raw, err := rawValue(v)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", name, err)
		}
		result[name] = raw
	}
	return result, nil
}

// rawValue converts a decoded YAML value to a raw flag value.
func rawValue(v any) (*string, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case []any:
		elems := make([]string, 0, len(v))
		for _, e := range v {
			s, err := scalarString(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, s)
		}
		return lo.ToPtr(strings.Join(elems, ",")), nil
	default:
		s, err := scalarString(v)
		if err != nil {
			return nil, err
		}
		return &s, nil
	}
}

func scalarString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

// diffSnapshots returns the updates turning prev into next. A missing key and
// a null value are both absent.
func diffSnapshots(prev, next map[string]*string) map[string]*string {
	names := lo.Union(lo.Keys(prev), lo.Keys(next))
	return lo.SliceToMap(lo.Filter(names, func(name string, _ int) bool {
		return !equalRaw(prev[name], next[name])
	}), func(name string) (string, *string) {
		return name, next[name]
	})
}

func equalRaw(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Run loads the file once, and with Watch set keeps reloading it on change
// until ctx is done. The first load must be readable; later failures go
// through OnError.
func (s *FileSource) Run(ctx context.Context, apply binding.UpdateFunc) error {
	var logger binding.Logger = slog.Default()
	if s.Logger != nil {
		logger = s.Logger
	}

	initial := func() error {
		err := s.Load(apply)
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			return err
		}
		return handleError(s.OnError, logger, err, "path", s.Path)
	}

	if !s.Watch {
		return initial()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory so that editors replacing the file are noticed.
	target := filepath.Clean(s.Path)
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	if err := initial(); err != nil {
		return err
	}

	debounce := s.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	reload := make(chan struct{}, 1)
	var (
		mu     sync.Mutex
		timer  *time.Timer
		closed bool
	)
	defer func() {
		mu.Lock()
		closed = true
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target ||
				!event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				mu.Lock()
				defer mu.Unlock()
				if closed {
					return
				}
				select {
				case reload <- struct{}{}:
				default:
				}
			})
			mu.Unlock()
		case <-reload:
			logger.Debug("reloading flag file", "path", s.Path)
			if err := handleError(s.OnError, logger, s.Load(apply), "path", s.Path); err != nil {
				return err
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "path", s.Path, "err", err)
		}
	}
}
