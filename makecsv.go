// Package makecsv builds the CSV manifest that pairs each utterance's
// acoustic features with its token id sequence for model training.
package makecsv

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ieee0824/makecsv-go/corpus"
	"github.com/ieee0824/makecsv-go/feature"
	"github.com/ieee0824/makecsv-go/internal/progress"
	"github.com/ieee0824/makecsv-go/lexicon"
)

// Config holds the run configuration. It is fixed once New returns.
type Config struct {
	FeatPath   string // feats.scp
	FramesPath string // utt2num_frames
	DictPath   string
	TextPath   string
	NLSymsPath string // optional

	Unit               Unit
	RemoveWordBoundary bool // char unit: put Space between words
	IsTest             bool // skip tokenization, emit empty ids with y_len 1
	Unk                string
	Space              string
}

// DefaultConfig returns the configuration with default special tokens.
func DefaultConfig() Config {
	return Config{
		Unk:   "<unk>",
		Space: "<space>",
	}
}

// Validate checks that required inputs are set and the unit is known.
func (c Config) Validate() error {
	for _, in := range []struct{ name, path string }{
		{"feat", c.FeatPath},
		{"utt2num_frames", c.FramesPath},
		{"dict", c.DictPath},
		{"text", c.TextPath},
	} {
		if in.path == "" {
			return fmt.Errorf("%w: %s", ErrMissingInput, in.name)
		}
	}
	return c.validateUnit()
}

func (c Config) validateUnit() error {
	if c.Unit == "" && c.IsTest {
		return nil
	}
	_, err := ParseUnit(string(c.Unit))
	return err
}

// Option configures a Builder.
type Option func(*Builder)

// WithUnit sets the token unit.
func WithUnit(u Unit) Option {
	return func(b *Builder) { b.cfg.Unit = u }
}

// WithRemoveWordBoundary inserts the space token between words in char mode.
func WithRemoveWordBoundary(enabled bool) Option {
	return func(b *Builder) { b.cfg.RemoveWordBoundary = enabled }
}

// WithTest marks the data set as a test set.
func WithTest(isTest bool) Option {
	return func(b *Builder) { b.cfg.IsTest = isTest }
}

// WithUnk sets the token substituted for out-of-vocabulary words.
func WithUnk(token string) Option {
	return func(b *Builder) { b.cfg.Unk = token }
}

// WithSpace sets the word boundary token.
func WithSpace(token string) Option {
	return func(b *Builder) { b.cfg.Space = token }
}

// WithNLSyms sets the non-linguistic symbol file.
func WithNLSyms(path string) Option {
	return func(b *Builder) { b.cfg.NLSymsPath = path }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// WithProgress enables a progress line on w.
func WithProgress(w io.Writer) Option {
	return func(b *Builder) { b.progress = w }
}

// Builder joins the corpus tables and writes the manifest.
type Builder struct {
	cfg      Config
	logger   *slog.Logger
	progress io.Writer

	feats  corpus.Table
	frames corpus.FrameCounts
	dict   *lexicon.Dictionary
	nlsyms lexicon.SymbolSet

	xDim lazyDim
}

// Tables are the loaded inputs of a Builder.
type Tables struct {
	Feats  corpus.Table
	Frames corpus.FrameCounts
	Dict   *lexicon.Dictionary
	NLSyms lexicon.SymbolSet
}

// New loads the input tables and returns a Builder ready to convert textPath.
func New(featPath, framesPath, dictPath, textPath string, opts ...Option) (*Builder, error) {
	cfg := DefaultConfig()
	cfg.FeatPath = featPath
	cfg.FramesPath = framesPath
	cfg.DictPath = dictPath
	cfg.TextPath = textPath
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig is New with every setting given as a Config.
func NewFromConfig(cfg Config, opts ...Option) (*Builder, error) {
	b := newBuilder(cfg, opts)
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	var err error
	if b.nlsyms, err = lexicon.LoadSymbolsFile(b.cfg.NLSymsPath); err != nil {
		return nil, fmt.Errorf("load nlsyms: %w", err)
	}
	if len(b.nlsyms) > 0 {
		b.logger.Info("loaded non-linguistic symbols", "path", b.cfg.NLSymsPath, "symbols", len(b.nlsyms))
	}

	if b.feats, err = corpus.LoadTableFile(b.cfg.FeatPath); err != nil {
		return nil, fmt.Errorf("load feature index: %w", err)
	}
	b.logger.Info("loaded feature index", "path", b.cfg.FeatPath, "utterances", len(b.feats))

	if b.frames, err = corpus.LoadFrameCountsFile(b.cfg.FramesPath); err != nil {
		return nil, fmt.Errorf("load frame counts: %w", err)
	}
	b.logger.Info("loaded frame counts", "path", b.cfg.FramesPath, "utterances", len(b.frames))

	if b.dict, err = lexicon.LoadFile(b.cfg.DictPath); err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	b.logger.Info("loaded dictionary", "path", b.cfg.DictPath, "tokens", b.dict.Len())

	return b, nil
}

// NewFromTables creates a Builder from pre-loaded tables. Paths in cfg are
// not read; use BuildFrom to supply the transcript.
func NewFromTables(t Tables, cfg Config, opts ...Option) (*Builder, error) {
	b := newBuilder(cfg, opts)
	if err := b.cfg.validateUnit(); err != nil {
		return nil, err
	}
	if t.Feats == nil || t.Frames == nil || t.Dict == nil {
		return nil, fmt.Errorf("%w: tables", ErrMissingInput)
	}
	b.feats, b.frames, b.dict, b.nlsyms = t.Feats, t.Frames, t.Dict, t.NLSyms
	return b, nil
}

func newBuilder(cfg Config, opts []Option) *Builder {
	b := &Builder{cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Config returns a copy of the builder's configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// Build converts the configured transcript file and writes the manifest to w.
// It returns the number of data rows written.
func (b *Builder) Build(w io.Writer) (int, error) {
	if b.cfg.TextPath == "" {
		return 0, fmt.Errorf("%w: text", ErrMissingInput)
	}

	total := 0
	if b.progress != nil {
		f, err := corpus.Open(b.cfg.TextPath)
		if err != nil {
			return 0, fmt.Errorf("open transcript: %w", err)
		}
		total, err = corpus.CountLines(f)
		f.Close()
		if err != nil {
			return 0, fmt.Errorf("count transcript lines: %w", err)
		}
	}

	f, err := corpus.Open(b.cfg.TextPath)
	if err != nil {
		return 0, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return b.build(f, w, total)
}

// BuildFrom reads transcript lines from r and writes the manifest to w.
func (b *Builder) BuildFrom(r io.Reader, w io.Writer) (int, error) {
	return b.build(r, w, 0)
}

func (b *Builder) build(r io.Reader, w io.Writer, total int) (n int, err error) {
	rw := NewRowWriter(w)
	defer func() {
		if ferr := rw.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()
	if err := rw.WriteHeader(); err != nil {
		return 0, err
	}

	var bar *progress.Counter
	if b.progress != nil {
		bar = progress.New(b.progress, "Utterances", total)
		defer bar.Finish()
	}

	tr := corpus.NewTextReader(r)
	for tr.Next() {
		row, err := b.row(tr.Utterance(), rw.Rows())
		if err != nil {
			return rw.Rows(), fmt.Errorf("transcript line %d: %w", tr.Line(), err)
		}
		if err := rw.Write(row); err != nil {
			return rw.Rows(), err
		}
		bar.Set(tr.Line())
	}
	if err := tr.Err(); err != nil {
		return rw.Rows(), fmt.Errorf("read transcript: %w", err)
	}
	bar.Set(tr.Line())
	bar.Finish()

	b.logger.Info("wrote manifest", "rows", rw.Rows())
	return rw.Rows(), nil
}

// row builds the manifest row for one utterance.
func (b *Builder) row(u corpus.Utterance, index int) (Row, error) {
	featPath, ok := b.feats[u.ID]
	if !ok {
		return Row{}, fmt.Errorf("%s: %w: feature index", u.ID, ErrUnknownUtterance)
	}
	xLen, ok := b.frames[u.ID]
	if !ok {
		return Row{}, fmt.Errorf("%s: %w: frame counts", u.ID, ErrUnknownUtterance)
	}

	ref := feature.ParseRef(featPath)
	if !ref.Exists() {
		return Row{}, fmt.Errorf("%s: %w: %s", u.ID, ErrMissingFeature, featPath)
	}

	r := Row{
		Index:    index,
		UttID:    u.ID,
		FeatPath: featPath,
		XLen:     xLen,
		Text:     u.Text(),
	}

	if b.cfg.IsTest {
		// no ids for test sets; y_len is a placeholder
		r.YLen = 1
	} else {
		ids, err := b.tokenIDs(u)
		if err != nil {
			return Row{}, err
		}
		r.TokenIDs = ids
		r.YLen = len(ids)
	}

	xDim, err := b.xDim.get(func() (int, error) {
		d, err := feature.ReadDim(ref)
		if err == nil {
			b.logger.Debug("resolved feature dimension", "x_dim", d, "from", featPath)
		}
		return d, err
	})
	if err != nil {
		return Row{}, err
	}
	r.XDim = xDim
	r.YDim = b.dict.Len()
	return r, nil
}

// lazyDim is the feature dimension, read from the first emitted utterance
// and assumed constant for the rest of the corpus.
type lazyDim struct {
	once sync.Once
	dim  int
	err  error
}

func (l *lazyDim) get(read func() (int, error)) (int, error) {
	l.once.Do(func() {
		l.dim, l.err = read()
	})
	return l.dim, l.err
}
