package hanfish

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kotaroooo0/hanfish/dictionary"
	"github.com/kotaroooo0/hanfish/lattice"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrInvalidIndexPos = errors.New("invalid index pos")

// DefaultIndexPoses are the classes emitted unless configured otherwise.
// Particles, endings, affixes and symbols are left out.
var DefaultIndexPoses = []string{"N", "V", "M", "I", "XR", "SL", "SH", "SN", "UNK", "EOJ"}

const DefaultCacheSize = 4096

type options struct {
	decompound       bool
	deinflect        bool
	userWords        []string
	indexPoses       []string
	indexEojeol      bool
	maxUnknownLength int
	cacheSize        int
	logger           *zap.Logger
	storage          UserWordStorage
}

func defaultOptions() options {
	return options{
		decompound:       true,
		deinflect:        true,
		indexPoses:       DefaultIndexPoses,
		indexEojeol:      true,
		maxUnknownLength: lattice.DefaultMaxUnknownLength,
		cacheSize:        DefaultCacheSize,
		logger:           zap.NewNop(),
	}
}

type Option func(*options)

// WithDecompound emits the parts of compound nouns instead of the compound.
func WithDecompound(b bool) Option {
	return func(o *options) {
		o.decompound = b
	}
}

// WithDeinflect emits the stem of inflected words instead of the surface.
func WithDeinflect(b bool) Option {
	return func(o *options) {
		o.deinflect = b
	}
}

// WithUserWords adds words in the surface[/TAG][,cost] syntax. A surface
// cannot contain '+', '/' or ',' and New fails on such words.
func WithUserWords(words ...string) Option {
	return func(o *options) {
		o.userWords = append(o.userWords, words...)
	}
}

// WithIndexPoses sets the class labels that are emitted, e.g. "N" or "EOJ".
func WithIndexPoses(poses ...string) Option {
	return func(o *options) {
		o.indexPoses = poses
	}
}

// WithIndexEojeol toggles the eojeol wrapper tokens.
func WithIndexEojeol(b bool) Option {
	return func(o *options) {
		o.indexEojeol = b
	}
}

func WithMaxUnknownLength(n int) Option {
	return func(o *options) {
		o.maxUnknownLength = n
	}
}

// WithCacheSize sets the number of analyzed chunks kept in memory.
// 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithUserWordStorage loads additional user words from s when the
// tokenizer is built.
func WithUserWordStorage(s UserWordStorage) Option {
	return func(o *options) {
		o.storage = s
	}
}

func (o options) indexClasses() (map[dictionary.Class]bool, error) {
	classes := make(map[dictionary.Class]bool, len(o.indexPoses))
	for _, p := range o.indexPoses {
		c, err := dictionary.ParseClass(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIndexPos, p)
		}
		classes[c] = true
	}
	return classes, nil
}

// Config is the YAML form of the options. Omitted keys keep their defaults.
type Config struct {
	Decompound       *bool     `yaml:"decompound"`
	Deinflect        *bool     `yaml:"deinflect"`
	UserWords        []string  `yaml:"user_words"`
	IndexPoses       *[]string `yaml:"index_poses"`
	IndexEojeol      *bool     `yaml:"index_eojeol"`
	MaxUnknownLength *int      `yaml:"max_unk_length"`
	CacheSize        *int      `yaml:"cache_size"`
}

func (c Config) Options() []Option {
	var opts []Option
	if c.Decompound != nil {
		opts = append(opts, WithDecompound(*c.Decompound))
	}
	if c.Deinflect != nil {
		opts = append(opts, WithDeinflect(*c.Deinflect))
	}
	if len(c.UserWords) > 0 {
		opts = append(opts, WithUserWords(c.UserWords...))
	}
	if c.IndexPoses != nil {
		opts = append(opts, WithIndexPoses(*c.IndexPoses...))
	}
	if c.IndexEojeol != nil {
		opts = append(opts, WithIndexEojeol(*c.IndexEojeol))
	}
	if c.MaxUnknownLength != nil {
		opts = append(opts, WithMaxUnknownLength(*c.MaxUnknownLength))
	}
	if c.CacheSize != nil {
		opts = append(opts, WithCacheSize(*c.CacheSize))
	}
	return opts
}

// ParseOptions reads options from a YAML document. Unknown keys are errors.
func ParseOptions(b []byte) ([]Option, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	return c.Options(), nil
}

func LoadOptions(path string) ([]Option, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOptions(b)
}
