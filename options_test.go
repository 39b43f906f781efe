package hanfish

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseOptions(t *testing.T) {
	cases := []struct {
		name     string
		yaml     string
		text     string
		expected string
	}{
		{
			name:     "empty document keeps defaults",
			yaml:     "",
			text:     "삼성전자",
			expected: "삼성/N:1:1:0:2:N;삼성전자/EOJ:0:2:0:4:EOJ;전자/N:1:1:2:4:N;",
		},
		{
			name:     "decompound",
			yaml:     "decompound: false\n",
			text:     "삼성전자",
			expected: "삼성전자/N:1:1:0:4:N;",
		},
		{
			name:     "deinflect",
			yaml:     "deinflect: false\n",
			text:     "슬픈",
			expected: "슬픈/V+E:1:1:0:2:V+E;",
		},
		{
			name:     "user words",
			yaml:     "user_words:\n  - 버카충\n",
			text:     "버카충",
			expected: "버카충/N:1:1:0:3:N;",
		},
		{
			name:     "index poses",
			yaml:     "index_poses: [N]\nindex_eojeol: false\n",
			text:     "꽃이피다",
			expected: "꽃/N:1:1:0:1:N;",
		},
		{
			name:     "unknown length and cache",
			yaml:     "max_unk_length: 8\ncache_size: 0\n",
			text:     "버카충",
			expected: "버카충/UNK:1:1:0:3:UNK;",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions([]byte(tt.yaml))
			if err != nil {
				t.Fatal(err)
			}
			tokenizer, err := New(opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tokenizer.Tokenize(tt.text).String(), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestParseOptionsError(t *testing.T) {
	for _, doc := range []string{"decompund: true\n", "cache_size: many\n", "index_poses: N: V\n"} {
		if _, err := ParseOptions([]byte(doc)); err == nil {
			t.Errorf("ParseOptions(%q) succeeded, want an error", doc)
		}
	}

	opts, err := ParseOptions([]byte("index_poses: [N, NOUN]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(opts...); !errors.Is(err, ErrInvalidIndexPos) {
		t.Errorf("New() error = %v, want ErrInvalidIndexPos", err)
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanfish.yaml")
	if err := os.WriteFile(path, []byte("decompound: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	tokenizer, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	if got := tokenizer.Tokenize("삼성전자").String(); got != "삼성전자/N:1:1:0:4:N;" {
		t.Errorf("Tokenize() = %s", got)
	}

	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	if _, err := New(WithLogger(zap.New(core)), WithUserWords("버카충"), WithCacheSize(16)); err != nil {
		t.Fatal(err)
	}
	entries := logs.FilterMessage("tokenizer ready").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["user_words"] != int64(1) || fields["cache_size"] != int64(16) {
		t.Errorf("unexpected fields %v", fields)
	}
}
