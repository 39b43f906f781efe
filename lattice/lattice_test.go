package lattice

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/kotaroooo0/hanfish/dictionary"
)

func bestPath(la *Lattice, text string) []string {
	la.Build(text)
	la.Forward()
	var path []string
	for _, n := range la.Backward() {
		if n.Class == Space {
			path = append(path, "SPACE")
			continue
		}
		path = append(path, n.Morpheme.String())
	}
	return path
}

func TestBestPath(t *testing.T) {
	dic, err := dictionary.Default()
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		text     string
		expected []string
	}{
		{
			text:     "삼성전자는",
			expected: []string{"삼성전자/NNP", "는/JX"},
		},
		{
			text:     "아버지가방에들어가신다",
			expected: []string{"아버지/NNG", "가/JKS", "방/NNG", "에/JKB", "들어가/VV", "신다/EP+EF"},
		},
		{
			text:     "직무를 행한다.",
			expected: []string{"직무/NNG", "를/JKO", "SPACE", "행한다/VV+EF", "./SF"},
		},
		{
			text:     "55.32ms",
			expected: []string{"55/SN", "./SF", "32/SN", "ms/SL"},
		},
		{
			text:     "버카충",
			expected: []string{"버카충/UNKNOWN"},
		},
		{
			text:     "\xff꽃",
			expected: []string{"�/UNKNOWN", "꽃/NNG"},
		},
		{
			text:     " \t\n",
			expected: nil,
		},
		{
			text:     "",
			expected: nil,
		},
	}

	la := New(dic, 0)
	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(bestPath(la, tt.text), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestBestPathCoversText(t *testing.T) {
	dic, err := dictionary.Default()
	if err != nil {
		t.Fatal(err)
	}
	la := New(dic, 0)
	for _, text := range []string{"무궁화꽃이피었습니다.", "LG전자는 2024년에", "유영호와이용운"} {
		la.Build(text)
		la.Forward()
		pos := 0
		for _, n := range la.Backward() {
			if n.Start != pos || n.End <= n.Start {
				t.Fatalf("%q: node %+v does not continue at %d", text, n, pos)
			}
			pos = n.End
		}
		if pos != len([]rune(text)) {
			t.Errorf("%q: path ends at %d, want %d", text, pos, len([]rune(text)))
		}
	}
}

func TestMaxUnknownLength(t *testing.T) {
	dic, err := dictionary.Default()
	if err != nil {
		t.Fatal(err)
	}
	la := New(dic, 2)
	la.Build("버카충")
	for _, n := range la.Nodes() {
		if n.Class == Unknown && n.End-n.Start > 2 {
			t.Errorf("unknown node %q is longer than 2", n.Surface(la.Text()))
		}
	}
	if diff := cmp.Diff(bestPath(la, "버카충"), []string{"버/UNKNOWN", "카충/UNKNOWN"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestForwardPrefersFewerNodes(t *testing.T) {
	// Mock
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockDictionary := NewMockDictionary(mockCtrl)

	// Given
	ga := &dictionary.Morpheme{Surface: "가", LeftID: int(dictionary.NNG), RightID: int(dictionary.NNG), Cost: 100, Tags: []dictionary.Tag{dictionary.NNG}}
	gana := &dictionary.Morpheme{Surface: "가나", LeftID: int(dictionary.NNG), RightID: int(dictionary.NNG), Cost: 200, Tags: []dictionary.Tag{dictionary.NNG}}
	na := &dictionary.Morpheme{Surface: "나", LeftID: int(dictionary.NNG), RightID: int(dictionary.NNG), Cost: 100, Tags: []dictionary.Tag{dictionary.NNG}}
	mockDictionary.EXPECT().Lookup("가나").Return([]dictionary.Candidate{
		{Morpheme: ga, Length: 1},
		{Morpheme: gana, Length: 2},
	})
	mockDictionary.EXPECT().Lookup("나").Return([]dictionary.Candidate{{Morpheme: na, Length: 1}})
	mockDictionary.EXPECT().ConnectionCost(gomock.Any(), gomock.Any()).Return(0).AnyTimes()

	// When
	actual := bestPath(New(mockDictionary, 0), "가나")

	// Then
	if diff := cmp.Diff(actual, []string{"가나/NNG"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestUnknownRuns(t *testing.T) {
	// Mock
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockDictionary := NewMockDictionary(mockCtrl)

	// Given
	mockDictionary.EXPECT().Lookup(gomock.Any()).Return(nil).AnyTimes()
	mockDictionary.EXPECT().ConnectionCost(gomock.Any(), gomock.Any()).Return(0).AnyTimes()

	// When
	actual := bestPath(New(mockDictionary, 0), "abc123漢字!?")

	// Then
	expected := []string{"abc/SL", "123/SN", "漢字/SH", "!?/SY"}
	if diff := cmp.Diff(actual, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestDump(t *testing.T) {
	dic, err := dictionary.Default()
	if err != nil {
		t.Fatal(err)
	}
	la := New(dic, 0)
	la.Build("삼성전자")
	la.Forward()

	var buf bytes.Buffer
	if err := la.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "삼성전자/NNP") {
		t.Errorf("Dump() = %s", buf.String())
	}
}
