package dictionary

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadRecords parses a lexicon in the layout
//
//	surface,cost,tags[,type[,expression]]
//
// e.g. "행한다,1500,VV+EF,Inflect,행하/VV+ㄴ다/EF". Lines starting with '#'
// are comments.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records []Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(fields []string) (Record, error) {
	if len(fields) < 3 || len(fields) > 5 {
		return Record{}, fmt.Errorf("want 3 to 5 fields, got %d", len(fields))
	}
	cost, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Record{}, fmt.Errorf("cost: %w", err)
	}
	tags, err := parseTags(fields[2])
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		Surface: fields[0],
		Cost:    cost,
		Tags:    tags,
	}
	if len(fields) > 3 {
		if rec.Type, err = parseType(fields[3]); err != nil {
			return Record{}, err
		}
	}
	if len(fields) > 4 {
		if rec.Expression, err = parseExpression(fields[4]); err != nil {
			return Record{}, err
		}
	}
	return rec, nil
}

func parseTags(s string) ([]Tag, error) {
	names := strings.Split(s, "+")
	tags := make([]Tag, len(names))
	for i, name := range names {
		t, err := ParseTag(name)
		if err != nil {
			return nil, err
		}
		tags[i] = t
	}
	return tags, nil
}

// parseExpression parses "삼성/NNP+전자/NNG". "*" means no expression.
func parseExpression(s string) ([]Part, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return nil, nil
	}
	items := strings.Split(s, "+")
	parts := make([]Part, len(items))
	for i, item := range items {
		slash := strings.LastIndex(item, "/")
		if slash <= 0 {
			return nil, fmt.Errorf("expression part %q: want surface/TAG", item)
		}
		t, err := ParseTag(item[slash+1:])
		if err != nil {
			return nil, err
		}
		parts[i] = Part{Surface: item[:slash], Tag: t}
	}
	return parts, nil
}

// ReadMatrix parses connection costs given as "left right cost" lines.
// A context is a tag name, a class label (all tags of the class), BOS, or
// "*" (every context). Later lines override earlier ones; transitions never
// mentioned cost DefaultConnectionPenalty.
func ReadMatrix(r io.Reader) (*Matrix, error) {
	m := NewMatrix()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 fields, got %d", line, len(fields))
		}
		lefts, err := contexts(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rights, err := contexts(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cost, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: cost: %w", line, err)
		}
		for _, l := range lefts {
			for _, r := range rights {
				m.Set(int(l), int(r), cost)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func contexts(s string) ([]Tag, error) {
	switch s {
	case "*":
		all := make([]Tag, NumTags)
		for i := range all {
			all[i] = Tag(i)
		}
		return all, nil
	case "BOS", "EOS":
		return []Tag{BOS}, nil
	}
	if c, err := ParseClass(s); err == nil {
		return c.Tags(), nil
	}
	t, err := ParseTag(s)
	if err != nil {
		return nil, err
	}
	return []Tag{t}, nil
}
