package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTag = errors.New("invalid part-of-speech tag")

// Tag is a part-of-speech tag of the Sejong tag set used by mecab-ko-dic.
// The numeric value of a tag doubles as its connection context id.
type Tag uint8

const (
	BOS Tag = iota // beginning/end of sentence, also used for whitespace

	NNG  // 일반 명사
	NNP  // 고유 명사
	NNB  // 의존 명사
	NNBC // 단위를 나타내는 명사
	NR   // 수사
	NP   // 대명사

	VV  // 동사
	VA  // 형용사
	VX  // 보조 용언
	VCP // 긍정 지정사
	VCN // 부정 지정사

	MM  // 관형사
	MAG // 일반 부사
	MAJ // 접속 부사
	IC  // 감탄사

	JKS // 주격 조사
	JKC // 보격 조사
	JKG // 관형격 조사
	JKO // 목적격 조사
	JKB // 부사격 조사
	JKV // 호격 조사
	JKQ // 인용격 조사
	JX  // 보조사
	JC  // 접속 조사

	EP  // 선어말 어미
	EF  // 종결 어미
	EC  // 연결 어미
	ETN // 명사형 전성 어미
	ETM // 관형형 전성 어미

	XPN // 체언 접두사
	XSN // 명사 파생 접미사
	XSV // 동사 파생 접미사
	XSA // 형용사 파생 접미사
	XR  // 어근

	SF  // 마침표, 물음표, 느낌표
	SE  // 줄임표
	SSO // 여는 괄호
	SSC // 닫는 괄호
	SC  // 구분자
	SY  // 기타 기호
	SL  // 외국어
	SH  // 한자
	SN  // 숫자

	UNKNOWN

	NumTags = int(UNKNOWN) + 1
)

var tagNames = [NumTags]string{
	BOS: "BOS",
	NNG: "NNG", NNP: "NNP", NNB: "NNB", NNBC: "NNBC", NR: "NR", NP: "NP",
	VV: "VV", VA: "VA", VX: "VX", VCP: "VCP", VCN: "VCN",
	MM: "MM", MAG: "MAG", MAJ: "MAJ", IC: "IC",
	JKS: "JKS", JKC: "JKC", JKG: "JKG", JKO: "JKO", JKB: "JKB", JKV: "JKV", JKQ: "JKQ", JX: "JX", JC: "JC",
	EP: "EP", EF: "EF", EC: "EC", ETN: "ETN", ETM: "ETM",
	XPN: "XPN", XSN: "XSN", XSV: "XSV", XSA: "XSA", XR: "XR",
	SF: "SF", SE: "SE", SSO: "SSO", SSC: "SSC", SC: "SC", SY: "SY", SL: "SL", SH: "SH", SN: "SN",
	UNKNOWN: "UNKNOWN",
}

func (t Tag) String() string {
	if int(t) < NumTags {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// Class returns the coarse category the tag belongs to.
func (t Tag) Class() Class {
	switch t {
	case NNG, NNP, NNB, NNBC, NR, NP:
		return Noun
	case VV, VA, VX, VCP, VCN:
		return Verb
	case MM, MAG, MAJ:
		return Modifier
	case IC:
		return Interjection
	case JKS, JKC, JKG, JKO, JKB, JKV, JKQ, JX, JC:
		return Particle
	case EP:
		return PreEnding
	case EF, EC, ETN, ETM:
		return Ending
	case XPN:
		return Prefix
	case XSN, XSV, XSA:
		return Suffix
	case XR:
		return Root
	case SF, SE, SSO, SSC, SC, SY:
		return Symbol
	case SL:
		return Foreign
	case SH:
		return Hanja
	case SN:
		return Number
	}
	return Unknown
}

// ParseTag parses a fine tag name. Class labels are accepted as aliases for
// the most common tag of the class, so "N" means NNG.
func ParseTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	for i, name := range tagNames {
		if i != int(BOS) && name == s {
			return Tag(i), nil
		}
	}
	if c, err := ParseClass(s); err == nil {
		if t, ok := classDefaultTags[c]; ok {
			return t, nil
		}
	}
	return UNKNOWN, fmt.Errorf("%w: %q", ErrInvalidTag, s)
}

// Class is the coarse part-of-speech category reported on tokens.
type Class uint8

const (
	Unknown Class = iota
	Noun
	Verb
	Modifier
	Interjection
	Particle
	Ending
	PreEnding
	Prefix
	Suffix
	Root
	Symbol
	Foreign
	Hanja
	Number
	Eojeol

	numClasses
)

var classLabels = [numClasses]string{
	Unknown:      "UNK",
	Noun:         "N",
	Verb:         "V",
	Modifier:     "M",
	Interjection: "I",
	Particle:     "J",
	Ending:       "E",
	PreEnding:    "EP",
	Prefix:       "XP",
	Suffix:       "XS",
	Root:         "XR",
	Symbol:       "SY",
	Foreign:      "SL",
	Hanja:        "SH",
	Number:       "SN",
	Eojeol:       "EOJ",
}

var classDefaultTags = map[Class]Tag{
	Noun:         NNG,
	Verb:         VV,
	Modifier:     MAG,
	Interjection: IC,
	Root:         XR,
	Foreign:      SL,
	Hanja:        SH,
	Number:       SN,
	Unknown:      UNKNOWN,
}

// String returns the label used on tokens, e.g. "N" or "EOJ".
func (c Class) String() string {
	if c < numClasses {
		return classLabels[c]
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Tags returns every tag of the class in tag order.
func (c Class) Tags() []Tag {
	var tags []Tag
	for t := Tag(1); int(t) < NumTags; t++ {
		if t.Class() == c {
			tags = append(tags, t)
		}
	}
	return tags
}

// ParseClass parses a class label such as "N", "SL" or "EOJ".
func ParseClass(s string) (Class, error) {
	s = strings.TrimSpace(s)
	for i, label := range classLabels {
		if label == s {
			return Class(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidTag, s)
}

// Classes returns all classes, Eojeol included.
func Classes() []Class {
	cs := make([]Class, numClasses)
	for i := range cs {
		cs[i] = Class(i)
	}
	return cs
}
