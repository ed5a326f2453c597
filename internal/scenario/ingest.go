package scenario

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// ErrIngestion marks fatal script-loading failures: the source file is
// missing, or no supported encoding/dialect combination yields a usable
// header. Compilation aborts without writing a partial artifact.
var ErrIngestion = errors.New("ingestion error")

// Tabular column names of the external script schema.
const (
	colSceneID        = "scene_id"
	colSpeaker        = "person_name"
	colText           = "text"
	colEffect         = "effect"
	colBackground     = "background_image"
	colPortraitCenter = "center_standing_portrait_image"
	colPortraitLeft   = "left_standing_portrait_image"
	colPortraitRight  = "right_standing_portrait_image"
	colSound          = "sounds"
	colMusic          = "bgm"
)

// sniffSampleSize bounds how much of the decoded text the delimiter sniffer
// inspects.
const sniffSampleSize = 1024

type scriptEncoding struct {
	name    string
	decoder *encoding.Decoder
}

// candidateEncodings returns the ordered list of encodings tried during
// ingestion. UTF-8 goes first so the common case never round-trips through a
// transformer; cp932 is Microsoft's Shift JIS variant and shares a decoder.
func candidateEncodings() []scriptEncoding {
	return []scriptEncoding{
		{name: "utf-8"},
		{name: "utf-16", decoder: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()},
		{name: "utf-16-le", decoder: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()},
		{name: "utf-16-be", decoder: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()},
		{name: "shift-jis", decoder: japanese.ShiftJIS.NewDecoder()},
		{name: "cp932", decoder: japanese.ShiftJIS.NewDecoder()},
	}
}

// Load reads a delimited script file, trying each candidate encoding in order
// and sniffing the field delimiter from the header sample. The first
// combination whose header contains the scene_id column wins.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: script file not found: %s", ErrIngestion, path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrIngestion, path, err)
	}

	for _, enc := range candidateEncodings() {
		text, ok := decodeAs(enc, data)
		if !ok {
			continue
		}
		script, err := parseDelimited(text)
		if err != nil {
			continue
		}
		return script, nil
	}

	return nil, fmt.Errorf("%w: no supported encoding/dialect decodes %s", ErrIngestion, path)
}

// decodeAs converts raw bytes to text under the given encoding, rejecting the
// attempt when the result contains replacement runes. The x/text decoders
// substitute U+FFFD instead of failing, so its presence is the decode-error
// signal that moves ingestion to the next candidate.
func decodeAs(enc scriptEncoding, data []byte) (string, bool) {
	if enc.decoder == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return strings.TrimPrefix(string(data), "\ufeff"), true
	}
	decoded, err := enc.decoder.Bytes(data)
	if err != nil {
		return "", false
	}
	text := strings.TrimPrefix(string(decoded), "\ufeff")
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return text, true
}

// sniffDelimiter inspects the first line of a header sample and picks tab
// over comma only when tabs dominate. Comma is the fallback dialect.
func sniffDelimiter(text string) rune {
	sample := text
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	if i := strings.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}
	if strings.Count(sample, "\t") > strings.Count(sample, ",") {
		return '\t'
	}
	return ','
}

func parseDelimited(text string) (*Script, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("empty script")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns[colSceneID]; !ok {
		return nil, fmt.Errorf("header missing %s column", colSceneID)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return record[idx]
		}
		row := Row{
			SceneID:        strings.TrimSpace(field(colSceneID)),
			Speaker:        field(colSpeaker),
			Text:           field(colText),
			Effect:         field(colEffect),
			Background:     strings.TrimSpace(field(colBackground)),
			PortraitCenter: strings.TrimSpace(field(colPortraitCenter)),
			PortraitLeft:   strings.TrimSpace(field(colPortraitLeft)),
			PortraitRight:  strings.TrimSpace(field(colPortraitRight)),
			Sound:          strings.TrimSpace(field(colSound)),
			Music:          strings.TrimSpace(field(colMusic)),
		}
		if row.SceneID == "" {
			continue
		}
		row.Kind = Classify(row.SceneID)
		rows = append(rows, row)
	}

	return &Script{rows: rows}, nil
}
