// Package source reads plan records from JSON Lines import files.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/finplan/internal/model"
)

// ParseResult holds the records read from one import file.
type ParseResult struct {
	Incomes  []model.IncomeRecord
	Expenses []model.ExpenseRecord
	Lines    int // non-blank lines seen
	Skipped  int // malformed lines and unknown kinds
	Err      error
}

// ParseFile reads a JSONL import file.
//
// Lines are routed by their top-level "kind" field:
//   - "income"  → IncomeRecord
//   - "expense" → ExpenseRecord
//   - anything else, or a line that does not decode, is counted in Skipped
//
// Only I/O failures are reported in Err.
func ParseFile(df DiscoveredFile) ParseResult {
	f, err := os.Open(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	var res ParseResult
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		res.Lines++

		kind := extractTopLevelKind(line)
		if kind == "" {
			res.Skipped++
			log.WithFields(log.Fields{"file": df.Path, "line": lineNo}).Debug("skipping line without a known kind")
			continue
		}

		var raw RawRecord
		if err := json.Unmarshal(line, &raw); err != nil || raw.Amount == nil {
			res.Skipped++
			log.WithFields(log.Fields{"file": df.Path, "line": lineNo}).Debug("skipping malformed line")
			continue
		}

		switch kind {
		case "income":
			r, ok := raw.income()
			if !ok {
				res.Skipped++
				continue
			}
			res.Incomes = append(res.Incomes, r)
		case "expense":
			r, ok := raw.expense()
			if !ok {
				res.Skipped++
				continue
			}
			res.Expenses = append(res.Expenses, r)
		}
	}
	if err := scanner.Err(); err != nil {
		res.Err = err
	}
	return res
}

func (r RawRecord) income() (model.IncomeRecord, bool) {
	freq, err := model.ParseFrequency(r.Frequency)
	if err != nil || r.Source == "" {
		return model.IncomeRecord{}, false
	}
	return model.IncomeRecord{
		Source:     r.Source,
		Amount:     r.Amount.Round(2),
		Frequency:  freq,
		Percentage: r.Percentage,
	}, true
}

func (r RawRecord) expense() (model.ExpenseRecord, bool) {
	cat, err := model.ParseCategory(r.Category)
	if err != nil || r.Description == "" {
		return model.ExpenseRecord{}, false
	}
	return model.ExpenseRecord{
		Category:    cat,
		Description: r.Description,
		Amount:      r.Amount.Round(2),
		Percentage:  r.Percentage,
	}, true
}

var kindKey = []byte(`"kind"`)

// extractTopLevelKind finds the top-level "kind" field in a JSONL line.
// Tracks brace depth and string boundaries so nested "kind" keys are ignored.
func extractTopLevelKind(line []byte) string {
	depth := 0
	for i := 0; i < len(line); {
		switch line[i] {
		case '"':
			if depth == 1 && bytes.HasPrefix(line[i:], kindKey) {
				val, isKey := classifyKind(line, i+len(kindKey))
				if isKey {
					return val
				}
			}
			i = skipJSONString(line, i)
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
		default:
			i++
		}
	}
	return ""
}

// classifyKind checks whether pos follows a JSON key and returns its value
// when it is one of the known record kinds.
func classifyKind(line []byte, pos int) (val string, isKey bool) {
	i := skipSpaces(line, pos)
	if i >= len(line) || line[i] != ':' {
		return "", false
	}
	i = skipSpaces(line, i+1)
	if i >= len(line) || line[i] != '"' {
		return "", true
	}
	i++

	end := bytes.IndexByte(line[i:], '"')
	if end < 0 || end > 20 {
		return "", true
	}
	v := string(line[i : i+end])
	switch v {
	case "income", "expense":
		return v, true
	}
	return "", true
}

// skipJSONString advances past a JSON string starting at the opening quote.
func skipJSONString(line []byte, i int) int {
	i++
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return i
}

func skipSpaces(line []byte, i int) int {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
