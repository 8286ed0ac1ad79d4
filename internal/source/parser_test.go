package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finplan/internal/model"
	"github.com/theirongolddev/finplan/internal/numfmt"
)

// writePlan creates a temp JSONL file and returns a DiscoveredFile for it.
func writePlan(t *testing.T, lines ...string) DiscoveredFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cliente.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return discovered(path)
}

func TestParseFile_Records(t *testing.T) {
	df := writePlan(t,
		`{"kind":"income","source":"Salário","amount":"5000.00","frequency":"monthly"}`,
		`{"kind":"expense","category":"fixed","description":"Aluguel","amount":1500,"percentage":"42"}`,
		`{"kind":"expense","category":"variável","description":"Alimentação","amount":800.5}`,
	)

	res := ParseFile(df)
	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.Lines)
	assert.Zero(t, res.Skipped)

	require.Len(t, res.Incomes, 1)
	assert.Equal(t, "Salário", res.Incomes[0].Source)
	assert.True(t, res.Incomes[0].Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, model.Monthly, res.Incomes[0].Frequency)
	assert.False(t, res.Incomes[0].Percentage.Valid)

	require.Len(t, res.Expenses, 2)
	assert.Equal(t, model.Fixed, res.Expenses[0].Category)
	require.True(t, res.Expenses[0].Percentage.Valid)
	assert.True(t, res.Expenses[0].Percentage.Decimal.Equal(decimal.NewFromInt(42)))
	assert.Equal(t, model.Variable, res.Expenses[1].Category)
	assert.True(t, res.Expenses[1].Amount.Equal(decimal.RequireFromString("800.5")))
}

func TestParseFile_AmountsRoundedToCent(t *testing.T) {
	df := writePlan(t,
		`{"kind":"expense","description":"Taxa","amount":"0.005"}`,
		`{"kind":"expense","description":"Taxa","amount":"0.005"}`,
		`{"kind":"income","source":"Juros","amount":12.344}`,
	)

	res := ParseFile(df)
	require.NoError(t, res.Err)
	require.Len(t, res.Expenses, 2)
	require.Len(t, res.Incomes, 1)

	cent := decimal.RequireFromString("0.01")
	for _, e := range res.Expenses {
		assert.True(t, e.Amount.Equal(cent), "amount = %s", e.Amount)
		shown := numfmt.BRL.Currency(e.Amount)
		assert.True(t, numfmt.ParseCents(shown).Equal(e.Amount), "%q reparses to %s", shown, numfmt.ParseCents(shown))
	}
	assert.True(t, res.Incomes[0].Amount.Equal(decimal.RequireFromString("12.34")))
}

func TestParseFile_MalformedLines(t *testing.T) {
	df := writePlan(t,
		`not json at all`,
		`{"kind":"income","source":"Bônus","amount":"abc"}`,
		`{"kind":"income","source":"Bônus"}`,
		`{"kind":"expense","description":"","amount":10}`,
		`{"kind":"income","source":"Aluguel recebido","amount":900,"frequency":"weekly"}`,
		`{"kind":"asset","amount":1}`,
		``,
		`{"kind":"expense","description":"Luz","amount":"120"}`,
	)

	res := ParseFile(df)
	require.NoError(t, res.Err)
	assert.Equal(t, 7, res.Lines)
	assert.Equal(t, 6, res.Skipped)
	assert.Empty(t, res.Incomes)
	require.Len(t, res.Expenses, 1)
	assert.Equal(t, "Luz", res.Expenses[0].Description)
}

func TestParseFile_EmptyFile(t *testing.T) {
	df := writePlan(t)

	res := ParseFile(df)
	require.NoError(t, res.Err)
	assert.Zero(t, res.Lines)
	assert.Empty(t, res.Incomes)
	assert.Empty(t, res.Expenses)
}

func TestParseFile_Missing(t *testing.T) {
	res := ParseFile(DiscoveredFile{Path: filepath.Join(t.TempDir(), "nope.jsonl")})
	assert.Error(t, res.Err)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jsonl", "a.jsonl", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	files, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a", files[0].Plan)
	assert.Equal(t, "b", files[1].Plan)

	single, err := Discover(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "notes", single[0].Plan)

	_, err = Discover(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestExtractTopLevelKind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"income", `{"kind":"income","amount":1}`, "income"},
		{"expense with spaces", `{"kind": "expense"}`, "expense"},
		{"nested kind ignored", `{"meta":{"kind":"income"},"kind":"expense"}`, "expense"},
		{"kind as value", `{"label":"kind","kind":"income"}`, "income"},
		{"unknown kind", `{"kind":"asset"}`, ""},
		{"no kind field", `{"amount":1}`, ""},
		{"empty", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTopLevelKind([]byte(tt.input))
			if got != tt.want {
				t.Errorf("extractTopLevelKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func FuzzExtractTopLevelKind(f *testing.F) {
	f.Add([]byte(`{"kind":"income","source":"x","amount":"1"}`))
	f.Add([]byte(`{"meta":{"kind":"nested"},"kind":"expense"}`))
	f.Add([]byte(`not json`))
	f.Add([]byte(`{"kind":null}`))
	f.Add([]byte(`{"kind":"inc`))
	f.Add([]byte(`"\`))
	f.Add([]byte(``))

	f.Fuzz(func(t *testing.T, data []byte) {
		switch got := extractTopLevelKind(data); got {
		case "", "income", "expense":
		default:
			t.Errorf("unexpected kind %q from input %q", got, data)
		}
	})
}
