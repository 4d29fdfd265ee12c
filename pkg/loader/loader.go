package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

// ErrMalformedInput is returned when the input file cannot serve as a
// control spreadsheet at all (unreadable, empty, or missing a required
// column). It is the only fatal load failure; bad rows are skipped.
var ErrMalformedInput = goerr.New("malformed input")

// Required columns of the control CSV
var requiredColumns = []string{
	"CMMC_ID",
	"Control",
	"Score",
	"AR_CAP_POAM",
	"Policy_Statement",
}

const evidenceStringsColumn = "Evidence_Strings"

// Result is the outcome of loading the control CSV. Rows that could not be
// parsed are reported as warnings, not errors.
type Result struct {
	Controls []*model.Control
	Warnings []model.Issue
}

func (r *Result) warnf(id types.ControlID, msg string) {
	r.Warnings = append(r.Warnings, model.Issue{ControlID: id, Message: msg})
}

// LoadControls reads the control spreadsheet at path. The delimiter is
// sniffed from the header line: pipe when pipes outnumber commas, comma
// otherwise. A UTF-8 BOM is tolerated.
func LoadControls(path string) (*Result, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from config/CLI
	if err != nil {
		return nil, goerr.Wrap(ErrMalformedInput, "failed to read input CSV", goerr.V("path", path))
	}

	return parseControls(data, path)
}

func parseControls(data []byte, path string) (*Result, error) {
	data = stripBOM(data)
	delim := sniffDelimiter(data)

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, goerr.Wrap(ErrMalformedInput, "failed to read CSV header", goerr.V("path", path))
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, goerr.Wrap(ErrMalformedInput, "required column is missing",
				goerr.V("path", path),
				goerr.V("column", required))
		}
	}

	result := &Result{}
	rowNum := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			result.warnf("", "row "+strconv.Itoa(rowNum)+" could not be parsed, skipped")
			continue
		}

		ctrl, ok := parseRow(record, cols, rowNum, result)
		if ok {
			result.Controls = append(result.Controls, ctrl)
		}
	}

	model.SortControls(result.Controls)
	return result, nil
}

// parseRow converts one CSV record into a Control. Rows missing a required
// field are skipped with a warning rather than failing the run.
func parseRow(record []string, cols map[string]int, rowNum int, result *Result) (*model.Control, bool) {
	row := strconv.Itoa(rowNum)

	rawID := field(record, cols, "CMMC_ID")
	if rawID == "" {
		result.warnf("", "row "+row+": missing CMMC_ID, skipped")
		return nil, false
	}

	id, err := types.ParseControlID(rawID)
	if err != nil {
		result.warnf("", "row "+row+": invalid CMMC_ID "+strconv.Quote(rawID)+", skipped")
		return nil, false
	}

	if _, err := id.Family(); err != nil {
		result.warnf(id, "unrecognized family prefix "+strconv.Quote(id.FamilyPrefix())+", skipped")
		return nil, false
	}

	rawScore := field(record, cols, "Score")
	score, err := strconv.Atoi(rawScore)
	if err != nil {
		result.warnf(id, "missing or non-numeric Score "+strconv.Quote(rawScore)+", skipped")
		return nil, false
	}

	rawStatus := field(record, cols, "AR_CAP_POAM")
	status, err := types.ParseImplStatus(rawStatus)
	if err != nil {
		result.warnf(id, "unrecognized AR_CAP_POAM value "+strconv.Quote(rawStatus)+", treated as not implemented")
		status = types.StatusNotImplemented
	}

	ctrl := &model.Control{
		ID:              id,
		Title:           model.ControlTitle(field(record, cols, "Control")),
		Score:           types.Score(score),
		Status:          status,
		Policy:          model.ParsePolicyStatement(field(record, cols, "Policy_Statement")),
		EvidenceStrings: model.SplitDelimited(field(record, cols, evidenceStringsColumn)),
	}

	for _, env := range types.AllEnvironments() {
		impl := field(record, cols, env.ColumnPrefix()+"_Implementation")
		evidence := field(record, cols, env.ColumnPrefix()+"_Evidence")
		if impl == "" && evidence == "" {
			continue
		}
		ctrl.Environments = append(ctrl.Environments, model.EnvImpl{
			Env:            env,
			Implementation: impl,
			EvidencePath:   evidence,
		})
	}

	return ctrl, true
}

func field(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}

// sniffDelimiter inspects the header line and picks pipe only when pipes
// outnumber commas.
func sniffDelimiter(data []byte) rune {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}
	if bytes.Count(line, []byte{'|'}) > bytes.Count(line, []byte{','}) {
		return '|'
	}
	return ','
}
