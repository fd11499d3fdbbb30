package merger

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger/analyze"
	"github.com/jtboss/supplierpricelistmerger/pkg/merger/codec"
	"github.com/jtboss/supplierpricelistmerger/pkg/merger/master"
	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

// Input is one raw file handed to the pipeline: its display name and
// its bytes. No contract on the source (disk, upload, network) is
// assumed.
type Input struct {
	Name string
	Data []byte
}

var validExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
}

// Content magics for the accepted container formats: zip (xlsx/xlsm)
// and CFB (legacy xls).
var (
	zipMagic = []byte{0x50, 0x4b, 0x03, 0x04}
	cfbMagic = []byte{0xd0, 0xcf, 0x11, 0xe0}
)

// ValidateFile applies the acceptance policy: recognized extension,
// non-empty, and within the configured size limit.
func ValidateFile(name string, size int64, opts Options) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !validExtensions[ext] {
		return &ValidationError{FileName: name, Reason: fmt.Sprintf("unsupported file extension %q", ext)}
	}
	if size == 0 {
		return &ValidationError{FileName: name, Reason: "file is empty"}
	}
	if limit := opts.sizeLimit(); size > limit {
		return &ValidationError{
			FileName: name,
			Reason:   fmt.Sprintf("file size %d exceeds maximum of %d bytes", size, limit),
		}
	}
	return nil
}

// contentMismatch returns a diagnostic when the file's leading bytes do
// not look like a spreadsheet container. Mismatches are logged by the
// caller but never block processing.
func contentMismatch(data []byte) string {
	if len(data) >= 4 && (bytes.HasPrefix(data, zipMagic) || bytes.HasPrefix(data, cfbMagic)) {
		return ""
	}
	return "content does not start with a known spreadsheet signature"
}

// ProcessFile runs one file through validation, decoding, and analysis.
// On success the file carries its workbook, analysis, and detected cost
// column, and moves to the completed state; any failure moves it to the
// error state with the failure recorded.
func ProcessFile(file *models.FileObject, opts Options) error {
	logger := opts.logger()
	file.Status = models.StatusProcessing

	if err := ValidateFile(file.Name, file.Size, opts); err != nil {
		file.Fail(err.Error())
		return err
	}
	if msg := contentMismatch(file.Data); msg != "" {
		logger.Printf("file %q: %s", file.Name, msg)
	}

	wb, err := codec.Decode(file.Data)
	if err != nil {
		file.Fail(err.Error())
		return &FileError{FileName: file.Name, Err: err}
	}
	file.Workbook = wb

	names := wb.SheetNames()
	if len(names) == 0 {
		err := fmt.Errorf("no worksheets found")
		file.Fail(err.Error())
		return &FileError{FileName: file.Name, Err: err}
	}

	sheet, ok := wb.Sheet(names[0])
	if !ok || sheet == nil {
		err := fmt.Errorf("could not access worksheet %q", names[0])
		file.Fail(err.Error())
		return &FileError{FileName: file.Name, Err: err}
	}

	analysis, err := analyze.Analyze(sheet)
	if err != nil {
		file.Fail(err.Error())
		return &FileError{FileName: file.Name, Err: err}
	}
	file.Analysis = analysis
	file.CostColumnIndex = analysis.CostColumnIndex
	file.Status = models.StatusCompleted
	return nil
}

// Merge runs the whole pipeline: ingest every input, assemble the master
// workbook from the survivors, and serialize it to xlsx bytes. Per-file
// failures are recorded on the returned FileObjects and logged; Merge
// itself fails only when no input produced a usable sheet or the output
// could not be encoded.
func Merge(inputs []Input, opts Options) ([]byte, []*models.FileObject, error) {
	logger := opts.logger()

	files := make([]*models.FileObject, 0, len(inputs))
	for _, in := range inputs {
		file := models.NewFileObject(in.Name, in.Data)
		files = append(files, file)
		if err := ProcessFile(file, opts); err != nil {
			logger.Printf("skipping %q: %v", in.Name, err)
		}
	}

	masterWB, err := master.NewAssembler(opts.Logger).Assemble(files)
	if err != nil {
		return nil, files, err
	}

	data, err := codec.Encode(masterWB)
	if err != nil {
		return nil, files, err
	}
	return data, files, nil
}

// ValidateWorkbook checks a decoded workbook for basic structural
// soundness and returns itemized problems, empty when valid.
func ValidateWorkbook(wb *models.Workbook) []string {
	if wb == nil {
		return []string{"workbook is nil"}
	}
	names := wb.SheetNames()
	if len(names) == 0 {
		return []string{"workbook contains no sheets"}
	}
	for _, name := range names {
		if s, ok := wb.Sheet(name); ok && s != nil && s.Range != nil && s.Range.Valid() {
			return nil
		}
	}
	return []string{"workbook contains no data"}
}

// OutputFileName returns the delivery name for a master workbook
// serialized at time t.
func OutputFileName(t time.Time) string {
	return fmt.Sprintf("Supplier_Master_%s.xlsx", t.Format("20060102_150405"))
}
