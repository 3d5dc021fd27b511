// Large Filing Generator
//
// This tool generates a large xtx filing or HOT010 ledger export for
// performance testing and profiling of the decoders and rules.
//
// Usage:
//
//	go run main.go > large.xtx
//	go run main.go xtx 20000000 > large.xtx  # Specify target size in bytes
//	go run main.go csv > large.csv           # Shift_JIS HOT010 export
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
)

var (
	// Forms a sole proprietor filing can carry. Only ABA and VCA are read by
	// the normalizer; the rest exercise the decoder.
	forms = []string{"ABA", "ABB", "VCA", "VCB", "VCC", "VCD", "VCE", "VCF", "KOA020", "KOB090"}

	// Closing-balance ledger codes, grouped by statement.
	ledgerAccounts = []struct {
		prefix string
		name   string
	}{
		{"01100", "現金"},
		{"01100", "普通預金"},
		{"01100", "売掛金"},
		{"01100", "工具器具備品"},
		{"01200", "買掛金"},
		{"01200", "未払費用"},
		{"01200", "未払法人税等"},
		{"01300", "資本金"},
		{"01300", "繰越利益剰余金"},
		{"01400", "売上高"},
		{"01500", "売上原価"},
		{"01600", "給料手当"},
		{"01600", "地代家賃"},
		{"01600", "旅費交通費"},
		{"01600", "通信費"},
		{"01600", "減価償却費"},
	}
)

func main() {
	kind := "xtx"
	targetSize := defaultTargetSize
	for _, arg := range os.Args[1:] {
		if size, err := strconv.Atoi(arg); err == nil {
			targetSize = size
			continue
		}
		kind = arg
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var (
		bytesWritten int
		count        int
	)
	switch kind {
	case "xtx":
		bytesWritten, count = generateXTX(out, targetSize)
	case "csv":
		w := transform.NewWriter(out, japanese.ShiftJIS.NewEncoder())
		bytesWritten, count = generateLedgerExport(w, targetSize)
		_ = w.Close()
	default:
		fmt.Fprintf(os.Stderr, "unknown kind %q, expected xtx or csv\n", kind)
		os.Exit(2)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated %d bytes with %d %s entries\n", bytesWritten, count, kind)
}

func generateXTX(w io.Writer, targetSize int) (int, int) {
	n, _ := fmt.Fprint(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<DataRoot>\n")
	bytesWritten := n
	fieldCount := 0

	for bytesWritten < targetSize {
		form := forms[rand.Intn(len(forms))]
		n, _ := fmt.Fprintf(w, "  <FormData id=%q>\n", form)
		bytesWritten += n

		for i := 0; i < 50 && bytesWritten < targetSize; i++ {
			n, _ := fmt.Fprintf(w, "    <Field id=\"ITA_%s%04d\">%d</Field>\n", form, rand.Intn(2000), randAmount())
			bytesWritten += n
			fieldCount++
		}

		n, _ = fmt.Fprint(w, "  </FormData>\n")
		bytesWritten += n
	}

	n, _ = fmt.Fprint(w, "</DataRoot>\n")
	return bytesWritten + n, fieldCount
}

func generateLedgerExport(w io.Writer, targetSize int) (int, int) {
	n, _ := fmt.Fprint(w, "勘定科目コード,科目名,期首残高,期末残高,備考\r\n")
	bytesWritten := n
	rowCount := 0

	for bytesWritten < targetSize {
		account := ledgerAccounts[rand.Intn(len(ledgerAccounts))]
		n, _ := fmt.Fprintf(w, "%s%04d,%s,%d,%d,\r\n", account.prefix, rand.Intn(10000), account.name, randAmount(), randAmount())
		bytesWritten += n
		rowCount++
	}

	return bytesWritten, rowCount
}

func randAmount() int {
	return rand.Intn(10_000_000)
}
