package util

import (
	"reflect"
	"strings"
	"testing"
)

func TestScanLines_SplitsOnCarriageReturns(t *testing.T) {
	input := "[download]   1.0% of 10.00MiB\r[download]  50.0% of 10.00MiB\r\n[download] 100%\nlast"
	var got []string
	scanLines(strings.NewReader(input), func(s string) { got = append(got, s) })

	want := []string{
		"[download]   1.0% of 10.00MiB",
		"[download]  50.0% of 10.00MiB",
		"[download] 100%",
		"last",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scanLines() = %q, want %q", got, want)
	}
}

func TestCommandLine(t *testing.T) {
	got := CommandLine("yt-dlp", []string{"-o", "My Song.%(ext)s", "-f", "137+140"})
	want := `yt-dlp -o 'My Song.%(ext)s' -f 137+140`
	if got != want {
		t.Errorf("CommandLine() = %q, want %q", got, want)
	}
}
