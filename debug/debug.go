package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Tag   bool
	LSP   bool
	Trace bool
	Build bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SJSON_DEBUG_PARSE")
	d.Tag = boolEnv("SJSON_DEBUG_TAG")
	d.LSP = boolEnv("SJSON_DEBUG_LSP")
	d.Trace = boolEnv("SJSON_DEBUG_TRACE")
	d.Build = boolEnv("SJSON_DEBUG_BUILD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Parse reports whether parse failures are logged as they happen.
func Parse() bool {
	return d.Parse
}

// Tag reports whether tag lookups are logged.
func Tag() bool {
	return d.Tag
}
func LSP() bool {
	return d.LSP
}
func Trace() bool {
	return d.Trace
}

// Build reports whether build directories log the patches they load.
func Build() bool {
	return d.Build
}

// Logf writes a formatted message to stderr. Arguments implementing
// fmt.Stringer, such as *config.Value, are rendered through String.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "sjson: "+format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}
