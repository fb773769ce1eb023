// Package dirbuild interprets an sjson build directory
package dirbuild

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/convert"
	"github.com/signadot/go-sjson/debug"
	"github.com/signadot/go-sjson/encode"
	"github.com/signadot/go-sjson/format"
	"github.com/signadot/go-sjson/gomap"
	"github.com/signadot/go-sjson/patch"
)

const (
	DefaultSuffix = "-build" + ".sjson"
)

// buildFiles are tried in order when opening a directory.
var buildFiles = []string{"build.sjson", "build.json", "build.yaml", "build.toml"}

type Dir struct {
	Root    string      `json:"-"`
	Suffix  string      `json:"suffix,omitempty"`
	DestDir string      `json:"destDir,omitempty"`
	Sources []DirSource `json:"sources"`
	Patches []DirPatch  `json:"patches,omitempty"`
}

// DirSource names source files by a glob relative to the directory root.
type DirSource struct {
	Glob string `json:"glob"`
}

// DirPatch is a patch file applied to each source matching Match, or to
// every source when Match is empty. An Array is a JSON Patch, anything
// else a merge patch.
type DirPatch struct {
	File  string `json:"file"`
	Match string `json:"match,omitempty"`

	value *config.Value
}

func (p *DirPatch) String() string {
	if p.Match == "" {
		return p.File
	}
	return p.File + " (" + p.Match + ")"
}

// Output is a patched source.
type Output struct {
	Source string
	Value  *config.Value
}

func OpenDir(path string) (*Dir, error) {
	var (
		bPath string
		d     []byte
		found bool
	)
	for _, name := range buildFiles {
		candidatePath := filepath.Join(path, name)
		var err error
		d, err = os.ReadFile(candidatePath)
		if err == nil {
			bPath = candidatePath
			found = true
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidatePath, err)
		}
	}
	if !found {
		return nil, fmt.Errorf("could not find build.{sjson,json,yaml,toml} in %q", path)
	}
	v, err := convert.Decode(d, format.FromPath(bPath))
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", bPath, err)
	}
	return newDir(v, path)
}

func newDir(v *config.Value, path string) (*Dir, error) {
	dir := &Dir{
		Root:   path,
		Suffix: DefaultSuffix,
	}
	if b := v.Key("build"); b.IsObject() {
		v = b
	}
	if err := gomap.FromValue(v, dir, gomap.Strict(true)); err != nil {
		return nil, err
	}
	for i := range dir.Patches {
		p := &dir.Patches[i]
		if p.Match != "" && !doublestar.ValidatePattern(p.Match) {
			return nil, fmt.Errorf("patch %s: %w: %q", p.File, doublestar.ErrBadPattern, p.Match)
		}
		pv, err := dir.load(p.File)
		if err != nil {
			return nil, fmt.Errorf("could not load patch %s: %w", p.File, err)
		}
		p.value = pv
		if debug.Build() {
			debug.Logf("loaded patch %s\n", p)
		}
	}
	return dir, nil
}

func (dir *Dir) load(rel string) (*config.Value, error) {
	path := filepath.Join(dir.Root, filepath.FromSlash(rel))
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return convert.Decode(d, format.FromPath(path))
}

// SourceFiles lists the source files of dir as slash separated paths
// relative to its root, sorted and without duplicates. Globs may use **.
// Build files, patch files and outputs are never sources.
func (dir *Dir) SourceFiles() ([]string, error) {
	fsys := os.DirFS(dir.Root)
	var ms []string
	for _, src := range dir.Sources {
		m, err := doublestar.Glob(fsys, src.Glob, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Glob, err)
		}
		ms = append(ms, m...)
	}
	slices.Sort(ms)
	ms = slices.Compact(ms)

	skip := map[string]bool{}
	for _, name := range buildFiles {
		skip[name] = true
	}
	for i := range dir.Patches {
		skip[path.Clean(filepath.ToSlash(dir.Patches[i].File))] = true
	}
	for _, m := range ms {
		if out := dir.relOutput(m); out != "" && out != m {
			skip[out] = true
		}
	}
	// a suffix that is only an extension also names sources
	marked := dir.Suffix != path.Ext(dir.Suffix)
	res := ms[:0]
	for _, m := range ms {
		if skip[m] || (marked && strings.HasSuffix(m, dir.Suffix)) {
			if debug.Build() {
				debug.Logf("skipping %s\n", m)
			}
			continue
		}
		res = append(res, m)
	}
	return res, nil
}

// relOutput returns the output path of file relative to the root, or ""
// if the output lies outside of it.
func (dir *Dir) relOutput(file string) string {
	rel, err := filepath.Rel(dir.Root, dir.OutputPath(file))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}

// Build loads every source and applies the matching patches in order.
func (dir *Dir) Build() ([]Output, error) {
	files, err := dir.SourceFiles()
	if err != nil {
		return nil, err
	}
	res := make([]Output, 0, len(files))
	for _, file := range files {
		v, err := dir.load(file)
		if err != nil {
			return nil, fmt.Errorf("could not load %s: %w", file, err)
		}
		for i := range dir.Patches {
			p := &dir.Patches[i]
			if ok, _ := doublestar.Match(p.Match, file); p.Match != "" && !ok {
				continue
			}
			if p.value.IsArray() {
				v, err = patch.ApplyValue(v, p.value)
			} else {
				v, err = patch.MergeValue(v, p.value)
			}
			if err != nil {
				return nil, fmt.Errorf("patch %s on %s: %w", p.File, file, err)
			}
		}
		res = append(res, Output{Source: file, Value: v})
	}
	return res, nil
}

// OutputPath returns where the output of source file is written.
func (dir *Dir) OutputPath(file string) string {
	file = filepath.FromSlash(file)
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	destDir := dir.DestDir
	if destDir == "" {
		destDir = dir.Root
	} else if !filepath.IsAbs(destDir) {
		destDir = filepath.Join(dir.Root, destDir)
	}
	return filepath.Join(destDir, stem+dir.Suffix)
}

// Write writes each output in the format given by the suffix.
func (dir *Dir) Write(outs []Output) error {
	f := format.FromPath(dir.Suffix)
	for _, out := range outs {
		buf := bytes.NewBuffer(nil)
		if err := convert.Encode(out.Value, buf, encode.EncodeFormat(f)); err != nil {
			return fmt.Errorf("could not encode %s: %w", out.Source, err)
		}
		path := dir.OutputPath(out.Source)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}
	return nil
}
