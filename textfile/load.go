package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/sorted"
)

var (
	// ErrNotRegular is returned for paths which do not denote a regular file.
	ErrNotRegular = errors.New("textfile: file is not a regular file")
	// ErrInvalidUTF8 is returned for files which are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8")
	// ErrShortRead signals that a fragment could not be loaded completely,
	// usually because the file has been modified while loading.
	ErrShortRead = errors.New("textfile: not all bytes loaded for text fragment")
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// prefetch is the number of fragments the reader may run ahead of the
// list builder.
const prefetch = 4

// textFile represents an OS file which will be loaded into a list.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// fragment is a batch of complete lines loaded from a file.
type fragment struct {
	pos   int64 // position of the fragment within the file
	lines []string
}

// loadDone is the last message of a load, carrying its outcome.
type loadDone struct {
	err error
}

// Load reads a file, which must be a UTF-8 text file, and returns its lines
// in natural order. Line terminators ("\n" or "\r\n") are not part of the
// lines. Clients may indicate a recommended fragment length; 0 lets Load use
// sensible defaults.
func Load(name string, fragSize int64) (*sorted.List[string], error) {
	return LoadFunc(context.Background(), name, strings.Compare, sorted.Config{}, fragSize)
}

// LoadFunc reads a file like Load, ordering its lines by compare in a list
// configured by cfg. Loading stops early if ctx is cancelled.
//
// Reading of the file is done asynchronously, in fragments, while lines
// already loaded are staged for the list. Opening of the file is always done
// synchronously.
func LoadFunc(ctx context.Context, name string, compare func(a, b string) int,
	cfg sorted.Config, fragSize int64) (*sorted.List[string], error) {
	//
	b, err := sorted.NewBuilderFunc(compare, cfg)
	if err != nil {
		return nil, err
	}
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	tracer().Debugf("textfile: loading %s (%d bytes) in fragments of %d", name, tf.info.Size(), fragSize)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch, ok := tf.cast.Sub(subCtx, prefetch)
	if !ok {
		return nil, fmt.Errorf("textfile: cannot subscribe to loader of %s", name)
	}
	go tf.loadAllFragments(fragSize)
	defer tf.cast.Close()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil, fmt.Errorf("textfile: loader of %s stopped unexpectedly", name)
			}
			switch m := msg.(type) {
			case fragment:
				if err := b.Add(m.lines...); err != nil {
					return nil, err
				}
			case loadDone:
				if m.err != nil {
					return nil, m.err
				}
				return b.List(), nil
			}
		}
	}
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

func fragmentSize(size, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments reads the file front to back and publishes its lines.
// Lines crossing a fragment boundary are carried over to the next fragment.
// The last message published is always a loadDone, unless the broadcaster
// has been closed by the consumer.
func (tf *textFile) loadAllFragments(fragSize int64) {
	size := tf.info.Size()
	buf := make([]byte, fragSize)
	var carry []byte
	for pos := int64(0); pos < size; pos += fragSize {
		n := min(fragSize, size-pos)
		cnt, err := tf.file.ReadAt(buf[:n], pos)
		if err != nil && err != io.EOF {
			tf.cast.Pub(loadDone{fmt.Errorf("textfile: error loading text fragment at %d: %w", pos, err)})
			return
		} else if int64(cnt) < n {
			tf.cast.Pub(loadDone{fmt.Errorf("%w: at %d", ErrShortRead, pos)})
			return
		}
		data := append(carry, buf[:n]...)
		cut := bytes.LastIndexByte(data, '\n')
		if cut < 0 {
			carry = data
			continue
		}
		lines, err := splitLines(data[:cut+1], pos)
		if err != nil {
			tf.cast.Pub(loadDone{err})
			return
		}
		carry = slices.Clone(data[cut+1:])
		if !tf.cast.Pub(fragment{pos: pos, lines: lines}) {
			return // consumer gone
		}
	}
	if len(carry) > 0 {
		lines, err := splitLines(append(carry, '\n'), size)
		if err != nil {
			tf.cast.Pub(loadDone{err})
			return
		}
		if !tf.cast.Pub(fragment{pos: size, lines: lines}) {
			return
		}
	}
	tf.cast.Pub(loadDone{})
}

// splitLines splits newline-terminated data into lines.
func splitLines(data []byte, pos int64) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: fragment at %d", ErrInvalidUTF8, pos)
	}
	lines := make([]string, 0, bytes.Count(data, []byte{'\n'}))
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		line := data[:i]
		line = bytes.TrimSuffix(line, []byte{'\r'})
		lines = append(lines, string(line))
		data = data[i+1:]
	}
	return lines, nil
}
