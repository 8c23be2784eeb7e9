package mmapbuf_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hupe1980/mmapbuf"
)

// Example demonstrates writing through a disk-backed buffer and loading
// the same array later.
func Example() {
	dir, err := os.MkdirTemp("", "mmapbuf")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "test.data")

	buf, err := mmapbuf.New[int32](100, path)
	if err != nil {
		log.Fatal(err)
	}

	// These changes are reflected in the file.
	buf.Set(10, -10)
	buf.Set(20, 27)

	if err := buf.Close(); err != nil {
		log.Fatal(err)
	}

	// Later, load the same array.
	loaded, err := mmapbuf.Load[int32](path)
	if err != nil {
		log.Fatal(err)
	}
	defer loaded.Close()

	fmt.Println(loaded.Get(10), loaded.Get(20))
	// Output: -10 27
}

// ExampleNewInMemory demonstrates the in-memory variant of Buffer, which
// shares read/write semantics with the disk variant.
func ExampleNewInMemory() {
	buf := mmapbuf.NewInMemory[float32](4)

	buf.CopyFrom([]float32{1.5, 2.5})
	buf.Set(3, -1)

	fmt.Println(buf.Slice())
	// Output: [1.5 2.5 0 -1]
}
