// Package mmapbuf provides fixed-capacity buffers of plain-data elements
// persisted to a file through a memory mapping.
//
// A BackedBuffer behaves like a mutable in-memory slice whose contents
// are durably reflected in a backing file via the operating system's page
// cache. Capacity is fixed at creation; there is no growth, no header and
// no serialization format: the file is the dense native-layout array
// itself. A non-blocking exclusive advisory lock guarantees that at most
// one live buffer instance mutates a given file at a time.
//
// # Quick Start
//
//	buf, err := mmapbuf.New[int32](100, "test.data")
//	if err != nil { ... }
//
//	// These changes are reflected in the file.
//	buf.Set(10, -10)
//	buf.Set(20, 27)
//	buf.Close()
//
//	// Later, load the same array.
//	buf, err = mmapbuf.Load[int32]("test.data")
//	if err != nil { ... }
//	defer buf.Close()
//
//	fmt.Println(buf.Get(10), buf.Get(20)) // -10 27
//
// # Buffer Abstraction
//
// Buffer hides the persistence strategy behind one type with identical
// read/write semantics for both variants:
//
//	disk, err := mmapbuf.NewOnDisk[float32](1024, "vectors.data")
//	mem := mmapbuf.NewInMemory[float32](1024)
//
// The only observable differences are persistence across process
// restarts and file-locking semantics.
//
// # Element Types
//
// Elements are constrained to fixed-size plain-data primitives (see
// [Pod]). The file stores them in the platform's native byte layout, so
// files are not portable across architectures with different layouts.
//
// # Concurrency
//
// Construction and access are single-threaded and synchronous. The
// advisory lock excludes other live buffer instances, in-process or not,
// but not arbitrary filesystem access. Sharing one buffer across
// goroutines requires caller-side synchronization.
package mmapbuf
