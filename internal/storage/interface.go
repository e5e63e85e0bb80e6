package storage

// Provider persists the journal document. Implementations are stateless
// conduits between the in-memory journal and disk: they hold no document
// data between calls.
type Provider interface {
	// Init creates the data file seeded with doc. It fails when the file
	// already exists.
	Init(doc Document) error

	// Load reads the stored document. It never fails: missing, unreadable
	// or corrupt storage logs a warning and yields DefaultDocument().
	Load() Document

	// Save atomically replaces the stored document. A crash mid-save must
	// never leave a truncated or partially written document behind.
	Save(doc Document) error

	Close() error

	// Path returns the data file path.
	//
	// Concurrency note:
	//   - Providers are not safe for concurrent use by multiple goroutines
	//     without external synchronization.
	//   - Running multiple daybook processes against the same data path at
	//     the same time is not supported; the lockfile guard in main
	//     refuses to start a second writer.
	Path() string
}
