package anno

import "runtime"

// Config describes one counting run, passed explicitly to every report function
type Config struct {
	// field separator, tab if empty
	Delimiter string
	// column to search under
	Column string
	// categories to count
	Values []string
	// exact match instead of substring match
	Exact bool
	// files counted concurrently, NumCPU if < 1
	Threads int
}

// DefaultConfig counts SearchValues under Annotation by substring
func DefaultConfig() *Config {
	return &Config{
		Delimiter: Delimiter,
		Column:    AnnotationColumn,
		Values:    append([]string(nil), SearchValues...),
		Threads:   runtime.NumCPU(),
	}
}

func (c *Config) sep() string {
	if c == nil || c.Delimiter == "" {
		return Delimiter
	}
	return c.Delimiter
}

func (c *Config) threads() int {
	if c == nil || c.Threads < 1 {
		return runtime.NumCPU()
	}
	return c.Threads
}
