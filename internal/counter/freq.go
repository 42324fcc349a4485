package counter

// Frequency maps each distinct unit of text to its occurrence count.
// Tables are built fresh per Tally call and iteration order is not meaningful;
// callers that need a stable order should sort the Entries snapshot.
type Frequency map[string]int

// Entry pairs a unit with its occurrence count.
type Entry struct {
	Unit  string
	Count int
}

// Add records one occurrence of the given unit.
func (f Frequency) Add(unit string) {
	f[unit]++
}

// Total returns the sum of all occurrence counts in the table, which equals
// the number of units the tallied text was split into.
func (f Frequency) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// Merge folds every count from other into f.
func (f Frequency) Merge(other Frequency) {
	for unit, count := range other {
		f[unit] += count
	}
}

// Entries returns the table as a slice of unit/count pairs, in no particular order.
func (f Frequency) Entries() []Entry {
	entries := make([]Entry, 0, len(f))
	for unit, count := range f {
		entries = append(entries, Entry{Unit: unit, Count: count})
	}
	return entries
}
