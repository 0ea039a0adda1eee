package terrain

import "fmt"

// Category enumerates the terrain kinds a cell can hold.
type Category uint8

const (
	Ocean Category = iota
	Plains
	Hills
	Mountains
	River
	Lake
)

// NumBaseCategories is the number of height-derived categories (Ocean through
// Mountains). Rivers and lakes are only ever carved on top of them.
const NumBaseCategories = 4

// NumCategories counts every Category value.
const NumCategories = 6

var categoryNames = [NumCategories]string{"ocean", "plains", "hills", "mountains", "river", "lake"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// IsBase reports whether c is produced by classification rather than carving.
func (c Category) IsBase() bool { return c < NumBaseCategories }

// IsLand reports whether c is a base category other than Ocean. Only land
// cells may be turned into lakes.
func (c Category) IsLand() bool { return c == Plains || c == Hills || c == Mountains }

// ParseCategory resolves a category by name.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain category %q", s)
}
